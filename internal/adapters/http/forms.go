package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"boxoffice/internal/domain/performance"
	"boxoffice/internal/domain/ticket"
)

// fieldErrors maps a form field name to its validation message.
type fieldErrors map[string]string

// RegisterForm carries the /register form fields.
type RegisterForm struct {
	Username string
	Email    string
	Password string
}

func parseRegisterForm(r *http.Request) (RegisterForm, fieldErrors) {
	form := RegisterForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
	errs := fieldErrors{}
	if len(form.Username) < 3 {
		errs["username"] = "username must be at least 3 characters"
	}
	if form.Email == "" || !strings.Contains(form.Email, "@") || len(form.Email) > 254 {
		errs["email"] = "a valid email address is required"
	}
	if len(form.Password) < 6 {
		errs["password"] = "password must be at least 6 characters"
	}
	return form, errs
}

// LoginForm carries the /login form fields.
type LoginForm struct {
	Username string
	Password string
}

func parseLoginForm(r *http.Request) (LoginForm, fieldErrors) {
	form := LoginForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}
	errs := fieldErrors{}
	if form.Username == "" {
		errs["username"] = "username is required"
	}
	if form.Password == "" {
		errs["password"] = "password is required"
	}
	return form, errs
}

// PlayForm carries the play add/edit form fields.
type PlayForm struct {
	Title       string
	Description string
	Genre       string
	Duration    int
}

func parsePlayForm(r *http.Request) (PlayForm, fieldErrors) {
	form := PlayForm{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Genre:       strings.TrimSpace(r.PostFormValue("genre")),
	}
	errs := fieldErrors{}
	if form.Title == "" {
		errs["title"] = "title is required"
	}
	if form.Description == "" {
		errs["description"] = "description is required"
	}
	if form.Genre == "" {
		errs["genre"] = "genre is required"
	}
	duration, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("duration")))
	if err != nil || duration <= 0 {
		errs["duration"] = "duration must be a positive number of minutes"
	} else {
		form.Duration = duration
	}
	return form, errs
}

// PerformanceForm carries the performance add/edit form fields.
type PerformanceForm struct {
	PlayID         int64
	DateTime       time.Time
	Venue          string
	AvailableSeats int
}

func parsePerformanceForm(r *http.Request) (PerformanceForm, fieldErrors) {
	form := PerformanceForm{
		Venue: strings.TrimSpace(r.PostFormValue("venue")),
	}
	errs := fieldErrors{}

	playID, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue("play_id")), 10, 64)
	if err != nil || playID <= 0 {
		errs["play_id"] = "a play must be selected"
	} else {
		form.PlayID = playID
	}

	when, err := performance.ParseDateTime(strings.TrimSpace(r.PostFormValue("date_time")))
	if err != nil {
		errs["date_time"] = "date and time must look like 2026-03-14T19:30"
	} else {
		form.DateTime = when
	}

	if form.Venue == "" {
		errs["venue"] = "venue is required"
	}

	seats, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("available_seats")))
	if err != nil || seats < 0 {
		errs["available_seats"] = "available seats must be zero or more"
	} else {
		form.AvailableSeats = seats
	}
	return form, errs
}

// BuyTicketForm carries the ticket purchase form fields. An omitted
// price falls back to the house default.
type BuyTicketForm struct {
	Price float64
}

func parseBuyTicketForm(r *http.Request) (BuyTicketForm, fieldErrors) {
	form := BuyTicketForm{Price: ticket.DefaultPrice}
	errs := fieldErrors{}
	if raw := strings.TrimSpace(r.PostFormValue("price")); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			errs["price"] = "price must be zero or more"
		} else {
			form.Price = price
		}
	}
	return form, errs
}

// ReviewForm carries the /reviews/add form fields.
type ReviewForm struct {
	Rating int
	Text   string
}

func parseReviewForm(r *http.Request) (ReviewForm, fieldErrors) {
	form := ReviewForm{
		Text: strings.TrimSpace(r.PostFormValue("text")),
	}
	errs := fieldErrors{}
	rating, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("rating")))
	if err != nil || rating < 1 || rating > 10 {
		errs["rating"] = "rating must be between 1 and 10"
	} else {
		form.Rating = rating
	}
	if form.Text == "" {
		errs["text"] = "review text is required"
	}
	return form, errs
}

// StatisticForm carries the /admin/statistics selection fields.
type StatisticForm struct {
	Kind          string
	PlayID        int64
	PerformanceID int64
}

func parseStatisticForm(r *http.Request) (StatisticForm, fieldErrors) {
	form := StatisticForm{
		Kind: strings.TrimSpace(r.PostFormValue("kind")),
	}
	errs := fieldErrors{}
	if form.Kind == "" {
		errs["kind"] = "a statistic must be selected"
	}
	if raw := strings.TrimSpace(r.PostFormValue("play_id")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			form.PlayID = id
		} else {
			errs["play_id"] = "play selection is invalid"
		}
	}
	if raw := strings.TrimSpace(r.PostFormValue("performance_id")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			form.PerformanceID = id
		} else {
			errs["performance_id"] = "performance selection is invalid"
		}
	}
	return form, errs
}

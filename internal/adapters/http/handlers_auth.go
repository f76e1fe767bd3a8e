package web

import (
	"errors"
	"net/http"

	"boxoffice/internal/adapters/http/middleware"
	"boxoffice/internal/application/orchestrators"
)

// handleRegister handles GET (form) and POST (create account) for /register.
func handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "register.html", map[string]any{
			"Form":   RegisterForm{},
			"Errors": fieldErrors{},
		})
		return
	}

	if r.Method == "POST" {
		form, errs := parseRegisterForm(r)
		if len(errs) > 0 {
			renderTemplate(w, r, "register.html", map[string]any{"Form": form, "Errors": errs})
			return
		}

		_, err := orchestrators.ExecuteRegisterUser(r.Context(), orchestrators.RegisterUserInput{
			Username: form.Username,
			Email:    form.Email,
			Password: form.Password,
		}, orchestrators.RegisterUserDeps{UserStore: stores.UserStore})
		if err != nil {
			if errors.Is(err, orchestrators.ErrUsernameTaken) {
				errs["username"] = "that username is already taken"
				renderTemplate(w, r, "register.html", map[string]any{"Form": form, "Errors": errs})
				return
			}
			internalError(w, err)
			return
		}

		setFlash(w, r, FlashSuccess, "Account created. You can log in now.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogin handles GET (form) and POST (authenticate) for /login.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "login.html", map[string]any{
			"Form":   LoginForm{},
			"Errors": fieldErrors{},
		})
		return
	}

	if r.Method == "POST" {
		form, errs := parseLoginForm(r)
		if len(errs) > 0 {
			renderTemplate(w, r, "login.html", map[string]any{"Form": form, "Errors": errs})
			return
		}

		result, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
			Username: form.Username,
			Password: form.Password,
		}, orchestrators.LoginDeps{UserStore: stores.UserStore})
		if err != nil {
			if errors.Is(err, orchestrators.ErrInvalidCredentials) {
				// Same message whether the username or the password
				// was wrong.
				errs["form"] = "incorrect username or password"
				renderTemplate(w, r, "login.html", map[string]any{"Form": form, "Errors": errs})
				return
			}
			internalError(w, err)
			return
		}

		token, err := sessions.Create(result.UserID, result.Username, result.Role)
		if err != nil {
			internalError(w, err)
			return
		}
		middleware.SetSessionCookie(w, token)

		setFlash(w, r, FlashSuccess, "Welcome back, "+result.Username+".")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout ends the session and clears its cookie.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.SessionToken(r); ok {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	setFlash(w, r, FlashSuccess, "You have been logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"boxoffice/internal/adapters/email"
	"boxoffice/internal/adapters/pdf"
	performanceStore "boxoffice/internal/adapters/storage/performance"
	ticketStore "boxoffice/internal/adapters/storage/ticket"
	"boxoffice/internal/domain/ticket"
	"boxoffice/internal/domain/user"
)

// PerformanceStoreForPurchase defines the performance lookup needed by
// BuyTicket.
type PerformanceStoreForPurchase interface {
	GetByID(ctx context.Context, id int64) (performanceStore.Detail, error)
}

// TicketStoreForPurchase defines the ticket persistence needed by
// BuyTicket.
type TicketStoreForPurchase interface {
	Purchase(ctx context.Context, value ticket.Ticket) (ticket.Ticket, error)
}

// UserStoreForPurchase resolves the buyer for the confirmation email.
type UserStoreForPurchase interface {
	GetByID(ctx context.Context, id int64) (user.User, error)
}

// BuyTicketInput carries input for the purchase orchestrator.
type BuyTicketInput struct {
	PerformanceID int64
	UserID        int64
	Price         float64
}

// BuyTicketDeps holds dependencies for BuyTicket.
type BuyTicketDeps struct {
	PerformanceStore PerformanceStoreForPurchase
	TicketStore      TicketStoreForPurchase
	UserStore        UserStoreForPurchase
	Sender           email.Sender // nil disables the confirmation email
	EmailFrom        string
}

// Purchase errors
var (
	ErrPerformanceNotFound = errors.New("performance not found")
	ErrSoldOut             = errors.New("no seats available for this performance")
)

// ExecuteBuyTicket coordinates a ticket purchase: one atomic
// seat-claim-plus-insert, then a best-effort confirmation email with
// the rendered PDF ticket attached. Email failure never rolls back or
// fails the purchase.
// PRE: Price has passed form validation; UserID comes from the session
// POST: Exactly one ticket row exists per successful call, stamped with
// the server's current date and a fresh reference code
func ExecuteBuyTicket(ctx context.Context, input BuyTicketInput, deps BuyTicketDeps) (ticket.Ticket, error) {
	detail, err := deps.PerformanceStore.GetByID(ctx, input.PerformanceID)
	if err != nil {
		if errors.Is(err, performanceStore.ErrNotFound) {
			return ticket.Ticket{}, ErrPerformanceNotFound
		}
		return ticket.Ticket{}, err
	}

	t := ticket.Ticket{
		PerformanceID: input.PerformanceID,
		UserID:        input.UserID,
		Reference:     uuid.New().String(),
		Price:         input.Price,
		PurchaseDate:  timeNow(),
	}
	if err := t.Validate(); err != nil {
		return ticket.Ticket{}, err
	}

	bought, err := deps.TicketStore.Purchase(ctx, t)
	if err != nil {
		switch {
		case errors.Is(err, ticketStore.ErrSoldOut):
			return ticket.Ticket{}, ErrSoldOut
		case errors.Is(err, ticketStore.ErrPerformanceMissing):
			return ticket.Ticket{}, ErrPerformanceNotFound
		}
		return ticket.Ticket{}, err
	}

	slog.Info("purchase_event", "event", "ticket_sold",
		"ticket_id", bought.ID, "performance_id", input.PerformanceID,
		"user_id", input.UserID, "price", input.Price)

	if deps.Sender != nil {
		sendConfirmation(ctx, deps, detail, bought)
	}
	return bought, nil
}

// sendConfirmation emails the buyer their PDF ticket. Failures are
// logged and swallowed.
func sendConfirmation(ctx context.Context, deps BuyTicketDeps, detail performanceStore.Detail, bought ticket.Ticket) {
	buyer, err := deps.UserStore.GetByID(ctx, bought.UserID)
	if err != nil {
		slog.Error("purchase_event", "event", "confirmation_skipped", "error", err.Error())
		return
	}

	ticketPDF, err := pdf.RenderTicket(pdf.TicketData{
		Reference: bought.Reference,
		PlayTitle: detail.PlayTitle,
		DateTime:  detail.DateTime,
		Venue:     detail.Venue,
		Price:     bought.Price,
		Username:  buyer.Username,
	})
	if err != nil {
		slog.Error("purchase_event", "event", "ticket_pdf_failed", "error", err.Error())
		return
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your ticket for <strong>%s</strong> on %s at %s is attached.</p><p>Reference: %s</p>",
		buyer.Username, detail.PlayTitle,
		detail.DateTime.Format("2 January 2006 15:04"), detail.Venue, bought.Reference,
	)
	_, err = deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{buyer.Email},
		From:    deps.EmailFrom,
		Subject: fmt.Sprintf("Your ticket for %s", detail.PlayTitle),
		HTML:    body,
		Attachments: []email.Attachment{
			{Filename: "ticket-" + bought.Reference + ".pdf", Content: ticketPDF},
		},
	})
	if err != nil {
		slog.Error("purchase_event", "event", "confirmation_failed", "error", err.Error())
	}
}

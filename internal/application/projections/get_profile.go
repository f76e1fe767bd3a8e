package projections

import (
	"context"

	ticketStore "boxoffice/internal/adapters/storage/ticket"
	"boxoffice/internal/domain/review"
	"boxoffice/internal/domain/user"
)

// ProfileUserStore defines the user lookup needed by GetProfile.
type ProfileUserStore interface {
	GetByID(ctx context.Context, id int64) (user.User, error)
}

// ProfileTicketStore defines the ticket listing needed by GetProfile.
type ProfileTicketStore interface {
	ListByUser(ctx context.Context, userID int64) ([]ticketStore.UserTicket, error)
}

// ProfileReviewStore defines the review listing needed by GetProfile.
type ProfileReviewStore interface {
	ListByUser(ctx context.Context, userID int64) ([]review.Review, error)
}

// GetProfileQuery carries query parameters.
type GetProfileQuery struct {
	UserID int64
}

// GetProfileResult carries the query result: the account plus its
// purchase and review history.
type GetProfileResult struct {
	User    user.User
	Tickets []ticketStore.UserTicket
	Reviews []review.Review
}

// GetProfileDeps holds dependencies for GetProfile.
type GetProfileDeps struct {
	UserStore   ProfileUserStore
	TicketStore ProfileTicketStore
	ReviewStore ProfileReviewStore
}

// QueryGetProfile retrieves the signed-in user's profile page data.
// PRE: UserID comes from the session
// POST: Returns the user with tickets newest-first as the store orders
// them; the password hash is cleared before the result leaves the layer
func QueryGetProfile(ctx context.Context, query GetProfileQuery, deps GetProfileDeps) (GetProfileResult, error) {
	u, err := deps.UserStore.GetByID(ctx, query.UserID)
	if err != nil {
		return GetProfileResult{}, err
	}
	u.PasswordHash = ""

	tickets, err := deps.TicketStore.ListByUser(ctx, query.UserID)
	if err != nil {
		return GetProfileResult{}, err
	}

	reviews, err := deps.ReviewStore.ListByUser(ctx, query.UserID)
	if err != nil {
		return GetProfileResult{}, err
	}

	return GetProfileResult{User: u, Tickets: tickets, Reviews: reviews}, nil
}

package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"boxoffice/internal/domain/user"
)

// UserStoreForLogin defines the store interface needed by Login.
type UserStoreForLogin interface {
	GetByUsername(ctx context.Context, username string) (user.User, error)
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult carries the result of a successful login.
type LoginResult struct {
	UserID   int64
	Username string
	Role     string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	UserStore UserStoreForLogin
}

// ErrInvalidCredentials covers both an unknown username and a wrong
// password, so login failures do not reveal which usernames exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ExecuteLogin validates credentials and returns user info for session creation.
// PRE: Username and password provided
// POST: Returns user info on success; ErrInvalidCredentials otherwise
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Username == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	u, err := deps.UserStore.GetByUsername(ctx, input.Username)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "username", input.Username, "reason", "not_found")
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := u.CheckPassword(input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "username", input.Username, "reason", "wrong_password")
		return LoginResult{}, ErrInvalidCredentials
	}

	slog.Info("auth_event", "event", "login_success", "username", input.Username, "role", u.Role)

	return LoginResult{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	}, nil
}

package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	userStore "boxoffice/internal/adapters/storage/user"
	"boxoffice/internal/domain/user"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// UserStoreForRegister defines the store interface needed by RegisterUser.
type UserStoreForRegister interface {
	GetByUsername(ctx context.Context, username string) (user.User, error)
	Create(ctx context.Context, value user.User) (int64, error)
}

// RegisterUserInput carries input for the registration orchestrator.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

// RegisterUserDeps holds dependencies for RegisterUser.
type RegisterUserDeps struct {
	UserStore UserStoreForRegister
}

// ErrUsernameTaken is returned when the requested username exists.
var ErrUsernameTaken = errors.New("username is already taken")

// ExecuteRegisterUser coordinates visitor registration.
// The username is pre-checked and additionally guarded by the store's
// unique constraint, so a concurrent duplicate cannot slip through.
// PRE: Input fields have passed form validation
// POST: User created with role "user" and a bcrypt password hash, or
// ErrUsernameTaken with no insert performed
func ExecuteRegisterUser(ctx context.Context, input RegisterUserInput, deps RegisterUserDeps) (int64, error) {
	existing, err := deps.UserStore.GetByUsername(ctx, input.Username)
	if err == nil && existing.ID != 0 {
		slog.Info("auth_event", "event", "register_rejected", "username", input.Username, "reason", "duplicate")
		return 0, ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, userStore.ErrNotFound) {
		return 0, err
	}

	u := user.User{
		Username:  input.Username,
		Email:     input.Email,
		Role:      user.RoleUser,
		CreatedAt: timeNow(),
	}
	if err := u.SetPassword(input.Password); err != nil {
		return 0, err
	}
	if err := u.Validate(); err != nil {
		return 0, err
	}

	id, err := deps.UserStore.Create(ctx, u)
	if err != nil {
		if errors.Is(err, userStore.ErrUsernameTaken) {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}

	slog.Info("auth_event", "event", "register_success", "username", input.Username, "user_id", id)
	return id, nil
}

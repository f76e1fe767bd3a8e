package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	userStore "boxoffice/internal/adapters/storage/user"
	"boxoffice/internal/domain/user"
)

// AdminUsername is the reserved username of the privileged account.
const AdminUsername = "admin"

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	UserStore UserStoreForRegister
}

// ExecuteSeedAdmin creates the admin account on first startup. The call
// is idempotent: an existing admin user is left untouched.
// PRE: email and password come from configuration
// POST: A user named "admin" with the admin role exists
func ExecuteSeedAdmin(ctx context.Context, deps SeedAdminDeps, email, password string) error {
	existing, err := deps.UserStore.GetByUsername(ctx, AdminUsername)
	if err == nil && existing.ID != 0 {
		return nil
	}
	if err != nil && !errors.Is(err, userStore.ErrNotFound) {
		return err
	}

	admin := user.User{
		Username:  AdminUsername,
		Email:     email,
		Role:      user.RoleAdmin,
		CreatedAt: timeNow(),
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := admin.Validate(); err != nil {
		return err
	}
	if _, err := deps.UserStore.Create(ctx, admin); err != nil {
		return err
	}

	slog.Info("auth_event", "event", "admin_seeded", "email", email)
	return nil
}

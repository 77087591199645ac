package user

import (
	"context"
	"errors"
)

// ErrEmailAlreadyUsed signals the uniqueness conflict on the email column,
// both from the pre-insert existence check and from the unique index itself.
var ErrEmailAlreadyUsed = errors.New("email is already in use")

type Repository interface {
	FetchByID(ctx context.Context, id ID) (*User, error)
	FetchByEmail(ctx context.Context, email string) (*User, error)
	FetchAll(ctx context.Context) (Users, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, req User) (*User, error)
	UpdateProfile(ctx context.Context, id ID, patch ProfilePatch) (*User, error)
	UpdateProfileByEmail(ctx context.Context, email string, patch ProfilePatch) (*User, error)
	UpdateNotifications(ctx context.Context, id ID, patch NotificationPatch) (*User, error)
	UpdateNotificationsByEmail(ctx context.Context, email string, patch NotificationPatch) (*User, error)
	UpdateStatus(ctx context.Context, id ID, status Status) (*User, error)
}

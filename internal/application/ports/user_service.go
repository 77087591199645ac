package ports

import (
	"context"

	"user-service-api/internal/domain/user"
)

type UserService interface {
	CreateUser(ctx context.Context, req user.Signup) (*user.User, error)
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindUsers(ctx context.Context) (user.Users, error)
	UpdateProfile(ctx context.Context, id user.ID, patch user.ProfilePatch) (*user.User, error)
	UpdateProfileByEmail(ctx context.Context, email string, patch user.ProfilePatch) (*user.User, error)
	UpdateNotifications(ctx context.Context, id user.ID, patch user.NotificationPatch) (*user.User, error)
	UpdateNotificationsByEmail(ctx context.Context, email string, patch user.NotificationPatch) (*user.User, error)
	ChangeStatus(ctx context.Context, id user.ID, status user.Status) (*user.User, error)
}

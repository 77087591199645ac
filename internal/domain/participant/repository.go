package participant

import (
	"context"
	"errors"
)

var ErrEmailAlreadyUsed = errors.New("email is already in use")

type Repository interface {
	FetchByID(ctx context.Context, id ID) (*Participant, error)
	FetchByEmail(ctx context.Context, email string) (*Participant, error)
	FetchAll(ctx context.Context) (Participants, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, req Participant) (*Participant, error)
	UpdateProfile(ctx context.Context, id ID, patch ProfilePatch) (*Participant, error)
	UpdateProfileByEmail(ctx context.Context, email string, patch ProfilePatch) (*Participant, error)
	UpdateNotifications(ctx context.Context, id ID, patch NotificationPatch) (*Participant, error)
	UpdateNotificationsByEmail(ctx context.Context, email string, patch NotificationPatch) (*Participant, error)
	UpdateStatus(ctx context.Context, id ID, status Status) (*Participant, error)
}

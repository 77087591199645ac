package ports

import (
	"context"

	"user-service-api/internal/domain/participant"
)

type ParticipantService interface {
	CreateParticipant(ctx context.Context, req participant.Signup) (*participant.Participant, error)
	FindParticipantByID(ctx context.Context, id participant.ID) (*participant.Participant, error)
	FindByEmail(ctx context.Context, email string) (*participant.Participant, error)
	FindParticipants(ctx context.Context) (participant.Participants, error)
	UpdateProfile(ctx context.Context, id participant.ID, patch participant.ProfilePatch) (*participant.Participant, error)
	UpdateProfileByEmail(ctx context.Context, email string, patch participant.ProfilePatch) (*participant.Participant, error)
	UpdateNotifications(ctx context.Context, id participant.ID, patch participant.NotificationPatch) (*participant.Participant, error)
	UpdateNotificationsByEmail(ctx context.Context, email string, patch participant.NotificationPatch) (*participant.Participant, error)
	ChangeStatus(ctx context.Context, id participant.ID, status participant.Status) (*participant.Participant, error)
}

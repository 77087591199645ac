package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"user-service-api/internal/application/ports"
	domain "user-service-api/internal/domain/participant"
	"user-service-api/internal/infrastructure/mq"
)

type ParticipantService struct {
	participantRepository domain.Repository
	hasher                ports.PasswordHasher
	mq                    ports.RabbitMQ
	mCounter              *prometheus.CounterVec
}

func NewParticipantService(
	participantRepository domain.Repository,
	hasher ports.PasswordHasher,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ParticipantService {
	return &ParticipantService{
		participantRepository: participantRepository,
		hasher:                hasher,
		mq:                    rabbit,
		mCounter:              mCounter,
	}
}

func (ps *ParticipantService) CreateParticipant(ctx context.Context, req domain.Signup) (*domain.Participant, error) {
	used, err := ps.participantRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, domain.ErrEmailAlreadyUsed
	}

	hash, err := ps.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	p, err := ps.participantRepository.Create(ctx, domain.Participant{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		PasswordHash: hash,
		Status:       domain.StatusActive,
	})
	if err != nil {
		return nil, err
	}

	ps.emit(mq.ActionCreated, p)
	ps.mCounter.WithLabelValues("participant_created_total").Inc()

	return p, nil
}

func (ps *ParticipantService) FindParticipantByID(ctx context.Context, id domain.ID) (*domain.Participant, error) {
	return ps.participantRepository.FetchByID(ctx, id)
}

func (ps *ParticipantService) FindByEmail(ctx context.Context, email string) (*domain.Participant, error) {
	return ps.participantRepository.FetchByEmail(ctx, email)
}

func (ps *ParticipantService) FindParticipants(ctx context.Context) (domain.Participants, error) {
	return ps.participantRepository.FetchAll(ctx)
}

func (ps *ParticipantService) UpdateProfile(ctx context.Context, id domain.ID, patch domain.ProfilePatch) (*domain.Participant, error) {
	p, err := ps.participantRepository.UpdateProfile(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	ps.emit(mq.ActionProfileUpdated, p)
	ps.mCounter.WithLabelValues("participant_profile_updated_total").Inc()

	return p, nil
}

func (ps *ParticipantService) UpdateProfileByEmail(ctx context.Context, email string, patch domain.ProfilePatch) (*domain.Participant, error) {
	p, err := ps.participantRepository.UpdateProfileByEmail(ctx, email, patch)
	if err != nil {
		return nil, err
	}

	ps.emit(mq.ActionProfileUpdated, p)
	ps.mCounter.WithLabelValues("participant_profile_updated_total").Inc()

	return p, nil
}

func (ps *ParticipantService) UpdateNotifications(ctx context.Context, id domain.ID, patch domain.NotificationPatch) (*domain.Participant, error) {
	p, err := ps.participantRepository.UpdateNotifications(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	ps.emit(mq.ActionNotificationsUpdated, p)
	ps.mCounter.WithLabelValues("participant_notifications_updated_total").Inc()

	return p, nil
}

func (ps *ParticipantService) UpdateNotificationsByEmail(ctx context.Context, email string, patch domain.NotificationPatch) (*domain.Participant, error) {
	p, err := ps.participantRepository.UpdateNotificationsByEmail(ctx, email, patch)
	if err != nil {
		return nil, err
	}

	ps.emit(mq.ActionNotificationsUpdated, p)
	ps.mCounter.WithLabelValues("participant_notifications_updated_total").Inc()

	return p, nil
}

func (ps *ParticipantService) ChangeStatus(ctx context.Context, id domain.ID, status domain.Status) (*domain.Participant, error) {
	p, err := ps.participantRepository.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	ps.emit(mq.ActionStatusChanged, p)
	ps.mCounter.WithLabelValues("participant_status_changed_total").Inc()

	return p, nil
}

func (ps *ParticipantService) emit(action string, p *domain.Participant) {
	if p == nil {
		return
	}
	ps.mq.GetInputChan() <- mq.Event{
		Id:        uuid.New(),
		TS:        time.Now(),
		Action:    action,
		Account:   mq.AccountParticipant,
		AccountID: uint64(p.ID),
		Email:     p.Email,
	}
}

package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"user-service-api/internal/application/ports"
	domain "user-service-api/internal/domain/user"
	"user-service-api/internal/infrastructure/mq"
)

type UserService struct {
	userRepository domain.Repository
	hasher         ports.PasswordHasher
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	hasher ports.PasswordHasher,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		hasher:         hasher,
		mq:             rabbit,
		mCounter:       mCounter,
	}
}

// CreateUser provisions a new user: exists-check, password hash, ACTIVE
// status, notification flags off. The unique index on email backs up the
// exists-check, so a concurrent signup with the same email still comes
// back as ErrEmailAlreadyUsed.
func (us *UserService) CreateUser(ctx context.Context, req domain.Signup) (*domain.User, error) {
	used, err := us.userRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, domain.ErrEmailAlreadyUsed
	}

	hash, err := us.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u, err := us.userRepository.Create(ctx, domain.User{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Status:       domain.StatusActive,
	})
	if err != nil {
		return nil, err
	}

	us.emit(mq.ActionCreated, u)
	us.mCounter.WithLabelValues("user_created_total").Inc()

	return u, nil
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	return us.userRepository.FetchByID(ctx, id)
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return us.userRepository.FetchByEmail(ctx, email)
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	return us.userRepository.FetchAll(ctx)
}

func (us *UserService) UpdateProfile(ctx context.Context, id domain.ID, patch domain.ProfilePatch) (*domain.User, error) {
	u, err := us.userRepository.UpdateProfile(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	us.emit(mq.ActionProfileUpdated, u)
	us.mCounter.WithLabelValues("user_profile_updated_total").Inc()

	return u, nil
}

func (us *UserService) UpdateProfileByEmail(ctx context.Context, email string, patch domain.ProfilePatch) (*domain.User, error) {
	u, err := us.userRepository.UpdateProfileByEmail(ctx, email, patch)
	if err != nil {
		return nil, err
	}

	us.emit(mq.ActionProfileUpdated, u)
	us.mCounter.WithLabelValues("user_profile_updated_total").Inc()

	return u, nil
}

func (us *UserService) UpdateNotifications(ctx context.Context, id domain.ID, patch domain.NotificationPatch) (*domain.User, error) {
	u, err := us.userRepository.UpdateNotifications(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	us.emit(mq.ActionNotificationsUpdated, u)
	us.mCounter.WithLabelValues("user_notifications_updated_total").Inc()

	return u, nil
}

func (us *UserService) UpdateNotificationsByEmail(ctx context.Context, email string, patch domain.NotificationPatch) (*domain.User, error) {
	u, err := us.userRepository.UpdateNotificationsByEmail(ctx, email, patch)
	if err != nil {
		return nil, err
	}

	us.emit(mq.ActionNotificationsUpdated, u)
	us.mCounter.WithLabelValues("user_notifications_updated_total").Inc()

	return u, nil
}

func (us *UserService) ChangeStatus(ctx context.Context, id domain.ID, status domain.Status) (*domain.User, error) {
	u, err := us.userRepository.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	us.emit(mq.ActionStatusChanged, u)
	us.mCounter.WithLabelValues("user_status_changed_total").Inc()

	return u, nil
}

func (us *UserService) emit(action string, u *domain.User) {
	if u == nil {
		return
	}
	us.mq.GetInputChan() <- mq.Event{
		Id:        uuid.New(),
		TS:        time.Now(),
		Action:    action,
		Account:   mq.AccountUser,
		AccountID: uint64(u.ID),
		Email:     u.Email,
	}
}

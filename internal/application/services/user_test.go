package services

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"user-service-api/internal/application/ports"
	domain "user-service-api/internal/domain/user"
	"user-service-api/internal/infrastructure/mq"
	"user-service-api/internal/infrastructure/password"
)

type FakeUserRepo struct {
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	CreateFunc        func(ctx context.Context, req domain.User) (*domain.User, error)
	UpdateStatusFunc  func(ctx context.Context, id domain.ID, status domain.Status) (*domain.User, error)

	createCalls int
}

func (f *FakeUserRepo) FetchByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	return nil, errors.New("not used")
}
func (f *FakeUserRepo) FetchByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, errors.New("not used")
}
func (f *FakeUserRepo) FetchAll(ctx context.Context) (domain.Users, error) {
	return nil, errors.New("not used")
}
func (f *FakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.ExistsByEmailFunc == nil {
		return false, errors.New("not used")
	}
	return f.ExistsByEmailFunc(ctx, email)
}
func (f *FakeUserRepo) Create(ctx context.Context, req domain.User) (*domain.User, error) {
	f.createCalls++
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, req)
}
func (f *FakeUserRepo) UpdateProfile(ctx context.Context, id domain.ID, patch domain.ProfilePatch) (*domain.User, error) {
	return nil, errors.New("not used")
}
func (f *FakeUserRepo) UpdateProfileByEmail(ctx context.Context, email string, patch domain.ProfilePatch) (*domain.User, error) {
	return nil, errors.New("not used")
}
func (f *FakeUserRepo) UpdateNotifications(ctx context.Context, id domain.ID, patch domain.NotificationPatch) (*domain.User, error) {
	return nil, errors.New("not used")
}
func (f *FakeUserRepo) UpdateNotificationsByEmail(ctx context.Context, email string, patch domain.NotificationPatch) (*domain.User, error) {
	return nil, errors.New("not used")
}
func (f *FakeUserRepo) UpdateStatus(ctx context.Context, id domain.ID, status domain.Status) (*domain.User, error) {
	if f.UpdateStatusFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateStatusFunc(ctx, id, status)
}

type FakeMQ struct {
	in chan mq.Event
}

func NewFakeMQ() *FakeMQ                                 { return &FakeMQ{in: make(chan mq.Event, 16)} }
func (f *FakeMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *FakeMQ) Init() error                            { return nil }
func (f *FakeMQ) PublisherWorker(ctx context.Context)    {}
func (f *FakeMQ) GetInputChan() chan mq.Event            { return f.in }
func (f *FakeMQ) GetConn() *amqp091.Connection           { return nil }

func newCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "userservice_test", Name: "general_counters"},
		[]string{"result"},
	)
}

func newUserService(repo domain.Repository, fmq *FakeMQ) ports.UserService {
	return NewUserService(repo, password.New(bcrypt.MinCost), fmq, newCounter())
}

func TestUserService_CreateUser_FreshEmail(t *testing.T) {
	var created domain.User
	repo := &FakeUserRepo{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) { return false, nil },
		CreateFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
			created = req
			u := req
			u.ID = 1
			return &u, nil
		},
	}
	fmq := NewFakeMQ()
	svc := newUserService(repo, fmq)

	u, err := svc.CreateUser(context.Background(), domain.Signup{
		Firstname: "John",
		Lastname:  "Doe",
		Email:     "john@example.com",
		Password:  "secret123",
		Role:      domain.RoleAttendee,
	})
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.Equal(t, domain.StatusActive, created.Status)
	assert.False(t, created.EmailNotificationsEnabled)
	assert.False(t, created.SmsNotificationsEnabled)

	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))

	select {
	case e := <-fmq.GetInputChan():
		assert.Equal(t, mq.ActionCreated, e.Action)
		assert.Equal(t, mq.AccountUser, e.Account)
		assert.Equal(t, uint64(1), e.AccountID)
	default:
		t.Fatal("expected a created event on the mq channel")
	}
}

func TestUserService_CreateUser_EmailAlreadyUsed(t *testing.T) {
	repo := &FakeUserRepo{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) { return true, nil },
	}
	fmq := NewFakeMQ()
	svc := newUserService(repo, fmq)

	u, err := svc.CreateUser(context.Background(), domain.Signup{
		Firstname: "John",
		Lastname:  "Doe",
		Email:     "john@example.com",
		Password:  "secret123",
		Role:      domain.RoleAttendee,
	})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyUsed)
	assert.Nil(t, u)
	assert.Zero(t, repo.createCalls, "no aggregate may be created on conflict")

	select {
	case <-fmq.GetInputChan():
		t.Fatal("no event may be emitted on conflict")
	default:
	}
}

func TestUserService_CreateUser_InsertRace(t *testing.T) {
	// exists-check passes but the unique index rejects the insert:
	// the conflict still surfaces as ErrEmailAlreadyUsed.
	repo := &FakeUserRepo{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) { return false, nil },
		CreateFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
			return nil, domain.ErrEmailAlreadyUsed
		},
	}
	fmq := NewFakeMQ()
	svc := newUserService(repo, fmq)

	u, err := svc.CreateUser(context.Background(), domain.Signup{
		Firstname: "Jane",
		Lastname:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
		Role:      domain.RoleAttendee,
	})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyUsed)
	assert.Nil(t, u)
}

func TestUserService_ChangeStatus_EmitsEvent(t *testing.T) {
	repo := &FakeUserRepo{
		UpdateStatusFunc: func(ctx context.Context, id domain.ID, status domain.Status) (*domain.User, error) {
			return &domain.User{ID: id, Email: "john@example.com", Status: status}, nil
		},
	}
	fmq := NewFakeMQ()
	svc := newUserService(repo, fmq)

	u, err := svc.ChangeStatus(context.Background(), domain.ID(7), domain.StatusDeleted)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, domain.StatusDeleted, u.Status)

	select {
	case e := <-fmq.GetInputChan():
		assert.Equal(t, mq.ActionStatusChanged, e.Action)
		assert.Equal(t, uint64(7), e.AccountID)
	default:
		t.Fatal("expected a status_changed event")
	}
}

func TestUserService_ChangeStatus_NotFoundEmitsNothing(t *testing.T) {
	repo := &FakeUserRepo{
		UpdateStatusFunc: func(ctx context.Context, id domain.ID, status domain.Status) (*domain.User, error) {
			return nil, nil
		},
	}
	fmq := NewFakeMQ()
	svc := newUserService(repo, fmq)

	u, err := svc.ChangeStatus(context.Background(), domain.ID(404), domain.StatusSuspended)
	require.NoError(t, err)
	assert.Nil(t, u)

	select {
	case <-fmq.GetInputChan():
		t.Fatal("no event may be emitted for a missing aggregate")
	default:
	}
}

package user

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-service-api/internal/domain/user"
)

var userCols = []string{
	"id", "firstname", "lastname", "email", "password_hash", "role",
	"avatar_url", "bio", "city", "country", "status",
	"email_notifications_enabled", "sms_notifications_enabled",
	"created_at", "updated_at", "last_login_at",
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func sampleRow(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(userCols).AddRow(
		uint64(1), "John", "Doe", "john@example.com", "$2a$10$hash", "ATTENDEE",
		"", "", "", "", "ACTIVE",
		false, false,
		now, now, nil,
	)
}

func TestRepository_FetchByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)
	now := time.Now()

	mock.ExpectQuery(SelectUserByID).
		WithArgs(uint64(1)).
		WillReturnRows(sampleRow(now))

	u, err := repo.FetchByID(context.Background(), domain.ID(1))
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.Equal(t, domain.ID(1), u.ID)
	assert.Equal(t, "john@example.com", u.Email)
	assert.Equal(t, domain.RoleAttendee, u.Role)
	assert.Equal(t, domain.StatusActive, u.Status)
	assert.False(t, u.EmailNotificationsEnabled)
	assert.Nil(t, u.LastLoginAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(SelectUserByID).
		WithArgs(uint64(42)).
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.FetchByID(context.Background(), domain.ID(42))
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UniqueViolation(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(InsertUser).
		WithArgs("John", "Doe", "john@example.com", "$2a$10$hash", "ATTENDEE", "ACTIVE").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_uniq"})

	u, err := repo.Create(context.Background(), domain.User{
		Firstname:    "John",
		Lastname:     "Doe",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         domain.RoleAttendee,
		Status:       domain.StatusActive,
	})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyUsed)
	assert.Nil(t, u)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateProfile_PartialPatch(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)
	now := time.Now()

	bio := "X"
	city := "London"
	mock.ExpectQuery(UpdateUserProfileByID).
		WithArgs((*string)(nil), (*string)(nil), &bio, &city, (*string)(nil), (*string)(nil), uint64(1)).
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(
			uint64(1), "John", "Doe", "john@example.com", "$2a$10$hash", "ATTENDEE",
			"", "X", "London", "", "ACTIVE",
			false, false,
			now, now.Add(time.Second), nil,
		))

	u, err := repo.UpdateProfile(context.Background(), domain.ID(1), domain.ProfilePatch{
		Bio:  &bio,
		City: &city,
	})
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.Equal(t, "X", u.Bio)
	assert.Equal(t, "London", u.City)
	assert.Equal(t, "John", u.Firstname)
	assert.True(t, u.UpdatedAt.After(u.CreatedAt))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateNotifications_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)

	enabled := true
	mock.ExpectQuery(UpdateUserNotificationsByEmail).
		WithArgs(&enabled, (*bool)(nil), "ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.UpdateNotificationsByEmail(context.Background(), "ghost@example.com", domain.NotificationPatch{
		EmailNotificationsEnabled: &enabled,
	})
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExistsByEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(ExistsUserByEmail).
		WithArgs("john@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock)
	now := time.Now()

	mock.ExpectQuery(UpdateUserStatusByID).
		WithArgs("DELETED", uint64(1)).
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(
			uint64(1), "John", "Doe", "john@example.com", "$2a$10$hash", "ATTENDEE",
			"", "", "", "", "DELETED",
			false, false,
			now, now.Add(time.Second), nil,
		))

	u, err := repo.UpdateStatus(context.Background(), domain.ID(1), domain.StatusDeleted)
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.Equal(t, domain.StatusDeleted, u.Status)
	assert.True(t, u.UpdatedAt.After(u.CreatedAt))

	require.NoError(t, mock.ExpectationsWereMet())
}

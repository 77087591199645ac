package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"user-service-api/internal/domain/user"
	"user-service-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	if err := row.Scan(
		&u.ID,
		&u.Firstname,
		&u.Lastname,
		&u.Email,
		&u.PasswordHash,
		&u.Role,

		&u.AvatarURL,
		&u.Bio,
		&u.City,
		&u.Country,

		&u.Status,

		&u.EmailNotificationsEnabled,
		&u.SmsNotificationsEnabled,

		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastLoginAt,
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) FetchAll(ctx context.Context) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchByID(ctx context.Context, id user.ID) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByID, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsUserByEmail, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) Create(ctx context.Context, req user.User) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		req.Firstname, req.Lastname, req.Email, req.PasswordHash, string(req.Role), string(req.Status),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrEmailAlreadyUsed
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateProfile(ctx context.Context, id user.ID, patch user.ProfilePatch) (*user.User, error) {
	return r.updateProfile(ctx, UpdateUserProfileByID, patch, uint64(id))
}

func (r *Repository) UpdateProfileByEmail(ctx context.Context, email string, patch user.ProfilePatch) (*user.User, error) {
	return r.updateProfile(ctx, UpdateUserProfileByEmail, patch, email)
}

func (r *Repository) updateProfile(ctx context.Context, query string, patch user.ProfilePatch, key any) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		query,
		patch.Firstname, patch.Lastname, patch.Bio, patch.City, patch.Country, patch.AvatarURL,
		key,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateNotifications(ctx context.Context, id user.ID, patch user.NotificationPatch) (*user.User, error) {
	return r.updateNotifications(ctx, UpdateUserNotificationsByID, patch, uint64(id))
}

func (r *Repository) UpdateNotificationsByEmail(ctx context.Context, email string, patch user.NotificationPatch) (*user.User, error) {
	return r.updateNotifications(ctx, UpdateUserNotificationsByEmail, patch, email)
}

func (r *Repository) updateNotifications(ctx context.Context, query string, patch user.NotificationPatch, key any) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		query,
		patch.EmailNotificationsEnabled, patch.SmsNotificationsEnabled,
		key,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id user.ID, status user.Status) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, UpdateUserStatusByID, string(status), uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

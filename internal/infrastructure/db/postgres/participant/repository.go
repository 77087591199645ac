package participant

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"user-service-api/internal/domain/participant"
	"user-service-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) participant.Repository {
	return &Repository{db: db}
}

func scanParticipant(row pgx.Row) (*Participant, error) {
	p := new(Participant)
	if err := row.Scan(
		&p.ID,
		&p.Firstname,
		&p.Lastname,
		&p.Email,
		&p.PasswordHash,

		&p.AvatarURL,
		&p.Bio,
		&p.City,
		&p.Country,

		&p.Status,

		&p.EmailNotificationsEnabled,
		&p.SmsNotificationsEnabled,

		&p.CreatedAt,
		&p.UpdatedAt,
		&p.LastLoginAt,
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) FetchAll(ctx context.Context) (participant.Participants, error) {
	rows, err := r.db.Query(ctx, SelectParticipants)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps Participants
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ps), nil
}

func (r *Repository) FetchByID(ctx context.Context, id participant.ID) (*participant.Participant, error) {
	p, err := scanParticipant(r.db.QueryRow(ctx, SelectParticipantByID, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) FetchByEmail(ctx context.Context, email string) (*participant.Participant, error) {
	p, err := scanParticipant(r.db.QueryRow(ctx, SelectParticipantByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsParticipantByEmail, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) Create(ctx context.Context, req participant.Participant) (*participant.Participant, error) {
	p, err := scanParticipant(r.db.QueryRow(
		ctx,
		InsertParticipant,
		req.Firstname, req.Lastname, req.Email, req.PasswordHash, string(req.Status),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, participant.ErrEmailAlreadyUsed
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) UpdateProfile(ctx context.Context, id participant.ID, patch participant.ProfilePatch) (*participant.Participant, error) {
	return r.updateProfile(ctx, UpdateParticipantProfileByID, patch, uint64(id))
}

func (r *Repository) UpdateProfileByEmail(ctx context.Context, email string, patch participant.ProfilePatch) (*participant.Participant, error) {
	return r.updateProfile(ctx, UpdateParticipantProfileByEmail, patch, email)
}

func (r *Repository) updateProfile(ctx context.Context, query string, patch participant.ProfilePatch, key any) (*participant.Participant, error) {
	p, err := scanParticipant(r.db.QueryRow(
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

	return fromDBModel(p), nil
}

func (r *Repository) UpdateNotifications(ctx context.Context, id participant.ID, patch participant.NotificationPatch) (*participant.Participant, error) {
	return r.updateNotifications(ctx, UpdateParticipantNotificationsByID, patch, uint64(id))
}

func (r *Repository) UpdateNotificationsByEmail(ctx context.Context, email string, patch participant.NotificationPatch) (*participant.Participant, error) {
	return r.updateNotifications(ctx, UpdateParticipantNotificationsByEmail, patch, email)
}

func (r *Repository) updateNotifications(ctx context.Context, query string, patch participant.NotificationPatch, key any) (*participant.Participant, error) {
	p, err := scanParticipant(r.db.QueryRow(
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

	return fromDBModel(p), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id participant.ID, status participant.Status) (*participant.Participant, error) {
	p, err := scanParticipant(r.db.QueryRow(ctx, UpdateParticipantStatusByID, string(status), uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

package participant

const participantColumns = `id, firstname, lastname, email, password_hash, avatar_url, bio, city, country, status, email_notifications_enabled, sms_notifications_enabled, created_at, updated_at, last_login_at`

const (
	SelectParticipants = `
		SELECT ` + participantColumns + `
		FROM participants
	`
	SelectParticipantByID = `
		SELECT ` + participantColumns + `
		FROM participants
		WHERE id = $1
	`
	SelectParticipantByEmail = `
		SELECT ` + participantColumns + `
		FROM participants
		WHERE email = $1
	`
	ExistsParticipantByEmail = `SELECT EXISTS (SELECT 1 FROM participants WHERE email = $1)`
	InsertParticipant        = `
		INSERT INTO participants (firstname, lastname, email, password_hash, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + participantColumns + `
	`
	UpdateParticipantProfileByID = `
		UPDATE participants
		SET firstname  = COALESCE($1, firstname),
		    lastname   = COALESCE($2, lastname),
		    bio        = COALESCE($3, bio),
		    city       = COALESCE($4, city),
		    country    = COALESCE($5, country),
		    avatar_url = COALESCE($6, avatar_url),
		    updated_at = now()
		WHERE id = $7
		RETURNING ` + participantColumns + `
	`
	UpdateParticipantProfileByEmail = `
		UPDATE participants
		SET firstname  = COALESCE($1, firstname),
		    lastname   = COALESCE($2, lastname),
		    bio        = COALESCE($3, bio),
		    city       = COALESCE($4, city),
		    country    = COALESCE($5, country),
		    avatar_url = COALESCE($6, avatar_url),
		    updated_at = now()
		WHERE email = $7
		RETURNING ` + participantColumns + `
	`
	UpdateParticipantNotificationsByID = `
		UPDATE participants
		SET email_notifications_enabled = COALESCE($1, email_notifications_enabled),
		    sms_notifications_enabled   = COALESCE($2, sms_notifications_enabled),
		    updated_at = now()
		WHERE id = $3
		RETURNING ` + participantColumns + `
	`
	UpdateParticipantNotificationsByEmail = `
		UPDATE participants
		SET email_notifications_enabled = COALESCE($1, email_notifications_enabled),
		    sms_notifications_enabled   = COALESCE($2, sms_notifications_enabled),
		    updated_at = now()
		WHERE email = $3
		RETURNING ` + participantColumns + `
	`
	UpdateParticipantStatusByID = `
		UPDATE participants
		SET status = $1,
		    updated_at = now()
		WHERE id = $2
		RETURNING ` + participantColumns + `
	`
)

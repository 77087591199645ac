package user

const userColumns = `id, firstname, lastname, email, password_hash, role, avatar_url, bio, city, country, status, email_notifications_enabled, sms_notifications_enabled, created_at, updated_at, last_login_at`

const (
	SelectUsers = `
		SELECT ` + userColumns + `
		FROM users
	`
	SelectUserByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	SelectUserByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	ExistsUserByEmail = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	InsertUser        = `
		INSERT INTO users (firstname, lastname, email, password_hash, role, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns + `
	`
	// COALESCE merges the patch into the row inside a single statement,
	// so concurrent patches to disjoint fields serialize on the row lock
	// and both land.
	UpdateUserProfileByID = `
		UPDATE users
		SET firstname  = COALESCE($1, firstname),
		    lastname   = COALESCE($2, lastname),
		    bio        = COALESCE($3, bio),
		    city       = COALESCE($4, city),
		    country    = COALESCE($5, country),
		    avatar_url = COALESCE($6, avatar_url),
		    updated_at = now()
		WHERE id = $7
		RETURNING ` + userColumns + `
	`
	UpdateUserProfileByEmail = `
		UPDATE users
		SET firstname  = COALESCE($1, firstname),
		    lastname   = COALESCE($2, lastname),
		    bio        = COALESCE($3, bio),
		    city       = COALESCE($4, city),
		    country    = COALESCE($5, country),
		    avatar_url = COALESCE($6, avatar_url),
		    updated_at = now()
		WHERE email = $7
		RETURNING ` + userColumns + `
	`
	UpdateUserNotificationsByID = `
		UPDATE users
		SET email_notifications_enabled = COALESCE($1, email_notifications_enabled),
		    sms_notifications_enabled   = COALESCE($2, sms_notifications_enabled),
		    updated_at = now()
		WHERE id = $3
		RETURNING ` + userColumns + `
	`
	UpdateUserNotificationsByEmail = `
		UPDATE users
		SET email_notifications_enabled = COALESCE($1, email_notifications_enabled),
		    sms_notifications_enabled   = COALESCE($2, sms_notifications_enabled),
		    updated_at = now()
		WHERE email = $3
		RETURNING ` + userColumns + `
	`
	UpdateUserStatusByID = `
		UPDATE users
		SET status = $1,
		    updated_at = now()
		WHERE id = $2
		RETURNING ` + userColumns + `
	`
)

package user

import (
	"time"
)

// One response shape per audience, so the exposed field set stays
// statically auditable.
type (
	// User is the creation/list projection.
	User struct {
		ID        uint64 `json:"id"`
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Email     string `json:"email"`
		Role      string `json:"role"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}

	// Profile is the self projection.
	Profile struct {
		ID        uint64 `json:"id"`
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Email     string `json:"email"`
		Role      string `json:"role"`

		AvatarURL string `json:"avatar_url"`
		Bio       string `json:"bio"`
		City      string `json:"city"`
		Country   string `json:"country"`

		EmailNotificationsEnabled bool `json:"email_notifications_enabled"`
		SmsNotificationsEnabled   bool `json:"sms_notifications_enabled"`
	}

	// PublicProfile carries no email, status or notification settings.
	PublicProfile struct {
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Role      string `json:"role"`

		AvatarURL string `json:"avatar_url"`
		Bio       string `json:"bio"`
		City      string `json:"city"`
		Country   string `json:"country"`
	}

	// AdminUser is the full projection for admin reads and mutations.
	AdminUser struct {
		ID        uint64 `json:"id"`
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Email     string `json:"email"`
		Role      string `json:"role"`

		AvatarURL string `json:"avatar_url"`
		Bio       string `json:"bio"`
		City      string `json:"city"`
		Country   string `json:"country"`

		Status string `json:"status"`

		EmailNotificationsEnabled bool `json:"email_notifications_enabled"`
		SmsNotificationsEnabled   bool `json:"sms_notifications_enabled"`

		CreatedAt   time.Time  `json:"created_at"`
		UpdatedAt   time.Time  `json:"updated_at"`
		LastLoginAt *time.Time `json:"last_login_at"`
	}
)

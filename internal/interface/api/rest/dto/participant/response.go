package participant

import (
	"time"
)

type (
	Participant struct {
		ID        uint64 `json:"id"`
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Email     string `json:"email"`
	}
	Participants []Participant
	ResponseData struct {
		Data Participants `json:"data"`
	}

	Profile struct {
		ID        uint64 `json:"id"`
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Email     string `json:"email"`

		AvatarURL string `json:"avatar_url"`
		Bio       string `json:"bio"`
		City      string `json:"city"`
		Country   string `json:"country"`

		EmailNotificationsEnabled bool `json:"email_notifications_enabled"`
		SmsNotificationsEnabled   bool `json:"sms_notifications_enabled"`
	}

	PublicProfile struct {
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`

		AvatarURL string `json:"avatar_url"`
		Bio       string `json:"bio"`
		City      string `json:"city"`
		Country   string `json:"country"`
	}

	AdminParticipant struct {
		ID        uint64 `json:"id"`
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Email     string `json:"email"`

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

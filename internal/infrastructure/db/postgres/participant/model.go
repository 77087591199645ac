package participant

import (
	"time"
)

type (
	Participant struct {
		ID           uint64
		Firstname    string
		Lastname     string
		Email        string
		PasswordHash string

		AvatarURL string
		Bio       string
		City      string
		Country   string

		Status string

		EmailNotificationsEnabled bool
		SmsNotificationsEnabled   bool

		CreatedAt   time.Time
		UpdatedAt   time.Time
		LastLoginAt *time.Time
	}
	Participants []*Participant
)

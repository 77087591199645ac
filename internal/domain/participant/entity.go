package participant

import (
	"time"
)

type (
	ID uint64

	Status string

	// Participant mirrors the user aggregate without a platform role.
	Participant struct {
		ID           ID
		Firstname    string
		Lastname     string
		Email        string
		PasswordHash string

		AvatarURL string
		Bio       string
		City      string
		Country   string

		Status Status

		EmailNotificationsEnabled bool
		SmsNotificationsEnabled   bool

		CreatedAt   time.Time
		UpdatedAt   time.Time
		LastLoginAt *time.Time
	}
	Participants []*Participant

	ProfilePatch struct {
		Firstname *string
		Lastname  *string
		Bio       *string
		City      *string
		Country   *string
		AvatarURL *string
	}

	NotificationPatch struct {
		EmailNotificationsEnabled *bool
		SmsNotificationsEnabled   *bool
	}

	Signup struct {
		Firstname string
		Lastname  string
		Email     string
		Password  string
	}
)

const (
	StatusActive    Status = "ACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusDeleted   Status = "DELETED"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusActive, StatusSuspended, StatusDeleted:
		return Status(s), true
	}
	return "", false
}

package user

import (
	"time"
)

type (
	ID uint64

	Role   string
	Status string

	User struct {
		ID           ID
		Firstname    string
		Lastname     string
		Email        string
		PasswordHash string
		Role         Role

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
	Users []*User

	// ProfilePatch carries the fields of a partial profile update.
	// A nil field means "leave the column untouched".
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

	// Signup is the validated input of the provisioning flow.
	// Password is the plaintext; it is hashed before the aggregate exists.
	Signup struct {
		Firstname string
		Lastname  string
		Email     string
		Password  string
		Role      Role
	}
)

const (
	RoleAdmin     Role = "ADMIN"
	RoleOrganizer Role = "ORGANIZER"
	RoleAttendee  Role = "ATTENDEE"
)

const (
	StatusActive    Status = "ACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusDeleted   Status = "DELETED"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleOrganizer, RoleAttendee:
		return Role(s), true
	}
	return "", false
}

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusActive, StatusSuspended, StatusDeleted:
		return Status(s), true
	}
	return "", false
}

package validator

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	domain "user-service-api/internal/domain/user"
	"user-service-api/internal/interface/api/rest/dto/participant"
	"user-service-api/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	maxNameLen      = 50
	maxBioLen       = 255
	maxCityLen      = 100
	maxCountryLen   = 100
	maxAvatarURLLen = 255
)

func ValidateID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

func ValidateEmailQuery(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("invalid email format")
	}
	return nil
}

func ValidateUserSignup(r user.SignupRequest) map[string]string {
	errs := validateSignupFields(r.Firstname, r.Lastname, r.Email, r.Password)

	// role is optional; when present it must parse
	if r.Role != "" {
		if _, ok := domain.ParseRole(r.Role); !ok {
			errs["role"] = "role must be one of ADMIN, ORGANIZER, ATTENDEE"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateParticipantSignup(r participant.SignupRequest) map[string]string {
	errs := validateSignupFields(r.Firstname, r.Lastname, r.Email, r.Password)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateSignupFields(firstname, lastname, email, pass string) map[string]string {
	errs := make(map[string]string)

	// Normalize
	firstname = strings.TrimSpace(firstname)
	lastname = strings.TrimSpace(lastname)
	email = strings.TrimSpace(email)

	// firstname (required + length)
	if firstname == "" {
		errs["firstname"] = "firstname is required"
	} else if utf8.RuneCountInString(firstname) > maxNameLen {
		errs["firstname"] = "firstname length must be at most 50 characters"
	}

	// lastname (required + length)
	if lastname == "" {
		errs["lastname"] = "lastname is required"
	} else if utf8.RuneCountInString(lastname) > maxNameLen {
		errs["lastname"] = "lastname length must be at most 50 characters"
	}

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// password (required + length)
	if pass == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(pass); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	return errs
}

func ValidateUserProfileUpdate(r user.UpdateProfileRequest) map[string]string {
	return validateProfileFields(r.Firstname, r.Lastname, r.Bio, r.City, r.Country, r.AvatarURL)
}

func ValidateParticipantProfileUpdate(r participant.UpdateProfileRequest) map[string]string {
	return validateProfileFields(r.Firstname, r.Lastname, r.Bio, r.City, r.Country, r.AvatarURL)
}

// Every profile field is optional; only the ones present are checked.
// A present-but-blank name would null out a required column, so it is
// rejected here.
func validateProfileFields(firstname, lastname, bio, city, country, avatarURL *string) map[string]string {
	errs := make(map[string]string)

	if firstname != nil {
		if strings.TrimSpace(*firstname) == "" {
			errs["firstname"] = "firstname must not be blank"
		} else if utf8.RuneCountInString(*firstname) > maxNameLen {
			errs["firstname"] = "firstname length must be at most 50 characters"
		}
	}
	if lastname != nil {
		if strings.TrimSpace(*lastname) == "" {
			errs["lastname"] = "lastname must not be blank"
		} else if utf8.RuneCountInString(*lastname) > maxNameLen {
			errs["lastname"] = "lastname length must be at most 50 characters"
		}
	}
	if bio != nil && utf8.RuneCountInString(*bio) > maxBioLen {
		errs["bio"] = "bio length must be at most 255 characters"
	}
	if city != nil && utf8.RuneCountInString(*city) > maxCityLen {
		errs["city"] = "city length must be at most 100 characters"
	}
	if country != nil && utf8.RuneCountInString(*country) > maxCountryLen {
		errs["country"] = "country length must be at most 100 characters"
	}
	if avatarURL != nil && utf8.RuneCountInString(*avatarURL) > maxAvatarURLLen {
		errs["avatar_url"] = "avatar_url length must be at most 255 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

package user

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"user-service-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:        uint64(uDomain.ID),
		Firstname: uDomain.Firstname,
		Lastname:  uDomain.Lastname,
		Email:     uDomain.Email,
		Role:      string(uDomain.Role),
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToProfileResponse(uDomain user.User) Profile {
	return Profile{
		ID:        uint64(uDomain.ID),
		Firstname: uDomain.Firstname,
		Lastname:  uDomain.Lastname,
		Email:     uDomain.Email,
		Role:      string(uDomain.Role),

		AvatarURL: uDomain.AvatarURL,
		Bio:       uDomain.Bio,
		City:      uDomain.City,
		Country:   uDomain.Country,

		EmailNotificationsEnabled: uDomain.EmailNotificationsEnabled,
		SmsNotificationsEnabled:   uDomain.SmsNotificationsEnabled,
	}
}

func ToPublicProfileResponse(uDomain user.User) PublicProfile {
	return PublicProfile{
		Firstname: uDomain.Firstname,
		Lastname:  uDomain.Lastname,
		Role:      string(uDomain.Role),

		AvatarURL: uDomain.AvatarURL,
		Bio:       uDomain.Bio,
		City:      uDomain.City,
		Country:   uDomain.Country,
	}
}

func ToAdminResponse(uDomain user.User) AdminUser {
	return AdminUser{
		ID:        uint64(uDomain.ID),
		Firstname: uDomain.Firstname,
		Lastname:  uDomain.Lastname,
		Email:     uDomain.Email,
		Role:      string(uDomain.Role),

		AvatarURL: uDomain.AvatarURL,
		Bio:       uDomain.Bio,
		City:      uDomain.City,
		Country:   uDomain.Country,

		Status: string(uDomain.Status),

		EmailNotificationsEnabled: uDomain.EmailNotificationsEnabled,
		SmsNotificationsEnabled:   uDomain.SmsNotificationsEnabled,

		CreatedAt:   uDomain.CreatedAt,
		UpdatedAt:   uDomain.UpdatedAt,
		LastLoginAt: uDomain.LastLoginAt,
	}
}

// ToDomainSignup assumes a validated request. An absent role defaults
// to ATTENDEE.
func ToDomainSignup(r SignupRequest) user.Signup {
	role := user.RoleAttendee
	if r.Role != "" {
		if parsed, ok := user.ParseRole(r.Role); ok {
			role = parsed
		}
	}

	return user.Signup{
		Firstname: normName(r.Firstname),
		Lastname:  normName(r.Lastname),
		Email:     strings.TrimSpace(r.Email),
		Password:  r.Password,
		Role:      role,
	}
}

func ToProfilePatch(r UpdateProfileRequest) user.ProfilePatch {
	return user.ProfilePatch{
		Firstname: normNamePtr(r.Firstname),
		Lastname:  normNamePtr(r.Lastname),
		Bio:       r.Bio,
		City:      r.City,
		Country:   r.Country,
		AvatarURL: r.AvatarURL,
	}
}

func ToNotificationPatch(r UpdateNotificationsRequest) user.NotificationPatch {
	return user.NotificationPatch{
		EmailNotificationsEnabled: r.EmailNotificationsEnabled,
		SmsNotificationsEnabled:   r.SmsNotificationsEnabled,
	}
}

// Human names arrive in whatever normalization form the client used;
// store NFC so equal names compare equal.
func normName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func normNamePtr(s *string) *string {
	if s == nil {
		return nil
	}
	n := normName(*s)
	return &n
}

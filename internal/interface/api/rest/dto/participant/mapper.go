package participant

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"user-service-api/internal/domain/participant"
)

func ToResponseParticipant(pDomain participant.Participant) Participant {
	var p = Participant{
		ID:        uint64(pDomain.ID),
		Firstname: pDomain.Firstname,
		Lastname:  pDomain.Lastname,
		Email:     pDomain.Email,
	}

	return p
}

func ToResponseParticipants(psDomain participant.Participants) Participants {
	ps := make(Participants, len(psDomain))
	for idx, p := range psDomain {
		ps[idx] = ToResponseParticipant(*p)
	}

	return ps
}

func ToProfileResponse(pDomain participant.Participant) Profile {
	return Profile{
		ID:        uint64(pDomain.ID),
		Firstname: pDomain.Firstname,
		Lastname:  pDomain.Lastname,
		Email:     pDomain.Email,

		AvatarURL: pDomain.AvatarURL,
		Bio:       pDomain.Bio,
		City:      pDomain.City,
		Country:   pDomain.Country,

		EmailNotificationsEnabled: pDomain.EmailNotificationsEnabled,
		SmsNotificationsEnabled:   pDomain.SmsNotificationsEnabled,
	}
}

func ToPublicProfileResponse(pDomain participant.Participant) PublicProfile {
	return PublicProfile{
		Firstname: pDomain.Firstname,
		Lastname:  pDomain.Lastname,

		AvatarURL: pDomain.AvatarURL,
		Bio:       pDomain.Bio,
		City:      pDomain.City,
		Country:   pDomain.Country,
	}
}

func ToAdminResponse(pDomain participant.Participant) AdminParticipant {
	return AdminParticipant{
		ID:        uint64(pDomain.ID),
		Firstname: pDomain.Firstname,
		Lastname:  pDomain.Lastname,
		Email:     pDomain.Email,

		AvatarURL: pDomain.AvatarURL,
		Bio:       pDomain.Bio,
		City:      pDomain.City,
		Country:   pDomain.Country,

		Status: string(pDomain.Status),

		EmailNotificationsEnabled: pDomain.EmailNotificationsEnabled,
		SmsNotificationsEnabled:   pDomain.SmsNotificationsEnabled,

		CreatedAt:   pDomain.CreatedAt,
		UpdatedAt:   pDomain.UpdatedAt,
		LastLoginAt: pDomain.LastLoginAt,
	}
}

func ToDomainSignup(r SignupRequest) participant.Signup {
	return participant.Signup{
		Firstname: normName(r.Firstname),
		Lastname:  normName(r.Lastname),
		Email:     strings.TrimSpace(r.Email),
		Password:  r.Password,
	}
}

func ToProfilePatch(r UpdateProfileRequest) participant.ProfilePatch {
	return participant.ProfilePatch{
		Firstname: normNamePtr(r.Firstname),
		Lastname:  normNamePtr(r.Lastname),
		Bio:       r.Bio,
		City:      r.City,
		Country:   r.Country,
		AvatarURL: r.AvatarURL,
	}
}

func ToNotificationPatch(r UpdateNotificationsRequest) participant.NotificationPatch {
	return participant.NotificationPatch{
		EmailNotificationsEnabled: r.EmailNotificationsEnabled,
		SmsNotificationsEnabled:   r.SmsNotificationsEnabled,
	}
}

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

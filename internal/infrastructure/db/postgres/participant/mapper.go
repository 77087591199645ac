package participant

import (
	domain "user-service-api/internal/domain/participant"
)

func fromDBModel(model *Participant) *domain.Participant {
	var p = &domain.Participant{
		ID:           domain.ID(model.ID),
		Firstname:    model.Firstname,
		Lastname:     model.Lastname,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,

		AvatarURL: model.AvatarURL,
		Bio:       model.Bio,
		City:      model.City,
		Country:   model.Country,

		Status: domain.Status(model.Status),

		EmailNotificationsEnabled: model.EmailNotificationsEnabled,
		SmsNotificationsEnabled:   model.SmsNotificationsEnabled,

		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		LastLoginAt: model.LastLoginAt,
	}

	return p
}

func fromDBModels(models *Participants) domain.Participants {
	ps := make(domain.Participants, len(*models))
	for idx, p := range *models {
		ps[idx] = fromDBModel(p)
	}

	return ps
}

package user

import (
	domain "user-service-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:           domain.ID(model.ID),
		Firstname:    model.Firstname,
		Lastname:     model.Lastname,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         domain.Role(model.Role),

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

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}

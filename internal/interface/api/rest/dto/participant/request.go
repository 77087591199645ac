package participant

type (
	SignupRequest struct {
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}

	UpdateProfileRequest struct {
		Firstname *string `json:"firstname"`
		Lastname  *string `json:"lastname"`
		Bio       *string `json:"bio"`
		City      *string `json:"city"`
		Country   *string `json:"country"`
		AvatarURL *string `json:"avatar_url"`
	}

	UpdateNotificationsRequest struct {
		EmailNotificationsEnabled *bool `json:"email_notifications_enabled"`
		SmsNotificationsEnabled   *bool `json:"sms_notifications_enabled"`
	}

	ChangeStatusRequest struct {
		Status string `json:"status"`
	}
)

package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-service-api/internal/interface/api/rest/dto/user"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    uint64
		wantErr bool
	}{
		{"valid", "42", 42, false},
		{"zero rejected", "0", 0, true},
		{"negative rejected", "-1", 0, true},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateID(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateUserSignup(t *testing.T) {
	valid := user.SignupRequest{
		Firstname: "John",
		Lastname:  "Doe",
		Email:     "john.doe@example.com",
		Password:  "s3cret-passw0rd",
	}

	tests := []struct {
		name       string
		mutate     func(r *user.SignupRequest)
		wantFields []string
	}{
		{
			name:   "valid request passes",
			mutate: func(r *user.SignupRequest) {},
		},
		{
			name:   "valid with explicit role",
			mutate: func(r *user.SignupRequest) { r.Role = "ORGANIZER" },
		},
		{
			name:       "blank names",
			mutate:     func(r *user.SignupRequest) { r.Firstname = "  "; r.Lastname = "" },
			wantFields: []string{"firstname", "lastname"},
		},
		{
			name:       "bad email",
			mutate:     func(r *user.SignupRequest) { r.Email = "not-an-email" },
			wantFields: []string{"email"},
		},
		{
			name:       "password too short",
			mutate:     func(r *user.SignupRequest) { r.Password = "short" },
			wantFields: []string{"password"},
		},
		{
			name:       "password too long",
			mutate:     func(r *user.SignupRequest) { r.Password = strings.Repeat("x", 73) },
			wantFields: []string{"password"},
		},
		{
			name:       "unknown role",
			mutate:     func(r *user.SignupRequest) { r.Role = "SUPERUSER" },
			wantFields: []string{"role"},
		},
		{
			name:       "firstname too long",
			mutate:     func(r *user.SignupRequest) { r.Firstname = strings.Repeat("a", 51) },
			wantFields: []string{"firstname"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			errs := ValidateUserSignup(req)
			if len(tt.wantFields) == 0 {
				assert.Nil(t, errs)
				return
			}
			require.NotNil(t, errs)
			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestValidateUserProfileUpdate(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name       string
		req        user.UpdateProfileRequest
		wantFields []string
	}{
		{
			name: "empty patch is valid",
			req:  user.UpdateProfileRequest{},
		},
		{
			name: "partial patch is valid",
			req:  user.UpdateProfileRequest{Bio: str("hello"), City: str("Paris")},
		},
		{
			name:       "blank firstname rejected",
			req:        user.UpdateProfileRequest{Firstname: str("   ")},
			wantFields: []string{"firstname"},
		},
		{
			name:       "bio too long",
			req:        user.UpdateProfileRequest{Bio: str(strings.Repeat("b", 256))},
			wantFields: []string{"bio"},
		},
		{
			name: "several bad fields reported together",
			req: user.UpdateProfileRequest{
				Lastname:  str(""),
				Country:   str(strings.Repeat("c", 101)),
				AvatarURL: str(strings.Repeat("u", 256)),
			},
			wantFields: []string{"lastname", "country", "avatar_url"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateUserProfileUpdate(tt.req)
			if len(tt.wantFields) == 0 {
				assert.Nil(t, errs)
				return
			}
			require.NotNil(t, errs)
			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

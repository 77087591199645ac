package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealmRolesExtractor_Table(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]any
		want   Authorities
	}{
		{
			name: "realm roles mapped with prefix, order preserved",
			claims: map[string]any{
				"realm_access": map[string]any{
					"roles": []any{"ADMIN", "ATTENDEE"},
				},
			},
			want: Authorities{"ROLE_ADMIN", "ROLE_ATTENDEE"},
		},
		{
			name: "duplicates preserved",
			claims: map[string]any{
				"realm_access": map[string]any{
					"roles": []any{"ATTENDEE", "ATTENDEE"},
				},
			},
			want: Authorities{"ROLE_ATTENDEE", "ROLE_ATTENDEE"},
		},
		{
			name:   "missing realm_access claim",
			claims: map[string]any{"email": "a@b.c"},
			want:   nil,
		},
		{
			name: "realm_access without roles entry",
			claims: map[string]any{
				"realm_access": map[string]any{"other": "x"},
			},
			want: nil,
		},
		{
			name: "roles entry of wrong type",
			claims: map[string]any{
				"realm_access": map[string]any{"roles": "ADMIN"},
			},
			want: nil,
		},
		{
			name: "non-string role names skipped",
			claims: map[string]any{
				"realm_access": map[string]any{
					"roles": []any{42, "ORGANIZER"},
				},
			},
			want: Authorities{"ROLE_ORGANIZER"},
		},
		{
			name:   "nil claims",
			claims: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := RealmRolesExtractor{}.Authorities(tt.claims)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientRolesExtractor_Table(t *testing.T) {
	tests := []struct {
		name     string
		clientID string
		claims   map[string]any
		want     Authorities
	}{
		{
			name:     "client roles mapped",
			clientID: "event-app",
			claims: map[string]any{
				"resource_access": map[string]any{
					"event-app": map[string]any{
						"roles": []any{"ORGANIZER"},
					},
				},
			},
			want: Authorities{"ROLE_ORGANIZER"},
		},
		{
			name:     "other client ignored",
			clientID: "event-app",
			claims: map[string]any{
				"resource_access": map[string]any{
					"another-app": map[string]any{
						"roles": []any{"ADMIN"},
					},
				},
			},
			want: nil,
		},
		{
			name:     "missing resource_access",
			clientID: "event-app",
			claims:   map[string]any{},
			want:     nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := ClientRolesExtractor{ClientID: tt.clientID}.Authorities(tt.claims)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthorities_Has(t *testing.T) {
	a := Authorities{"ROLE_ATTENDEE", "ROLE_ADMIN"}

	assert.True(t, a.Has("ROLE_ADMIN"))
	assert.True(t, a.IsAdmin())
	assert.False(t, a.Has("ROLE_ORGANIZER"))
	assert.False(t, Authorities(nil).IsAdmin())
}

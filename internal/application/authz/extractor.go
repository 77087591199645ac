package authz

const (
	realmAccessClaim    = "realm_access"
	resourceAccessClaim = "resource_access"
	rolesKey            = "roles"
	authorityPrefix     = "ROLE_"
)

// Extractor derives authorities from a verified token's claim map.
// Implementations are pure: absent or malformed claims degrade to an
// empty set, never to an error.
type Extractor interface {
	Authorities(claims map[string]any) Authorities
}

// RealmRolesExtractor reads the realm-scoped roles claim
// (realm_access.roles). This is the default source.
type RealmRolesExtractor struct{}

func (RealmRolesExtractor) Authorities(claims map[string]any) Authorities {
	access, ok := claims[realmAccessClaim].(map[string]any)
	if !ok {
		return nil
	}
	return rolesToAuthorities(access[rolesKey])
}

// ClientRolesExtractor reads client-scoped roles
// (resource_access.<clientID>.roles) instead of the realm claim.
type ClientRolesExtractor struct {
	ClientID string
}

func (e ClientRolesExtractor) Authorities(claims map[string]any) Authorities {
	access, ok := claims[resourceAccessClaim].(map[string]any)
	if !ok {
		return nil
	}
	client, ok := access[e.ClientID].(map[string]any)
	if !ok {
		return nil
	}
	return rolesToAuthorities(client[rolesKey])
}

func rolesToAuthorities(v any) Authorities {
	names, ok := v.([]any)
	if !ok {
		return nil
	}

	var authorities Authorities
	for _, n := range names {
		name, ok := n.(string)
		if !ok {
			continue
		}
		authorities = append(authorities, authorityPrefix+name)
	}

	return authorities
}

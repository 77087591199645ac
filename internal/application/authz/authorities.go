package authz

// AuthorityAdmin gates the admin-only operations.
const AuthorityAdmin = "ROLE_ADMIN"

// Authorities is the set of permission labels derived from a verified token.
// Extraction preserves order and duplicates; checks treat it as a set.
type Authorities []string

func (a Authorities) Has(authority string) bool {
	for _, v := range a {
		if v == authority {
			return true
		}
	}
	return false
}

func (a Authorities) IsAdmin() bool { return a.Has(AuthorityAdmin) }

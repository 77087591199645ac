package ports

// TokenVerifier is the trust boundary to the external token issuer.
// Verify returns the decoded claim map of a signature-checked, unexpired
// token; everything downstream trusts the map completely.
type TokenVerifier interface {
	Verify(token string) (map[string]any, error)
}

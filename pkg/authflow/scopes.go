package authflow

// mandatoryScopes are always requested, ahead of anything configured.
// openid is included explicitly because the oauth2 client does not add
// it implicitly.
var mandatoryScopes = []string{"email", "profile", "openid"}

// mergeScopes unions the mandatory, configured, and per-attempt scopes.
// Duplicates are removed keeping the first occurrence, so the result is
// stable: mandatory scopes first, then configured scopes in configured
// order, then extra scopes.
func mergeScopes(configured, extra []string) []string {
	seen := make(map[string]bool, len(mandatoryScopes)+len(configured)+len(extra))
	merged := make([]string, 0, len(mandatoryScopes)+len(configured)+len(extra))

	for _, group := range [][]string{mandatoryScopes, configured, extra} {
		for _, scope := range group {
			if scope == "" || seen[scope] {
				continue
			}
			seen[scope] = true
			merged = append(merged, scope)
		}
	}
	return merged
}

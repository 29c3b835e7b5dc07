package impl

import "strings"

// normalizeEmail folds an address to the form stored and used as the token subject.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

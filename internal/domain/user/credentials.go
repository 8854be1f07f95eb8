package user

import "strings"

// DerivePassword returns the initial password handed to accounts created by an
// administrator: the email local part, or the username when the email has no '@'.
func DerivePassword(email, username string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return username
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

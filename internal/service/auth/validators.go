package auth

import "strings"

func isEmptyString(s string) bool {
	return strings.TrimSpace(s) == ""
}

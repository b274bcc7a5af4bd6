package order

import "strings"

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidStatus(status string) bool {
	switch status {
	case "pending", "processing", "delivered", "cancelled":
		return true
	default:
		return false
	}
}

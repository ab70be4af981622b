package logger

import "strings"

// RedactEmail masks an email address for safe logging.
// "blake.bess@example.edu" → "bl***@example.edu"
// Short local parts (≤2 chars) are fully masked: "ab@example.edu" → "***@example.edu"
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}
	name := parts[0]
	if len(name) > 2 {
		return name[:2] + "***@" + parts[1]
	}
	return "***@" + parts[1]
}

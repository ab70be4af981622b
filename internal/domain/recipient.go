package domain

import (
	"strings"
	"time"
)

// Recipient is a subscriber on the announcement mailing list.
//
// Email is stored normalized (trimmed, lower-cased) and is the uniqueness
// key for the list.
type Recipient struct {
	ID      string    `json:"id"`
	Email   string    `json:"email"`
	AddedAt time.Time `json:"addedAt"`
}

// NormalizeEmail returns the canonical form of an address used as the
// mailing-list uniqueness key: surrounding whitespace stripped, lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether a normalized address is acceptable for the
// list. Presence of "@" with a non-empty local part and domain is the only
// check; anything stricter belongs to the mail provider.
func ValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

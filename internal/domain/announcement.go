package domain

import "time"

// Announcement is a club-wide post shown on the Announcements tab and
// broadcast by email to the recipient list when published.
//
// Title and Content are non-empty for any stored record. Announcements are
// never edited in place; they are created once and deleted by id.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

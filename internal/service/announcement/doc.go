// Package announcement implements the announcement feed.
//
// The service layer owns validation and ordering; persistence goes
// through the Repository interface so handlers and tests never touch
// the document store directly.
package announcement

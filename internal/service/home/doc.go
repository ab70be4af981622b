// Package home manages the Home tab content: the welcome message, the
// next-meeting callout, and the mission statement.
package home

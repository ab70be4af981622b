// Package publish coordinates the announce-and-notify workflow: a new
// announcement is persisted first, then the subscriber broadcast runs
// in the background so email trouble never fails the post.
package publish

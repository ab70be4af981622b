// Package resource implements the shared resource library: uploaded
// files (bylaws, guides, slide decks) stored in the object store with
// their metadata in the document store.
package resource

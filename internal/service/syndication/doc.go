// Package syndication backs the Syndication study tab: an overview
// blurb, uploaded study documents, curated watch-through and
// read-through links, and a live headline pull from an external
// real-estate news feed.
package syndication

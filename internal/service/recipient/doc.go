// Package recipient manages the announcement email subscriber list.
package recipient

// Package store provides the persistence layer: a DynamoDB-backed
// document store keyed by collection, and an S3-backed object store for
// uploaded files. In-memory implementations back local development and
// tests.
package store

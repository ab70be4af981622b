// Package mailer sends announcement broadcast emails through AWS SES.
// The message body is rendered from a Liquid template and carries the
// club logo as an inline attachment, which requires building the raw
// MIME message ourselves.
package mailer

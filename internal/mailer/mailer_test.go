package mailer

import (
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRendererRender(t *testing.T) {
	r, err := NewTemplateRenderer("Real Estate Club")
	require.NoError(t, err)

	html, err := r.Render("Spring Kickoff", "First meeting of the semester.\nPizza provided.", time.Date(2026, 1, 12, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Contains(t, html, "Spring Kickoff")
	assert.Contains(t, html, "First meeting of the semester.<br />")
	assert.Contains(t, html, "January 12, 2026")
	assert.Contains(t, html, `src="cid:logo"`)
	assert.Contains(t, html, "Real Estate Club")
}

func TestBuildRawMessage(t *testing.T) {
	logo := []byte{0x89, 0x50, 0x4E, 0x47}
	raw, err := buildRawMessage(
		"Real Estate Club", "club@example.edu",
		[]string{"a@example.edu", "b@example.edu"},
		"Spring Kickoff",
		"<html><body>hello</body></html>",
		logo,
	)
	require.NoError(t, err)

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)

	assert.Equal(t, "Spring Kickoff", msg.Header.Get("Subject"))
	assert.Contains(t, msg.Header.Get("Bcc"), "a@example.edu")
	assert.Contains(t, msg.Header.Get("From"), "club@example.edu")

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/related", mediaType)

	mr := multipart.NewReader(msg.Body, params["boundary"])

	htmlPart, err := mr.NextPart()
	require.NoError(t, err)
	assert.Contains(t, htmlPart.Header.Get("Content-Type"), "text/html")
	body, err := io.ReadAll(htmlPart)
	require.NoError(t, err)
	assert.Contains(t, string(body), "hello")

	logoPart, err := mr.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "<logo>", logoPart.Header.Get("Content-ID"))
	assert.Equal(t, "image/png", logoPart.Header.Get("Content-Type"))

	_, err = mr.NextPart()
	assert.Equal(t, io.EOF, err)
}

func TestBuildRawMessageWithoutLogo(t *testing.T) {
	raw, err := buildRawMessage(
		"Real Estate Club", "club@example.edu",
		[]string{"a@example.edu"},
		"No Logo",
		"<html></html>",
		nil,
	)
	require.NoError(t, err)

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	mr := multipart.NewReader(msg.Body, params["boundary"])

	_, err = mr.NextPart()
	require.NoError(t, err)
	_, err = mr.NextPart()
	assert.Equal(t, io.EOF, err)
}

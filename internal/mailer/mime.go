package mailer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"
	"time"
)

// buildRawMessage assembles the raw MIME message SES needs for an email
// with an inline image. Layout is multipart/related: the HTML body first,
// then the logo referenced from the body as cid:logo. Recipients go in
// Bcc so subscribers never see each other's addresses.
func buildRawMessage(fromName, fromAddr string, bcc []string, subject, htmlBody string, logo []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	headers := fmt.Sprintf("From: %s\r\n", mime.QEncoding.Encode("utf-8", fromName)+" <"+fromAddr+">")
	headers += fmt.Sprintf("Bcc: %s\r\n", strings.Join(bcc, ", "))
	headers += fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	headers += fmt.Sprintf("Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	headers += "MIME-Version: 1.0\r\n"
	headers += fmt.Sprintf("Content-Type: multipart/related; boundary=%q\r\n", w.Boundary())
	headers += "\r\n"

	msg := bytes.NewBufferString(headers)

	htmlHeader := textproto.MIMEHeader{}
	htmlHeader.Set("Content-Type", "text/html; charset=UTF-8")
	htmlHeader.Set("Content-Transfer-Encoding", "quoted-printable")
	part, err := w.CreatePart(htmlHeader)
	if err != nil {
		return nil, fmt.Errorf("creating html part: %w", err)
	}
	qp := quotedprintable.NewWriter(part)
	if _, err := qp.Write([]byte(htmlBody)); err != nil {
		return nil, fmt.Errorf("writing html part: %w", err)
	}
	if err := qp.Close(); err != nil {
		return nil, fmt.Errorf("closing html part: %w", err)
	}

	if len(logo) > 0 {
		logoHeader := textproto.MIMEHeader{}
		logoHeader.Set("Content-Type", "image/png")
		logoHeader.Set("Content-Transfer-Encoding", "base64")
		logoHeader.Set("Content-ID", "<logo>")
		logoHeader.Set("Content-Disposition", `inline; filename="logo.png"`)
		part, err := w.CreatePart(logoHeader)
		if err != nil {
			return nil, fmt.Errorf("creating logo part: %w", err)
		}
		if _, err := part.Write(wrapBase64(logo)); err != nil {
			return nil, fmt.Errorf("writing logo part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	msg.Write(buf.Bytes())
	return msg.Bytes(), nil
}

// wrapBase64 encodes data and folds it at the RFC 2045 76-column limit.
func wrapBase64(data []byte) []byte {
	encoded := base64.StdEncoding.EncodeToString(data)
	var b bytes.Buffer
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	b.WriteString("\r\n")
	return b.Bytes()
}

package mailer

import (
	"fmt"
	"time"

	"github.com/osteele/liquid"
)

// announcementTemplate is the Liquid source of the broadcast email body.
// The cid:logo image is attached inline by the MIME builder.
const announcementTemplate = `<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,Helvetica,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
    <tr><td align="center" style="padding:24px 0;">
      <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;">
        <tr>
          <td align="center" style="background-color:#0032a0;padding:24px;">
            <img src="cid:logo" alt="{{ club_name }}" width="120" style="display:block;">
          </td>
        </tr>
        <tr>
          <td style="padding:32px;">
            <h1 style="margin:0 0 8px;color:#0032a0;font-size:22px;">{{ title }}</h1>
            <p style="margin:0 0 24px;color:#888888;font-size:13px;">{{ posted_at | date: "%B %d, %Y" }}</p>
            <div style="color:#333333;font-size:15px;line-height:1.6;">{{ content | newline_to_br }}</div>
          </td>
        </tr>
        <tr>
          <td style="padding:16px 32px;background-color:#f4f4f4;color:#888888;font-size:12px;">
            You are receiving this because you subscribed to {{ club_name }} announcements.
          </td>
        </tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`

// TemplateRenderer renders announcement emails from the Liquid template.
type TemplateRenderer struct {
	engine   *liquid.Engine
	tpl      *liquid.Template
	clubName string
}

// NewTemplateRenderer parses the announcement template once up front
func NewTemplateRenderer(clubName string) (*TemplateRenderer, error) {
	engine := liquid.NewEngine()
	tpl, err := engine.ParseString(announcementTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing announcement template: %w", err)
	}
	return &TemplateRenderer{
		engine:   engine,
		tpl:      tpl,
		clubName: clubName,
	}, nil
}

// Render produces the HTML body for one announcement.
func (r *TemplateRenderer) Render(title, content string, postedAt time.Time) (string, error) {
	out, err := r.tpl.RenderString(map[string]interface{}{
		"club_name": r.clubName,
		"title":     title,
		"content":   content,
		"posted_at": postedAt,
	})
	if err != nil {
		return "", fmt.Errorf("rendering announcement template: %w", err)
	}
	return out, nil
}

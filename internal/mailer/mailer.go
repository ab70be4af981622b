package mailer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	appconfig "github.com/gvsu-realestate/clubsite/internal/config"
	"github.com/gvsu-realestate/clubsite/internal/domain"
	"github.com/gvsu-realestate/clubsite/internal/pkg/logger"
)

// Mailer broadcasts a new announcement to the subscriber list.
type Mailer interface {
	SendAnnouncement(ctx context.Context, ann domain.Announcement, recipients []string) error
}

// SESMailer sends broadcast email through AWS SES v2. When credentials
// are missing or sending is disabled in config, the client stays nil and
// SendAnnouncement is a logged no-op, so a misconfigured mail setup
// never blocks publishing.
type SESMailer struct {
	client   *sesv2.Client
	fromAddr string
	fromName string
	renderer *TemplateRenderer
	logo     []byte
	timeout  time.Duration
}

// NewSESMailer creates the SES mailer. Initializes the SDK client only
// when sending is enabled and credentials are present.
func NewSESMailer(ctx context.Context, cfg appconfig.SESConfig) (*SESMailer, error) {
	renderer, err := NewTemplateRenderer(cfg.FromName)
	if err != nil {
		return nil, err
	}

	m := &SESMailer{
		fromAddr: cfg.FromAddress,
		fromName: cfg.FromName,
		renderer: renderer,
		timeout:  time.Duration(cfg.TimeoutSeconds) * time.Second,
	}

	if cfg.LogoPath != "" {
		logo, err := os.ReadFile(cfg.LogoPath)
		if err != nil {
			logger.Warn("logo not readable, sending without inline image", "path", cfg.LogoPath, "error", err.Error())
		} else {
			m.logo = logo
		}
	}

	if !cfg.Enabled || cfg.AccessKey == "" || cfg.SecretKey == "" {
		logger.Warn("SES sending disabled, announcements will not be emailed")
		return m, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	m.client = sesv2.NewFromConfig(awsCfg)

	return m, nil
}

// SendAnnouncement emails one announcement to every subscriber, Bcc'd
// on a single message so addresses stay private.
func (m *SESMailer) SendAnnouncement(ctx context.Context, ann domain.Announcement, recipients []string) error {
	if len(recipients) == 0 {
		return nil
	}
	if m.client == nil {
		logger.Info("SES disabled, skipping announcement broadcast", "title", ann.Title, "count", len(recipients))
		return nil
	}

	html, err := m.renderer.Render(ann.Title, ann.Content, ann.Timestamp)
	if err != nil {
		return err
	}

	raw, err := buildRawMessage(m.fromName, m.fromAddr, recipients, ann.Title, html, m.logo)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	result, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", m.fromName, m.fromAddr)),
		Destination:      &types.Destination{BccAddresses: recipients},
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	})
	if err != nil {
		return fmt.Errorf("sending announcement via SES: %w", err)
	}

	messageID := ""
	if result.MessageId != nil {
		messageID = *result.MessageId
	}
	logger.Info("announcement broadcast sent", "title", ann.Title, "count", len(recipients), "message_id", messageID)

	return nil
}

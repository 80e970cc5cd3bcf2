package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"ridgeline_roofing/internal/domain/entities"
	"ridgeline_roofing/internal/usecase/interfaces"

	"github.com/wneessen/go-mail"
)

var ErrMissingSMTPHost = errors.New("missing SMTP_HOST")
var ErrSMTPGatewayNotConfigured = errors.New("smtp gateway not configured")

// SMTPGateway delivers transactional email over SMTP.
//
// Mock mode (EMAIL_MOCK=1) skips the network entirely and logs the message,
// which keeps local development and CI free of an SMTP dependency.
type SMTPGateway struct {
	client   *mail.Client
	from     string
	mockMode bool
}

var _ interfaces.IEmailGateway = (*SMTPGateway)(nil)

// NewSMTPGatewayFromEnv builds the gateway from environment variables:
// SMTP_HOST, SMTP_PORT (default 587), SMTP_USERNAME, SMTP_PASSWORD,
// EMAIL_FROM.
func NewSMTPGatewayFromEnv() (*SMTPGateway, error) {
	if isEmailMockEnabled() {
		log.Printf("[email][gateway] mock mode enabled")
		return &SMTPGateway{mockMode: true}, nil
	}

	host := strings.TrimSpace(os.Getenv("SMTP_HOST"))
	if host == "" {
		log.Printf("[email][gateway] missing SMTP_HOST")
		return nil, ErrMissingSMTPHost
	}

	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if user := os.Getenv("SMTP_USERNAME"); user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(user),
			mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		)
	}

	client, err := mail.NewClient(host, opts...)
	if err != nil {
		log.Printf("[email][gateway] failed creating smtp client err=%v", err)
		return nil, err
	}
	log.Printf("[email][gateway] SMTP client initialized host=%s port=%d", host, port)

	return &SMTPGateway{
		client: client,
		from:   getenvDefault("EMAIL_FROM", "no-reply@ridgelineroofing.com"),
	}, nil
}

func (g *SMTPGateway) Send(ctx context.Context, msg entities.EmailMessage) (string, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[email][gateway] mock send to=%s subject=%q attachments=%d message_id=%s",
			msg.To, msg.Subject, len(msg.Attachments), id)
		return id, nil
	}
	if g == nil || g.client == nil {
		log.Printf("[email][gateway] gateway not configured")
		return "", ErrSMTPGatewayNotConfigured
	}

	m := mail.NewMsg()
	if err := m.From(g.from); err != nil {
		return "", fmt.Errorf("invalid sender %q: %w", g.from, err)
	}
	if err := m.To(msg.To); err != nil {
		return "", fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return "", fmt.Errorf("invalid reply-to %q: %w", msg.ReplyTo, err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	m.SetMessageID()

	for _, a := range msg.Attachments {
		m.AttachReader(a.Filename, bytes.NewReader(a.Data),
			mail.WithFileContentType(mail.ContentType(a.ContentType)))
	}

	log.Printf("[email][gateway] send start to=%s subject=%q attachments=%d", msg.To, msg.Subject, len(msg.Attachments))
	if err := g.client.DialAndSendWithContext(ctx, m); err != nil {
		log.Printf("[email][gateway] send failed to=%s err=%v", msg.To, err)
		return "", err
	}

	id := m.GetMessageID()
	log.Printf("[email][gateway] send success to=%s message_id=%s", msg.To, id)
	return id, nil
}

func isEmailMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("EMAIL_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/tagcash-inc/tagcash/internal/application/notification"
	sharedConfig "github.com/tagcash-inc/tagcash/internal/shared/config"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
	"github.com/tagcash-inc/tagcash/internal/shared/services/markdown"
)

// SMTPSender delivers bill lifecycle notifications over SMTP. Message
// bodies are authored in markdown and rendered to sanitized HTML, with
// the raw markdown kept as the plain-text alternative.
type SMTPSender struct {
	cfg      sharedConfig.EmailConfig
	dialer   *gomail.Dialer
	renderer markdown.Service
	logger   logger.Interface
}

func NewSMTPSender(cfg sharedConfig.EmailConfig, renderer markdown.Service, log logger.Interface) *SMTPSender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPSender{
		cfg:      cfg,
		dialer:   dialer,
		renderer: renderer,
		logger:   log,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg notification.Message) error {
	if !s.cfg.Enabled {
		s.logger.Infow("email delivery disabled, skipping notification",
			"to", msg.To,
			"subject", msg.Subject,
		)
		return nil
	}

	htmlBody, err := s.renderer.ToHTMLSanitized(msg.BodyMarkdown)
	if err != nil {
		return fmt.Errorf("failed to render notification body: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.BodyMarkdown)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

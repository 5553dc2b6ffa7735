// Package mail delivers queued transactional emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// smtpSender implements MailSender over plain SMTP. Auth is optional so a
// local MailHog-style relay works without credentials.
type smtpSender struct {
	from     string
	addr     string
	auth     smtp.Auth
	logger   *slog.Logger
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// SenderParams holds dependencies for the SMTP sender, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(params SenderParams) (service.MailSender, error) {
	cfg := params.Config.Email
	if cfg == nil || cfg.From == "" || cfg.SMTPHost == "" {
		return nil, errors.New("email sender address and smtp host must be provided")
	}

	var auth smtp.Auth
	if cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}

	return &smtpSender{
		from:     cfg.From,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth:     auth,
		logger:   params.Logger,
		sendMail: smtp.SendMail,
	}, nil
}

// Send delivers the email described by the queued request.
func (s *smtpSender) Send(ctx context.Context, request *entity.EmailRequest, body string) error {
	if request.RecipientEmail == "" {
		return errors.New("recipient email must not be empty")
	}

	msg := "From: " + s.from + "\r\n" +
		"To: " + request.RecipientEmail + "\r\n" +
		"Subject: " + request.Subject + "\r\n" +
		"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n" +
		body

	if err := s.sendMail(s.addr, s.auth, s.from, []string{request.RecipientEmail}, []byte(msg)); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	s.logger.InfoContext(ctx, "email delivered",
		slog.String("email_id", request.ID.String()),
		slog.String("email_type", string(request.EmailType)),
	)

	return nil
}

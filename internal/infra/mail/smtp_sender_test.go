package mail

import (
	"context"
	"io"
	"log/slog"
	"net/smtp"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSender(t *testing.T) *smtpSender {
	cfg := &config.Config{
		Email: &config.EmailConfig{
			From:     "orders@storefront.example",
			SMTPHost: "localhost",
			SMTPPort: 1025,
		},
	}

	sender, err := NewSMTPSender(SenderParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return sender.(*smtpSender)
}

func TestNewSMTPSender_RequiresFromAndHost(t *testing.T) {
	_, err := NewSMTPSender(SenderParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}

func TestSMTPSender_Send_BuildsMessage(t *testing.T) {
	sender := newTestSender(t)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	sender.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotMsg = msg

		return nil
	}

	request := &entity.EmailRequest{
		ID:             uuid.New(),
		EmailType:      entity.EmailTypeOrderConfirmation,
		RecipientEmail: "asha@example.com",
		Subject:        "Order Confirmation",
	}

	err := sender.Send(context.Background(), request, "Thanks for your order!")
	require.NoError(t, err)

	assert.Equal(t, "localhost:1025", gotAddr)
	assert.Equal(t, "orders@storefront.example", gotFrom)
	assert.Equal(t, []string{"asha@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Order Confirmation")
	assert.Contains(t, string(gotMsg), "Thanks for your order!")
}

func TestSMTPSender_Send_RejectsMissingRecipient(t *testing.T) {
	sender := newTestSender(t)
	sender.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("sendMail should not be called")

		return nil
	}

	err := sender.Send(context.Background(), &entity.EmailRequest{}, "body")
	assert.Error(t, err)
}

func TestSMTPSender_Send_WrapsTransportError(t *testing.T) {
	sender := newTestSender(t)
	sender.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return assert.AnError
	}

	err := sender.Send(context.Background(), &entity.EmailRequest{
		RecipientEmail: "asha@example.com",
	}, "body")
	assert.ErrorIs(t, err, assert.AnError)
}

package mailer

import (
	"context"
	"log"
)

// LogMailer writes outbound mail to the process log. It stands in for a real
// provider in local development and tests.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	log.Printf("mail_out kind=password_reset to=%s token=%s", email, token)
	return nil
}

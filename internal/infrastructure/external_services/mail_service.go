package externalservices

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/firaol-d/clubhub/internal/domain/contract"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

// SMTPConfig holds the mail server settings.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// MailService sends membership notifications over SMTP.
type MailService struct {
	cfg    SMTPConfig
	logger usecasecontract.IAppLogger
}

var _ contract.IEmailService = (*MailService)(nil)

func NewMailService(cfg SMTPConfig, logger usecasecontract.IAppLogger) *MailService {
	return &MailService{cfg: cfg, logger: logger}
}

// SendApprovalEmail notifies a user that their membership was approved.
func (m *MailService) SendApprovalEmail(ctx context.Context, name, to string) error {
	subject := "Your membership has been approved"
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\n"+
			"Good news: your membership request has been approved. You can now "+
			"create projects and join the discussion.\r\n\r\n"+
			"Welcome aboard!\r\n",
		name,
	)
	return m.send(ctx, to, subject, body)
}

// SendRejectionEmail notifies a user that their membership was rejected.
func (m *MailService) SendRejectionEmail(ctx context.Context, name, to string) error {
	subject := "Your membership request"
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\n"+
			"We are sorry to let you know that your membership request was not "+
			"approved at this time.\r\n",
		name,
	)
	return m.send(ctx, to, subject, body)
}

func (m *MailService) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := []byte(
		"From: " + m.cfg.From + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=\"UTF-8\"\r\n" +
			"\r\n" + body,
	)
	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		m.logger.Errorf("failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	m.logger.Infof("email sent to %s", to)
	return nil
}

package service

import (
	"context"
	"fmt"

	"skkuri-backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// mailSender delivers a composed message. *gomail.Dialer satisfies it.
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailService struct {
	sender mailSender
	from   string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		sender: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *emailService) send(ctx context.Context, operation, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	logger.ExternalServiceCall("smtp", operation, "to", to)
	err := s.sender.DialAndSend(m)
	logger.ExternalServiceResult("smtp", operation, err, "to", to)
	if err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendApplicationDecision(ctx context.Context, email, nickname, clubName string, approved bool) error {
	subject := fmt.Sprintf("Your application to %s", clubName)
	var body string
	if approved {
		body = fmt.Sprintf("Hello %s,\n\nYour application to %s has been approved. Welcome aboard!\n\nBest regards,\nThe SKKUri Team", nickname, clubName)
	} else {
		body = fmt.Sprintf("Hello %s,\n\nThank you for applying to %s. Unfortunately your application was not accepted this time.\n\nBest regards,\nThe SKKUri Team", nickname, clubName)
	}
	return s.send(ctx, "SendApplicationDecision", email, subject, body)
}

func (s *emailService) SendPendingApplicationsDigest(ctx context.Context, email, nickname, clubName string, pending int) error {
	subject := fmt.Sprintf("%d pending application(s) for %s", pending, clubName)
	body := fmt.Sprintf("Hello %s,\n\n%s has %d application(s) waiting for a decision.\n\nBest regards,\nThe SKKUri Team", nickname, clubName, pending)
	return s.send(ctx, "SendPendingApplicationsDigest", email, subject, body)
}

type noopEmailService struct{}

// NewNoopEmailService returns an EmailService that only logs, used when SMTP is disabled.
func NewNoopEmailService() EmailService {
	return noopEmailService{}
}

func (noopEmailService) SendApplicationDecision(ctx context.Context, email, nickname, clubName string, approved bool) error {
	logger.Debug("SMTP disabled, decision email not sent", "to", email, "club", clubName, "approved", approved)
	return nil
}

func (noopEmailService) SendPendingApplicationsDigest(ctx context.Context, email, nickname, clubName string, pending int) error {
	logger.Debug("SMTP disabled, digest email not sent", "to", email, "club", clubName, "pending", pending)
	return nil
}

package services

import (
	"gopkg.in/gomail.v2"

	"jobboard/internal/logging"
)

// EmailSender delivers notification mail. Sends are best-effort: failures
// are logged and swallowed so they never fail the triggering operation.
type EmailSender interface {
	Send(to, subject, htmlBody string)
}

type SMTPEmailService struct {
	Host string
	Port int
	From string
}

func NewSMTPEmailService(host string, port int, from string) *SMTPEmailService {
	return &SMTPEmailService{Host: host, Port: port, From: from}
}

func (s *SMTPEmailService) Send(to, subject, htmlBody string) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.Dialer{Host: s.Host, Port: s.Port}
	if err := d.DialAndSend(m); err != nil {
		logging.Log.WithField("to", to).WithField("error", err.Error()).Error("Failed to send email")
		return
	}
	logging.Log.WithField("to", to).WithField("subject", subject).Info("Email sent")
}

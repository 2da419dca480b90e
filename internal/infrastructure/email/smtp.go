package email

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"hilla/internal/shared/config"
)

// SMTPAnswerNotifier emails the ticket submitter when a staff answer
// is posted.
type SMTPAnswerNotifier struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPAnswerNotifier(cfg *config.EmailConfig) *SMTPAnswerNotifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPAnswerNotifier{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (s *SMTPAnswerNotifier) NotifyAnswerPosted(ctx context.Context, to, ticketSubject, answer string) error {
	subject := fmt.Sprintf("Your support ticket has been answered: %s", ticketSubject)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your ticket has been answered</h2>
			<p>A staff member replied to your ticket "%s":</p>
			<blockquote>%s</blockquote>
			<p>If this does not resolve your issue, reply on the ticket page.</p>
		</body>
		</html>
	`, html.EscapeString(ticketSubject), html.EscapeString(answer))

	plainBody := fmt.Sprintf(`
Your ticket has been answered

A staff member replied to your ticket "%s":

%s

If this does not resolve your issue, reply on the ticket page.
	`, ticketSubject, answer)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPAnswerNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

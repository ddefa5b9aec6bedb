package email

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"quickdesk/internal/domain/upgrade"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// NotifyUpgradeDecision emails the outcome of an agent upgrade request.
func (s *SMTPEmailService) NotifyUpgradeDecision(ctx context.Context, to, name string, decision upgrade.Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, htmlBody, plainBody := upgradeDecisionMessage(name, decision)
	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func upgradeDecisionMessage(name string, decision upgrade.Status) (subject, htmlBody, plainBody string) {
	outcome := "was not approved"
	next := "You can keep raising and following tickets as before."
	if decision == upgrade.StatusApproved {
		outcome = "has been approved"
		next = "You can now work the agent queue the next time you sign in."
	}

	subject = "Your QuickDesk agent request " + outcome
	htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Hi %s,</h2>
			<p>Your request to become a QuickDesk agent %s.</p>
			<p>%s</p>
		</body>
		</html>
	`, html.EscapeString(name), outcome, next)

	plainBody = fmt.Sprintf(`
Hi %s,

Your request to become a QuickDesk agent %s.

%s
	`, name, outcome, next)

	return subject, htmlBody, plainBody
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// NoopNotifier drops notifications. It is used when email is disabled.
type NoopNotifier struct{}

func (NoopNotifier) NotifyUpgradeDecision(ctx context.Context, to, name string, decision upgrade.Status) error {
	return nil
}

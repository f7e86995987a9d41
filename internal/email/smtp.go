package email

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements Sender over a direct SMTP connection via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
	recipient string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
// The recipient is fixed by configuration; summaries always go to the
// office mailbox.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName, recipient string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
		recipient: recipient,
	}
}

// SendEstimateSummary renders and sends the summary of one finished
// conversation.
func (s *SMTPSender) SendEstimateSummary(ctx context.Context, summary EstimateSummary) error {
	body, err := renderSummary(summary)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf(subjectEstimateSummaryFmt, summary.ProjectName, summary.RoomName)
	return s.send(ctx, s.recipient, subject, body)
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, textContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, textContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

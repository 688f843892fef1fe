package notify

import (
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// Message represents one rendered notification ready for delivery
type Message struct {
	To        string
	Subject   string
	PlainBody string
	HTMLBody  string
}

// Notifier delivers rendered notification messages.
// Delivery failures are per-recipient faults; the caller isolates them and keeps attempting
// the remaining recipients.
type Notifier interface {
	// Send delivers a single message
	Send(message *Message) error
}

// SMTPNotifier implements the Notifier interface using an SMTP relay
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

var _ Notifier = (*SMTPNotifier)(nil)

// NewSMTPNotifier creates a new SMTP notifier
func NewSMTPNotifier(host string, port int, username, password, from string) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers a single message through the SMTP relay
func (notifier *SMTPNotifier) Send(message *Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", notifier.from)
	mail.SetHeader("To", message.To)
	mail.SetHeader("Subject", message.Subject)
	mail.SetBody("text/plain", message.PlainBody)
	if message.HTMLBody != "" {
		mail.AddAlternative("text/html", message.HTMLBody)
	}
	return notifier.dialer.DialAndSend(mail)
}

// LogNotifier implements the Notifier interface by logging messages instead of delivering
// them. It backs dry runs and environments without a configured mail transport.
type LogNotifier struct{}

var _ Notifier = (*LogNotifier)(nil)

// Send logs a single message
func (notifier *LogNotifier) Send(message *Message) error {
	log.Info().
		Str("to", message.To).
		Str("subject", message.Subject).
		Str("body", message.PlainBody).
		Msg("dry run; message not delivered")
	return nil
}

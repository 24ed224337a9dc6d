// AngelaMos | 2026
// mail.go

package mail

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	gomail "github.com/wneessen/go-mail"

	"github.com/carterperez-dev/mentorax-api/internal/config"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New returns an SMTP sender, or a simulated one that only logs when no
// credentials are configured.
func New(cfg config.MailConfig) (Sender, error) {
	if !cfg.Configured() {
		slog.Info("mail credentials not configured, emails will be simulated")
		return &LogSender{}, nil
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(cfg.Timeout))
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPSender{client: client, from: cfg.From}, nil
}

type SMTPSender struct {
	client *gomail.Client
	from   string
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	slog.Info("email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

// LogSender simulates delivery. Sent messages are kept for inspection.
type LogSender struct {
	mu   sync.Mutex
	sent []Message
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.mu.Lock()
	s.sent = append(s.sent, msg)
	s.mu.Unlock()

	slog.Info("email simulated",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}

func (s *LogSender) Sent() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.sent)
}

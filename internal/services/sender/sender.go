// Package sender отправляет участникам письма о скором окончании абонемента.
package sender

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/gym-membership/internal/lib/metrics"
	"github.com/magabrotheeeer/gym-membership/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/gym-membership/internal/lib/smtp"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

const subject = "Your gym membership expires soon"

// Transport открывает SMTP-сессию.
type Transport interface {
	Connect() (smtp.Client, error)
	Sender() string
}

// Service превращает сообщения из очереди в письма.
type Service struct {
	transport Transport
	log       *slog.Logger
}

// NewService создаёт Service.
func NewService(transport Transport, log *slog.Logger) *Service {
	return &Service{
		transport: transport,
		log:       log,
	}
}

// HandleMembershipExpiring обрабатывает тело сообщения membership.expiring.
// Некорректное сообщение отклоняется через rabbitmq.ErrDiscard.
func (s *Service) HandleMembershipExpiring(body []byte) error {
	const op = "sender.HandleMembershipExpiring"

	var m models.ExpiringMembership
	if err := json.Unmarshal(body, &m); err != nil {
		metrics.EmailsSent.WithLabelValues(metrics.ResultError).Inc()
		return fmt.Errorf("%s: %w: %w", op, rabbitmq.ErrDiscard, err)
	}
	if m.Email == "" {
		metrics.EmailsSent.WithLabelValues(metrics.ResultError).Inc()
		return fmt.Errorf("%s: %w: empty recipient", op, rabbitmq.ErrDiscard)
	}

	if err := s.send(m.Email, subject, reminderText(&m)); err != nil {
		metrics.EmailsSent.WithLabelValues(metrics.ResultError).Inc()
		return fmt.Errorf("%s: %w", op, err)
	}
	metrics.EmailsSent.WithLabelValues(metrics.ResultOK).Inc()
	s.log.Info("reminder sent",
		slog.String("membership_id", m.MembershipID.String()),
		slog.String("to", m.Email))
	return nil
}

func reminderText(m *models.ExpiringMembership) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello, %s!\r\n\r\n", m.MemberName)
	plan := m.PlanName
	if plan == "" {
		plan = "gym"
	}
	fmt.Fprintf(&b, "Your %s membership expires on %s.\r\n", plan, m.To.UTC().Format(time.DateTime+" MST"))
	if !m.IsFeePaid {
		fmt.Fprintf(&b, "The fee of %.2f for the current term is still unpaid.\r\n", m.Fee)
	}
	b.WriteString("You can renew it once the current term has ended.\r\n")
	return b.String()
}

func (s *Service) send(to, subject, body string) error {
	from := s.transport.Sender()
	msg := strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
		"",
		body,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err = client.Mail(from); err != nil {
		return fmt.Errorf("mail from %s: %w", from, err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to %s: %w", to, err)
	}
	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err = wc.Write([]byte(msg)); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err = wc.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}
	return client.Quit()
}

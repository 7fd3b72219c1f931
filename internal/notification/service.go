package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/samandr77/guardbook/internal/entity"
	"github.com/samandr77/guardbook/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/notification.go -package=mocks

type SMSSender interface {
	Send(ctx context.Context, body, from, to string) (string, error)
}

type Mailer interface {
	SendMessage(subject, message string, recipients []string, contentType string) error
}

// Deduplicator reports whether key is seen for the first time.
type Deduplicator interface {
	Claim(ctx context.Context, key string) (bool, error)
}

type Service struct {
	cfg    config.Notifier
	from   string
	sms    SMSSender
	mailer Mailer
	dedup  Deduplicator
}

// New builds the notifier. A nil dedup delivers every event it receives.
func New(cfg config.Config, sms SMSSender, mailer Mailer, dedup Deduplicator) *Service {
	return &Service{
		cfg:    cfg.Notifier,
		from:   cfg.SMS.From,
		sms:    sms,
		mailer: mailer,
		dedup:  dedup,
	}
}

// NotifyWagePosted delivers the wage text by SMS and e-mail.
// Each delivery is attempted independently; the returned error joins the failures.
func (s *Service) NotifyWagePosted(ctx context.Context, e entity.WagePosted) error {
	if !s.cfg.Enabled {
		return nil
	}

	l := slog.With("tx_id", e.TxID, "guard_id", e.GuardID)

	if s.dedup != nil {
		first, err := s.dedup.Claim(ctx, "wage-posted:"+e.TxID.String())
		if err != nil {
			l.WarnContext(ctx, "dedup unavailable, delivering anyway", "error", err)
		} else if !first {
			l.InfoContext(ctx, "wage notification already delivered")
			return nil
		}
	}

	var errs []error

	for _, to := range s.smsRecipients(e) {
		sid, err := s.sms.Send(ctx, e.Text, s.from, to)
		if err != nil {
			errs = append(errs, fmt.Errorf("sms to %s: %w", to, err))
			continue
		}

		l.InfoContext(ctx, "wage sms sent", "sid", sid)
	}

	if len(s.cfg.EmailRecipients) > 0 {
		subject := fmt.Sprintf("Wage posted for %s (guard %d)", e.GuardName, e.GuardID)

		err := s.mailer.SendMessage(subject, emailBody(e), s.cfg.EmailRecipients, "text/plain")
		if err != nil {
			errs = append(errs, fmt.Errorf("email: %w", err))
		} else {
			l.InfoContext(ctx, "wage email sent", "recipients", len(s.cfg.EmailRecipients))
		}
	}

	return errors.Join(errs...)
}

func (s *Service) smsRecipients(e entity.WagePosted) []string {
	to := slices.Clone(s.cfg.SMSRecipients)

	if s.cfg.NotifyGuard && e.Cellphone != "" && !slices.Contains(to, e.Cellphone) {
		to = append(to, e.Cellphone)
	}

	return to
}

func emailBody(e entity.WagePosted) string {
	return fmt.Sprintf("%s\n\nGross: %s %s\nDeductions: %s %s\nNet: %s %s\nPosted at: %s\n",
		e.Text,
		e.Currency, e.Amount.StringFixed(2),
		e.Currency, e.Deductions.StringFixed(2),
		e.Currency, e.Amount.Sub(e.Deductions).StringFixed(2),
		e.PostedAt.UTC().Format("2006-01-02 15:04:05 MST"),
	)
}

package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/guardbook/internal/entity"
	"github.com/samandr77/guardbook/internal/mocks"
	"github.com/samandr77/guardbook/internal/notification"
	"github.com/samandr77/guardbook/pkg/config"
)

type testNotifier struct {
	s      *notification.Service
	sms    *mocks.MockSMSSender
	mailer *mocks.MockMailer
	dedup  *mocks.MockDeduplicator
}

func newTestNotifier(t *testing.T, cfg config.Notifier) testNotifier {
	t.Helper()

	ctrl := gomock.NewController(t)

	n := testNotifier{
		sms:    mocks.NewMockSMSSender(ctrl),
		mailer: mocks.NewMockMailer(ctrl),
		dedup:  mocks.NewMockDeduplicator(ctrl),
	}

	n.s = notification.New(config.Config{
		Notifier: cfg,
		SMS:      config.SMS{From: "+14159095176"},
	}, n.sms, n.mailer, n.dedup)

	return n
}

func wagePosted() entity.WagePosted {
	return entity.WagePosted{
		TxID:       uuid.Must(uuid.NewV4()),
		GuardID:    7,
		GuardName:  "Jane Doe",
		Cellphone:  "+254700000007",
		Amount:     decimal.NewFromInt(1000),
		Deductions: decimal.NewFromInt(350),
		Currency:   "KES",
		Text:       "Guard ID: 7, Salary for the day: KES 1000",
		PostedAt:   time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC),
	}
}

func TestService_NotifyWagePosted(t *testing.T) {
	t.Parallel()

	n := newTestNotifier(t, config.Notifier{
		Enabled:         true,
		SMSRecipients:   []string{"+254711111111"},
		EmailRecipients: []string{"hr@example.com"},
		NotifyGuard:     true,
	})

	e := wagePosted()

	n.dedup.EXPECT().Claim(gomock.Any(), "wage-posted:"+e.TxID.String()).Return(true, nil)
	n.sms.EXPECT().Send(gomock.Any(), e.Text, "+14159095176", "+254711111111").Return("SM1", nil)
	n.sms.EXPECT().Send(gomock.Any(), e.Text, "+14159095176", "+254700000007").Return("SM2", nil)
	n.mailer.EXPECT().SendMessage("Wage posted for Jane Doe (guard 7)", gomock.Any(), []string{"hr@example.com"}, "text/plain").
		DoAndReturn(func(_, body string, _ []string, _ string) error {
			require.Contains(t, body, "Net: KES 650.00")
			return nil
		})

	err := n.s.NotifyWagePosted(context.Background(), e)
	require.NoError(t, err)
}

func TestService_NotifyWagePosted_Duplicate(t *testing.T) {
	t.Parallel()

	n := newTestNotifier(t, config.Notifier{Enabled: true, SMSRecipients: []string{"+254711111111"}})

	n.dedup.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(false, nil)

	err := n.s.NotifyWagePosted(context.Background(), wagePosted())
	require.NoError(t, err)
}

func TestService_NotifyWagePosted_Failures(t *testing.T) {
	t.Parallel()

	n := newTestNotifier(t, config.Notifier{
		Enabled:         true,
		SMSRecipients:   []string{"+254711111111", "+254722222222"},
		EmailRecipients: []string{"hr@example.com"},
	})

	smsErr := errors.New("gateway down")

	n.dedup.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
	n.sms.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), "+254711111111").Return("", smsErr)
	n.sms.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), "+254722222222").Return("SM3", nil)
	n.mailer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := n.s.NotifyWagePosted(context.Background(), wagePosted())
	require.ErrorIs(t, err, smsErr)
}

func TestService_NotifyWagePosted_Disabled(t *testing.T) {
	t.Parallel()

	n := newTestNotifier(t, config.Notifier{Enabled: false, SMSRecipients: []string{"+254711111111"}})

	err := n.s.NotifyWagePosted(context.Background(), wagePosted())
	require.NoError(t, err)
}

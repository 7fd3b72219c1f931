package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/guardbook/internal/api/events"
	"github.com/samandr77/guardbook/internal/entity"
)

type notifierFunc func(ctx context.Context, e entity.WagePosted) error

func (f notifierFunc) NotifyWagePosted(ctx context.Context, e entity.WagePosted) error {
	return f(ctx, e)
}

func TestEventHandler_OnWagePosted(t *testing.T) {
	t.Parallel()

	sent := entity.WagePosted{
		TxID:     uuid.Must(uuid.NewV4()),
		GuardID:  7,
		Amount:   decimal.RequireFromString("1000.50"),
		Currency: "KES",
		Text:     "Guard ID: 7, Salary for the day: KES 1000.5",
		PostedAt: time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC),
	}

	b, err := json.Marshal(sent)
	require.NoError(t, err)

	var got entity.WagePosted

	h := events.NewEventHandler(notifierFunc(func(_ context.Context, e entity.WagePosted) error {
		got = e
		return nil
	}))

	err = h.OnWagePosted(context.Background(), kafka.Message{Value: b})
	require.NoError(t, err)
	require.Equal(t, sent.TxID, got.TxID)
	require.True(t, sent.Amount.Equal(got.Amount))
	require.Equal(t, sent.Text, got.Text)
	require.True(t, sent.PostedAt.Equal(got.PostedAt))
}

func TestEventHandler_OnWagePosted_Errors(t *testing.T) {
	t.Parallel()

	failing := events.NewEventHandler(notifierFunc(func(context.Context, entity.WagePosted) error {
		return errors.New("sms down")
	}))

	err := failing.OnWagePosted(context.Background(), kafka.Message{Value: []byte("{")})
	require.ErrorContains(t, err, "unmarshal event")

	err = failing.OnWagePosted(context.Background(), kafka.Message{Value: []byte(`{"guard_id": 7}`)})
	require.ErrorContains(t, err, "sms down")
}

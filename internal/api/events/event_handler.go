package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/guardbook/internal/entity"
	"github.com/samandr77/guardbook/pkg/logger"
)

type Notifier interface {
	NotifyWagePosted(ctx context.Context, e entity.WagePosted) error
}

type EventHandler struct {
	n Notifier
}

func NewEventHandler(n Notifier) *EventHandler {
	return &EventHandler{n: n}
}

func (h *EventHandler) OnWagePosted(ctx context.Context, msg kafka.Message) error {
	var event entity.WagePosted

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	ctx = logger.WithRequestID(ctx, event.TxID.String())

	err = h.n.NotifyWagePosted(ctx, event)
	if err != nil {
		return fmt.Errorf("notify wage posted: %w", err)
	}

	return nil
}

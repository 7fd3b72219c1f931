package logger

import (
	"context"
	"log/slog"
	"os"
)

const originService = "guardbook"

type ctxKey int8

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyAccountID
	ctxKeyAccount
)

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok && v != "" {
		record.Add("request_id", v)
	}

	if v, ok := ctx.Value(ctxKeyAccountID).(string); ok && v != "" {
		record.Add("account_id", v)
	}

	if v, ok := ctx.Value(ctxKeyAccount).(string); ok && v != "" {
		record.Add("account", v)
	}

	record.Add("origin_service", originService)

	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}

func New(level string) (*slog.Logger, error) {
	var sLevel slog.Level

	err := sLevel.UnmarshalText([]byte(level))
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: sLevel,
	}

	l := slog.New(&Handler{slog.NewJSONHandler(os.Stdout, opts)})

	slog.SetDefault(l)

	return l, nil
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// WithAccount tags log records with the authenticated caller.
func WithAccount(ctx context.Context, account, accountID string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyAccount, account)
	return context.WithValue(ctx, ctxKeyAccountID, accountID)
}

func RequestIDFromCtx(ctx context.Context) string {
	requestID, ok := ctx.Value(ctxKeyRequestID).(string)
	if !ok {
		return ""
	}

	return requestID
}

package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

type ErrorResponse struct {
	Message string    `json:"message"`
	Code    ErrorCode `json:"code,omitempty"`
}

// SendErr classifies err and writes the matching status and message.
func SendErr(ctx context.Context, w http.ResponseWriter, err error) {
	e := classify(err)
	sendJSONErr(ctx, w, e.Status, e.Code, err, e.Message)
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	sendJSONErr(ctx, w, code, "", originErr, msgToSend)
}

func sendJSONErr(ctx context.Context, w http.ResponseWriter, status int, code ErrorCode, originErr error, msgToSend string) {
	if originErr != nil {
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, "api error", "error", originErr.Error())
		} else {
			slog.InfoContext(ctx, "api error", "status", status, "error", originErr.Error())
		}
	}

	SendJSON(ctx, w, status, ErrorResponse{Message: msgToSend, Code: code})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

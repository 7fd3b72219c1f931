package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/samandr77/guardbook/internal/entity"
)

type ErrorCode string

const (
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	CodeForbidden       ErrorCode = "FORBIDDEN"
	CodeBadUserInput    ErrorCode = "BAD_USER_INPUT"
	CodeConflict        ErrorCode = "CONFLICT"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeInternal        ErrorCode = "INTERNAL"
)

// apiError is what a client sees of a failure.
type apiError struct {
	Code    ErrorCode
	Status  int
	Message string
}

func classify(err error) apiError {
	var fe *entity.FieldError

	field := ""
	if errors.As(err, &fe) {
		field = fe.Field
	}

	switch {
	case errors.Is(err, entity.ErrMissingToken):
		return apiError{CodeUnauthenticated, http.StatusUnauthorized, "Authentication required"}
	case errors.Is(err, entity.ErrInvalidToken):
		return apiError{CodeUnauthenticated, http.StatusUnauthorized, "Invalid or expired token"}
	case errors.Is(err, entity.ErrInvalidCredentials):
		return apiError{CodeUnauthenticated, http.StatusUnauthorized, entity.UniformLoginFailure}
	case errors.Is(err, entity.ErrForbidden):
		return apiError{CodeForbidden, http.StatusForbidden, "You are not allowed to perform this action"}
	case errors.Is(err, entity.ErrMissingRequiredField):
		return apiError{CodeBadUserInput, http.StatusBadRequest, withField("Missing required field", field)}
	case errors.Is(err, entity.ErrInvalidArgument):
		return apiError{CodeBadUserInput, http.StatusBadRequest, withField("Invalid value", field)}
	case errors.Is(err, entity.ErrDuplicateUniqueField):
		return apiError{CodeConflict, http.StatusConflict, withField("Value already taken", field)}
	case errors.Is(err, entity.ErrDuplicateSignIn):
		return apiError{CodeConflict, http.StatusConflict, "Guard has already signed in on this date"}
	case errors.Is(err, entity.ErrNoOpenSignIn):
		return apiError{CodeConflict, http.StatusConflict, "Guard has not signed in on this date"}
	case errors.Is(err, entity.ErrLocationInUse):
		return apiError{CodeConflict, http.StatusConflict, "Location is still assigned to guards"}
	case errors.Is(err, entity.ErrMessageNotFound):
		return apiError{CodeNotFound, http.StatusNotFound, "Message not found"}
	case errors.Is(err, entity.ErrNotFound):
		return apiError{CodeNotFound, http.StatusNotFound, "Not found"}
	default:
		return apiError{CodeInternal, http.StatusInternalServerError, "Internal error"}
	}
}

func withField(msg, field string) string {
	if field == "" {
		return msg
	}

	return msg + ": " + field
}

// GraphQLError carries an error code into the "extensions" of a GraphQL response.
type GraphQLError struct {
	Code    ErrorCode
	Message string
}

func (e *GraphQLError) Error() string {
	return e.Message
}

func (e *GraphQLError) Extensions() map[string]any {
	return map[string]any{"code": string(e.Code)}
}

// gqlErr logs err and converts it into the client facing GraphQL error.
func gqlErr(ctx context.Context, op string, err error) error {
	e := classify(err)

	if e.Code == CodeInternal {
		slog.ErrorContext(ctx, "graphql resolver failed", "operation", op, "error", err)
	} else {
		slog.InfoContext(ctx, "graphql request rejected", "operation", op, "code", e.Code, "error", err)
	}

	return &GraphQLError{Code: e.Code, Message: e.Message}
}

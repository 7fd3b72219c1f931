package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4/request"

	"github.com/samandr77/guardbook/internal/entity"
	"github.com/samandr77/guardbook/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

//go:generate go run go.uber.org/mock/mockgen@latest -source=middlewares.go -destination=../mocks/middlewares.go -package=mocks

type AuthService interface {
	Authenticate(ctx context.Context, token string) (entity.Identity, error)
}

type Middleware struct {
	auth           AuthService
	allowedOrigins map[string]struct{}
}

// NewMiddleware builds the middleware set. Cross-origin requests are allowed only
// from allowedOrigins. A "*" entry allows any origin, but without credentials.
func NewMiddleware(auth AuthService, allowedOrigins []string) *Middleware {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins[o] = struct{}{}
		}
	}

	return &Middleware{auth: auth, allowedOrigins: origins}
}

// Log assigns a request id and logs the request line and outcome.
// Bodies are not logged: they carry passwords and pictures.
func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; ok {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		var headers strings.Builder

		for k, v := range r.Header {
			if k == "Authorization" || k == "Cookie" {
				continue
			}

			headers.WriteString(fmt.Sprintf("%s: %s,\n", k, v))
		}

		slog.InfoContext(ctx, "incoming request",
			"request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
			"content_length", strconv.FormatInt(r.ContentLength, 10),
			"headers", headers.String(),
		)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r.WithContext(ctx))

		slog.InfoContext(ctx, "request handled",
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
		)
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				SendJSON(ctx, w, http.StatusInternalServerError, ErrorResponse{Message: "Internal error", Code: CodeInternal})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Origin")

		origin := r.Header.Get("Origin")

		if _, ok := m.allowedOrigins[origin]; ok && origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		} else if _, wildcard := m.allowedOrigins["*"]; wildcard && origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if w.Header().Get("Access-Control-Allow-Origin") != "" {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")
		}

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Identify resolves the bearer token, if any, into the request identity.
// Requests without a valid token pass through carrying the reason, so public operations keep working.
func (m *Middleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := m.identify(r)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerAuth rejects requests without a valid token.
func (m *Middleware) BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := m.identify(r)

		if _, err := entity.IdentityFromCtx(ctx); err != nil {
			SendErr(ctx, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) identify(r *http.Request) context.Context {
	ctx := r.Context()

	token, err := request.BearerExtractor{}.ExtractToken(r)
	if err != nil {
		if errors.Is(err, request.ErrNoTokenInRequest) {
			return entity.CtxWithAuthErr(ctx, entity.ErrMissingToken)
		}

		return entity.CtxWithAuthErr(ctx, entity.ErrInvalidToken)
	}

	identity, err := m.auth.Authenticate(ctx, token)
	if err != nil {
		return entity.CtxWithAuthErr(ctx, err)
	}

	ctx = entity.CtxWithIdentity(ctx, identity)
	ctx = logger.WithAccount(ctx, string(identity.Account), identity.ID.String())

	return ctx
}

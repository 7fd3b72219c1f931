package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4/request"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"

	"github.com/samandr77/guardbook/internal/entity"
)

// @title Guardbook API
// @version 1.0
// @description Attendance, payroll and messaging for security guards. Most operations live behind POST /graphql.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Service interface {
	AuthService

	Login(ctx context.Context, email, password string) (string, error)
	GuardLogin(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, in entity.NewAdmin) (entity.Admin, error)
	ConfirmPassword(ctx context.Context, guardID int64, password string) (bool, error)
	ChangePassword(ctx context.Context, guardID int64, current, next string) error

	RegisterGuard(ctx context.Context, in entity.NewGuard) (entity.Guard, error)
	UpdateGuardBasicInfo(ctx context.Context, guardID int64, info entity.GuardBasicInfo) (entity.Guard, error)
	UpdateGuardContactInfo(ctx context.Context, guardID int64, info entity.GuardContactInfo) (entity.Guard, error)
	GuardInfo(ctx context.Context, guardID int64) (entity.Guard, error)
	AllGuards(ctx context.Context, f entity.GuardFilter) ([]entity.Guard, error)
	GuardsInLocation(ctx context.Context, locationID uuid.UUID) ([]entity.Guard, error)
	GuardExists(ctx context.Context, email string) (bool, error)
	UploadPicture(ctx context.Context, guardID int64, r io.Reader, filename, contentType string) (entity.Guard, error)

	AddLocation(ctx context.Context, name string) (entity.Location, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, name string) (entity.Location, error)
	DeleteLocation(ctx context.Context, id uuid.UUID) error
	Locations(ctx context.Context) ([]entity.Location, error)
	Location(ctx context.Context, id uuid.UUID) (entity.Location, error)
	LocationExists(ctx context.Context, name string) (bool, error)

	SignIn(ctx context.Context, guardID int64, day, clock string) (entity.Attendance, error)
	SignOut(ctx context.Context, guardID int64, day, clock string) (entity.Attendance, error)
	GuardAttendance(ctx context.Context, guardID int64) ([]entity.Attendance, error)
	AllAttendance(ctx context.Context, f entity.AttendanceFilter) ([]entity.Attendance, error)

	GuardPaymentInfo(ctx context.Context, guardID int64) (entity.Salary, error)
	AllSalaries(ctx context.Context) ([]entity.Salary, error)

	PostMessage(ctx context.Context, in entity.NewMessage) (entity.Message, error)
	ReplyToMessage(ctx context.Context, id uuid.UUID, body string) (entity.Message, error)
	ApproveLeave(ctx context.Context, id uuid.UUID) (entity.Message, error)
	ResolveAuthor(ctx context.Context, author entity.Author) (entity.ResolvedAuthor, error)
	Inbox(ctx context.Context, guardID int64) ([]entity.Message, error)
	AllInbox(ctx context.Context, kind entity.MessageKind) ([]entity.Message, error)
	Message(ctx context.Context, id uuid.UUID) (entity.Message, error)
}

type Handler struct {
	s             Service
	schema        graphql.Schema
	maxUploadSize int64
}

func NewHandler(s Service, maxUploadSize int64) (*Handler, error) {
	schema, err := NewSchema(s)
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}

	return &Handler{
		s:             s,
		schema:        schema,
		maxUploadSize: maxUploadSize,
	}, nil
}

type GraphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// GraphQL executes a GraphQL query or mutation
// @Summary GraphQL endpoint
// @Description Executes queries and mutations. Errors carry extensions.code.
// @Tags graphql
// @Accept json
// @Produce json
// @Param GraphQLRequest body GraphQLRequest true "GraphQL request"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Router /graphql [post]
// @Security BearerAuth
func (h *Handler) GraphQL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req GraphQLRequest

	switch r.Method {
	case http.MethodGet:
		req.Query = r.URL.Query().Get("query")
		req.OperationName = r.URL.Query().Get("operationName")

		if v := r.URL.Query().Get("variables"); v != "" {
			if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
				SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid variables")
				return
			}
		}

		if op := operationType(req.Query, req.OperationName); op != "" && op != ast.OperationTypeQuery {
			w.Header().Set("Allow", http.MethodPost)
			SendJSONErr(ctx, w, http.StatusMethodNotAllowed, fmt.Errorf("%s over GET", op), "Only queries are allowed over GET")
			return
		}
	default:
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
			return
		}
	}

	if strings.TrimSpace(req.Query) == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, errors.New("empty query"), "Query is required")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	SendJSON(ctx, w, http.StatusOK, result)
}

// operationType returns the type of the operation a request would execute.
// An unparsable document yields "" and is left for graphql.Do to report.
func operationType(query, operationName string) string {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return ""
	}

	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}

		if operationName == "" || (op.Name != nil && op.Name.Value == operationName) {
			return op.Operation
		}
	}

	return ""
}

type ValidateTokenRequest struct {
	Token string `json:"token"`
}

type ValidateTokenResponse struct {
	Valid    bool             `json:"valid"`
	Identity *entity.Identity `json:"identity,omitempty"`
}

// ValidateToken checks a session token for sibling services
// @Summary Validate token
// @Description Verifies a session token taken from the body or the Authorization header and returns its identity
// @Tags auth
// @Accept json
// @Produce json
// @Param ValidateTokenRequest body ValidateTokenRequest false "Token to validate"
// @Success 200 {object} ValidateTokenResponse
// @Failure 401 {object} ErrorResponse "Missing, invalid or expired token"
// @Router /token/validate [post]
func (h *Handler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ValidateTokenRequest

	if r.ContentLength != 0 {
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil && !errors.Is(err, io.EOF) {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
			return
		}
	}

	if req.Token == "" {
		req.Token, _ = request.BearerExtractor{}.ExtractToken(r)
	}

	identity, err := h.s.Authenticate(ctx, req.Token)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, ValidateTokenResponse{
		Valid:    true,
		Identity: &identity,
	})
}

// UploadPicture stores a guard profile picture
// @Summary Upload guard picture
// @Description Stores the multipart "file" as the guard's profile picture
// @Tags guards
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Guard employee number"
// @Param file formData file true "Picture"
// @Success 200 {object} entity.Guard
// @Failure 400 {object} ErrorResponse "Invalid file"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Action forbidden"
// @Failure 404 {object} ErrorResponse "Guard not found"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /guards/{id}/picture [post]
// @Security BearerAuth
func (h *Handler) UploadPicture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	guardID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		SendErr(ctx, w, entity.InvalidField("id"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	err = r.ParseMultipartForm(h.maxUploadSize)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			SendJSONErr(ctx, w, http.StatusRequestEntityTooLarge, err, "File is too large")
			return
		}

		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid multipart form")

		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		SendErr(ctx, w, entity.MissingField("file"))
		return
	}

	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		SendErr(ctx, w, entity.InvalidField("file"))
		return
	}

	guard, err := h.s.UploadPicture(ctx, guardID, file, header.Filename, contentType)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, guard)
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Service unavailable")
		return
	}
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/userdir/userdir/internal/handler/dto"
	"github.com/userdir/userdir/internal/model"
	"github.com/userdir/userdir/internal/service"
)

// Messages for each create rejection reason.
var rejectMessages = map[service.Reason]string{
	service.ReasonNoData:        "Dados não fornecidos",
	service.ReasonNameRequired:  "Nome é obrigatório",
	service.ReasonEmailRequired: "Email é obrigatório",
	service.ReasonEmailInUse:    "Email já está em uso",
}

// UserService is the business logic used by UserHandler.
type UserService interface {
	ListUsers(ctx context.Context) (*service.ListResult, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	CreateUser(ctx context.Context, input *service.CreateUserInput) (*model.User, error)
}

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /usuarios.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(result))
}

// Get handles GET /usuarios/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// Create handles POST /usuarios.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateRequest(r.Body)
	if err != nil {
		h.logger.Debug("create_user_body_rejected", "error", err)
	}

	user, err := h.svc.CreateUser(r.Context(), req.ToInput())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_created", "user_id", user.ID)

	writeJSON(w, http.StatusCreated, dto.CreateUserResponse{
		Message: MsgUserCreated,
		User:    dto.ToUserResponse(user),
	})
}

// decodeCreateRequest reads exactly one JSON value from body.
// Empty, null, malformed, non-object and trailing-data bodies all yield
// a nil request, which the service reports as missing data.
func decodeCreateRequest(body io.Reader) (*dto.CreateUserRequest, error) {
	dec := json.NewDecoder(body)

	var req *dto.CreateUserRequest
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON body")
		}
		return nil, fmt.Errorf("trailing data: %w", err)
	}
	return req, nil
}

// handleServiceError maps service errors to HTTP responses.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, MsgUserNotFound)
	case errors.As(err, &verr):
		msg, ok := rejectMessages[verr.Reason]
		if !ok {
			msg = "Dados inválidos"
		}
		writeError(w, http.StatusBadRequest, msg)
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, MsgInternalError)
	}
}

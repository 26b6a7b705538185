// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/userdir/userdir/internal/handler/dto"
	"github.com/userdir/userdir/internal/service"
)

// Client-facing error messages.
const (
	MsgEndpointNotFound = "Endpoint não encontrado"
	MsgMethodNotAllowed = "Método não permitido"
	MsgUserNotFound     = "Usuário não encontrado"
	MsgInternalError    = "Erro interno do servidor"
	MsgUserCreated      = "Usuário criado com sucesso"

	MsgMetricsUnavailable = "Métricas indisponíveis"
)

// InfoProvider supplies the welcome payload.
type InfoProvider interface {
	WelcomeInfo() service.Info
}

// Handler serves the root endpoint and the router fallbacks.
type Handler struct {
	info InfoProvider
}

// New creates a new Handler instance.
func New(info InfoProvider) *Handler {
	return &Handler{info: info}
}

// Home returns the welcome payload.
// GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToWelcomeResponse(h.info.WelcomeInfo()))
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, MsgEndpointNotFound)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(data)
}

// writeError writes an error body with a single "erro" key.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.ErrorResponse{Error: message})
}

package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/courier/internal/emails"
	"github.com/JaimeStill/courier/internal/workflow"
	"github.com/JaimeStill/courier/pkg/handlers"
	"github.com/JaimeStill/courier/pkg/routes"
)

// ErrInvalidSubmission indicates a malformed email submission body.
var ErrInvalidSubmission = errors.New("invalid email submission")

// EmailHandler accepts inbound email submissions and runs the workflow
// synchronously.
type EmailHandler struct {
	svc     *workflow.Service
	logger  *slog.Logger
	maxSize int64
}

// NewEmailHandler creates an EmailHandler.
func NewEmailHandler(svc *workflow.Service, logger *slog.Logger, maxSize int64) *EmailHandler {
	return &EmailHandler{
		svc:     svc,
		logger:  logger.With("handler", "emails"),
		maxSize: maxSize,
	}
}

// Routes returns the route group definition for email endpoints.
func (h *EmailHandler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/emails",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Submit},
		},
	}
}

// Submit decodes an inbound email and processes it through the workflow,
// responding with the terminal run result.
func (h *EmailHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)

	var msg emails.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidSubmission)
		return
	}

	result, err := h.svc.Process(r.Context(), msg)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

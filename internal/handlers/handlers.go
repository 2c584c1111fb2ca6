package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/showroom-catalog/showroom/internal/logger"
	"github.com/showroom-catalog/showroom/internal/showroom"
)

type Handler struct {
	app      *showroom.App
	log      logger.Logger
	validate *validator.Validate
}

func New(app *showroom.App, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		app:      app,
		log:      log,
		validate: validator.New(),
	}
}

// Router returns the HTTP API with its middleware stack
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(AccessLog(h.log))

	r.Get("/healthcheck", h.HandleHealthcheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.HandleState)
		r.Post("/extract", h.HandleExtract)

		r.Route("/draft", func(r chi.Router) {
			r.Get("/", h.HandleGetDraft)
			r.Delete("/", h.HandleCancelDraft)
			r.Post("/images", h.HandleAddDraftImages)
			r.Delete("/images/{index}", h.HandleRemoveDraftImage)
			r.Post("/images/next", h.HandleNextDraftImage)
			r.Post("/images/prev", h.HandlePrevDraftImage)
			r.Post("/publish", h.HandlePublishDraft)
		})

		r.Get("/products", h.HandlePage)
		r.Get("/products/{id}", h.HandleSelectProduct)
		r.Delete("/products/{id}", h.HandleRemoveProduct)
		r.Delete("/selection", h.HandleClearSelection)

		r.Post("/page/next", h.HandleNextPage)
		r.Post("/page/prev", h.HandlePrevPage)
		r.Put("/viewport", h.HandleViewport)
	})

	return r
}

func (h *Handler) HandleHealthcheck(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte("OK")); err != nil {
		h.log.Error("Unable to write healthcheck", logger.Error(err))
	}
}

func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.app.State())
}

type errorResponse struct {
	Error string `json:"error"`
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("Unable to encode JSON response", logger.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, errorResponse{Error: message})
}

// writeAppError maps an application error to its status and user message
func (h *Handler) writeAppError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		h.log.Error("Request failed", logger.Error(err))
	} else {
		h.log.Debug("Request rejected", logger.Error(err))
	}
	h.writeError(w, showroom.UserMessage(err), code)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, showroom.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, showroom.ErrBusy), errors.Is(err, showroom.ErrDraftPending):
		return http.StatusConflict
	case errors.Is(err, showroom.ErrNoDraft), errors.Is(err, showroom.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, showroom.ErrExtraction):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// decode reads a JSON body into v and validates it
func (h *Handler) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := h.validate.Struct(v); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

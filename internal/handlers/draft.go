package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/showroom-catalog/showroom/internal/models"
	"github.com/showroom-catalog/showroom/internal/showroom"
)

type extractRequest struct {
	URL string `json:"url"`
}

type addImagesRequest struct {
	Images []string `json:"images" validate:"required,min=1,dive,required"`
}

type draftResponse struct {
	Draft        models.Product `json:"draft"`
	CurrentImage int            `json:"currentImage"`
}

type imageIndexResponse struct {
	CurrentImage int `json:"currentImage"`
}

// HandleExtract validates the url, runs the extraction and stages the draft
func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.app.Submit(r.Context(), req.URL)
	if err != nil {
		h.writeAppError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, draftResponse{Draft: p, CurrentImage: h.app.DraftImage()})
}

func (h *Handler) HandleGetDraft(w http.ResponseWriter, r *http.Request) {
	p, ok := h.app.Draft()
	if !ok {
		h.writeAppError(w, showroom.ErrNoDraft)
		return
	}
	h.writeJSON(w, http.StatusOK, draftResponse{Draft: p, CurrentImage: h.app.DraftImage()})
}

func (h *Handler) HandleCancelDraft(w http.ResponseWriter, r *http.Request) {
	if !h.app.CancelDraft() {
		h.writeAppError(w, showroom.ErrNoDraft)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleAddDraftImages(w http.ResponseWriter, r *http.Request) {
	var req addImagesRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.app.AddDraftImages(req.Images)
	if err != nil {
		h.writeAppError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, draftResponse{Draft: p, CurrentImage: h.app.DraftImage()})
}

func (h *Handler) HandleRemoveDraftImage(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.writeError(w, "Invalid image index", http.StatusBadRequest)
		return
	}

	p, err := h.app.RemoveDraftImage(index)
	if err != nil {
		h.writeAppError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, draftResponse{Draft: p, CurrentImage: h.app.DraftImage()})
}

func (h *Handler) HandleNextDraftImage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.app.Draft(); !ok {
		h.writeAppError(w, showroom.ErrNoDraft)
		return
	}
	h.writeJSON(w, http.StatusOK, imageIndexResponse{CurrentImage: h.app.NextDraftImage()})
}

func (h *Handler) HandlePrevDraftImage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.app.Draft(); !ok {
		h.writeAppError(w, showroom.ErrNoDraft)
		return
	}
	h.writeJSON(w, http.StatusOK, imageIndexResponse{CurrentImage: h.app.PrevDraftImage()})
}

func (h *Handler) HandlePublishDraft(w http.ResponseWriter, r *http.Request) {
	p, err := h.app.PublishDraft(r.Context())
	if err != nil {
		h.writeAppError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, p)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/showroom-catalog/showroom/internal/showroom"
)

type viewportRequest struct {
	Width *int `json:"width" validate:"required,gte=0"`
}

type pageMoveResponse struct {
	Moved       bool              `json:"moved"`
	ScrollToTop bool              `json:"scrollToTop"`
	Page        showroom.PageView `json:"page"`
}

func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.app.Page())
}

// HandleSelectProduct opens the detail view of a product
func (h *Handler) HandleSelectProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.app.Select(chi.URLParam(r, "id"))
	if err != nil {
		h.writeAppError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, showroom.Card{Product: p, FaviconURL: showroom.FaviconURL(p.OriginalURL)})
}

func (h *Handler) HandleRemoveProduct(w http.ResponseWriter, r *http.Request) {
	if !h.app.Remove(r.Context(), chi.URLParam(r, "id")) {
		h.writeAppError(w, showroom.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleClearSelection(w http.ResponseWriter, r *http.Request) {
	h.app.ClearSelection()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleNextPage(w http.ResponseWriter, r *http.Request) {
	moved := h.app.NextPage()
	h.writeJSON(w, http.StatusOK, pageMoveResponse{Moved: moved, ScrollToTop: moved, Page: h.app.Page()})
}

func (h *Handler) HandlePrevPage(w http.ResponseWriter, r *http.Request) {
	moved := h.app.PrevPage()
	h.writeJSON(w, http.StatusOK, pageMoveResponse{Moved: moved, ScrollToTop: moved, Page: h.app.Page()})
}

// HandleViewport applies the client viewport width to the page size
func (h *Handler) HandleViewport(w http.ResponseWriter, r *http.Request) {
	var req viewportRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.app.SetViewportWidth(*req.Width)
	h.writeJSON(w, http.StatusOK, h.app.Page())
}

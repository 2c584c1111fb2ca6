package showroom

import (
	"github.com/showroom-catalog/showroom/internal/models"
	"github.com/showroom-catalog/showroom/internal/pagination"
)

// Card is a catalog entry as shown in the gallery
type Card struct {
	models.Product
	FaviconURL string `json:"faviconUrl"`
}

// PageView is the visible slice of the catalog with its controls
type PageView struct {
	Items        []Card `json:"items"`
	CurrentPage  int    `json:"currentPage"`
	TotalPages   int    `json:"totalPages"`
	ItemsPerPage int    `json:"itemsPerPage"`
	Total        int    `json:"total"`
	ShowControls bool   `json:"showControls"`
	HasPrev      bool   `json:"hasPrev"`
	HasNext      bool   `json:"hasNext"`
}

// Snapshot is the whole view state at one instant
type Snapshot struct {
	Loading    bool            `json:"loading"`
	Draft      *models.Product `json:"draft,omitempty"`
	DraftImage int             `json:"draftImage"`
	Selected   *models.Product `json:"selected,omitempty"`
	Page       PageView        `json:"page"`
}

// Page returns the current page of the catalog
func (a *App) Page() PageView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pageLocked()
}

func (a *App) pageLocked() PageView {
	products := a.catalog.Products()
	visible := pagination.Slice(a.cursor, products)

	cards := make([]Card, 0, len(visible))
	for _, p := range visible {
		cards = append(cards, Card{Product: p, FaviconURL: FaviconURL(p.OriginalURL)})
	}

	total := a.cursor.TotalPages(len(products))
	return PageView{
		Items:        cards,
		CurrentPage:  a.cursor.CurrentPage,
		TotalPages:   total,
		ItemsPerPage: a.cursor.ItemsPerPage,
		Total:        len(products),
		ShowControls: len(products) > a.cursor.ItemsPerPage,
		HasPrev:      a.cursor.CurrentPage > 1,
		HasNext:      a.cursor.CurrentPage < total,
	}
}

// State returns a consistent snapshot of the view state
func (a *App) State() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := Snapshot{
		Loading:    a.loading,
		DraftImage: a.viewer.Current(),
		Page:       a.pageLocked(),
	}
	if p, ok := a.draft.Current(); ok {
		s.Draft = &p
	}
	if p, ok := a.selectedLocked(); ok {
		s.Selected = &p
	}
	return s
}

package showroom

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/showroom-catalog/showroom/internal/catalog"
	"github.com/showroom-catalog/showroom/internal/draft"
	"github.com/showroom-catalog/showroom/internal/extraction"
	"github.com/showroom-catalog/showroom/internal/logger"
	"github.com/showroom-catalog/showroom/internal/models"
	"github.com/showroom-catalog/showroom/internal/pagination"
)

// Extractor starts listing extractions
type Extractor interface {
	Start(ctx context.Context, url string) *extraction.Task
}

// Options configures an App
type Options struct {
	SupportedSite string
	Now           func() time.Time
}

// App owns the catalog, the pending draft and the view state. Mutations
// are serialised; extraction runs without holding the lock.
type App struct {
	catalog   *catalog.Store
	extractor Extractor
	log       logger.Logger
	site      string
	ids       *idGenerator

	mu        sync.Mutex
	draft     *draft.Draft
	viewer    *draft.ImageViewer
	cursor    pagination.Cursor
	selected  string
	loading   bool
	scrollSub []func()
}

func New(store *catalog.Store, extractor Extractor, opts Options, log logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	return &App{
		catalog:   store,
		extractor: extractor,
		log:       log,
		site:      strings.ToLower(opts.SupportedSite),
		ids:       newIDGenerator(opts.Now),
		draft:     draft.New(),
		viewer:    draft.NewImageViewer(0),
		cursor:    pagination.NewCursor(),
	}
}

// ValidateURL checks a submitted url before any extraction is attempted
func (a *App) ValidateURL(rawURL string) (string, error) {
	u := strings.TrimSpace(rawURL)
	if u == "" {
		return "", fmt.Errorf("%w: empty url", ErrValidation)
	}
	if !strings.Contains(strings.ToLower(u), a.site) {
		return "", fmt.Errorf("%w: %s is not a %s listing", ErrValidation, u, a.site)
	}
	return u, nil
}

// Submit extracts the listing at rawURL and stages it as the draft.
// A degraded extraction still produces a draft.
func (a *App) Submit(ctx context.Context, rawURL string) (models.Product, error) {
	u, err := a.ValidateURL(rawURL)
	if err != nil {
		a.log.Info("Rejected listing url", logger.String("url", rawURL))
		return models.Product{}, err
	}

	a.mu.Lock()
	if a.loading {
		a.mu.Unlock()
		return models.Product{}, ErrBusy
	}
	if a.draft.State() == draft.Pending {
		a.mu.Unlock()
		return models.Product{}, ErrDraftPending
	}
	a.loading = true
	a.mu.Unlock()

	task := a.extractor.Start(ctx, u)
	result, err := task.Wait(ctx)
	if err != nil && ctx.Err() != nil {
		// abandoned: loading stays on until the task has actually stopped
		task.Cancel()
		go func() {
			<-task.Done()
			a.setLoading(false)
		}()
		return models.Product{}, fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = false

	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	p := models.Product{
		ID:          a.ids.Next(a.catalog.Contains),
		OriginalURL: u,
		Title:       result.Title,
		Description: result.Description,
		Images:      result.Images,
		Price:       result.Price,
		Sources:     result.Sources,
		PhoneNumber: result.PhoneNumber,
		WhatsApp:    result.WhatsApp,
	}
	if err := a.draft.Begin(p); err != nil {
		return models.Product{}, err
	}
	a.viewer.Reset(len(p.Images))

	a.log.Info("Draft created", logger.String("id", p.ID), logger.String("title", p.Title))
	current, _ := a.draft.Current()
	return current, nil
}

func (a *App) setLoading(v bool) {
	a.mu.Lock()
	a.loading = v
	a.mu.Unlock()
}

func (a *App) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// Draft returns the pending product, if any
func (a *App) Draft() (models.Product, bool) {
	return a.draft.Current()
}

// AddDraftImages appends images to the draft gallery up to the cap and
// shows the first one added
func (a *App) AddDraftImages(images []string) (models.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.draft.AddImages(images); err != nil {
		return models.Product{}, err
	}
	p, _ := a.draft.Current()
	a.viewer.Sync(len(p.Images))
	return p, nil
}

// RemoveDraftImage removes the draft image at i; out of range is a no-op
func (a *App) RemoveDraftImage(i int) (models.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	removed, err := a.draft.RemoveImageAt(i)
	if err != nil {
		return models.Product{}, err
	}
	if removed {
		a.viewer.Remove(i)
	}
	p, _ := a.draft.Current()
	return p, nil
}

// DraftImage returns the displayed draft image index, -1 for none
func (a *App) DraftImage() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.viewer.Current()
}

func (a *App) NextDraftImage() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.viewer.Next()
}

func (a *App) PrevDraftImage() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.viewer.Prev()
}

// PublishDraft moves the draft to the front of the catalog and returns to
// the first page
func (a *App) PublishDraft(ctx context.Context) (models.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, err := a.draft.Publish()
	if err != nil {
		return models.Product{}, err
	}
	a.catalog.Publish(ctx, p)
	a.cursor.Reset()
	a.viewer.Reset(0)

	a.log.Info("Product published", logger.String("id", p.ID), logger.Int("catalog_size", a.catalog.Len()))
	return p, nil
}

// CancelDraft discards the draft without touching the catalog
func (a *App) CancelDraft() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.viewer.Reset(0)
	return a.draft.Cancel()
}

// Remove deletes a product from the catalog, closing its detail view and
// keeping the page in range
func (a *App) Remove(ctx context.Context, id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	removed := a.catalog.Remove(ctx, id)
	if a.selected == id {
		a.selected = ""
	}
	a.cursor.ClampAfterRemoval(a.catalog.Len())

	if removed {
		a.log.Info("Product removed", logger.String("id", id))
	}
	return removed
}

// Import prepends products not already in the catalog
func (a *App) Import(ctx context.Context, products []models.Product) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := a.catalog.PrependAll(ctx, products)
	if n > 0 {
		a.cursor.Reset()
	}
	return n
}

func (a *App) Products() []models.Product {
	return a.catalog.Products()
}

// Select opens the detail view for id
func (a *App) Select(id string) (models.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.catalog.Get(id)
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	a.selected = id
	return p, nil
}

func (a *App) ClearSelection() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selected = ""
}

// Selected returns the product in the detail view
func (a *App) Selected() (models.Product, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selectedLocked()
}

func (a *App) selectedLocked() (models.Product, bool) {
	if a.selected == "" {
		return models.Product{}, false
	}
	return a.catalog.Get(a.selected)
}

// SetViewportWidth applies the page size for width; the page is kept
func (a *App) SetViewportWidth(width int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cursor.Resize(width)
}

// WatchViewport applies the current width of vp and follows its changes
func (a *App) WatchViewport(vp pagination.Viewport) {
	a.SetViewportWidth(vp.Width())
	vp.Subscribe(a.SetViewportWidth)
}

// OnScrollToTop registers fn to run whenever the page changes
func (a *App) OnScrollToTop(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scrollSub = append(a.scrollSub, fn)
}

func (a *App) NextPage() bool {
	a.mu.Lock()
	moved := a.cursor.Next(a.catalog.Len())
	subs := append([]func(){}, a.scrollSub...)
	a.mu.Unlock()

	if moved {
		for _, fn := range subs {
			fn()
		}
	}
	return moved
}

func (a *App) PrevPage() bool {
	a.mu.Lock()
	moved := a.cursor.Prev()
	subs := append([]func(){}, a.scrollSub...)
	a.mu.Unlock()

	if moved {
		for _, fn := range subs {
			fn()
		}
	}
	return moved
}

func (a *App) Cursor() pagination.Cursor {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cursor
}

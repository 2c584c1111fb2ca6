package draft

import (
	"errors"
	"sync"

	"github.com/showroom-catalog/showroom/internal/models"
)

var (
	ErrDraftPending = errors.New("a draft is already pending review")
	ErrNoDraft      = errors.New("no draft pending")
)

type State int

const (
	Empty State = iota
	Pending
)

func (s State) String() string {
	if s == Pending {
		return "pending"
	}
	return "empty"
}

// Draft holds at most one product awaiting review before it is
// published to the catalog or discarded.
type Draft struct {
	mu      sync.Mutex
	product *models.Product
}

func New() *Draft {
	return &Draft{}
}

func (d *Draft) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.product == nil {
		return Empty
	}
	return Pending
}

// Begin stages p for review
func (d *Draft) Begin(p models.Product) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.product != nil {
		return ErrDraftPending
	}
	p = p.Clone()
	p.Normalize()
	d.product = &p
	return nil
}

// Current returns a copy of the pending product
func (d *Draft) Current() (models.Product, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.product == nil {
		return models.Product{}, false
	}
	return d.product.Clone(), true
}

// AddImages appends images until the gallery holds MaxImagesPerProduct;
// the rest are dropped. It returns how many were added.
func (d *Draft) AddImages(images []string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.product == nil {
		return 0, ErrNoDraft
	}

	room := models.MaxImagesPerProduct - len(d.product.Images)
	if room <= 0 {
		return 0, nil
	}
	if len(images) > room {
		images = images[:room]
	}
	d.product.Images = append(d.product.Images, images...)
	return len(images), nil
}

// RemoveImageAt deletes the image at i. An out of range index is ignored.
func (d *Draft) RemoveImageAt(i int) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.product == nil {
		return false, ErrNoDraft
	}
	if i < 0 || i >= len(d.product.Images) {
		return false, nil
	}

	imgs := d.product.Images
	d.product.Images = append(imgs[:i:i], imgs[i+1:]...)
	return true, nil
}

// Publish hands back the pending product and empties the draft
func (d *Draft) Publish() (models.Product, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.product == nil {
		return models.Product{}, ErrNoDraft
	}
	p := *d.product
	d.product = nil
	return p, nil
}

// Cancel discards the pending product, reporting whether there was one
func (d *Draft) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	had := d.product != nil
	d.product = nil
	return had
}

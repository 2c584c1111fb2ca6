package models

// MaxImagesPerProduct caps the gallery of a single listing
const MaxImagesPerProduct = 10

// Product represents a listing in the catalog or pending review as a draft
type Product struct {
	ID          string   `json:"id" yaml:"id"`
	OriginalURL string   `json:"originalUrl" yaml:"original_url"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Images      []string `json:"images" yaml:"images"` // display order
	Price       string   `json:"price" yaml:"price"`
	Sources     []string `json:"sources,omitempty" yaml:"sources,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty" yaml:"phone_number,omitempty"`
	WhatsApp    string   `json:"whatsapp,omitempty" yaml:"whatsapp,omitempty"`
}

// Clone returns a copy that shares no slices with p
func (p Product) Clone() Product {
	c := p
	c.Images = append([]string{}, p.Images...)
	if p.Sources != nil {
		c.Sources = append([]string(nil), p.Sources...)
	}
	return c
}

// Normalize fills in the invariants a persisted product may be missing:
// a non-nil image list no longer than MaxImagesPerProduct and a nil
// source list when there are no sources.
func (p *Product) Normalize() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if len(p.Images) > MaxImagesPerProduct {
		p.Images = p.Images[:MaxImagesPerProduct]
	}
	if len(p.Sources) == 0 {
		p.Sources = nil
	}
}

// ExtractionResult is the normalized output of a listing extraction
type ExtractionResult struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Price       string   `json:"price" yaml:"price"`
	Images      []string `json:"images" yaml:"images"`
	Sources     []string `json:"sources,omitempty" yaml:"sources,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty" yaml:"phone_number,omitempty"`
	WhatsApp    string   `json:"whatsapp,omitempty" yaml:"whatsapp,omitempty"`
}

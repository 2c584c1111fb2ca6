package showroom

import (
	"errors"

	"github.com/showroom-catalog/showroom/internal/draft"
)

var (
	ErrValidation   = errors.New("unsupported listing url")
	ErrExtraction   = errors.New("listing extraction failed")
	ErrBusy         = errors.New("an extraction is already running")
	ErrDraftPending = draft.ErrDraftPending
	ErrNoDraft      = draft.ErrNoDraft
	ErrNotFound     = errors.New("product not found")
)

// Messages shown to the user in place of the underlying error
const (
	MsgValidation = "Unable to add this link."
	MsgExtraction = "Something went wrong while fetching the product details. Please make sure the link is correct."
)

// UserMessage returns the fixed user facing text for err
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return MsgValidation
	case errors.Is(err, ErrExtraction):
		return MsgExtraction
	case errors.Is(err, ErrBusy):
		return "Please wait for the current extraction to finish."
	case errors.Is(err, ErrDraftPending):
		return "Publish or cancel the pending product first."
	case errors.Is(err, ErrNoDraft):
		return "There is no pending product."
	case errors.Is(err, ErrNotFound):
		return "Product not found."
	default:
		return "Unexpected error."
	}
}

package pagination

const (
	// WideViewportWidth is the narrowest viewport that gets the wide page
	WideViewportWidth = 1024

	WidePageSize   = 12
	NarrowPageSize = 8
)

// PageSizeForWidth picks the page size for a viewport width in pixels
func PageSizeForWidth(width int) int {
	if width >= WideViewportWidth {
		return WidePageSize
	}
	return NarrowPageSize
}

// Cursor is the pagination position over the catalog
type Cursor struct {
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
}

func NewCursor() Cursor {
	return Cursor{CurrentPage: 1, ItemsPerPage: NarrowPageSize}
}

// TotalPages returns ceil(n / ItemsPerPage)
func (c Cursor) TotalPages(n int) int {
	if n <= 0 || c.ItemsPerPage <= 0 {
		return 0
	}
	return (n + c.ItemsPerPage - 1) / c.ItemsPerPage
}

// Resize applies the page size for width without moving the page
func (c *Cursor) Resize(width int) {
	c.ItemsPerPage = PageSizeForWidth(width)
}

// Next moves forward when a later page exists. A true result means the
// view should scroll to the top.
func (c *Cursor) Next(n int) bool {
	if c.CurrentPage >= c.TotalPages(n) {
		return false
	}
	c.CurrentPage++
	return true
}

// Prev moves back when not on the first page
func (c *Cursor) Prev() bool {
	if c.CurrentPage <= 1 {
		return false
	}
	c.CurrentPage--
	return true
}

func (c *Cursor) Reset() {
	c.CurrentPage = 1
}

// ClampAfterRemoval keeps the page in range after the catalog shrank to n
func (c *Cursor) ClampAfterRemoval(n int) {
	total := c.TotalPages(n)
	switch {
	case total == 0:
		c.CurrentPage = 1
	case c.CurrentPage > total:
		c.CurrentPage = total
	}
}

// Bounds returns the half open range of the current page within n items
func (c Cursor) Bounds(n int) (start, end int) {
	if c.ItemsPerPage <= 0 || c.CurrentPage < 1 {
		return 0, 0
	}
	start = min((c.CurrentPage-1)*c.ItemsPerPage, n)
	end = min(c.CurrentPage*c.ItemsPerPage, n)
	return start, end
}

// Slice returns the items visible on the current page
func Slice[T any](c Cursor, items []T) []T {
	start, end := c.Bounds(len(items))
	return items[start:end]
}

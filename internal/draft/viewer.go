package draft

// ImageViewer tracks which image of a gallery is on display
type ImageViewer struct {
	index int
	count int
}

func NewImageViewer(count int) *ImageViewer {
	v := &ImageViewer{}
	v.Reset(count)
	return v
}

// Reset shows the first image of a gallery of count images
func (v *ImageViewer) Reset(count int) {
	v.index = 0
	v.count = max(count, 0)
}

// Current returns the displayed index, or -1 when there is no image
func (v *ImageViewer) Current() int {
	if v.count == 0 {
		return -1
	}
	if v.index >= v.count {
		return 0
	}
	return v.index
}

func (v *ImageViewer) Count() int { return v.count }

// Next advances, wrapping to the first image
func (v *ImageViewer) Next() int {
	if v.count > 1 {
		v.index = (v.Current() + 1) % v.count
	}
	return v.Current()
}

// Prev steps back, wrapping to the last image
func (v *ImageViewer) Prev() int {
	if v.count > 1 {
		v.index = (v.Current() - 1 + v.count) % v.count
	}
	return v.Current()
}

// Sync records a new gallery size. When images were added the first new
// one is shown.
func (v *ImageViewer) Sync(count int) int {
	count = max(count, 0)
	if count > v.count {
		v.index = v.count
	} else if v.index >= count {
		v.index = max(0, count-1)
	}
	v.count = count
	return v.Current()
}

// Remove records the removal of the image at i
func (v *ImageViewer) Remove(i int) int {
	if i < 0 || i >= v.count {
		return v.Current()
	}
	cur := v.Current()
	switch {
	case cur >= v.count-1:
		v.index = max(0, v.count-2)
	case i < cur:
		v.index = cur - 1
	default:
		v.index = cur
	}
	v.count--
	return v.Current()
}

package draft

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-catalog/showroom/internal/models"
)

func imageURLs(n int, prefix string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("https://img/%s%d.jpg", prefix, i)
	}
	return out
}

func pending(t *testing.T, images []string) *Draft {
	t.Helper()
	d := New()
	require.NoError(t, d.Begin(models.Product{ID: "1", Title: "Bike", Images: images}))
	return d
}

func TestBegin(t *testing.T) {
	d := New()
	assert.Equal(t, Empty, d.State())

	require.NoError(t, d.Begin(models.Product{ID: "1"}))
	assert.Equal(t, Pending, d.State())

	err := d.Begin(models.Product{ID: "2"})
	assert.ErrorIs(t, err, ErrDraftPending)

	current, ok := d.Current()
	require.True(t, ok)
	assert.Equal(t, "1", current.ID)
	assert.NotNil(t, current.Images)
}

func TestAddImages(t *testing.T) {
	tests := []struct {
		name      string
		existing  int
		adding    []string
		wantAdded int
		wantLen   int
	}{
		{name: "nine plus three keeps the first", existing: 9, adding: []string{"a", "b", "c"}, wantAdded: 1, wantLen: 10},
		{name: "at cap is a no-op", existing: 10, adding: []string{"a"}, wantAdded: 0, wantLen: 10},
		{name: "room for all", existing: 2, adding: []string{"a", "b"}, wantAdded: 2, wantLen: 4},
		{name: "nothing to add", existing: 3, adding: nil, wantAdded: 0, wantLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := pending(t, imageURLs(tt.existing, "x"))

			added, err := d.AddImages(tt.adding)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdded, added)

			current, _ := d.Current()
			assert.Len(t, current.Images, tt.wantLen)
		})
	}
}

func TestAddImagesNineThenThree(t *testing.T) {
	existing := imageURLs(9, "x")
	d := pending(t, existing)

	_, err := d.AddImages([]string{"a", "b", "c"})
	require.NoError(t, err)

	current, _ := d.Current()
	assert.Equal(t, append(append([]string{}, existing...), "a"), current.Images)
}

func TestAddImagesWithoutDraft(t *testing.T) {
	_, err := New().AddImages([]string{"a"})
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestRemoveImageAt(t *testing.T) {
	tests := []struct {
		name        string
		images      []string
		index       int
		wantRemoved bool
		want        []string
	}{
		{name: "single image", images: []string{"a"}, index: 0, wantRemoved: true, want: []string{}},
		{name: "middle", images: []string{"a", "b", "c"}, index: 1, wantRemoved: true, want: []string{"a", "c"}},
		{name: "negative", images: []string{"a", "b"}, index: -1, want: []string{"a", "b"}},
		{name: "past the end", images: []string{"a", "b"}, index: 2, want: []string{"a", "b"}},
		{name: "empty gallery", images: []string{}, index: 0, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := pending(t, tt.images)

			removed, err := d.RemoveImageAt(tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRemoved, removed)

			current, _ := d.Current()
			assert.Equal(t, tt.want, current.Images)
		})
	}
}

func TestPublishClearsDraft(t *testing.T) {
	d := pending(t, []string{"a"})

	p, err := d.Publish()
	require.NoError(t, err)
	assert.Equal(t, "Bike", p.Title)
	assert.Equal(t, Empty, d.State())

	_, err = d.Publish()
	assert.ErrorIs(t, err, ErrNoDraft)

	assert.NoError(t, d.Begin(models.Product{ID: "2"}))
}

func TestCancel(t *testing.T) {
	d := pending(t, nil)
	assert.True(t, d.Cancel())
	assert.Equal(t, Empty, d.State())
	assert.False(t, d.Cancel())
}

func TestCurrentIsACopy(t *testing.T) {
	d := pending(t, []string{"a"})
	current, _ := d.Current()
	current.Images[0] = "mutated"

	again, _ := d.Current()
	assert.Equal(t, []string{"a"}, again.Images)
}

package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-catalog/showroom/internal/models"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1700000000001",
			OriginalURL: "https://www.avito.ma/fr/casablanca/velo.htm",
			Title:       "Road bike",
			Description: "Carbon frame, size 56",
			Images:      []string{"https://img/1.jpg", "https://img/2.jpg"},
			Price:       "4 500 MAD",
			Sources:     []string{"https://www.avito.ma/fr/casablanca/velo.htm"},
			PhoneNumber: "+212600000000",
			WhatsApp:    "+212600000000",
		},
		{
			ID:          "1700000000000",
			OriginalURL: "https://www.avito.ma/fr/rabat/lampe.htm",
			Title:       "title unavailable",
			Images:      []string{},
			Price:       "---",
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "json", expected: JSON},
		{input: "catalog.JSON", expected: JSON},
		{input: "dump.jsonl", expected: JSONL},
		{input: "catalog.yml", expected: YAML},
		{input: "YAML", expected: YAML},
		{input: "data/catalog.parquet", expected: Parquet},
		{input: "csv", expected: CSV},
		{input: "catalog.xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{JSON, JSONL, YAML, Parquet} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, format, sampleProducts()))

			got, err := Read(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, sampleProducts(), got)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, CSV, sampleProducts()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, "https://img/1.jpg https://img/2.jpg", records[1][4])
	assert.Equal(t, "---", records[2][2])
}

func TestReadCSVUnsupported(t *testing.T) {
	_, err := Read(bytes.NewReader(nil), CSV)
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"catalog.json", "catalog.jsonl", "catalog.yaml", "catalog.parquet"} {
		t.Run(name, func(t *testing.T) {
			format, err := ParseFormat(name)
			require.NoError(t, err)

			path := filepath.Join(dir, name)
			f, err := os.Create(path)
			require.NoError(t, err)
			require.NoError(t, Write(f, format, sampleProducts()))
			require.NoError(t, f.Close())

			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, sampleProducts(), got)
		})
	}
}

func TestReadJSONAcceptsLines(t *testing.T) {
	input := `{"id":"a","title":"A","images":["https://img/a.jpg"],"price":"1"}

{"id":"b","title":"B","price":"2"}
`
	got, err := Read(bytes.NewBufferString(input), JSON)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, []string{}, got[1].Images)
}

func TestReadRejectsBrokenInput(t *testing.T) {
	_, err := Read(bytes.NewBufferString(`[{"id":`), JSON)
	assert.Error(t, err)

	_, err = Read(bytes.NewBufferString("{\"id\":\"a\"}\nnot json\n"), JSONL)
	assert.Error(t, err)

	_, err = Read(bytes.NewBufferString("not parquet"), Parquet)
	assert.Error(t, err)
}

func TestWriteEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, nil))
	assert.JSONEq(t, `[]`, buf.String())
}

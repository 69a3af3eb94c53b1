package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"povdash/internal/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestPNG(t *testing.T) {
	fig := models.Figure{
		Data: []models.Trace{{
			Type:       "bar",
			Categories: []string{"Chad", "Mali"},
			Values:     []float64{2000, 1500},
		}},
		Layout: models.Layout{Title: models.Title{Text: "Top 20 countries by population = 2010"}},
	}

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, fig))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestPNGSingleZeroBar(t *testing.T) {
	fig := models.Figure{Data: []models.Trace{{Type: "bar", Orientation: "h", Categories: []string{"Chad"}, Values: []float64{0}}}}

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, fig))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestPNGEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, PNG(&buf, models.Figure{}), ErrEmptyFigure)
	assert.ErrorIs(t, PNG(&buf, models.Figure{Data: []models.Trace{{Type: "bar"}}}), ErrEmptyFigure)
	assert.Zero(t, buf.Len())
}

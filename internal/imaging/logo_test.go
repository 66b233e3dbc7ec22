package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFit(t *testing.T) {
	wide := image.NewRGBA(image.Rect(0, 0, 1024, 256))
	got := Fit(wide, 512)
	assert.Equal(t, 512, got.Bounds().Dx())
	assert.Equal(t, 128, got.Bounds().Dy())

	small := image.NewRGBA(image.Rect(0, 0, 64, 64))
	assert.Same(t, small, Fit(small, 512))
}

func TestToWebPLogo(t *testing.T) {
	out, err := ToWebPLogo(bytes.NewReader(pngOf(t, 800, 600)))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 384, cfg.Height)
}

func TestToWebPLogo_RejectsGarbage(t *testing.T) {
	_, err := ToWebPLogo(strings.NewReader("not an image"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

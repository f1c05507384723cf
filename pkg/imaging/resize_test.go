package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"cleanpro-web/pkg/imaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.RGBA{R: 20, G: 150, B: 140, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestResizeKeepsAspectRatio(t *testing.T) {
	out, err := imaging.Resize(pngOf(t, 1280, 720), 640, 75)
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 360, cfg.Height)
}

func TestResizeNeverUpscales(t *testing.T) {
	out, err := imaging.Resize(pngOf(t, 300, 200), 1920, 85)
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestResizeRejectsGarbage(t *testing.T) {
	_, err := imaging.Resize([]byte("not an image"), 640, 75)
	assert.Error(t, err)
}

func TestCheckWidthAndQuality(t *testing.T) {
	assert.NoError(t, imaging.CheckWidth(1080))
	assert.ErrorIs(t, imaging.CheckWidth(1000), imaging.ErrWidthNotAllowed)

	q, err := imaging.CheckQuality(0)
	require.NoError(t, err)
	assert.Equal(t, 75, q)

	_, err = imaging.CheckQuality(100)
	assert.ErrorIs(t, err, imaging.ErrQualityNotAllowed)
}

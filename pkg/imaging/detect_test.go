package imaging_test

import (
	"errors"
	"testing"

	"cleanpro-web/pkg/imaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	png := pngOf(t, 4, 4)

	mime, err := imaging.Detect("hero.png", png)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	tests := []struct {
		name string
		file string
		data []byte
	}{
		{"extension not allowed", "notes.txt", []byte("hello")},
		{"spoofed extension", "hero.jpg", png},
		{"riff but not webp", "clip.webp", []byte("RIFF\x00\x00\x00\x00WAVEfmt ")},
		{"too short", "tiny.png", []byte{0x89}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := imaging.Detect(tt.file, tt.data)
			assert.True(t, errors.Is(err, imaging.ErrNotAnImage), "got %v", err)
		})
	}
}

func TestAllowed(t *testing.T) {
	assert.True(t, imaging.Allowed("a/B.JPEG"))
	assert.False(t, imaging.Allowed("site.css"))
}

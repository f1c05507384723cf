package web

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImageEngine(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1600, 900))))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hero.png"), buf.Bytes(), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fake.jpg"), []byte("<html>not a photo</html>"), 0o644))

	ih := newImageHandler(dir)
	r := gin.New()
	r.GET("/images/*file", ih.serve)
	return r
}

func TestImageHandler(t *testing.T) {
	r := newImageEngine(t)

	tests := []struct {
		name  string
		path  string
		code  int
		ctype string
	}{
		{"original", "/images/hero.png", http.StatusOK, "image/png"},
		{"resized", "/images/hero.png?w=640", http.StatusOK, "image/jpeg"},
		{"resized with quality", "/images/hero.png?w=1080&q=85", http.StatusOK, "image/jpeg"},
		{"width not allowed", "/images/hero.png?w=641", http.StatusBadRequest, ""},
		{"quality not allowed", "/images/hero.png?w=640&q=50", http.StatusBadRequest, ""},
		{"missing", "/images/nope.png", http.StatusNotFound, ""},
		{"traversal", "/images/../../etc/passwd.png", http.StatusNotFound, ""},
		{"not an image type", "/images/site.css", http.StatusNotFound, ""},
		{"spoofed content", "/images/fake.jpg", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.code, w.Code)
			if tt.ctype != "" {
				assert.Equal(t, tt.ctype, w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestImageHandlerWithoutDir(t *testing.T) {
	ih := newImageHandler("")
	r := gin.New()
	r.GET("/images/*file", ih.serve)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/images/hero.png", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

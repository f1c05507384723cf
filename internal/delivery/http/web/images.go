package web

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"

	"cleanpro-web/pkg/imaging"
	"cleanpro-web/pkg/logger"

	"github.com/gin-gonic/gin"
)

// imageHandler serves photos from a directory, optionally resized to one of
// the allowed device widths.
type imageHandler struct {
	root fs.FS
}

func newImageHandler(dir string) *imageHandler {
	if dir == "" {
		return &imageHandler{}
	}
	return &imageHandler{root: os.DirFS(dir)}
}

// Image serves GET /images/*file?w=&q=.
func (h *Handler) Image(c *gin.Context) {
	h.images.serve(c)
}

func (ih *imageHandler) serve(c *gin.Context) {
	name := strings.TrimPrefix(path.Clean("/"+c.Param("file")), "/")
	if ih.root == nil || !imaging.Allowed(name) || !fs.ValidPath(name) {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	data, err := fs.ReadFile(ih.root, name)
	if errors.Is(err, fs.ErrNotExist) {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		logger.Log.Error("Failed to read image", "file", name, "error", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	ctype, err := imaging.Detect(name, data)
	if err != nil {
		logger.Log.Warn("Refusing to serve file as image", "file", name, "error", err)
		c.String(http.StatusNotFound, "Not found")
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	rawWidth := c.Query("w")
	if rawWidth == "" {
		c.Data(http.StatusOK, ctype, data)
		return
	}

	width, err := strconv.Atoi(rawWidth)
	if err == nil {
		err = imaging.CheckWidth(width)
	}
	if err != nil {
		c.String(http.StatusBadRequest, "Width not allowed")
		return
	}
	quality, _ := strconv.Atoi(c.Query("q"))
	if quality, err = imaging.CheckQuality(quality); err != nil {
		c.String(http.StatusBadRequest, "Quality not allowed")
		return
	}

	out, err := imaging.Resize(data, width, quality)
	if err != nil {
		logger.Log.Warn("Failed to resize image", "file", name, "width", width, "error", err)
		c.String(http.StatusUnprocessableEntity, "Image could not be processed")
		return
	}
	c.Data(http.StatusOK, "image/jpeg", out)
}

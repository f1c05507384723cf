// Package imaging produces responsive JPEG variants of the site's photos.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DeviceWidths are the only widths a variant may be requested at.
var DeviceWidths = []int{640, 750, 828, 1080, 1200, 1920, 2048, 3840}

// Qualities are the accepted JPEG qualities; the first is the default.
var Qualities = []int{75, 85}

// ErrWidthNotAllowed rejects widths outside DeviceWidths.
var ErrWidthNotAllowed = errors.New("imaging: width not allowed")

// ErrQualityNotAllowed rejects qualities outside Qualities.
var ErrQualityNotAllowed = errors.New("imaging: quality not allowed")

// CheckWidth reports whether w is one of DeviceWidths.
func CheckWidth(w int) error {
	for _, allowed := range DeviceWidths {
		if w == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrWidthNotAllowed, w)
}

// CheckQuality returns q, or the default when q is zero.
func CheckQuality(q int) (int, error) {
	if q == 0 {
		return Qualities[0], nil
	}
	for _, allowed := range Qualities {
		if q == allowed {
			return q, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrQualityNotAllowed, q)
}

// Resize scales the image in data down to width, keeping the aspect ratio, and
// encodes it as JPEG. Images already narrower than width are re-encoded at their size.
func Resize(data []byte, width, quality int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	newWidth, newHeight := bounds.Dx(), bounds.Dy()
	if newWidth > width {
		newHeight = int(float64(newHeight) * float64(width) / float64(newWidth))
		newWidth = width
	}
	if newHeight < 1 {
		newHeight = 1
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

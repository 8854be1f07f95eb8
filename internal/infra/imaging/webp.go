package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
)

const defaultQuality = 80

var ErrNotSmaller = errors.New("optimized image is not smaller than the original")

// WebPOptimizer downsizes photos wider than MaxWidth and re-encodes them as WebP.
type WebPOptimizer struct {
	MaxWidth int
	Quality  float32
}

func NewWebPOptimizer(maxWidth int) *WebPOptimizer {
	return &WebPOptimizer{MaxWidth: maxWidth, Quality: defaultQuality}
}

func (o *WebPOptimizer) Optimize(file domain.ImageFile) (domain.ImageFile, error) {
	src, format, err := image.Decode(bytes.NewReader(file.Data))
	if err != nil {
		return file, fmt.Errorf("decode %s: %w", file.Name, err)
	}

	resized := false
	if o.MaxWidth > 0 && src.Bounds().Dx() > o.MaxWidth {
		src = scaleToWidth(src, o.MaxWidth)
		resized = true
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: o.Quality}); err != nil {
		return file, fmt.Errorf("encode webp: %w", err)
	}

	if !resized && (format == "webp" || buf.Len() >= len(file.Data)) {
		return file, ErrNotSmaller
	}

	return domain.ImageFile{
		Name:        withExt(file.Name, ".webp"),
		ContentType: "image/webp",
		Data:        buf.Bytes(),
	}, nil
}

func scaleToWidth(src image.Image, width int) image.Image {
	b := src.Bounds()
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func withExt(name, ext string) string {
	base := strings.TrimSuffix(name, path.Ext(name))
	if base == "" {
		base = "image"
	}
	return base + ext
}

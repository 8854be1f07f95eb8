package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
)

func pngFile(t *testing.T, w, h int) domain.ImageFile {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 13), B: uint8((x + y) * 3), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return domain.ImageFile{Name: "leak.png", ContentType: "image/png", Data: buf.Bytes()}
}

func TestOptimizeDownscalesWideImages(t *testing.T) {
	out, err := NewWebPOptimizer(40).Optimize(pngFile(t, 160, 80))
	require.NoError(t, err)

	assert.Equal(t, "leak.webp", out.Name)
	assert.Equal(t, "image/webp", out.ContentType)

	decoded, err := webp.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, 40, decoded.Bounds().Dx())
	assert.Equal(t, 20, decoded.Bounds().Dy())
}

func TestOptimizeRejectsNonImages(t *testing.T) {
	file := domain.ImageFile{Name: "notes.txt", ContentType: "text/plain", Data: []byte("hello")}

	out, err := NewWebPOptimizer(100).Optimize(file)
	assert.Error(t, err)
	assert.Equal(t, file, out)
}

func TestWithExt(t *testing.T) {
	assert.Equal(t, "photo.webp", withExt("photo.jpeg", ".webp"))
	assert.Equal(t, "image.webp", withExt(".png", ".webp"))
	assert.Equal(t, "raw.webp", withExt("raw", ".webp"))
}

package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeFromFilename(t *testing.T) {
	for name, want := range map[string]Type{
		"photo.jpg":    JPEG,
		"PHOTO.JPEG":   JPEG,
		"scan.png":     PNG,
		"sticker.webp": WEBP,
		"legacy.bmp":   BMP,
	} {
		got, err := MakeFromFilename(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	for _, name := range []string{"doc.pdf", "movie.gif", "archive.zip", "noext"} {
		_, err := MakeFromFilename(name)
		assert.Error(t, err, name)
	}
}

func TestMakeFromMIME(t *testing.T) {
	for mime, want := range map[string]Type{
		"image/jpeg":     JPEG,
		"image/png":      PNG,
		"image/webp":     WEBP,
		"image/bmp":      BMP,
		"image/x-ms-bmp": BMP,
	} {
		got, err := MakeFromMIME(mime)
		require.NoError(t, err, mime)
		assert.Equal(t, want, got, mime)
	}

	_, err := MakeFromMIME("application/pdf")
	assert.Error(t, err)
}

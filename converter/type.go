package converter

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Type struct {
	s string
}

var (
	JPEG = Type{"jpeg"}
	PNG  = Type{"png"}
	WEBP = Type{"webp"}
	BMP  = Type{"bmp"}
)

func (t Type) String() string {
	return t.s
}

// MakeFromFilename maps a declared file name onto a supported image type.
func MakeFromFilename(name string) (Type, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	switch ext {
	case "jpg", "jpeg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "webp":
		return WEBP, nil
	case "bmp":
		return BMP, nil
	}

	return Type{}, fmt.Errorf("unsupported image type: %q", ext)
}

// MakeFromMIME maps a sniffed content type onto a supported image type.
func MakeFromMIME(mime string) (Type, error) {
	switch mime {
	case "image/jpeg":
		return JPEG, nil
	case "image/png":
		return PNG, nil
	case "image/webp":
		return WEBP, nil
	case "image/bmp", "image/x-bmp", "image/x-ms-bmp":
		return BMP, nil
	}

	return Type{}, fmt.Errorf("unsupported image content type: %q", mime)
}

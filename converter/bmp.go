package converter

import (
	"bytes"
	"context"
	"image/jpeg"
	"io"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"

	"pdfpress/shared/log"
)

// BMP goes through the pure-Go decoder, vips builds don't reliably ship
// magick support for it.
type Bmp struct {
	logger *zap.Logger
}

func mustBmp(logger *zap.Logger) *Bmp {
	return &Bmp{logger: logger}
}

func (b *Bmp) Convert(ctx context.Context, reader io.Reader, quality int) (io.Reader, int64, error) {
	logger := log.LoggerWithTrace(ctx, b.logger)
	var buf bytes.Buffer

	img, err := bmp.Decode(reader)
	if err != nil {
		logger.Error(err.Error())
		return nil, 0, err
	}

	if err := jpeg.Encode(&buf, flattenOnWhite(img), &jpeg.Options{Quality: quality}); err != nil {
		logger.Error(err.Error())
		return nil, 0, err
	}

	return &buf, int64(buf.Len()), nil
}

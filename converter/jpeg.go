package converter

import (
	"bytes"
	"context"
	"io"

	"github.com/h2non/bimg"
	"go.uber.org/zap"

	"pdfpress/shared/log"
)

type Jpeg struct {
	logger *zap.Logger
}

func mustJpeg(logger *zap.Logger) *Jpeg {
	return &Jpeg{logger: logger}
}

// Convert re-encodes the JPEG at the requested quality. Going through vips
// also normalizes CMYK and EXIF-rotated input.
func (j *Jpeg) Convert(ctx context.Context, reader io.Reader, quality int) (io.Reader, int64, error) {
	logger := log.LoggerWithTrace(ctx, j.logger)

	buf, err := io.ReadAll(reader)
	if err != nil {
		logger.Error(err.Error())
		return nil, 0, err
	}

	out, err := bimg.NewImage(buf).Process(bimg.Options{
		Type:    bimg.JPEG,
		Quality: quality,
	})
	if err != nil {
		logger.Error(err.Error())
		return nil, 0, err
	}

	return bytes.NewReader(out), int64(len(out)), nil
}

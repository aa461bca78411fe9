package converter

import (
	"bytes"
	"context"
	"io"

	"github.com/h2non/bimg"
	"go.uber.org/zap"

	"pdfpress/shared/log"
)

type Png struct {
	logger *zap.Logger
}

func mustPng(logger *zap.Logger) *Png {
	return &Png{logger: logger}
}

func (p *Png) Convert(ctx context.Context, reader io.Reader, quality int) (io.Reader, int64, error) {
	logger := log.LoggerWithTrace(ctx, p.logger)

	buf, err := io.ReadAll(reader)
	if err != nil {
		logger.Error(err.Error())
		return nil, 0, err
	}

	out, err := bimg.NewImage(buf).Process(bimg.Options{
		Type:    bimg.JPEG,
		Quality: quality,
		// JPEG has no alpha channel, flatten transparency on white
		Background: bimg.Color{R: 255, G: 255, B: 255},
	})
	if err != nil {
		logger.Error(err.Error())
		return nil, 0, err
	}

	return bytes.NewReader(out), int64(len(out)), nil
}

package converter

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"io"

	"go.uber.org/zap"
	"golang.org/x/image/webp"

	"pdfpress/shared/log"
)

type Webp struct {
	logger *zap.Logger
}

func mustWebp(logger *zap.Logger) *Webp {
	return &Webp{logger: logger}
}

func (w *Webp) Convert(ctx context.Context, reader io.Reader, quality int) (io.Reader, int64, error) {
	logger := log.LoggerWithTrace(ctx, w.logger)
	var buf bytes.Buffer

	img, err := webp.Decode(reader)
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

func flattenOnWhite(img image.Image) image.Image {
	rgb := image.NewRGBA(img.Bounds())
	draw.Draw(rgb, rgb.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(rgb, rgb.Bounds(), img, img.Bounds().Min, draw.Over)
	return rgb
}

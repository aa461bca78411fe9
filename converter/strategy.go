package converter

import (
	"context"
	"io"

	"go.uber.org/zap"
)

// Strategy normalizes one source image format to baseline RGB JPEG, the only
// format the PDF import path has to deal with. Alpha is flattened to white.
type Strategy interface {
	Convert(ctx context.Context, reader io.Reader, quality int) (io.Reader, int64, error)
}

type StrategyImpl struct {
	m map[Type]Strategy
}

func MustStrategy(logger *zap.Logger) *StrategyImpl {
	m := map[Type]Strategy{
		JPEG: mustJpeg(logger),
		PNG:  mustPng(logger),
		WEBP: mustWebp(logger),
		BMP:  mustBmp(logger),
	}

	return &StrategyImpl{
		m: m,
	}
}

func (s *StrategyImpl) Apply(t Type) Strategy {
	return s.m[t]
}

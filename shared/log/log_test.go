package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))

	// anything unparsable falls back to debug
	assert.Equal(t, zapcore.DebugLevel, parseLevel("loud"))
	assert.Equal(t, zapcore.DebugLevel, parseLevel(""))
}

func TestLoggerWithTrace(t *testing.T) {
	logger := zap.NewNop()

	same := LoggerWithTrace(context.Background(), logger)
	assert.Same(t, logger, same, "no span context leaves the logger untouched")

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01},
		SpanID:  trace.SpanID{0x02},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	enriched := LoggerWithTrace(ctx, logger)
	assert.NotSame(t, logger, enriched, "a valid span context yields an enriched logger")
}

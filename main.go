package main

import (
	"context"
	"log/slog"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hyperdxio/otel-config-go/otelconfig"

	"pdfpress/api/model"
	"pdfpress/api/rest"
	"pdfpress/config"
	"pdfpress/converter"
	"pdfpress/service"
	"pdfpress/shared/log"
	"pdfpress/shared/trace"
	"pdfpress/toolkit"
)

//	@title			pdfpress
//	@version		1.0
//	@description	HTTP backend for merging, splitting, compressing and converting PDF files

// @BasePath	/
func main() {
	serviceConfig := config.New()

	ctx := context.Background()

	tp := trace.InitTrace()
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			slog.Error("Error shutting down tracer provider", "error", err)
		}
	}()

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry()
	if err != nil {
		slog.Error("Error configuring OpenTelemetry", "error", err)
	}
	defer otelShutdown()

	logger := log.InitLogger(ctx, serviceConfig.LogLevel)
	defer func() {
		if err = logger.Sync(); err != nil {
			slog.Error("Error syncing logger", "error", err)
		}
	}()

	runner := toolkit.NewRunner(serviceConfig.PopplerBin, serviceConfig.GhostscriptBin, logger)
	if !runner.PopplerAvailable() {
		logger.Warn("pdftoppm not found on PATH, /api/pdf-to-jpg will be unavailable")
	}
	if !runner.GhostscriptAvailable() {
		logger.Warn("ghostscript not found on PATH, /api/compress will be unavailable")
	}

	converterStrategy := converter.MustStrategy(logger)

	app := fiber.New(fiber.Config{
		AppName:      serviceConfig.AppName,
		BodyLimit:    serviceConfig.MaxBodySizeMB * 1024 * 1024,
		ErrorHandler: model.ErrorHandler,
	})
	app.Use(
		recover.New(),
		otelfiber.Middleware(),
		fiberzap.New(fiberzap.Config{Logger: logger}),
		cors.New(cors.Config{
			ExposeHeaders: "X-Original-Size,X-New-Size,X-Saved-Percent",
		}),
		compress.New(compress.Config{Level: compress.LevelBestSpeed}),
		limiter.New(limiter.Config{
			Next: func(c *fiber.Ctx) bool {
				return c.IP() == "127.0.0.1"
			},
			Max:        serviceConfig.RateLimitMaxRequests,
			Expiration: serviceConfig.RateLimitDuration(),
		}),
		swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "pdfpress",
		}),
	)

	pdfService := service.NewPdfService(serviceConfig, converterStrategy, runner, logger)

	rest.NewPdfController(app, serviceConfig, pdfService, logger)

	if err = app.Listen(":" + serviceConfig.Port); err != nil {
		logger.Panic(err.Error())
		return
	}
}

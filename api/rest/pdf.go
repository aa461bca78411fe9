package rest

import (
	"context"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"pdfpress/api/model"
	"pdfpress/config"
	"pdfpress/service"
	"pdfpress/shared/log"
)

type PdfController struct {
	cfg     *config.Config
	service *service.PdfService
	logger  *zap.Logger
}

func NewPdfController(app *fiber.App, cfg *config.Config, service *service.PdfService, logger *zap.Logger) *PdfController {
	p := &PdfController{cfg: cfg, service: service, logger: logger}

	api := app.Group("/api")
	api.Post("/merge", p.Merge)
	api.Post("/split", p.Split)
	api.Post("/compress", p.Compress)
	api.Post("/jpg-to-pdf", p.ImagesToPDF)
	api.Post("/pdf-to-jpg", p.PDFToImages)

	app.Get("/health", p.Health)

	return p
}

// Merge PDFs
//
//	@Summary		Merge PDF files
//	@Description	Concatenates the uploaded PDF files into a single document, in upload order.
//	@Tags			pdf
//	@Accept			multipart/form-data
//	@Produce		application/pdf
//	@Param			files	formData	file	true	"PDF files (at least 2)"
//	@Success		200		{file}		file	"merged.pdf"
//	@Failure		400		{object}	model.ErrorResponse
//	@Failure		422		{object}	model.ErrorResponse
//	@Router			/api/merge [post]
func (p *PdfController) Merge(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), p.cfg.ProcessTimeout())
	defer cancel()
	logger := log.LoggerWithTrace(ctx, p.logger)

	files, err := formFiles(c, "files")
	if err != nil {
		return err
	}

	result, err := p.service.Merge(ctx, model.MergeRequest{Files: files})
	if err != nil {
		logger.Error("Error merging PDFs", zap.Error(err))
		return err
	}

	return p.send(c, result)
}

// Split PDF
//
//	@Summary		Split a PDF into single pages
//	@Description	Extracts pages as single-page PDFs, either all of them or the ones named by a page range like "1-3,5". Pages come back zipped.
//	@Tags			pdf
//	@Accept			multipart/form-data
//	@Produce		application/zip
//	@Param			file	formData	file	true	"PDF file"
//	@Param			mode	formData	string	false	"all or range"	default(all)
//	@Param			range	formData	string	false	"page range, required when mode=range"
//	@Success		200		{file}		file	"split_pages.zip"
//	@Failure		400		{object}	model.ErrorResponse
//	@Failure		422		{object}	model.ErrorResponse
//	@Router			/api/split [post]
func (p *PdfController) Split(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), p.cfg.ProcessTimeout())
	defer cancel()
	logger := log.LoggerWithTrace(ctx, p.logger)

	file, err := c.FormFile("file")
	if err != nil {
		return model.NewInvalidInput("No file uploaded")
	}

	mode, err := model.MakeSplitModeFromString(c.FormValue("mode"))
	if err != nil {
		return model.NewInvalidInput("Mode must be one of: all, range")
	}

	req := model.SplitRequest{
		File:  file,
		Mode:  mode,
		Range: strings.TrimSpace(c.FormValue("range")),
	}

	result, err := p.service.Split(ctx, req)
	if err != nil {
		logger.Error("Error splitting PDF", zap.Error(err))
		return err
	}

	return p.send(c, result)
}

// Compress PDF
//
//	@Summary		Compress a PDF
//	@Description	Rewrites the PDF with embedded images re-encoded as JPEG. Quality overrides the level preset when given.
//	@Tags			pdf
//	@Accept			multipart/form-data
//	@Produce		application/pdf
//	@Param			file	formData	file	true	"PDF file"
//	@Param			level	formData	string	false	"low, medium or high"	default(medium)
//	@Param			quality	formData	int		false	"JPEG quality, 10-90"
//	@Success		200		{file}		file	"compressed.pdf"
//	@Failure		400		{object}	model.ErrorResponse
//	@Failure		422		{object}	model.ErrorResponse
//	@Router			/api/compress [post]
func (p *PdfController) Compress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), p.cfg.ProcessTimeout())
	defer cancel()
	logger := log.LoggerWithTrace(ctx, p.logger)

	file, err := c.FormFile("file")
	if err != nil {
		return model.NewInvalidInput("No file uploaded")
	}

	level, err := model.MakeCompressLevelFromString(c.FormValue("level"))
	if err != nil {
		return model.NewInvalidInput("Level must be one of: low, medium, high")
	}

	quality := 0
	if raw := strings.TrimSpace(c.FormValue("quality")); raw != "" {
		quality, err = strconv.Atoi(raw)
		if err != nil {
			return model.NewInvalidInput("Quality must be an integer")
		}
		if quality < 10 || quality > 90 {
			return model.NewInvalidInput("Quality must be between 10 and 90")
		}
	}

	req := model.CompressRequest{File: file, Level: level, Quality: quality}

	result, err := p.service.Compress(ctx, req)
	if err != nil {
		logger.Error("Error compressing PDF", zap.Error(err))
		return err
	}

	return p.send(c, result)
}

// Images to PDF
//
//	@Summary		Convert images to a PDF
//	@Description	Builds a PDF with one page per uploaded image (jpg, png, webp or bmp), each page sized to its image.
//	@Tags			pdf
//	@Accept			multipart/form-data
//	@Produce		application/pdf
//	@Param			files	formData	file	true	"image files"
//	@Success		200		{file}		file	"images.pdf"
//	@Failure		400		{object}	model.ErrorResponse
//	@Failure		415		{object}	model.ErrorResponse
//	@Router			/api/jpg-to-pdf [post]
func (p *PdfController) ImagesToPDF(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), p.cfg.ProcessTimeout())
	defer cancel()
	logger := log.LoggerWithTrace(ctx, p.logger)

	files, err := formFiles(c, "files")
	if err != nil {
		return err
	}

	result, err := p.service.ImagesToPDF(ctx, model.ImagesToPDFRequest{Files: files})
	if err != nil {
		logger.Error("Error converting images", zap.Error(err))
		return err
	}

	return p.send(c, result)
}

// PDF to images
//
//	@Summary		Rasterize a PDF to JPEG
//	@Description	Renders every page to a JPEG. One page comes back as image/jpeg, several as a zip.
//	@Tags			pdf
//	@Accept			multipart/form-data
//	@Produce		image/jpeg,application/zip
//	@Param			file	formData	file	true	"PDF file"
//	@Success		200		{file}		file	"page_1.jpg or pdf_pages.zip"
//	@Failure		400		{object}	model.ErrorResponse
//	@Failure		422		{object}	model.ErrorResponse
//	@Router			/api/pdf-to-jpg [post]
func (p *PdfController) PDFToImages(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), p.cfg.ProcessTimeout())
	defer cancel()
	logger := log.LoggerWithTrace(ctx, p.logger)

	file, err := c.FormFile("file")
	if err != nil {
		return model.NewInvalidInput("No file uploaded")
	}

	result, err := p.service.PDFToImages(ctx, model.PDFToImagesRequest{File: file})
	if err != nil {
		logger.Error("Error rasterizing PDF", zap.Error(err))
		return err
	}

	return p.send(c, result)
}

// Health check
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func (p *PdfController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (p *PdfController) send(c *fiber.Ctx, result *model.OperationResult) error {
	c.Set(fiber.HeaderContentType, result.ContentType)
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(result.Data)))
	c.Set(fiber.HeaderContentDisposition, result.ContentDisposition())
	for k, v := range result.Headers {
		c.Set(k, v)
	}

	return c.Send(result.Data)
}

// formFiles reads the multi-file field. The README documents it as "files[]",
// the reference client sends "files", so both spellings are accepted.
func formFiles(c *fiber.Ctx, field string) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, model.NewInvalidInput("Expected a multipart upload")
	}

	files := form.File[field]
	if len(files) == 0 {
		files = form.File[field+"[]"]
	}

	return files, nil
}

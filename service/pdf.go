package service

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"

	"pdfpress/api/model"
	"pdfpress/config"
	"pdfpress/converter"
	"pdfpress/shared/log"
	"pdfpress/toolkit"
)

// importQuality is the JPEG quality uploaded images are normalized to before
// they are laid out onto PDF pages.
const importQuality = 92

type PdfService struct {
	config    *config.Config
	converter *converter.StrategyImpl
	toolkit   *toolkit.Runner

	logger *zap.Logger
}

func NewPdfService(c *config.Config, strategy *converter.StrategyImpl, runner *toolkit.Runner, logger *zap.Logger) *PdfService {
	return &PdfService{config: c, converter: strategy, toolkit: runner, logger: logger}
}

func pdfConf() *pdfmodel.Configuration {
	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed
	return conf
}

// Merge concatenates the uploaded PDFs in input order.
func (s *PdfService) Merge(ctx context.Context, req model.MergeRequest) (*model.OperationResult, error) {
	logger := log.LoggerWithTrace(ctx, s.logger)

	if len(req.Files) < 2 {
		return nil, model.NewInvalidInput("Upload at least 2 PDF files to merge")
	}
	if len(req.Files) > s.config.MaxFiles {
		return nil, model.NewInvalidInput("Maximum %d files allowed", s.config.MaxFiles)
	}

	ws, err := newWorkspace()
	if err != nil {
		return nil, err
	}
	defer ws.cleanup()

	inputs := make([]string, 0, len(req.Files))
	for i, fh := range req.Files {
		path, err := s.storePDF(ws, fh, i+1)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, path)
	}

	out := ws.outPath("merged.pdf")
	if err := api.MergeCreateFile(inputs, out, false, pdfConf()); err != nil {
		logger.Error("merge failed", zap.Error(err))
		return nil, model.NewProcessingFailure(err, "Merge failed")
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return nil, model.NewProcessingFailure(err, "Merge failed")
	}

	return &model.OperationResult{
		Data:        data,
		Filename:    "merged.pdf",
		ContentType: "application/pdf",
	}, nil
}

// Split extracts the selected pages, one single-page PDF per page, and
// returns them zipped.
func (s *PdfService) Split(ctx context.Context, req model.SplitRequest) (*model.OperationResult, error) {
	logger := log.LoggerWithTrace(ctx, s.logger)

	if req.File == nil {
		return nil, model.NewInvalidInput("No file uploaded")
	}

	ws, err := newWorkspace()
	if err != nil {
		return nil, err
	}
	defer ws.cleanup()

	in, err := s.storePDF(ws, req.File, 1)
	if err != nil {
		return nil, err
	}

	total, err := api.PageCountFile(in)
	if err != nil {
		return nil, model.NewParseFailure(err, "%q is not a valid PDF", req.File.Filename)
	}

	var pages []int
	if req.Mode == model.SplitAll {
		for p := 1; p <= total; p++ {
			pages = append(pages, p)
		}
	} else {
		if pages, err = ParsePageSelection(req.Range, total); err != nil {
			return nil, err
		}
	}

	entries := make([]zipEntry, 0, len(pages))
	for _, p := range pages {
		name := fmt.Sprintf("page_%03d.pdf", p)
		out := ws.outPath(name)
		if err := api.CollectFile(in, out, []string{strconv.Itoa(p)}, pdfConf()); err != nil {
			logger.Error("page extraction failed", zap.Int("page", p), zap.Error(err))
			return nil, model.NewProcessingFailure(err, "Split failed")
		}
		entries = append(entries, zipEntry{name: name, path: out})
	}

	data, err := zipFiles(entries)
	if err != nil {
		return nil, err
	}

	return &model.OperationResult{
		Data:        data,
		Filename:    "split_pages.zip",
		ContentType: "application/zip",
	}, nil
}

// Compress rewrites the PDF through ghostscript with JPEG re-encoding of
// embedded images at the effective quality.
func (s *PdfService) Compress(ctx context.Context, req model.CompressRequest) (*model.OperationResult, error) {
	logger := log.LoggerWithTrace(ctx, s.logger)

	if req.File == nil {
		return nil, model.NewInvalidInput("No file uploaded")
	}

	quality := req.Quality
	if quality == 0 {
		quality = req.Level.Quality()
	}

	if !s.toolkit.GhostscriptAvailable() {
		return nil, model.NewProcessingFailure(nil, "PDF toolkit is not available on this server")
	}

	ws, err := newWorkspace()
	if err != nil {
		return nil, err
	}
	defer ws.cleanup()

	in, err := s.storePDF(ws, req.File, 1)
	if err != nil {
		return nil, err
	}

	originalSize := req.File.Size

	out := ws.outPath("compressed.pdf")
	if err := s.toolkit.Rewrite(ctx, in, out, quality); err != nil {
		logger.Error("compression failed", zap.Error(err))
		return nil, model.NewProcessingFailure(err, "Compression failed")
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return nil, model.NewProcessingFailure(err, "Compression failed")
	}

	saved := 0.0
	if originalSize > 0 {
		saved = (1 - float64(len(data))/float64(originalSize)) * 100
	}

	return &model.OperationResult{
		Data:        data,
		Filename:    "compressed.pdf",
		ContentType: "application/pdf",
		Headers: map[string]string{
			"X-Original-Size": strconv.FormatInt(originalSize, 10),
			"X-New-Size":      strconv.Itoa(len(data)),
			"X-Saved-Percent": strconv.FormatFloat(saved, 'f', 1, 64),
		},
	}, nil
}

// ImagesToPDF lays the uploaded images out as one page per image, each page
// sized to its image.
func (s *PdfService) ImagesToPDF(ctx context.Context, req model.ImagesToPDFRequest) (*model.OperationResult, error) {
	logger := log.LoggerWithTrace(ctx, s.logger)

	if len(req.Files) == 0 {
		return nil, model.NewInvalidInput("No images uploaded")
	}
	if len(req.Files) > s.config.MaxFiles {
		return nil, model.NewInvalidInput("Maximum %d images allowed", s.config.MaxFiles)
	}

	ws, err := newWorkspace()
	if err != nil {
		return nil, err
	}
	defer ws.cleanup()

	inputs := make([]string, 0, len(req.Files))
	for i, fh := range req.Files {
		path, err := s.storeImage(ctx, ws, fh, i+1)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, path)
	}

	out := ws.outPath("images.pdf")
	if err := api.ImportImagesFile(inputs, out, nil, pdfConf()); err != nil {
		logger.Error("image import failed", zap.Error(err))
		return nil, model.NewProcessingFailure(err, "Conversion failed")
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return nil, model.NewProcessingFailure(err, "Conversion failed")
	}

	return &model.OperationResult{
		Data:        data,
		Filename:    "images.pdf",
		ContentType: "application/pdf",
	}, nil
}

// PDFToImages rasterizes every page via poppler. A single page comes back as
// a JPEG, multiple pages as a zip.
func (s *PdfService) PDFToImages(ctx context.Context, req model.PDFToImagesRequest) (*model.OperationResult, error) {
	logger := log.LoggerWithTrace(ctx, s.logger)

	if req.File == nil {
		return nil, model.NewInvalidInput("No file uploaded")
	}

	if !s.toolkit.PopplerAvailable() {
		return nil, model.NewProcessingFailure(nil, "PDF toolkit is not available on this server")
	}

	ws, err := newWorkspace()
	if err != nil {
		return nil, err
	}
	defer ws.cleanup()

	in, err := s.storePDF(ws, req.File, 1)
	if err != nil {
		return nil, err
	}

	pages, err := s.toolkit.Rasterize(ctx, in, ws.outDir, s.config.RasterDPI)
	if err != nil {
		logger.Error("rasterization failed", zap.Error(err))
		return nil, model.NewProcessingFailure(err, "PDF to JPG failed")
	}
	if len(pages) == 0 {
		return nil, model.NewProcessingFailure(nil, "Could not render this PDF")
	}

	if len(pages) == 1 {
		data, err := os.ReadFile(pages[0])
		if err != nil {
			return nil, model.NewProcessingFailure(err, "PDF to JPG failed")
		}
		return &model.OperationResult{
			Data:        data,
			Filename:    "page_1.jpg",
			ContentType: "image/jpeg",
		}, nil
	}

	entries := make([]zipEntry, 0, len(pages))
	for i, p := range pages {
		entries = append(entries, zipEntry{name: fmt.Sprintf("page_%03d.jpg", i+1), path: p})
	}

	data, err := zipFiles(entries)
	if err != nil {
		return nil, err
	}

	return &model.OperationResult{
		Data:        data,
		Filename:    "pdf_pages.zip",
		ContentType: "application/zip",
	}, nil
}

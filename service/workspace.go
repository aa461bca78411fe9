package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"pdfpress/api/model"
	"pdfpress/converter"
)

// workspace is the request-scoped scratch area. Everything written here is
// removed before the response leaves, success or error.
type workspace struct {
	dir    string
	inDir  string
	outDir string
}

func newWorkspace() (*workspace, error) {
	dir, err := os.MkdirTemp("", "pdfpress-*")
	if err != nil {
		return nil, model.NewProcessingFailure(err, "could not create workspace")
	}

	ws := &workspace{
		dir:    dir,
		inDir:  filepath.Join(dir, "in"),
		outDir: filepath.Join(dir, "out"),
	}
	for _, d := range []string{ws.inDir, ws.outDir} {
		if err := os.Mkdir(d, 0o755); err != nil {
			os.RemoveAll(dir)
			return nil, model.NewProcessingFailure(err, "could not create workspace")
		}
	}

	return ws, nil
}

func (w *workspace) cleanup() {
	os.RemoveAll(w.dir)
}

func (w *workspace) inPath(name string) string {
	return filepath.Join(w.inDir, name)
}

func (w *workspace) outPath(name string) string {
	return filepath.Join(w.outDir, name)
}

// storePDF persists one uploaded PDF into the workspace. The declared name,
// the sniffed content and the pdfcpu parse all have to agree before any
// operation sees the file.
func (s *PdfService) storePDF(ws *workspace, fh *multipart.FileHeader, seq int) (string, error) {
	if !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
		return "", model.NewParseFailure(nil, "%q is not a PDF", fh.Filename)
	}
	if fh.Size > s.config.MaxFileSize() {
		return "", model.NewInvalidInput("Each file must be under %dMB", s.config.MaxFileSizeMB)
	}

	data, err := readUpload(fh)
	if err != nil {
		return "", err
	}
	if !mimetype.Detect(data).Is("application/pdf") {
		return "", model.NewParseFailure(nil, "%q is not a valid PDF", fh.Filename)
	}

	path := ws.inPath(fmt.Sprintf("in_%03d.pdf", seq))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", model.NewProcessingFailure(err, "could not store upload")
	}

	if err := api.ValidateFile(path, pdfConf()); err != nil {
		return "", model.NewParseFailure(err, "%q is not a valid PDF", fh.Filename)
	}

	return path, nil
}

// storeImage normalizes one uploaded image to JPEG and persists it. The
// declared extension and the sniffed content both have to name a supported
// image format.
func (s *PdfService) storeImage(ctx context.Context, ws *workspace, fh *multipart.FileHeader, seq int) (string, error) {
	if _, err := converter.MakeFromFilename(fh.Filename); err != nil {
		return "", model.NewUnsupportedFileType("%q is not a supported image", fh.Filename)
	}
	if fh.Size > s.config.MaxFileSize() {
		return "", model.NewInvalidInput("Each file must be under %dMB", s.config.MaxFileSizeMB)
	}

	data, err := readUpload(fh)
	if err != nil {
		return "", err
	}

	t, err := converter.MakeFromMIME(mimetype.Detect(data).String())
	if err != nil {
		return "", model.NewUnsupportedFileType("%q is not a supported image", fh.Filename)
	}

	jpg, _, err := s.converter.Apply(t).Convert(ctx, bytes.NewReader(data), importQuality)
	if err != nil {
		return "", model.NewParseFailure(err, "could not decode image %q", fh.Filename)
	}

	path := ws.inPath(fmt.Sprintf("in_%03d.jpg", seq))
	f, err := os.Create(path)
	if err != nil {
		return "", model.NewProcessingFailure(err, "could not store upload")
	}
	defer f.Close()

	if _, err := io.Copy(f, jpg); err != nil {
		return "", model.NewProcessingFailure(err, "could not store upload")
	}

	return path, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, model.NewProcessingFailure(err, "could not read upload")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, model.NewProcessingFailure(err, "could not read upload")
	}
	return data, nil
}

package toolkit

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
)

// Rasterize renders every page of pdfPath to a JPEG in outDir and returns the
// produced paths in page order. pdftoppm names them <prefix>-<page>.jpg with
// the page number zero-padded per document, so a lexical sort is page order.
func (r *Runner) Rasterize(ctx context.Context, pdfPath, outDir string, dpi int) ([]string, error) {
	prefix := filepath.Join(outDir, "page")

	args := []string{
		"-jpeg",
		"-r", fmt.Sprintf("%d", dpi),
		"-jpegopt", "quality=90",
		pdfPath,
		prefix,
	}
	if err := r.run(ctx, r.popplerBin, args, outDir); err != nil {
		return nil, err
	}

	pages, err := filepath.Glob(prefix + "-*.jpg")
	if err != nil {
		return nil, err
	}
	sort.Strings(pages)

	return pages, nil
}

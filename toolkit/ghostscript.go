package toolkit

import (
	"context"
	"fmt"
)

// Rewrite runs the input through ghostscript's pdfwrite device, re-encoding
// embedded images as JPEG at the given quality. Lower quality means a smaller
// file. The device also recompresses streams and drops unused objects.
func (r *Runner) Rewrite(ctx context.Context, inPath, outPath string, quality int) error {
	args := []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.5",
		"-dAutoFilterColorImages=false",
		"-dAutoFilterGrayImages=false",
		"-dColorImageFilter=/DCTEncode",
		"-dGrayImageFilter=/DCTEncode",
		fmt.Sprintf("-dJPEGQ=%d", quality),
		"-dDetectDuplicateImages=true",
		"-dNOPAUSE",
		"-dBATCH",
		"-dQUIET",
		"-sOutputFile=" + outPath,
		inPath,
	}

	return r.run(ctx, r.ghostscriptBin, args, "")
}

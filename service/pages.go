package service

import (
	"strconv"
	"strings"

	"pdfpress/api/model"
)

// ParsePageSelection parses a page-range expression like "1-3,5" against a
// document of total pages. Terms are comma-separated, each either a single
// 1-based page number or an inclusive A-B span. Every referenced page must
// exist; a selection reaching outside the document is rejected rather than
// clamped. Duplicates collapse to the first occurrence, order is preserved.
func ParsePageSelection(expr string, total int) ([]int, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, model.NewInvalidInput("Page range is required")
	}

	var pages []int
	seen := make(map[int]bool)

	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, model.NewInvalidInput("Malformed page range %q", expr)
		}

		from, to := part, part
		if a, b, ok := strings.Cut(part, "-"); ok {
			from, to = strings.TrimSpace(a), strings.TrimSpace(b)
		}

		lo, err := strconv.Atoi(from)
		if err != nil {
			return nil, model.NewInvalidInput("Malformed page range %q", expr)
		}
		hi, err := strconv.Atoi(to)
		if err != nil {
			return nil, model.NewInvalidInput("Malformed page range %q", expr)
		}

		if lo < 1 || hi < lo {
			return nil, model.NewInvalidInput("Malformed page range %q", expr)
		}
		if hi > total {
			return nil, model.NewInvalidInput("Page range %q is out of bounds, the document has %d page(s)", part, total)
		}

		for p := lo; p <= hi; p++ {
			if !seen[p] {
				seen[p] = true
				pages = append(pages, p)
			}
		}
	}

	return pages, nil
}

package service

import (
	"archive/zip"
	"bytes"
	"io"
	"os"

	"pdfpress/api/model"
)

type zipEntry struct {
	name string
	path string
}

func zipFiles(entries []zipEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, e := range entries {
		f, err := os.Open(e.path)
		if err != nil {
			return nil, model.NewProcessingFailure(err, "could not package result")
		}

		w, err := zw.Create(e.name)
		if err == nil {
			_, err = io.Copy(w, f)
		}
		f.Close()
		if err != nil {
			return nil, model.NewProcessingFailure(err, "could not package result")
		}
	}

	if err := zw.Close(); err != nil {
		return nil, model.NewProcessingFailure(err, "could not package result")
	}

	return buf.Bytes(), nil
}

package model

import (
	"fmt"
	"mime/multipart"
)

type SplitMode struct {
	s string
}

var (
	SplitAll   = SplitMode{"all"}
	SplitRange = SplitMode{"range"}
)

func (m SplitMode) String() string {
	return m.s
}

func MakeSplitModeFromString(s string) (SplitMode, error) {
	switch s {
	case SplitAll.s, "":
		return SplitAll, nil
	case SplitRange.s:
		return SplitRange, nil
	}

	return SplitMode{}, fmt.Errorf("unknown split mode: %s", s)
}

type CompressLevel struct {
	s       string
	quality int
}

var (
	LevelLow    = CompressLevel{"low", 75}
	LevelMedium = CompressLevel{"medium", 50}
	LevelHigh   = CompressLevel{"high", 20}
)

func (l CompressLevel) String() string {
	return l.s
}

// Quality is the JPEG quality the level maps to when the caller does not
// send an explicit quality value.
func (l CompressLevel) Quality() int {
	return l.quality
}

func MakeCompressLevelFromString(s string) (CompressLevel, error) {
	switch s {
	case LevelLow.s:
		return LevelLow, nil
	case LevelMedium.s, "":
		return LevelMedium, nil
	case LevelHigh.s:
		return LevelHigh, nil
	}

	return CompressLevel{}, fmt.Errorf("unknown compression level: %s", s)
}

type MergeRequest struct {
	Files []*multipart.FileHeader
}

type SplitRequest struct {
	File  *multipart.FileHeader
	Mode  SplitMode
	Range string
}

type CompressRequest struct {
	File    *multipart.FileHeader
	Level   CompressLevel
	Quality int // 0 means derive from Level
}

type ImagesToPDFRequest struct {
	Files []*multipart.FileHeader
}

type PDFToImagesRequest struct {
	File *multipart.FileHeader
}

// OperationResult is the produced file as it goes back over the wire.
type OperationResult struct {
	Data        []byte
	Filename    string
	ContentType string
	Headers     map[string]string
}

func (r *OperationResult) ContentDisposition() string {
	return fmt.Sprintf("attachment; filename=%s", r.Filename)
}

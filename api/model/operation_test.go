package model

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSplitModeFromString(t *testing.T) {
	mode, err := MakeSplitModeFromString("range")
	require.NoError(t, err)
	assert.Equal(t, SplitRange, mode)

	mode, err = MakeSplitModeFromString("")
	require.NoError(t, err)
	assert.Equal(t, SplitAll, mode, "missing mode defaults to all")

	_, err = MakeSplitModeFromString("pages")
	assert.Error(t, err)
}

func TestMakeCompressLevelFromString(t *testing.T) {
	for s, want := range map[string]CompressLevel{
		"low":    LevelLow,
		"medium": LevelMedium,
		"high":   LevelHigh,
		"":       LevelMedium,
	} {
		level, err := MakeCompressLevelFromString(s)
		require.NoError(t, err)
		assert.Equal(t, want, level)
	}

	_, err := MakeCompressLevelFromString("ultra")
	assert.Error(t, err)
}

func TestCompressLevelQuality(t *testing.T) {
	// higher compression means lower JPEG quality
	assert.Equal(t, 75, LevelLow.Quality())
	assert.Equal(t, 50, LevelMedium.Quality())
	assert.Equal(t, 20, LevelHigh.Quality())
}

func TestErrorKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, InvalidInput.Status())
	assert.Equal(t, http.StatusUnsupportedMediaType, UnsupportedFileType.Status())
	assert.Equal(t, http.StatusUnprocessableEntity, ParseFailure.Status())
	assert.Equal(t, http.StatusInternalServerError, ProcessingFailure.Status())
}

func TestErrorMessageHidesCause(t *testing.T) {
	err := NewParseFailure(assert.AnError, "%q is not a valid PDF", "x.pdf")

	assert.Equal(t, `"x.pdf" is not a valid PDF`, err.Message)
	assert.Contains(t, err.Error(), assert.AnError.Error())
}

package image

import (
	"errors"
	"image"
	"io"
	"time"

	"stegex/pkg/config"
	"stegex/pkg/model"
)

const (
	MaxBytesAllocatedAtOnce = 1000 * 1000 * 1000
)

var (
	ErrExtractExceedsCapacity = errors.New("requested more bytes than the image LSBs can hold")
	ErrMaxAllocExceeded       = errors.New("tried to allocate too much memory at once during extraction, which could lead to OOM panic")
)

// Extractor drains the LSB payload of an image through a Reader, either into
// memory or into a writer in configurable chunks. Like the Reader it wraps, an
// Extractor is single-caller and keeps sole read access to the image.
type Extractor struct {
	reader *Reader
	image  *image.RGBA
	config config.ImageExtractConfig
	stats  model.ExtractStats
}

func NewImageExtractor(img *image.RGBA, iConfig config.ImageExtractConfig) *Extractor {
	iConfig = iConfig.PopulateUnsetConfigVars()

	return &Extractor{
		reader: NewReader(img),
		image:  img,
		config: iConfig,
	}
}

func (e *Extractor) Stats() model.ExtractStats {
	return e.stats
}

// Capacity is the number of whole payload bytes recoverable from the image:
// one bit per RGB channel per pixel, rounded down to a byte boundary.
func (e *Extractor) Capacity() int {
	return e.image.Rect.Dx() * e.image.Rect.Dy() * channelsToRead / 8
}

// Progress reports the wrapped reader's advisory completion percentage.
func (e *Extractor) Progress() int {
	return e.reader.Progress()
}

// Extract reads exactly numOfBytesToExtract payload bytes into memory. Asking
// for more than the image holds fails with ErrExtractExceedsCapacity.
func (e *Extractor) Extract(numOfBytesToExtract int) ([]byte, error) {
	if numOfBytesToExtract > MaxBytesAllocatedAtOnce {
		return nil, ErrMaxAllocExceeded
	}

	extractStart := time.Now()
	defer func() {
		e.stats.DataExtraction += time.Since(extractStart)
	}()

	extractedBytes := make([]byte, numOfBytesToExtract)
	if _, err := io.ReadFull(e.reader, extractedBytes); err != nil {
		return nil, ErrExtractExceedsCapacity
	}
	return extractedBytes, nil
}

// ExtractTo drains payload bytes into output. A limit of zero or less means
// everything the image holds. Returns the number of bytes written.
func (e *Extractor) ExtractTo(output io.Writer, limit int) (int64, error) {
	extractStart := time.Now()
	defer func() {
		e.stats.DataExtraction += time.Since(extractStart)
	}()

	var src io.Reader = e.reader
	if limit > 0 {
		src = io.LimitReader(e.reader, int64(limit))
	}
	return io.CopyBuffer(output, src, make([]byte, e.config.ChunkSize))
}

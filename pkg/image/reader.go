package image

import (
	"fmt"
	"image"
	"io"
)

const (
	channelsToRead = 3 // red, green, blue; alpha carries no payload
)

// Reader recovers the byte stream hidden in the least significant bit of each
// RGB channel of an image. It implements io.Reader: bytes are packed on demand
// into the caller's buffer, and the scan position survives between calls, so a
// payload can be drained through buffers of any size.
//
// The scan walks columns in the outer loop, rows in the inner loop, and the
// red, green and blue channels of each pixel in order. The first bit extracted
// becomes the least significant bit of the byte under construction. A Reader
// must not be shared between goroutines.
type Reader struct {
	image *image.RGBA

	// Cursor to the next channel to sample. x == width marks exhaustion.
	x, y, c int
}

// NewReader returns a Reader positioned at the first pixel of img. The Reader
// keeps the image for its whole lifetime and never mutates it.
func NewReader(img *image.RGBA) *Reader {
	return &Reader{
		image: img,
	}
}

// Read packs LSBs into b until b is full or the image is exhausted. It returns
// the number of whole bytes written. On exhaustion a trailing partial byte is
// zero-padded up to a byte boundary and flushed into b as scratch, but only
// whole payload bytes are counted, so draining a WxH image yields exactly
// W*H*3/8 bytes. Every call after exhaustion returns 0, io.EOF.
func (r *Reader) Read(b []byte) (int, error) {
	width, height := r.image.Rect.Dx(), r.image.Rect.Dy()
	if r.x >= width {
		return 0, io.EOF
	}
	if len(b) == 0 {
		return 0, nil
	}

	var bytesRead int
	var currByte byte
	var currBit uint
	for x := r.x; x < width; x++ {
		for y := r.y; y < height; y++ {
			pixelOffset := r.image.PixOffset(r.image.Rect.Min.X+x, r.image.Rect.Min.Y+y)
			for c := r.c; c < channelsToRead; c++ {
				if bytesRead == len(b) {
					r.x, r.y, r.c = x, y, c
					return bytesRead, nil
				}
				if currBit > 7 {
					panic(fmt.Sprintf("bit accumulator overflow on channel %d of pixel (%d, %d)", c, x, y))
				}
				currByte |= (r.image.Pix[pixelOffset+c] & 1) << currBit
				currBit++
				if currBit == 8 {
					b[bytesRead] = currByte
					bytesRead++
					currByte = 0
					currBit = 0
				}
			}
			r.c = 0
		}
		r.y = 0
	}

	r.x = width
	if currBit > 0 {
		// Zero-pad the trailing partial byte to a byte boundary. It is
		// flushed but not counted, since it holds no whole payload byte.
		b[bytesRead] = currByte
	}
	if bytesRead == 0 {
		return 0, io.EOF
	}
	return bytesRead, nil
}

// Progress reports an advisory completion percentage derived from the cursor.
// It only approximates how much of the image has been scanned and has no
// bearing on extraction correctness.
func (r *Reader) Progress() int {
	totalPixels := r.image.Rect.Dx() * r.image.Rect.Dy()
	if totalPixels == 0 {
		return 100
	}
	return (r.x * r.y * 100) / totalPixels
}

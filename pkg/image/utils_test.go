package image

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"stegex/internal/bits"
)

// generateImage builds a width x height RGBA image with random channel values,
// including random alpha, so tests exercise grids where every bit position is
// populated with noise.
func generateImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Min: image.Point{}, Max: image.Point{X: width, Y: height}})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: randUint8(), G: randUint8(), B: randUint8(), A: randUint8()})
		}
	}
	return img
}

// embedPayload plants the payload bits into the RGB channel LSBs of img,
// walking columns in the outer loop, rows in the inner loop and channels red,
// green, blue, which is the exact order extraction samples them in. Channels
// beyond the end of the payload keep their original noise bits.
func embedPayload(img *image.RGBA, payload []byte) {
	payloadBits := bits.NewBitReader(payload)
	width, height := img.Rect.Dx(), img.Rect.Dy()
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			pixelOffset := img.PixOffset(x, y)
			for c := 0; c < channelsToRead; c++ {
				if payloadBits.BitsLeftToRead() == 0 {
					return
				}
				img.Pix[pixelOffset+c] = img.Pix[pixelOffset+c]&^1 | payloadBits.ReadBit()
			}
		}
	}
}

// generateImageWithPayload builds a random image big enough for the payload
// and embeds it.
func generateImageWithPayload(width, height int, payload []byte, t *testing.T) *image.RGBA {
	t.Helper()
	if width*height*channelsToRead < len(payload)*8 {
		t.Fatalf("Test image %dx%d cannot hold a %d byte payload", width, height, len(payload))
	}
	img := generateImage(width, height)
	embedPayload(img, payload)
	return img
}

func generateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}

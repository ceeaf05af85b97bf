package test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"

	"stegex/internal/bits"
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateImageWithPayload builds an opaque random image with payload planted
// in the RGB channel LSBs, columns outer, rows inner, channels red to blue,
// matching the extraction scan order.
func GenerateImageWithPayload(width, height int, payload []byte) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Min: image.Point{}, Max: image.Point{X: width, Y: height}})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: randUint8(), G: randUint8(), B: randUint8(), A: 255})
		}
	}

	payloadBits := bits.NewBitReader(payload)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			pixelOffset := img.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				if payloadBits.BitsLeftToRead() == 0 {
					return img
				}
				img.Pix[pixelOffset+c] = img.Pix[pixelOffset+c]&^1 | payloadBits.ReadBit()
			}
		}
	}
	return img
}

// EncodePNG returns the image as PNG bytes, as a request body would carry it.
func EncodePNG(img *image.RGBA) []byte {
	var encodedPNG bytes.Buffer
	if err := png.Encode(&encodedPNG, img); err != nil {
		panic(err)
	}
	return encodedPNG.Bytes()
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}

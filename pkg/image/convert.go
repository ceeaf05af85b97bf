package image

import (
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
)

func init() {
	image.RegisterFormat("jpeg", "jpeg", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("jpg", "jpg", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "png", png.Decode, png.DecodeConfig)
}

// DecodeRGBA decodes an image from input and converts it to the 4-channel,
// 8-bit-per-channel representation the extraction core scans. Lossless sources
// are required for the LSBs to survive; the decode itself applies no
// color-space transformation.
func DecodeRGBA(input io.Reader) (*image.RGBA, error) {
	srcImage, _, err := image.Decode(input)
	if err != nil {
		return nil, err
	}
	return RGBAFromImage(srcImage), nil
}

func RGBAFromImage(srcImage image.Image) *image.RGBA {
	if rgbaImage, ok := srcImage.(*image.RGBA); ok {
		return rgbaImage
	}

	// TODO: Work with 16-bit images
	img := image.NewRGBA(srcImage.Bounds())
	draw.Draw(img, img.Bounds(), srcImage, img.Bounds().Min, draw.Src)

	return img
}

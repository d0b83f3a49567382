// Package imaging decodes uploaded photos and prepares the pixel
// tensor the vision model expects.
package imaging

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DefaultInputSize is the square input resolution of the vision model
const DefaultInputSize = 224

// Decode parses raw image bytes. Malformed input yields an error.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// Normalize converts an image to RGB, resizes it to size x size and
// returns the pixels as float32 values in [0,1], row-major, three
// channels per pixel.
func Normalize(img image.Image, size int) []float32 {
	if size <= 0 {
		size = DefaultInputSize
	}

	resized := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, img.Bounds(), draw.Src, nil)

	pixels := make([]float32, 0, size*size*3)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			offset := resized.PixOffset(x, y)
			// RGBA stride is 4; alpha is dropped
			pixels = append(pixels,
				float32(resized.Pix[offset])/255,
				float32(resized.Pix[offset+1])/255,
				float32(resized.Pix[offset+2])/255,
			)
		}
	}
	return pixels
}

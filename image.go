package tonecurve

import (
	"image"
	"image/draw"
)

// FromImage converts any image into the straight-alpha RGBA8 buffer the
// pipeline consumes, row-major with a stride of width*4.
func FromImage(img image.Image) (pix []uint8, w, h int) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	return nrgba.Pix, w, h
}

// ToImage wraps a rendered buffer as an image for encoding. The buffer is
// shared, not copied.
func ToImage(pix []uint8, w, h int) *image.NRGBA {
	return &image.NRGBA{Pix: pix, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
}

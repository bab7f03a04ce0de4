package bitmap

import (
	"image"

	"github.com/disintegration/imaging"
)

// Encode packs src row by row. Alpha is dropped, not composited.
func Encode(src image.Image) *RGB565 {
	nrgba, ok := src.(*image.NRGBA)
	if !ok {
		nrgba = imaging.Clone(src)
	}

	b := nrgba.Bounds()
	dst := NewRGB565(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := nrgba.PixOffset(x, y)
			dst.SetRGB(x, y, nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2])
		}
	}

	return dst
}

// Resize stretches src to exactly w×h, ignoring aspect ratio. Paletted
// sources are sampled nearest so no colours outside the palette appear.
func Resize(src image.Image, w, h int) *image.NRGBA {
	filter := imaging.CatmullRom
	if _, ok := src.(*image.Paletted); ok {
		filter = imaging.NearestNeighbor
	}
	return imaging.Resize(src, w, h, filter)
}

package bitmap

import (
	"encoding/binary"
	"image"
	"image/color"
	"math/bits"
)

// https://github.com/gonutz/framebuffer/blob/master/fb.go

func NewRGB565(r image.Rectangle) *RGB565 {
	return &RGB565{
		pixels: make([]byte, 2*r.Dx()*r.Dy()),
		stride: 2 * r.Dx(),
		bounds: r,
	}
}

// RGB565 is a raster in the byte order the ST7789 reads over SPI. It
// implements the draw.Image interface.
type RGB565 struct {
	pixels []byte
	stride int
	bounds image.Rectangle
}

// Bounds implements the image.Image (and draw.Image) interface.
func (d *RGB565) Bounds() image.Rectangle {
	return d.bounds
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (d *RGB565) ColorModel() color.Model {
	return Model
}

// At implements the image.Image (and draw.Image) interface.
func (d *RGB565) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(d.bounds)) {
		return Color(0)
	}
	i := d.offset(x, y)
	return Color(binary.BigEndian.Uint16(d.pixels[i:]))
}

// Set implements the draw.Image interface.
func (d *RGB565) Set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	d.SetRGB(x, y, n.R, n.G, n.B)
}

// SetRGB stores 8-bit channels without going through the premultiplied
// color.Color path, so transparent pixels keep their colour.
func (d *RGB565) SetRGB(x, y int, r, g, b uint8) {
	if !(image.Point{X: x, Y: y}.In(d.bounds)) {
		return
	}
	i := d.offset(x, y)
	binary.BigEndian.PutUint16(d.pixels[i:], Pack(r, g, b))
}

// Bytes returns the raw pixel stream, high byte first.
func (d *RGB565) Bytes() []byte {
	return d.pixels
}

// Values returns the pixels in row-major order as the uint16 a little endian
// MCU reads from Bytes, which is Packed for every pixel.
func (d *RGB565) Values() []uint16 {
	vs := make([]uint16, len(d.pixels)/2)
	for i := range vs {
		vs[i] = binary.LittleEndian.Uint16(d.pixels[2*i:])
	}
	return vs
}

func (d *RGB565) offset(x, y int) int {
	return (y-d.bounds.Min.Y)*d.stride + 2*(x-d.bounds.Min.X)
}

// Pack uses the highest 5 or 6 bits of each 8-bit channel.
//
//    bit 76543210  76543210
//        RRRRRGGG  GGGBBBBB
//       high byte  low byte
func Pack(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// Swap reinterprets the big endian bytes of v as little endian.
func Swap(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// Packed is the value emitted into headers: Pack with its bytes swapped.
func Packed(r, g, b uint8) uint16 {
	return Swap(Pack(r, g, b))
}

var Model = color.ModelFunc(func(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color(Pack(n.R, n.G, n.B))
})

// Color is an unswapped RGB565 value. It implements the color.Color interface.
type Color uint16

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	// To convert a color channel from 5 or 6 bits back to 16 bits, the short
	// bit pattern is duplicated to fill all 16 bits.
	// For example the green channel in rgb565 is the middle 6 bits:
	//     00000GGGGGG00000
	//
	// To create a 16 bit channel, these bits are or-ed together starting at the
	// highest bit:
	//     GGGGGG0000000000 shifted << 5
	//     000000GGGGGG0000 shifted >> 1
	//     000000000000GGGG shifted >> 7
	//
	// Alpha is always 100% opaque since this model does not support
	// transparency.
	rBits := uint32(c & 0xF800) // RRRRR00000000000
	gBits := uint32(c & 0x7E0)  // 00000GGGGGG00000
	bBits := uint32(c & 0x1F)   // 00000000000BBBBB
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xFFFF
	return
}

package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackedSwapsBytes(t *testing.T) {
	for c := 0; c < 1<<24; c++ {
		r, g, b := uint8(c>>16), uint8(c>>8), uint8(c)
		naive, packed := Pack(r, g, b), Packed(r, g, b)
		if packed>>8 != naive&0xFF || packed&0xFF != naive>>8 {
			t.Fatalf("rgb(%d,%d,%d): packed %#04x is not swapped %#04x", r, g, b, packed, naive)
		}
	}
}

func TestPackedKnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		naive   uint16
		packed  uint16
	}{
		{"black", 0, 0, 0, 0x0000, 0x0000},
		{"white", 255, 255, 255, 0xFFFF, 0xFFFF},
		{"red", 255, 0, 0, 0xF800, 0x00F8},
		{"green", 0, 255, 0, 0x07E0, 0xE007},
		{"blue", 0, 0, 255, 0x001F, 0x1F00},
		{"yellow", 255, 255, 0, 0xFFE0, 0xE0FF},
		{"low bits dropped", 7, 3, 7, 0x0000, 0x0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.naive, Pack(tt.r, tt.g, tt.b))
			assert.Equal(t, tt.packed, Packed(tt.r, tt.g, tt.b))
		})
	}
}

func TestEncodeSolid(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 5, 3))
	for i := 0; i < len(src.Pix); i += 4 {
		copy(src.Pix[i:], []byte{0xFF, 0, 0, 0xFF})
	}

	vs := Encode(src).Values()
	require.Len(t, vs, 15)
	for _, v := range vs {
		assert.Equal(t, uint16(0x00F8), v)
	}
}

func TestEncodeRowMajor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 0, color.NRGBA{R: 0xFF, A: 0xFF})
	src.SetNRGBA(0, 1, color.NRGBA{B: 0xFF, A: 0xFF})

	assert.Equal(t, []uint16{0x0000, 0x00F8, 0x1F00, 0x0000}, Encode(src).Values())
}

func TestEncodeDropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0x80, G: 0x40, B: 0x20, A: 0})

	assert.Equal(t, []uint16{Packed(0x80, 0x40, 0x20)}, Encode(src).Values())
}

func TestEncodeGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.SetGray(0, 0, color.Gray{Y: 0xFF})

	assert.Equal(t, []uint16{0xFFFF, 0x0000}, Encode(src).Values())
}

func TestBytesAreBigEndian(t *testing.T) {
	d := NewRGB565(image.Rect(0, 0, 1, 1))
	d.SetRGB(0, 0, 0xFF, 0, 0)

	assert.Equal(t, []byte{0xF8, 0x00}, d.Bytes())
}

func TestAtExpandsChannels(t *testing.T) {
	d := NewRGB565(image.Rect(2, 3, 4, 5))
	d.Set(2, 3, color.White)
	d.Set(3, 4, color.NRGBA{R: 0xFF, A: 0xFF})

	r, g, b, a := d.At(2, 3).RGBA()
	assert.Equal(t, []uint32{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}, []uint32{r, g, b, a})

	r, g, b, _ = d.At(3, 4).RGBA()
	assert.Equal(t, []uint32{0xFFFF, 0, 0}, []uint32{r, g, b})

	assert.Equal(t, Color(0), d.At(0, 0))
}

func TestResizeStretches(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))

	dst := Resize(src, 172, 320)
	assert.Equal(t, image.Rect(0, 0, 172, 320), dst.Bounds())
}

func distinct(vs []uint16) map[uint16]struct{} {
	set := make(map[uint16]struct{})
	for _, v := range vs {
		set[v] = struct{}{}
	}
	return set
}

func TestResizePalettedKeepsPalette(t *testing.T) {
	src := image.NewPaletted(image.Rect(0, 0, 2, 1), color.Palette{color.Black, color.White})
	src.SetColorIndex(1, 0, 1)

	set := distinct(Encode(Resize(src, 172, 320)).Values())
	assert.Equal(t, map[uint16]struct{}{0x0000: {}, 0xFFFF: {}}, set)
}

func TestResizeNRGBABlends(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{A: 0xFF})
	src.SetNRGBA(1, 0, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	set := distinct(Encode(Resize(src, 172, 320)).Values())
	assert.Greater(t, len(set), 2)
}

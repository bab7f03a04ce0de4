/*
Package header writes RGB565 images as C headers for the ST7789 firmware.

A header holds two macros, IMG_<NAME>_W and IMG_<NAME>_H, followed by a
static const uint16_t array named img_<name>. Each element is one pixel in
row-major order, written as 0xHHHH with twelve elements per line. The values
are byte swapped so that a little endian MCU holds the bytes in the order the
panel expects on the wire.
*/
package header

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	Banner  = "// Generated from convert.py - do not edit"
	PerLine = 12
)

type Header struct {
	Name   string
	Width  int
	Height int
	Values []uint16
}

// Size is the array size in bytes on the target.
func (h *Header) Size() int {
	return h.Width * h.Height * 2
}

func (h *Header) Macro() string {
	return "IMG_" + strings.ToUpper(h.Name)
}

// Encode writes h to w in the header format.
func Encode(w io.Writer, h *Header) error {
	if n := h.Width * h.Height; len(h.Values) != n {
		return errors.Errorf("header: %s has %d pixels, want %d", h.Name, len(h.Values), n)
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n", Banner)
	fmt.Fprintf(bw, "#pragma once\n#include <stdint.h>\n\n")
	fmt.Fprintf(bw, "#define %s_W %d\n", h.Macro(), h.Width)
	fmt.Fprintf(bw, "#define %s_H %d\n\n", h.Macro(), h.Height)
	fmt.Fprintf(bw, "static const uint16_t img_%s[] = {\n", h.Name)

	for _, line := range lo.Chunk(h.Values, PerLine) {
		for _, v := range line {
			fmt.Fprintf(bw, "0x%04X,", v)
		}
		if len(line) == PerLine {
			bw.WriteByte('\n')
		}
	}

	bw.WriteString("\n};\n")

	return errors.Wrap(bw.Flush(), "header: write failed")
}

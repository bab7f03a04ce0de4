package convert

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"rgb565conv/pkg/bitmap"
	"rgb565conv/pkg/header"
	"rgb565conv/pkg/source"
)

func New(out afero.Fs, loader *source.Loader, logger *zap.Logger, opts ...Option) *Converter {
	c := &Converter{
		out:    out,
		loader: loader,
		logger: logger.With(zap.String("run", xid.New().String())),
		// options
		stdout:  os.Stdout,
		targets: Targets(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Converter struct {
	out    afero.Fs
	loader *source.Loader
	logger *zap.Logger
	// options
	stdout   io.Writer
	progress io.Writer
	preview  bool
	targets  []Target
}

// Run converts input into one header per target. A header already written
// stays on disk if a later target fails.
func (c *Converter) Run(input, name string) error {
	name = header.SymbolName(input, name)

	src, err := c.loader.Load(input)
	if err != nil {
		return err
	}

	b := src.Bounds()
	fmt.Fprintf(c.stdout, "Source: %s (%dx%d)\n", input, b.Dx(), b.Dy())

	for _, t := range c.targets {
		if err := c.write(src, t.Symbol(name), t); err != nil {
			return err
		}
	}

	fmt.Fprintln(c.stdout, "Done!")
	return nil
}

func (c *Converter) write(src image.Image, symbol string, t Target) error {
	bmp := bitmap.Encode(bitmap.Resize(src, t.Width, t.Height))
	h := &header.Header{
		Name:   symbol,
		Width:  t.Width,
		Height: t.Height,
		Values: bmp.Values(),
	}

	file := header.FileName(symbol)
	size := bytesize.New(float64(h.Size())).String()
	desc := fmt.Sprintf("Writing %s (%s)", file, size)
	if err := c.save(file, desc, func(w io.Writer) error { return header.Encode(w, h) }); err != nil {
		return errors.Wrapf(err, "write %s", file)
	}

	dst := realPath(c.out, file)
	fmt.Fprintf(c.stdout, "  %s (%dx%d, %d bytes)\n", dst, t.Width, t.Height, h.Size())

	c.logger.With(
		zap.String("dst", dst),
		zap.String("symbol", symbol),
		zap.String("size", size),
	).Debug("header written")

	if c.preview {
		file = strings.TrimSuffix(file, ".h") + ".png"
		desc = fmt.Sprintf("Writing %s", file)
		if err := c.save(file, desc, func(w io.Writer) error { return png.Encode(w, bmp) }); err != nil {
			return errors.Wrapf(err, "write %s", file)
		}
		c.logger.With(zap.String("dst", realPath(c.out, file))).Debug("preview written")
	}

	return nil
}

func (c *Converter) save(file, desc string, encode func(w io.Writer) error) error {
	f, err := c.out.OpenFile(file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	var w io.Writer = f
	if c.progress != nil {
		bar := progressbar.NewOptions64(
			-1,
			progressbar.OptionSetWriter(c.progress),
			progressbar.OptionSetDescription(desc),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		defer func() {
			_ = bar.Finish()
		}()
		w = io.MultiWriter(f, bar)
	}

	if err := encode(w); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

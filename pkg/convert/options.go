package convert

import (
	"io"
)

type Option func(c *Converter)

func WithStdout(w io.Writer) Option {
	return func(c *Converter) {
		c.stdout = w
	}
}

// WithPreview also writes img_<symbol>.png decoded back from the packed pixels.
func WithPreview(enable bool) Option {
	return func(c *Converter) {
		c.preview = enable
	}
}

// WithProgress shows a byte spinner on w while each header is written.
func WithProgress(w io.Writer) Option {
	return func(c *Converter) {
		c.progress = w
	}
}

func WithTargets(targets ...Target) Option {
	return func(c *Converter) {
		c.targets = targets
	}
}

package source

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

func NewLoader(fs afero.Fs, logger *zap.Logger) *Loader {
	return &Loader{
		fs:  fs,
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}
}

// Loader decodes images by content from a filesystem or an http(s) URL.
type Loader struct {
	fs  afero.Fs
	cli *resty.Client
	log *zap.Logger
}

func IsRemote(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

func (l *Loader) Load(input string) (image.Image, error) {
	if IsRemote(input) {
		return l.fetch(input)
	}

	f, err := l.fs.Open(input)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return l.decode(input, f)
}

func (l *Loader) fetch(url string) (image.Image, error) {
	resp, err := l.cli.R().Get(url)
	if err != nil {
		return nil, errors.Wrap(err, "fetch image failed")
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.IsError() {
		return nil, errors.Errorf("fetch image failed: %s", resp.Status())
	}

	return l.decode(url, resp.RawBody())
}

func (l *Loader) decode(input string, r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", input)
	}

	b := img.Bounds()
	l.log.With(
		zap.String("src", input),
		zap.Int("w", b.Dx()),
		zap.Int("h", b.Dy()),
	).Debug("decoded")

	return img, nil
}

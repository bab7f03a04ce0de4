package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rgb565conv/pkg/convert"
	"rgb565conv/pkg/source"
)

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer, prog string) {
	p, l := convert.Portrait, convert.Landscape
	fmt.Fprintf(w, "Usage: %s <input_image> [name]\n", prog)
	fmt.Fprintf(w, "  Generates img_<name>.h (portrait %dx%d)\n", p.Width, p.Height)
	fmt.Fprintf(w, "       and img_<name>_land.h (landscape %dx%d)\n", l.Width, l.Height)
}

func run(prog string, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	outDir := flags.String("out-dir", "", "output directory (default: next to the executable)")
	preview := flags.Bool("preview", false, "also write a png preview of each header")
	progress := flags.Bool("progress", false, "show write progress")
	debug := flags.Bool("debug", false, "set debug")

	flags.Usage = func() {
		usage(stdout, prog)
		flags.SetOutput(stdout)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if flags.NArg() < 1 {
		usage(stdout, prog)
		return 1
	}

	input := flags.Arg(0)
	name := lo.Ternary(flags.NArg() > 1, flags.Arg(1), "")

	logger := newLogger(*debug, stderr)
	defer func() {
		_ = logger.Sync()
	}()

	if *outDir == "" {
		var err error
		if *outDir, err = convert.ExecutableDir(); err != nil {
			logger.With(zap.Error(err)).Error("resolve output dir failed")
			return 1
		}
	}

	// failures are reported once below, fx events only show up with --debug
	fxLogger := fx.NopLogger
	if *debug {
		fxLogger = fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		})
	}

	app := fx.New(
		fx.Supply(logger),
		fxLogger,
		fx.Provide(
			func(l *zap.Logger) *source.Loader {
				return source.NewLoader(afero.NewOsFs(), l)
			},
			func(loader *source.Loader, l *zap.Logger) (*convert.Converter, error) {
				out, err := convert.NewOutputFs(*outDir)
				if err != nil {
					return nil, err
				}

				opts := []convert.Option{
					convert.WithStdout(stdout),
					convert.WithPreview(*preview),
				}
				if *progress {
					opts = append(opts, convert.WithProgress(stderr))
				}

				return convert.New(out, loader, l, opts...), nil
			},
		),
		fx.Invoke(func(c *convert.Converter) error {
			return c.Run(input, name)
		}),
	)

	if err := app.Err(); err != nil {
		logger.With(zap.Error(err)).Error("convert failed")
		return 1
	}

	return 0
}

func newLogger(debug bool, w io.Writer) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	level := lo.Ternary(debug, zapcore.DebugLevel, zapcore.WarnLevel)
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)

	if debug {
		return zap.New(core, zap.Development(), zap.AddCaller(), zap.AddStacktrace(zapcore.WarnLevel))
	}
	return zap.New(core)
}

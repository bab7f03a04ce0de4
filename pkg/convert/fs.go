package convert

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// NewOutputFs roots an OS filesystem at dir, which must exist.
func NewOutputFs(dir string) (afero.Fs, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	fs := afero.NewOsFs()
	if exists, err := afero.DirExists(fs, dir); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.Errorf("output dir %s not exists", dir)
	}
	return afero.NewBasePathFs(fs, dir), nil
}

// ExecutableDir is where headers land when no directory is given.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "locate executable")
	}
	return filepath.Dir(exe), nil
}

func realPath(fs afero.Fs, name string) string {
	if bp, ok := fs.(*afero.BasePathFs); ok {
		if p, err := bp.RealPath(name); err == nil {
			return p
		}
	}
	return name
}

package header

import (
	"path/filepath"
	"regexp"
	"strings"
)

const DefaultName = "logo"

var invalidRunes = regexp.MustCompile(`[^a-z0-9_]`)

var nameReplacer = strings.NewReplacer(" ", "_", "-", "_")

// SymbolName returns explicit when given, otherwise a C identifier built
// from the base name of input, e.g. "Banner (1).png" becomes "banner_1".
func SymbolName(input, explicit string) string {
	if explicit != "" {
		return explicit
	}

	name := stripExt(filepath.Base(input))
	name = strings.ToLower(nameReplacer.Replace(name))
	name = invalidRunes.ReplaceAllString(name, "")

	if name == "" {
		return DefaultName
	}
	return name
}

func FileName(symbol string) string {
	return "img_" + symbol + ".h"
}

// stripExt drops the last extension. Leading dots, as in ".logo", never
// start one.
func stripExt(base string) string {
	i := strings.LastIndexByte(base, '.')
	if i <= 0 || strings.Trim(base[:i], ".") == "" {
		return base
	}
	return base[:i]
}

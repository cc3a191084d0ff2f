package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// defaults are the user-configurable default conversion settings, read
// from an optional TOML file before flags are applied.
type defaults struct {
	Layout    string `toml:"layout"`
	Paper     string `toml:"paper"`
	Flip      string `toml:"flip"`
	CopyPages bool   `toml:"copy_pages"`
}

// builtinDefaults mirror the library defaults.
func builtinDefaults() defaults {
	return defaults{Layout: "2x1", Paper: "A4", Flip: "short"}
}

// defaultConfigPath returns the conventional defaults file location,
// <user config dir>/pdfimpose/config.toml.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pdfimpose", "config.toml")
}

// loadDefaults reads the defaults file at path. A missing file is not an
// error; the built-in defaults apply.
func loadDefaults(path string) (defaults, error) {
	d := builtinDefaults()
	if path == "" {
		return d, nil
	}
	if _, err := toml.DecodeFile(path, &d); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return builtinDefaults(), nil
		}
		return defaults{}, fmt.Errorf("cli: reading config %s: %w", path, err)
	}
	return d, nil
}

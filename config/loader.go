package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"github.com/philipp01105/nlog/core"
)

// HomeEnv names the environment variable overriding the installation root.
const HomeEnv = "NLOG_HOME"

// ErrLoad marks a levels file that exists but could not be read or
// parsed. Dropped entries are reported with core.ErrInvalidLevel instead.
var ErrLoad = errors.New("cannot load")

// RelPath is the location of the levels file below the installation root.
var RelPath = filepath.Join("lib", "log.props")

// DefaultPath returns the levels file of this installation: RelPath under
// $NLOG_HOME, or under the parent of the executable's directory.
func DefaultPath() string {
	if home := os.Getenv(HomeEnv); home != "" {
		return filepath.Join(home, RelPath)
	}
	exe, err := os.Executable()
	if err != nil {
		return RelPath
	}
	return filepath.Join(filepath.Dir(filepath.Dir(exe)), RelPath)
}

// Load reads the levels file at path. The returned table is never nil.
//
// A missing file yields an empty table and no error. A file that cannot
// be read or parsed yields an empty table and the failure. Entries with
// an invalid level are dropped; each drop is returned as one of the
// errors combined with multierr, next to a table holding the valid
// entries.
func Load(fsys afero.Fs, path string) (*Levels, error) {
	levels := NewLevels()

	buf, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return levels, nil
	}
	if err != nil {
		return levels, fmt.Errorf("%w %s: %w", ErrLoad, path, err)
	}

	p, err := parse(buf)
	if err != nil {
		return levels, fmt.Errorf("%w %s: %w", ErrLoad, path, err)
	}

	var errs error
	for _, key := range p.Keys() {
		val, _ := p.Get(key)
		lvl, err := core.ParseLevel(val)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("invalid level %s#%s = %s: %w", path, key, val, err))
			continue
		}
		levels.Set(key, lvl)
	}
	return levels, errs
}

func parse(buf []byte) (*properties.Properties, error) {
	l := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	return l.LoadBytes(buf)
}

// Write stores the given thresholds at path as a sorted levels file,
// creating parent directories as needed.
func Write(fsys afero.Fs, path string, levels map[string]core.Level) error {
	p := properties.NewProperties()
	p.DisableExpansion = true
	for name, lvl := range levels {
		if !lvl.Valid() {
			return fmt.Errorf("%w: %s = %d", core.ErrInvalidLevel, name, lvl)
		}
		if _, _, err := p.Set(name, strings.ToLower(lvl.String())); err != nil {
			return err
		}
	}
	p.Sort()

	var buf bytes.Buffer
	if _, err := p.Write(&buf, properties.UTF8); err != nil {
		return err
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(fsys, path, buf.Bytes(), 0o644)
}

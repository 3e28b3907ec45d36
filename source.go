package hindsight

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
)

const csvExt = ".csv"

// Source resolves an instrument id to its price history.
type Source interface {
	Open(id string) (io.ReadCloser, error)
}

// Dir is a Source of "<id>.csv" files in a directory.
type Dir struct {
	name string
	fsys fs.FS
}

// NewDir returns the Source of CSV files in directory name.
func NewDir(name string) *Dir { return &Dir{name: name, fsys: os.DirFS(name)} }

// FS returns the Source of CSV files at the root of fsys.
func FS(fsys fs.FS) *Dir { return &Dir{name: ".", fsys: fsys} }

func (d *Dir) String() string { return d.name }

// Open opens the price history of instrument id. It returns an error matching
// ErrNoData when there is none.
func (d *Dir) Open(id string) (io.ReadCloser, error) {
	if !fs.ValidPath(id) || strings.Contains(id, "/") {
		return nil, fmt.Errorf("%w: invalid instrument id %q", ErrNoData, id)
	}
	f, err := d.fsys.Open(id + csvExt)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: file %s not found", ErrNoData, id+csvExt)
	}
	return f, err
}

// Instruments lists the ids of every price history in the directory, sorted.
func (d *Dir) Instruments() ([]string, error) {
	entries, err := fs.ReadDir(d.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", d.name, err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != csvExt {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), csvExt))
	}
	slices.Sort(ids)
	return ids, nil
}

// Check fails with ErrNoDataDir when the directory does not exist or holds no
// price history.
func (d *Dir) Check() error {
	ids, err := d.Instruments()
	if err != nil {
		return fmt.Errorf("%w in %s: %v", ErrNoDataDir, d.name, err)
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w in %s", ErrNoDataDir, d.name)
	}
	return nil
}

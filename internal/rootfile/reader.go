package rootfile

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/root"

	"github.com/shinji-kodama/add-text-to-root/internal/model"
)

// ReadEntries opens the ROOT file at path and returns the text stored under
// layout.EntryPath(c) for every collection c, keyed by collection name.
func ReadEntries(path string, layout model.Layout) (map[string]string, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ROOT file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	rdir := riofs.Dir(f)
	entries := make(map[string]string, len(layout.Collections))
	for _, c := range layout.Collections {
		key := layout.EntryPath(c)
		obj, err := rdir.Get(key)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", key, err)
		}
		str, ok := obj.(root.ObjString)
		if !ok {
			return nil, fmt.Errorf("entry %q is a %s, not a TObjString", key, obj.Class())
		}
		entries[c] = str.String()
	}
	return entries, nil
}

// ListDir returns the key names stored directly in the directory dir of the
// ROOT file at path. An empty dir lists the top-level keys.
func ListDir(path, dir string) ([]string, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ROOT file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var d riofs.Directory = f
	if dir != "" {
		obj, err := riofs.Dir(f).Get(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
		}
		sub, ok := obj.(riofs.Directory)
		if !ok {
			return nil, fmt.Errorf("%q is a %s, not a directory", dir, obj.Class())
		}
		d = sub
	}

	keys := d.Keys()
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.Name())
	}
	return names, nil
}

// MismatchError reports an entry whose content differs from the expected text.
type MismatchError struct {
	Entry    string
	Got      int
	Expected int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("entry %q does not match input (%d bytes, expected %d)", e.Entry, e.Got, e.Expected)
}

// Verify checks that every entry described by layout exists in the ROOT file
// at path and holds exactly content.
func Verify(path string, layout model.Layout, content string) error {
	entries, err := ReadEntries(path, layout)
	if err != nil {
		return err
	}
	for _, c := range layout.Collections {
		if got := entries[c]; got != content {
			return &MismatchError{Entry: layout.EntryPath(c), Got: len(got), Expected: len(content)}
		}
	}
	return nil
}

package rootfile

import (
	"fmt"
	"strings"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rbase"
	"go-hep.org/x/hep/groot/riofs"

	"github.com/shinji-kodama/add-text-to-root/internal/model"
)

// Result describes a successfully written ROOT file.
type Result struct {
	// Path is the ROOT file that was written.
	Path string `json:"path"`

	// Layout is the directory layout that was created.
	Layout model.Layout `json:"layout"`

	// Entries lists the full key path of every written entry.
	Entries []string `json:"entries"`

	// Bytes is the length of the embedded text.
	Bytes int `json:"bytes"`
}

// Write creates the ROOT file at path, replacing any existing file, and
// stores content as a TObjString named layout.EntryName in the directory
// <layout.Tagger>/<c> for every collection c.
//
// The file is closed before Write returns. On error the file may be left
// partially written; there is no rollback.
func Write(path string, layout model.Layout, content string) (*Result, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	// groot.Create truncates an existing file, which gives RECREATE
	// semantics: nothing from a previous run survives.
	f, err := groot.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create ROOT file %s: %w", path, err)
	}

	res := &Result{
		Path:    path,
		Layout:  layout,
		Entries: make([]string, 0, len(layout.Collections)),
		Bytes:   len(content),
	}

	for _, c := range layout.Collections {
		dirPath := layout.DirPath(c)
		dir, err := mkdirAll(f, dirPath)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to create directory %q: %w", dirPath, err)
		}

		if err := dir.Put(layout.EntryName, rbase.NewObjString(content)); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to write entry %q: %w", layout.EntryPath(c), err)
		}
		res.Entries = append(res.Entries, layout.EntryPath(c))
	}

	// Close flushes all directories and keys to disk. Its error must not
	// be ignored: a failed flush leaves an unreadable file.
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close ROOT file %s: %w", path, err)
	}
	return res, nil
}

// mkdirAll returns the directory at the "/"-separated path below top,
// creating every missing directory along the way.
func mkdirAll(top riofs.Directory, path string) (riofs.Directory, error) {
	cur := top
	for _, seg := range strings.Split(path, "/") {
		if obj, err := cur.Get(seg); err == nil {
			sub, ok := obj.(riofs.Directory)
			if !ok {
				return nil, fmt.Errorf("%q exists and is not a directory (%T)", seg, obj)
			}
			cur = sub
			continue
		}

		sub, err := cur.Mkdir(seg)
		if err != nil {
			return nil, err
		}
		cur = sub
	}
	return cur, nil
}

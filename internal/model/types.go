package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RootExtension is the file extension of ROOT files. Input files carrying it
// are rejected, and default output paths are derived with it.
const RootExtension = ".root"

// Default values for the corresponding command-line flags.
const (
	DefaultTagger    = "DL1"
	DefaultEntryName = "net_configuration"
)

// DefaultCollections returns the jet collections used when none are given on
// the command line. A fresh slice is returned on every call so callers may
// modify it freely.
func DefaultCollections() []string {
	return []string{"AntiKt4EMTopo", "AntiKt4LCTopo"}
}

// Verbosity controls whether, and how, the collection listing is printed
// before the ROOT file is written.
type Verbosity int

const (
	// VerbosityDefault means neither --verbosity nor --quiet was given.
	// No listing is printed.
	VerbosityDefault Verbosity = iota

	// VerbosityQuiet suppresses the listing (--quiet).
	VerbosityQuiet

	// VerbosityLevel0 prints a short "Jet collections:" listing (-v 0).
	VerbosityLevel0

	// VerbosityLevel1 prints the long listing and enables progress
	// messages on stderr (-v 1).
	VerbosityLevel1
)

// String returns the string representation of Verbosity.
func (v Verbosity) String() string {
	switch v {
	case VerbosityDefault:
		return "default"
	case VerbosityQuiet:
		return "quiet"
	case VerbosityLevel0:
		return "0"
	case VerbosityLevel1:
		return "1"
	default:
		return fmt.Sprintf("Verbosity(%d)", int(v))
	}
}

// ParseVerbosityLevel converts the numeric --verbosity value to a Verbosity.
// Only 0 and 1 are accepted.
func ParseVerbosityLevel(level int) (Verbosity, error) {
	switch level {
	case 0:
		return VerbosityLevel0, nil
	case 1:
		return VerbosityLevel1, nil
	default:
		return VerbosityDefault, fmt.Errorf("invalid verbosity %d (valid: 0, 1)", level)
	}
}

// Layout describes the directory hierarchy written into the ROOT file:
// one directory <Tagger>/<collection> per collection, each holding a
// single string entry named EntryName.
type Layout struct {
	// Tagger is the top-level directory name, e.g. "DL1".
	Tagger string `json:"tagger"`

	// Collections lists the jet collection subdirectories under Tagger.
	Collections []string `json:"collections"`

	// EntryName is the key of the string record in every subdirectory.
	EntryName string `json:"entryName"`
}

// DirPath returns the directory path of the given collection.
func (l Layout) DirPath(collection string) string {
	return l.Tagger + "/" + collection
}

// EntryPath returns the full key path of the entry for the given collection.
func (l Layout) EntryPath(collection string) string {
	return l.DirPath(collection) + "/" + l.EntryName
}

// EntryPaths returns EntryPath for every collection, in order.
func (l Layout) EntryPaths() []string {
	paths := make([]string, 0, len(l.Collections))
	for _, c := range l.Collections {
		paths = append(paths, l.EntryPath(c))
	}
	return paths
}

// Validate checks that every name in the layout can be used as a ROOT key.
// Tagger and collection names may contain "/" to nest further, but must not
// contain empty path segments; the entry name must be a single segment.
func (l Layout) Validate() error {
	if err := validatePath("tagger", l.Tagger); err != nil {
		return err
	}
	if len(l.Collections) == 0 {
		return fmt.Errorf("at least one jet collection is required")
	}
	for _, c := range l.Collections {
		if err := validatePath("jet collection", c); err != nil {
			return err
		}
	}
	if l.EntryName == "" {
		return fmt.Errorf("entry name must not be empty")
	}
	if strings.Contains(l.EntryName, "/") {
		return fmt.Errorf("invalid entry name %q: must not contain \"/\"", l.EntryName)
	}
	return nil
}

func validatePath(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%s name must not be empty", kind)
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == "" {
			return fmt.Errorf("invalid %s name %q: empty path segment", kind, name)
		}
	}
	return nil
}

// Options is the validated invocation configuration, built once per run
// from the command line.
type Options struct {
	// InputFile is the text file whose content is embedded.
	InputFile string

	// RootFile is the output path. Empty means DefaultRootFile(InputFile).
	RootFile string

	Tagger    string
	EntryName string

	// Collections is kept in command-line order with duplicates removed.
	Collections []string

	Verbosity Verbosity

	// JSON prints a machine-readable summary instead of nothing.
	JSON bool

	// Lint checks that the input parses as JSON or YAML before embedding.
	Lint bool

	// Verify re-reads the written file and compares every entry.
	Verify bool
}

// Layout returns the ROOT directory layout described by the options.
func (o *Options) Layout() Layout {
	return Layout{
		Tagger:      o.Tagger,
		Collections: o.Collections,
		EntryName:   o.EntryName,
	}
}

// OutputPath returns the explicit RootFile, or the path derived from
// InputFile when none was given.
func (o *Options) OutputPath() string {
	if o.RootFile != "" {
		return o.RootFile
	}
	return DefaultRootFile(o.InputFile)
}

// Normalize removes duplicate collection names, keeping the first
// occurrence, so every collection maps to exactly one entry.
func (o *Options) Normalize() {
	o.Collections = Dedupe(o.Collections)
}

// Validate checks the options for values that cannot produce a valid
// ROOT file. It does not touch the filesystem.
func (o *Options) Validate() error {
	if o.InputFile == "" {
		return fmt.Errorf("input file must not be empty")
	}
	return o.Layout().Validate()
}

// IsRootFile reports whether path names a ROOT file, judged by its suffix.
func IsRootFile(path string) bool {
	return strings.HasSuffix(path, RootExtension)
}

// DefaultRootFile derives the output path from the input path by replacing
// the extension of the last path element with RootExtension.
//
//	config.json      → config.root
//	dir/net.v2.yaml  → dir/net.v2.root
//	config           → config.root
func DefaultRootFile(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + RootExtension
}

// Dedupe returns names with duplicates removed, preserving first-seen order.
func Dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

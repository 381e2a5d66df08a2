package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVerbosity_String verifies the string form used in verbose output.
func TestVerbosity_String(t *testing.T) {
	tests := []struct {
		v        Verbosity
		expected string
	}{
		{VerbosityDefault, "default"},
		{VerbosityQuiet, "quiet"},
		{VerbosityLevel0, "0"},
		{VerbosityLevel1, "1"},
		{Verbosity(42), "Verbosity(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.v.String())
		})
	}
}

// TestParseVerbosityLevel checks that only 0 and 1 are accepted.
func TestParseVerbosityLevel(t *testing.T) {
	tests := []struct {
		input    int
		expected Verbosity
		hasError bool
	}{
		{0, VerbosityLevel0, false},
		{1, VerbosityLevel1, false},
		{2, VerbosityDefault, true},
		{-1, VerbosityDefault, true},
	}

	for _, tt := range tests {
		v, err := ParseVerbosityLevel(tt.input)
		if tt.hasError {
			assert.Error(t, err, "level %d", tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expected, v)
	}
}

// TestDefaultRootFile verifies output path derivation from the input path.
func TestDefaultRootFile(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json", "config.json", "config.root"},
		{"yaml", "config.yaml", "config.root"},
		{"only last extension replaced", "net.v2.json", "net.v2.root"},
		{"directory with dot kept", "calib.d/config.json", "calib.d/config.root"},
		{"directory with dot and no extension", "calib.d/config", "calib.d/config.root"},
		{"no extension", "config", "config.root"},
		{"absolute path", "/data/DL1/net.json", "/data/DL1/net.root"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultRootFile(tt.input))
		})
	}
}

// TestIsRootFile checks the input-format guard.
func TestIsRootFile(t *testing.T) {
	assert.True(t, IsRootFile("calib.root"))
	assert.True(t, IsRootFile("dir/calib.root"))
	assert.False(t, IsRootFile("calib.json"))
	assert.False(t, IsRootFile("calib.root.json"))
	assert.False(t, IsRootFile("root"))
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, []string{}, Dedupe(nil))
}

// TestDefaultCollections_FreshSlice checks that callers cannot corrupt the
// defaults by mutating the returned slice.
func TestDefaultCollections_FreshSlice(t *testing.T) {
	first := DefaultCollections()
	first[0] = "changed"
	assert.Equal(t, []string{"AntiKt4EMTopo", "AntiKt4LCTopo"}, DefaultCollections())
}

func TestLayout_Paths(t *testing.T) {
	l := Layout{
		Tagger:      "DL1",
		Collections: []string{"AntiKt4EMTopo", "AntiKt10LCTopo"},
		EntryName:   "net_configuration",
	}

	assert.Equal(t, "DL1/AntiKt4EMTopo", l.DirPath("AntiKt4EMTopo"))
	assert.Equal(t, "DL1/AntiKt4EMTopo/net_configuration", l.EntryPath("AntiKt4EMTopo"))
	assert.Equal(t, []string{
		"DL1/AntiKt4EMTopo/net_configuration",
		"DL1/AntiKt10LCTopo/net_configuration",
	}, l.EntryPaths())
}

// TestLayout_Validate covers the names that would produce unusable ROOT keys.
func TestLayout_Validate(t *testing.T) {
	valid := func() Layout {
		return Layout{Tagger: "DL1", Collections: []string{"AntiKt4EMTopo"}, EntryName: "net_configuration"}
	}

	tests := []struct {
		name    string
		mutate  func(l *Layout)
		wantErr string
	}{
		{"valid", func(*Layout) {}, ""},
		{"nested tagger", func(l *Layout) { l.Tagger = "DL1/rnn" }, ""},
		{"empty tagger", func(l *Layout) { l.Tagger = "" }, "tagger name must not be empty"},
		{"tagger with empty segment", func(l *Layout) { l.Tagger = "DL1//x" }, "empty path segment"},
		{"trailing slash", func(l *Layout) { l.Tagger = "DL1/" }, "empty path segment"},
		{"no collections", func(l *Layout) { l.Collections = nil }, "at least one jet collection"},
		{"empty collection", func(l *Layout) { l.Collections = []string{""} }, "jet collection name must not be empty"},
		{"empty entry", func(l *Layout) { l.EntryName = "" }, "entry name must not be empty"},
		{"entry with slash", func(l *Layout) { l.EntryName = "a/b" }, "must not contain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid()
			tt.mutate(&l)
			err := l.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOptions(t *testing.T) {
	t.Run("output path defaults from input", func(t *testing.T) {
		o := &Options{InputFile: "net.json"}
		assert.Equal(t, "net.root", o.OutputPath())
	})

	t.Run("explicit output path wins", func(t *testing.T) {
		o := &Options{InputFile: "net.json", RootFile: "out/calib.root"}
		assert.Equal(t, "out/calib.root", o.OutputPath())
	})

	t.Run("normalize removes duplicate collections", func(t *testing.T) {
		o := &Options{Collections: []string{"A", "B", "A"}}
		o.Normalize()
		assert.Equal(t, []string{"A", "B"}, o.Collections)
	})

	t.Run("validate requires input file", func(t *testing.T) {
		o := &Options{Tagger: DefaultTagger, EntryName: DefaultEntryName, Collections: DefaultCollections()}
		assert.Error(t, o.Validate())
		o.InputFile = "net.json"
		assert.NoError(t, o.Validate())
	})

	t.Run("layout mirrors options", func(t *testing.T) {
		o := &Options{Tagger: "DL1r", EntryName: "cfg", Collections: []string{"A"}}
		assert.Equal(t, Layout{Tagger: "DL1r", EntryName: "cfg", Collections: []string{"A"}}, o.Layout())
	})
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitGeneralError, "wrong input format")
		assert.Equal(t, ExitGeneralError, err.Code)
		assert.Equal(t, "wrong input format", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := WrapCLIError(ExitGeneralError, "failed to read input file", inner)
		assert.Contains(t, err.Error(), "permission denied")
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("disk full")
		err := WrapCLIError(ExitGeneralError, "failed to close ROOT file", inner)
		assert.True(t, errors.Is(err, inner))
	})
}

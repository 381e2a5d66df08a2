package textcheck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format identifies the text format of an input file.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatUnknown Format = "unknown"
)

// String returns the string representation of Format.
func (f Format) String() string {
	return string(f)
}

// FormatFromPath guesses the format from the file extension (case-insensitive).
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// Check reports whether data is well-formed in the given format.
// FormatUnknown always passes.
func Check(data []byte, format Format) error {
	switch format {
	case FormatJSON:
		return checkJSON(data)
	case FormatYAML:
		return checkYAML(data)
	default:
		return nil
	}
}

func checkJSON(data []byte) error {
	clean := jsonc.ToJSON(data)

	var v interface{}
	if err := json.Unmarshal(clean, &v); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return fmt.Errorf("invalid JSON at offset %d: %w", syntaxErr.Offset, err)
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

// checkYAML decodes every document in data, so multi-document streams are
// accepted as long as each document parses.
func checkYAML(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var v interface{}
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("invalid YAML: %w", err)
		}
	}
}

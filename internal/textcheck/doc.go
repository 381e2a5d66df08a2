// Package textcheck performs an optional well-formedness check of the text
// before it is embedded.
//
// The check is advisory: the CLI only prints a warning when it fails, and the
// text is always embedded verbatim. JSON input may contain comments and
// trailing commas (JSONC), which are stripped with github.com/tidwall/jsonc
// before decoding. YAML input is decoded with gopkg.in/yaml.v3.
//
// No schema is applied. A file that parses is accepted regardless of its
// structure.
package textcheck

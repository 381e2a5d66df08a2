package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shinji-kodama/add-text-to-root/internal/model"
	"github.com/shinji-kodama/add-text-to-root/internal/rootfile"
	"github.com/shinji-kodama/add-text-to-root/internal/textcheck"
)

// embedSummary is the --json output of a successful run.
type embedSummary struct {
	Input    string       `json:"input"`
	Output   string       `json:"output"`
	Layout   model.Layout `json:"layout"`
	Entries  []string     `json:"entries"`
	Bytes    int          `json:"bytes"`
	Format   string       `json:"format"`
	Lint     *lintResult  `json:"lint,omitempty"`
	Verified bool         `json:"verified"`
}

type lintResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// runEmbed performs a single run once the options are validated:
//  1. Print the collection listing (per verbosity)
//  2. Reject ROOT files given as input
//  3. Read the input text
//  4. Optionally check that it is well-formed
//  5. Recreate the ROOT file with one entry per collection
//  6. Optionally re-read and verify the entries
//  7. Output the summary (JSON only)
func runEmbed(stdout, stderr io.Writer, opts *model.Options) error {
	logf := verboseLogger(stderr, opts.Verbosity)

	// With --json the listing must not corrupt the summary on stdout.
	listing := stdout
	if opts.JSON {
		listing = stderr
	}
	printCollections(listing, opts.Verbosity, opts.Collections)

	if model.IsRootFile(opts.InputFile) {
		return model.NewCLIError(model.ExitGeneralError,
			"wrong input format: input file should be text format, e.g. JSON or YAML")
	}

	data, err := os.ReadFile(opts.InputFile)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to read input file", err)
	}
	logf("Read %d bytes from %s", len(data), opts.InputFile)

	format := textcheck.FormatFromPath(opts.InputFile)
	var lint *lintResult
	if opts.Lint {
		lint = runLint(stderr, logf, data, format)
	}

	out := opts.OutputPath()
	layout := opts.Layout()
	logf("Writing ROOT file: %s", out)

	res, err := rootfile.Write(out, layout, string(data))
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to write ROOT file", err)
	}
	for _, e := range res.Entries {
		logf("Wrote %s", e)
	}

	if opts.Verify {
		if err := rootfile.Verify(out, layout, string(data)); err != nil {
			return model.WrapCLIError(model.ExitVerifyFailed, "verification failed", err)
		}
		logf("Verified %d entries", len(res.Entries))
	}

	if opts.JSON {
		return printSummary(stdout, embedSummary{
			Input:    opts.InputFile,
			Output:   res.Path,
			Layout:   res.Layout,
			Entries:  res.Entries,
			Bytes:    res.Bytes,
			Format:   format.String(),
			Lint:     lint,
			Verified: opts.Verify,
		})
	}
	return nil
}

// runLint checks the input syntax and prints a warning when it fails.
// The result never stops the run.
func runLint(stderr io.Writer, logf func(string, ...interface{}), data []byte, format textcheck.Format) *lintResult {
	if format == textcheck.FormatUnknown {
		logf("No syntax check for unknown input format")
		return &lintResult{OK: true}
	}
	if err := textcheck.Check(data, format); err != nil {
		fmt.Fprintf(stderr, "Warning: input is not well-formed %s: %v\n", format, err)
		return &lintResult{OK: false, Error: err.Error()}
	}
	logf("Input is well-formed %s", format)
	return &lintResult{OK: true}
}

// printCollections prints the jet collections that will be written.
// Level 1 prints a sentence around the list, level 0 a short header;
// quiet and default print nothing.
func printCollections(w io.Writer, v model.Verbosity, collections []string) {
	switch v {
	case model.VerbosityLevel1:
		fmt.Fprintln(w, "The jet collections")
		for _, c := range collections {
			fmt.Fprintf(w, "    %s\n", c)
		}
		fmt.Fprintln(w, "will be added to the ROOT calibration file.")
	case model.VerbosityLevel0:
		fmt.Fprintln(w, "Jet collections:")
		for _, c := range collections {
			fmt.Fprintf(w, "   %s\n", c)
		}
	}
}

func printSummary(w io.Writer, s embedSummary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode summary", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// verboseLogger returns a printf-style logger that writes to w only at
// verbosity level 1.
func verboseLogger(w io.Writer, v model.Verbosity) func(string, ...interface{}) {
	if v != model.VerbosityLevel1 {
		return func(string, ...interface{}) {}
	}
	return func(format string, args ...interface{}) {
		fmt.Fprintf(w, "[verbose] "+format+"\n", args...)
	}
}

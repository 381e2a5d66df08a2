// Package cli implements the cobra-based command line of add-text-to-root.
//
// The tool has a single command, defined in this file. args.go adapts the
// argparse-style "-jc A B C" flag to pflag, and embed.go holds the steps
// that run once the flags are parsed.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/add-text-to-root/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootFlags holds the flag values of the root command.
// These are bound to cobra flags in NewRootCommand.
type rootFlags struct {
	rootFile    string   // --root-file/-r: output ROOT file
	tagger      string   // --tagger/-t: top-level directory
	entryName   string   // --entry-name/-n: TObjString key
	collections []string // --jet_collection/-jc: subdirectories under the tagger
	verbosity   int      // --verbosity/-v: 0 or 1, only meaningful when set
	quiet       bool     // --quiet/-q: no collection listing
	jsonOutput  bool     // --json: machine-readable summary and errors
	lint        bool     // --lint: warn when the input is not well-formed
	verify      bool     // --verify: re-read and compare after writing
}

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "add-text-to-root <input_file>",
		Short: "Add a text file to a ROOT file",
		Long: `Add a text file (e.g. a JSON or YAML network configuration) to a ROOT file.

The text is stored verbatim as a TObjString named by --entry-name in the
directory <tagger>/<jet collection> for every requested jet collection.
The ROOT file is always recreated; an existing file at the output path is
replaced.

Other jet collections like AntiKt10LCTopo or AntiKt3PV0 can be added as
well. Remember to include them in your job options when you run Athena.

Examples:
  add-text-to-root net.json
  add-text-to-root net.json -r calib.root -t DL1r
  add-text-to-root net.json -jc AntiKt4EMTopo AntiKt10LCTopo -v 1`,

		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return model.WrapCLIError(model.ExitUsage, "invalid arguments", err)
			}
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args[0])
			if err != nil {
				return err
			}
			return runEmbed(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},

		// SilenceUsage prevents cobra from printing usage on every error.
		// Execute prints it for usage errors only.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	f := rootCmd.Flags()
	f.StringVarP(&flags.rootFile, "root-file", "r", "", "Output ROOT file (default: input file with its extension replaced by .root)")
	f.StringVarP(&flags.tagger, "tagger", "t", model.DefaultTagger, "Tagger name, used as the top-level directory")
	f.StringVarP(&flags.entryName, "entry-name", "n", model.DefaultEntryName, "Name of the string entry in each directory")
	f.StringArrayVar(&flags.collections, jetCollectionFlag, model.DefaultCollections(),
		"Jet collections for which the string will be added (-jc A B ...)")
	f.IntVarP(&flags.verbosity, "verbosity", "v", 0, "Print the jet collections before writing (0 or 1)")
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "Do not print the jet collections")
	f.BoolVar(&flags.jsonOutput, "json", false, "Output a JSON summary")
	f.BoolVar(&flags.lint, "lint", false, "Warn if the input is not well-formed JSON or YAML")
	f.BoolVar(&flags.verify, "verify", false, "Re-read the ROOT file and check every entry after writing")

	// Flag parse errors (unknown flag, non-integer verbosity, ...) are
	// usage errors, like argparse's exit status 2.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.WrapCLIError(model.ExitUsage, "invalid arguments", err)
	})

	return rootCmd
}

// options converts the parsed flags and the positional input file into
// validated Options.
func (f *rootFlags) options(cmd *cobra.Command, inputFile string) (*model.Options, error) {
	verbositySet := cmd.Flags().Changed("verbosity")
	if verbositySet && f.quiet {
		return nil, model.NewCLIError(model.ExitUsage, "--verbosity and --quiet are mutually exclusive")
	}

	verbosity := model.VerbosityDefault
	switch {
	case f.quiet:
		verbosity = model.VerbosityQuiet
	case verbositySet:
		v, err := model.ParseVerbosityLevel(f.verbosity)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitUsage, "invalid arguments", err)
		}
		verbosity = v
	}

	opts := &model.Options{
		InputFile:   inputFile,
		RootFile:    f.rootFile,
		Tagger:      f.tagger,
		EntryName:   f.entryName,
		Collections: f.collections,
		Verbosity:   verbosity,
		JSON:        f.jsonOutput,
		Lint:        f.lint,
		Verify:      f.verify,
	}
	opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, model.WrapCLIError(model.ExitUsage, "invalid arguments", err)
	}
	return opts, nil
}

// Execute runs the root command on the process arguments and handles exit
// codes. This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes; other errors default to
// exit code 1.
func Execute(rootCmd *cobra.Command) {
	rootCmd.SetArgs(NormalizeArgs(os.Args[1:]))

	err := rootCmd.Execute()
	if err == nil {
		return
	}

	jsonOutput, _ := rootCmd.Flags().GetBool("json")
	code := ExitCodeOf(err)

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(os.Stderr, jsonOutput, cliErr.Message, cliErr.Err)
	} else {
		printError(os.Stderr, jsonOutput, err.Error(), nil)
	}
	if code == model.ExitUsage && !jsonOutput {
		fmt.Fprint(os.Stderr, rootCmd.UsageString())
	}
	os.Exit(int(code))
}

// ExitCodeOf returns the exit code carried by err. Errors that are not
// CLIErrors map to ExitGeneralError; nil maps to ExitSuccess.
func ExitCodeOf(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text).
func printError(w io.Writer, jsonOutput bool, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"message": message,
		}
		if underlying != nil {
			errObj["detail"] = underlying.Error()
		}
		// stdout is reserved for successful command output, so JSON
		// errors go to stderr as well.
		data, _ := json.MarshalIndent(map[string]interface{}{"error": errObj}, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

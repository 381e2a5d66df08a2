package cli

import "strings"

const (
	jetCollectionFlag  = "jet_collection"
	jetCollectionShort = "-jc"
)

// NormalizeArgs rewrites the jet collection flag into a form pflag accepts.
//
// pflag shorthands are a single letter and take a single value, whereas the
// command line of this tool follows argparse: "-jc A B C" takes every
// following argument up to the next flag. Each value becomes its own
// "--jet_collection=<value>" argument. The inline form
// "--jet_collection=A" (or "-jc=A") takes exactly one value.
//
// A flag given without any value is rewritten to an empty value, which
// option validation rejects. Arguments after "--" are left untouched.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		name, value, inline := strings.Cut(arg, "=")
		if name != jetCollectionShort && name != "--"+jetCollectionFlag {
			out = append(out, arg)
			continue
		}

		if inline {
			out = append(out, "--"+jetCollectionFlag+"="+value)
			continue
		}

		n := 0
		for i+1 < len(args) && !isFlag(args[i+1]) {
			i++
			n++
			out = append(out, "--"+jetCollectionFlag+"="+args[i])
		}
		if n == 0 {
			out = append(out, "--"+jetCollectionFlag+"=")
		}
	}
	return out
}

// isFlag reports whether arg looks like an option rather than a value.
// A lone "-" is a value.
func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

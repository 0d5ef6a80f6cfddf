// Package flagx helps several independent flag sets share one os.Args.
// Each loader keeps only the flags it owns and parses them with its own
// flag.FlagSet, so unknown flags from other loaders never cause errors.
package flagx

import (
	"flag"
	"strings"
)

// Spec names a flag a loader owns. Name is given without leading dashes;
// both "-name" and "--name" spellings are matched, as the flag package does.
// Bool flags never consume the following argument as their value.
type Spec struct {
	Name   string
	IsBool bool
}

// Bool is shorthand for a boolean Spec.
func Bool(name string) Spec { return Spec{Name: name, IsBool: true} }

// Value is shorthand for a Spec that takes a value.
func Value(name string) Spec { return Spec{Name: name} }

// FilterArgs returns the subset of args that belongs to the given specs,
// preserving order. Supported forms:
//
//	-c conf.json     value in the next argument (non-bool flags only)
//	--config=x.json  value joined with '='
//	-s               bare bool flag
func FilterArgs(args []string, specs ...Spec) []string {
	known := make(map[string]Spec, len(specs))
	for _, s := range specs {
		known[s.Name] = s
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, _, hasValue := strings.Cut(trimDashes(arg), "=")
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		spec, ok := known[name]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)
		if hasValue || spec.IsBool {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

func trimDashes(arg string) string {
	if strings.HasPrefix(arg, "--") {
		return arg[2:]
	}
	return strings.TrimPrefix(arg, "-")
}

// ConfigPath extracts the JSON config file path given via -c or -config.
// It returns an empty string when neither flag is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, Value("c"), Value("config")))

	return path
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

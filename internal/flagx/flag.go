// Package flagx lets several components parse their own flags out of one
// shared argument list without tripping over each other's definitions.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Spec names the flags a component understands. Valued flags consume the
// following argument unless it looks like another flag; Switches never do.
type Spec struct {
	Valued   []string
	Switches []string
}

func (s Spec) lookup() map[string]bool {
	m := make(map[string]bool, len(s.Valued)+len(s.Switches))
	for _, f := range s.Valued {
		m[f] = true
	}
	for _, f := range s.Switches {
		m[f] = false
	}
	return m
}

// Filter returns the subset of args that belongs to spec, in original order.
// Both "-f value" and "-f=value" forms are kept; "--f" is treated as "-f".
func Filter(args []string, spec Spec) []string {
	known := spec.lookup()
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		name = "-" + strings.TrimLeft(name, "-")

		valued, ok := known[name]
		if !ok {
			continue
		}
		out = append(out, arg)

		if hasValue || !valued {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// ConfigPath extracts the JSON config file path given via -c or -config.
// It returns "" when neither flag is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(Filter(args, Spec{Valued: []string{"-c", "-config"}}))

	return path
}

// Package flagx helps several components share os.Args: each one picks out
// only the flags it owns before handing them to its own flag.FlagSet.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps the flags named in valueFlags together with their
// values and drops everything else. A value is either joined with '='
// (-f=net.txt) or the next argument when it does not start with '-'.
func FilterArgs(args []string, valueFlags []string) []string {
	return FilterArgsWithBools(args, valueFlags, nil)
}

// FilterArgsWithBools is FilterArgs for flag sets that also declare
// boolean switches. A switch from boolFlags is kept but never swallows
// the argument after it, matching how the flag package parses booleans.
func FilterArgsWithBools(args []string, valueFlags, boolFlags []string) []string {
	takesValue := make(map[string]bool, len(valueFlags)+len(boolFlags))
	for _, f := range valueFlags {
		takesValue[f] = true
	}
	for _, f := range boolFlags {
		takesValue[f] = false
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := takesValue[name]; ok {
				out = append(out, arg)
			}
			continue
		}

		wantsValue, ok := takesValue[arg]
		if !ok {
			continue
		}
		out = append(out, arg)
		if wantsValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// JsonConfigFlags returns the path given with -c or -config, or "" when
// neither is present. When both appear the last one wins.
func JsonConfigFlags() string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config"}))

	return path
}

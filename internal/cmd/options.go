package cmd

import (
	"flag"
	"strconv"
	"strings"
)

// options are the settings of one invocation, filled in by the flags of
// the run command.
type options struct {
	help            bool
	version         bool
	verbose         bool
	wait            bool
	noPrintResult   bool
	noPrintProgress bool
	xmlOutput       bool
	junit           string
}

// optionName returns the flag name in arg ("-V" is "V", "--junit=x" is
// "junit") and whether arg is an option at all.
func optionName(arg string) (string, bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false
	}
	name := arg[1:]
	if name[0] == '-' {
		name = name[1:]
	}
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	return name, true
}

// preScan looks through args for the options that decide an invocation
// before anything runs. A help or version option wins over everything
// else, the first of them in args taking precedence. An explicit false
// value, as in -h=false, turns the option off. Otherwise the first
// option f does not define is returned along with stateInvalidOption.
func preScan(f *flag.FlagSet, args []string) (runState, string) {
	invalid := ""
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name, ok := optionName(arg)
		if !ok {
			continue
		}
		switch name {
		case "h", "help", "v", "version":
			on, err := boolValue(arg)
			if err != nil {
				if invalid == "" {
					invalid = arg
				}
				continue
			}
			if !on {
				continue
			}
			if name == "h" || name == "help" {
				return stateHelp, ""
			}
			return stateVersion, ""
		}
		fl := f.Lookup(name)
		if fl == nil {
			if invalid == "" {
				invalid = arg
			}
			continue
		}
		if !isBoolFlag(fl) && !strings.Contains(arg, "=") {
			// The next argument is the value of this option.
			i++
		}
	}
	if invalid != "" {
		return stateInvalidOption, invalid
	}
	return stateNotStarted, ""
}

// boolValue returns the value of a boolean option: true for "-h", the
// parsed value for "-h=false".
func boolValue(arg string) (bool, error) {
	_, value, ok := strings.Cut(arg, "=")
	if !ok {
		return true, nil
	}
	return strconv.ParseBool(value)
}

func isBoolFlag(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// parseArgs parses args into f and returns the positional arguments.
// Options and positional arguments may be interleaved; everything after
// "--" is positional.
func parseArgs(f *flag.FlagSet, args []string) ([]string, error) {
	var names []string
	for {
		if err := f.Parse(args); err != nil {
			return nil, err
		}
		rest := f.Args()
		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			return append(names, rest...), nil
		}
		if len(rest) == 0 {
			return names, nil
		}
		names = append(names, rest[0])
		args = rest[1:]
	}
}

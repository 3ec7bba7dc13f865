package cmd

import (
	"errors"
	"strings"
)

// errInvalidOption is returned when the command line holds an option the
// run command does not define. It is fatal and nothing is run.
var errInvalidOption = errors.New("invalid option")

// CombineErrors folds errs into a single error, or nil if errs is empty.
func CombineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var sb strings.Builder
	sb.WriteString("multiple errors occurred:\n")
	for _, err := range errs {
		sb.WriteString("  * " + err.Error() + "\n")
	}
	return errors.New(sb.String())
}

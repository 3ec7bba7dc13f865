package cmd

import (
	"bufio"
	"io"
	"path/filepath"

	"oss.indeed.com/go/unitrun/internal/printing"
)

const defaultProgram = "unitrun"

// programName returns the name to print for the program, from argv[0].
func programName(arg0 string) string {
	if arg0 == "" {
		return defaultProgram
	}
	return filepath.Base(arg0)
}

// waitForReturn prompts on out and blocks until a line, or EOF, is read
// from in. The run command prompts on stderr so that a report on stdout
// stays parseable.
func waitForReturn(out *printing.LogWriter, in io.Reader) {
	if in == nil {
		return
	}
	out.Logf("<RETURN> to continue")
	_, _ = bufio.NewReader(in).ReadString('\n')
}

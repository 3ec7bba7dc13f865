// Package run starts external programs, such as a built test binary, and
// captures what they print and how they exit.
package run

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"oss.indeed.com/go/unitrun/internal/printing"
)

const (
	outPrefix = "  > "
	errPrefix = "  ! "
)

// Result is what a finished command printed and the code it exited with.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

type cmdinfo struct {
	cmd       *exec.Cmd
	log       *printing.LogWriter
	logStdout bool
	logStderr bool
}

// Cmd runs the provided command (with the provided args) and waits for it
// to exit. A non-zero exit code is not an error, since test binaries use
// it to report failed tests: it is returned in Result.ExitCode. A non-nil
// error means the command could not be run at all.
//
// By default Cmd logs to os.Stdout the command line before running it, the
// stdout and stderr of the command (each line prefixed with "  > " and
// "  ! " respectively) and the exit code. Use Log to log elsewhere, and
// SuppressStdout or SuppressStderr to keep an output out of the log. The
// returned Result never has the prefixes.
func Cmd(command string, args []string, opts ...Option) (Result, error) {
	sp := cmdinfo{
		cmd:       exec.Command(command, args...),
		log:       printing.NewLogWriter(os.Stdout),
		logStdout: true,
		logStderr: true,
	}
	for _, opt := range opts {
		opt(&sp)
	}

	var stdout, stderr bytes.Buffer
	sp.cmd.Stdout = tee(&stdout, sp.logStdout, sp.log, outPrefix)
	sp.cmd.Stderr = tee(&stderr, sp.logStderr, sp.log, errPrefix)

	sp.log.Logf("Running %q with args %q...", sp.cmd.Path, sp.cmd.Args[1:])
	err := sp.cmd.Run()

	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		sp.log.Logf("Command exited with code %d", res.ExitCode)
		return res, nil
	case err != nil:
		sp.log.Logf("Command failed: %v", err)
		return res, err
	}
	sp.log.Logf("Command exited with code 0")
	return res, nil
}

func tee(to io.Writer, log bool, lw *printing.LogWriter, prefix string) io.Writer {
	if !log {
		return to
	}
	return io.MultiWriter(to, printing.NewIndentWriter(lw, prefix))
}

// Args returns the provided variadic args as a slice, so that
//
//	run.Cmd(bin, run.Args("-V", "FooTest"))
//
// reads a little better than a []string literal.
func Args(args ...string) []string {
	return args
}

// Option alters the way Cmd runs the provided command.
type Option func(*cmdinfo)

// Env causes Cmd to set *additional* environment variables for the command.
func Env(env ...string) Option {
	return func(s *cmdinfo) {
		if len(s.cmd.Env) == 0 {
			s.cmd.Env = append(os.Environ(), env...)
		} else {
			s.cmd.Env = append(s.cmd.Env, env...)
		}
	}
}

// Dir runs the command in dir instead of the current directory.
func Dir(dir string) Option {
	return func(s *cmdinfo) {
		s.cmd.Dir = dir
	}
}

// Stdin causes Cmd to send the provided string to the command as stdin.
func Stdin(in string) Option {
	return func(s *cmdinfo) {
		s.cmd.Stdin = strings.NewReader(in)
	}
}

// Log changes where Cmd writes log-like information about running the command.
func Log(to io.Writer) Option {
	return func(s *cmdinfo) {
		s.log = printing.NewLogWriter(to)
	}
}

// SuppressStdout keeps the stdout of the command out of the log. It is
// still returned.
func SuppressStdout() Option {
	return func(s *cmdinfo) {
		s.logStdout = false
	}
}

// SuppressStderr keeps the stderr of the command out of the log. It is
// still returned.
func SuppressStderr() Option {
	return func(s *cmdinfo) {
		s.logStderr = false
	}
}

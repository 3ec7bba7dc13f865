package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"

	"oss.indeed.com/go/unitrun/internal/junit"
	"oss.indeed.com/go/unitrun/internal/printing"
	"oss.indeed.com/go/unitrun/internal/report"
	"oss.indeed.com/go/unitrun/internal/result"
	"oss.indeed.com/go/unitrun/internal/runner"
	"oss.indeed.com/go/unitrun/unit"
)

// Version is printed by -v. Release builds set it with
// -ldflags "-X oss.indeed.com/go/unitrun/internal/cmd.Version=...".
var Version = "0.1.0"

// Stdio are the standard streams of a test binary.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Main runs a test binary: it parses args (args[0] being the program
// name), runs the selected tests of reg, reports them and returns the
// process exit code.
//
// Help and version options print their text and return 0 without touching
// reg. An option that is not defined prints "invalid option" to stdio.Err
// and returns 1, also without touching reg.
func Main(ctx context.Context, reg *unit.Registry, args []string, stdio Stdio) int {
	program := defaultProgram
	if len(args) > 0 {
		program = programName(args[0])
		args = args[1:]
	}
	c := newRunCmd(program, reg, stdio)

	f := flag.NewFlagSet(program, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.Usage = func() {}
	c.SetFlags(f)

	state, invalid := preScan(f, args)
	switch state {
	case stateHelp:
		c.out.Printf("%s", c.Usage())
		return exitCode(state, nil)
	case stateVersion:
		c.out.Logf("%s: unitrun %s", c.program, Version)
		return exitCode(state, nil)
	case stateInvalidOption:
		return c.invalidOption(fmt.Errorf("%w %s", errInvalidOption, invalid))
	}

	names, err := parseArgs(f, args)
	if err != nil {
		return c.invalidOption(fmt.Errorf("%w: %v", errInvalidOption, err))
	}
	c.names = names
	return int(c.Execute(ctx, f))
}

type runCmd struct {
	program string
	reg     *unit.Registry
	in      io.Reader
	out     *printing.LogWriter
	errOut  *printing.LogWriter
	style   report.Style

	opts  options
	names []string

	state runState
	res   *result.RunResult
}

var _ subcommands.Command = (*runCmd)(nil)

func newRunCmd(program string, reg *unit.Registry, stdio Stdio) *runCmd {
	return &runCmd{
		program: program,
		reg:     reg,
		in:      stdio.In,
		out:     printing.NewLogWriter(stdio.Out),
		errOut:  printing.NewLogWriter(stdio.Err),
		style:   report.StyleFor(stdio.Out),
	}
}

func (*runCmd) Name() string {
	return "run"
}

func (*runCmd) Synopsis() string {
	return "run the registered unit tests"
}

func (c *runCmd) Usage() string {
	return fmt.Sprintf(`%s [options] [TEST...]
Unit test driver

  -h --help               Show this help message
  -v --version            Show version banner
  -V --verbose            Enable verbose progress output
  -w --wait               Wait to exit until user presses RETURN
  -r --no-print-result    Disable printing test result
  -p --no-print-progress  Disable printing test progress
  -x --xml-output         Print an XML report instead of text
     --junit <path>       Also write JUnit XML test results to <path>

TEST is the name of a suite, or Suite::method for a single test.
`, c.program)
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.opts.help, "h", false, "show this help message")
	f.BoolVar(&c.opts.help, "help", false, "show this help message")
	f.BoolVar(&c.opts.version, "v", false, "show version banner")
	f.BoolVar(&c.opts.version, "version", false, "show version banner")
	f.BoolVar(&c.opts.verbose, "V", false, "enable verbose progress output")
	f.BoolVar(&c.opts.verbose, "verbose", false, "enable verbose progress output")
	f.BoolVar(&c.opts.wait, "w", false, "wait to exit until user presses RETURN")
	f.BoolVar(&c.opts.wait, "wait", false, "wait to exit until user presses RETURN")
	f.BoolVar(&c.opts.noPrintResult, "r", false, "disable printing test result")
	f.BoolVar(&c.opts.noPrintResult, "no-print-result", false, "disable printing test result")
	f.BoolVar(&c.opts.noPrintProgress, "p", false, "disable printing test progress")
	f.BoolVar(&c.opts.noPrintProgress, "no-print-progress", false, "disable printing test progress")
	f.BoolVar(&c.opts.xmlOutput, "x", false, "print an XML report instead of text")
	f.BoolVar(&c.opts.xmlOutput, "xml-output", false, "print an XML report instead of text")
	f.StringVar(&c.opts.junit, "junit", "", "also write JUnit XML test results to this path")
}

//revive:disable:unused-parameter
func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	c.res = c.impl(ctx)
	c.state = stateRan
	if c.opts.wait {
		waitForReturn(c.errOut, c.in)
	}
	return subcommands.ExitStatus(exitCode(c.state, c.res))
}

// impl runs the selected tests and renders them with every active
// reporter. Reporter errors are printed but never change the result.
func (c *runCmd) impl(ctx context.Context) *result.RunResult {
	tests := unit.Select(c.reg, c.names...)
	reporters := c.reporters()

	collector := result.NewCollector()
	listeners := []runner.Listener{collector}
	for _, r := range reporters {
		listeners = append(listeners, r)
	}
	runner.New(listeners...).Run(ctx, runner.Tests(tests))

	res := collector.Result()
	var errs []error
	for _, r := range reporters {
		if err := r.Report(res); err != nil {
			errs = append(errs, err)
		}
	}
	if err := CombineErrors(errs); err != nil {
		c.errOut.Logf("%s: %v", c.program, err)
	}
	return res
}

// reporters returns the reporters selected by the options. XML replaces
// every textual reporter. Verbose replaces the progress characters, even
// when those are disabled, and the summary is independent of both.
func (c *runCmd) reporters() []report.Reporter {
	var reporters []report.Reporter
	if c.opts.xmlOutput {
		reporters = append(reporters, report.NewXML(c.out))
	} else {
		switch {
		case c.opts.verbose:
			reporters = append(reporters, report.NewVerbose(c.out, c.style))
		case !c.opts.noPrintProgress:
			reporters = append(reporters, report.NewProgress(c.out, c.style))
		}
		if !c.opts.noPrintResult {
			reporters = append(reporters, report.NewSummary(c.out))
		}
	}
	if c.opts.junit != "" {
		reporters = append(reporters, junit.NewReporter(c.opts.junit))
	}
	return reporters
}

func (c *runCmd) invalidOption(err error) int {
	c.state = stateInvalidOption
	c.errOut.Logf("%s: %v", c.program, err)
	c.errOut.Printf("%s", c.Usage())
	return exitCode(c.state, nil)
}

// Package junit is for writing JUnit XML reports.
package junit

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/jstemmer/go-junit-report/formatter"
	"github.com/jstemmer/go-junit-report/parser"

	"oss.indeed.com/go/unitrun/internal/result"
	"oss.indeed.com/go/unitrun/internal/runner"
	"oss.indeed.com/go/unitrun/unit"
)

// Reporter writes a JUnit XML file once the run completes. It prints
// nothing while tests run.
type Reporter struct {
	path string
}

// NewReporter returns a Reporter that writes to outPath.
func NewReporter(outPath string) *Reporter {
	return &Reporter{path: outPath}
}

func (*Reporter) StartTest(runner.Case) {}

func (*Reporter) EndTest(runner.Result) {}

// Report writes the JUnit XML file.
func (r *Reporter) Report(res *result.RunResult) error {
	if err := Write(res, r.path); err != nil {
		return fmt.Errorf("failed to write JUnit XML: %w", err)
	}
	return nil
}

// Write a JUnit XML file from the provided run. Each suite becomes a
// <testsuite>, in the order suites were first run.
func Write(res *result.RunResult, outPath string) error {
	var out bytes.Buffer
	if err := formatter.JUnitReportXML(toReport(res), false, "", &out); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, out.Bytes(), 0666); err != nil { //nolint:gosec
		return err
	}
	return nil
}

// toReport converts a run into the report model of go-junit-report, using
// suites in place of Go packages. JUnit has no notion of an error distinct
// from a failure, so both become failures and the first output line says
// which one it was.
func toReport(res *result.RunResult) *parser.Report {
	report := &parser.Report{}
	index := make(map[string]int)
	for _, r := range res.Results() {
		suite, method := splitName(r.Case.Name())
		i, ok := index[suite]
		if !ok {
			i = len(report.Packages)
			index[suite] = i
			report.Packages = append(report.Packages, parser.Package{Name: suite})
		}
		pkg := &report.Packages[i]
		pkg.Duration += r.Elapsed
		pkg.Tests = append(pkg.Tests, &parser.Test{
			Name:     method,
			Duration: r.Elapsed,
			Result:   toResult(r.Outcome.Status),
			Output:   output(r.Outcome),
		})
	}
	return report
}

func toResult(s unit.Status) parser.Result {
	if s == unit.Passed {
		return parser.PASS
	}
	return parser.FAIL
}

func output(o unit.Outcome) []string {
	var lines []string
	if o.Status != unit.Passed {
		header := o.Status.String()
		if o.Location.IsKnown() {
			header += " at " + o.Location.String()
		}
		lines = append(lines, header)
		lines = append(lines, strings.Split(o.Message, "\n")...)
	}
	return append(lines, o.Log...)
}

func splitName(name string) (string, string) {
	suite, method, ok := strings.Cut(name, unit.Separator)
	if !ok {
		return name, name
	}
	return suite, method
}

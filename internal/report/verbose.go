package report

import (
	"io"

	"oss.indeed.com/go/unitrun/internal/printing"
	"oss.indeed.com/go/unitrun/internal/result"
	"oss.indeed.com/go/unitrun/internal/runner"
	"oss.indeed.com/go/unitrun/unit"
)

var verboseLabels = map[unit.Status]string{
	unit.Passed:  "OK",
	unit.Failed:  "assertion",
	unit.Errored: "error",
}

// Verbose prints the qualified name of each test as it starts and its
// outcome once it ends, one test per line:
//
//	FooTest::testOk : OK
//	FooTest::testFail : assertion
type Verbose struct {
	to    *printing.LogWriter
	style Style
}

var _ Reporter = (*Verbose)(nil)

// NewVerbose returns a Verbose reporter writing to w.
func NewVerbose(w io.Writer, style Style) *Verbose {
	return &Verbose{to: printing.NewLogWriter(w), style: style}
}

func (v *Verbose) StartTest(c runner.Case) {
	v.to.Printf("%s", c.Name())
}

func (v *Verbose) EndTest(res runner.Result) {
	status := res.Outcome.Status
	v.to.Logf(" : %s", v.style.Render(status, verboseLabels[status]))
}

func (*Verbose) Report(*result.RunResult) error {
	return nil
}

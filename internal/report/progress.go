package report

import (
	"io"

	"oss.indeed.com/go/unitrun/internal/printing"
	"oss.indeed.com/go/unitrun/internal/result"
	"oss.indeed.com/go/unitrun/internal/runner"
	"oss.indeed.com/go/unitrun/unit"
)

// progressChars maps each status to its progress character.
var progressChars = map[unit.Status]string{
	unit.Passed:  ".",
	unit.Failed:  "F",
	unit.Errored: "E",
}

// Progress prints one character per finished test: "." when it Passed,
// "F" when it Failed and "E" when it Errored.
type Progress struct {
	to    *printing.LogWriter
	style Style
}

var _ Reporter = (*Progress)(nil)

// NewProgress returns a Progress reporter writing to w.
func NewProgress(w io.Writer, style Style) *Progress {
	return &Progress{to: printing.NewLogWriter(w), style: style}
}

func (*Progress) StartTest(runner.Case) {}

// EndTest prints the character for res immediately.
func (p *Progress) EndTest(res runner.Result) {
	status := res.Outcome.Status
	p.to.Printf("%s", p.style.Render(status, progressChars[status]))
}

// Report ends the progress line.
func (p *Progress) Report(*result.RunResult) error {
	p.to.Printf("\n")
	return nil
}

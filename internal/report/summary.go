package report

import (
	"bytes"
	"fmt"
	"io"

	"oss.indeed.com/go/unitrun/internal/printing"
	"oss.indeed.com/go/unitrun/internal/result"
	"oss.indeed.com/go/unitrun/unit"
)

const messageIndent = "   "

var defectKinds = map[unit.Status]string{
	unit.Failed:  "F",
	unit.Errored: "E",
}

// Summary prints the counts of a run after a blank separator line.
//
// A successful run of at least one test prints "OK (<n> tests)". Any
// other run prints "Run: <n> Failures: <f> Errors: <e>" followed by every
// failed or errored test, in execution order, with its location and
// message.
type Summary struct {
	quiet
	to io.Writer
}

var _ Reporter = (*Summary)(nil)

// NewSummary returns a Summary reporter writing to w.
func NewSummary(w io.Writer) *Summary {
	return &Summary{to: w}
}

func (s *Summary) Report(res *result.RunResult) error {
	var b bytes.Buffer
	b.WriteString("\n")

	if res.WasSuccessful() && res.Total() > 0 {
		_, _ = fmt.Fprintf(&b, "OK (%d tests)\n", res.Total())
		_, err := s.to.Write(b.Bytes())
		return err
	}

	_, _ = fmt.Fprintf(&b, "Run: %d Failures: %d Errors: %d\n", res.Total(), res.Failures(), res.Errors())
	for i, d := range res.Defects() {
		_, _ = fmt.Fprintf(&b, "\n%d) %s (%s)", i+1, d.Case.Name(), defectKinds[d.Outcome.Status])
		if loc := d.Outcome.Location; loc.IsKnown() {
			_, _ = fmt.Fprintf(&b, " %s", loc)
		}
		b.WriteString("\n")
		_, _ = io.WriteString(printing.NewIndentWriter(&b, messageIndent), d.Outcome.Message+"\n")
	}
	_, err := s.to.Write(b.Bytes())
	return err
}

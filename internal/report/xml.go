package report

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"oss.indeed.com/go/unitrun/internal/result"
	"oss.indeed.com/go/unitrun/unit"
)

var failureTypes = map[unit.Status]string{
	unit.Failed:  "Assertion",
	unit.Errored: "Error",
}

type xmlTestRun struct {
	XMLName         xml.Name           `xml:"TestRun"`
	FailedTests     xmlFailedTests     `xml:"FailedTests"`
	SuccessfulTests xmlSuccessfulTests `xml:"SuccessfulTests"`
	Statistics      xmlStatistics      `xml:"Statistics"`
}

type xmlFailedTests struct {
	Tests []xmlFailedTest `xml:"FailedTest"`
}

type xmlFailedTest struct {
	ID          int          `xml:"id,attr"`
	Name        string       `xml:"Name"`
	FailureType string       `xml:"FailureType"`
	Location    *xmlLocation `xml:"Location,omitempty"`
	Message     string       `xml:"Message"`
}

type xmlLocation struct {
	File string `xml:"File"`
	Line int    `xml:"Line"`
}

type xmlSuccessfulTests struct {
	Tests []xmlTest `xml:"Test"`
}

type xmlTest struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"Name"`
}

type xmlStatistics struct {
	Tests         int `xml:"Tests"`
	FailuresTotal int `xml:"FailuresTotal"`
	Errors        int `xml:"Errors"`
	Failures      int `xml:"Failures"`
}

// XML writes the whole run as a single XML document once it completes:
//
//	<TestRun>
//	  <FailedTests>
//	    <FailedTest id="2">
//	      <Name>FooTest::testFail</Name>
//	      <FailureType>Assertion</FailureType>
//	      <Location><File>foo_test.go</File><Line>12</Line></Location>
//	      <Message>...</Message>
//	    </FailedTest>
//	  </FailedTests>
//	  <SuccessfulTests>
//	    <Test id="1"><Name>FooTest::testOk</Name></Test>
//	  </SuccessfulTests>
//	  <Statistics>...</Statistics>
//	</TestRun>
//
// Test ids are 1-based execution positions.
type XML struct {
	quiet
	to io.Writer
}

var _ Reporter = (*XML)(nil)

// NewXML returns an XML reporter writing to w.
func NewXML(w io.Writer) *XML {
	return &XML{to: w}
}

func (x *XML) Report(res *result.RunResult) error {
	doc := xmlTestRun{
		Statistics: xmlStatistics{
			Tests:         res.Total(),
			FailuresTotal: res.Failures() + res.Errors(),
			Errors:        res.Errors(),
			Failures:      res.Failures(),
		},
	}
	for i, r := range res.Results() {
		id := i + 1
		if r.Outcome.Status == unit.Passed {
			doc.SuccessfulTests.Tests = append(doc.SuccessfulTests.Tests, xmlTest{ID: id, Name: r.Case.Name()})
			continue
		}
		failed := xmlFailedTest{
			ID:          id,
			Name:        r.Case.Name(),
			FailureType: failureTypes[r.Outcome.Status],
			Message:     r.Outcome.Message,
		}
		if loc := r.Outcome.Location; loc.IsKnown() {
			failed.Location = &xmlLocation{File: loc.File, Line: loc.Line}
		}
		doc.FailedTests.Tests = append(doc.FailedTests.Tests, failed)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal XML report: %w", err)
	}
	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.Write(out)
	b.WriteString("\n")
	_, err = x.to.Write(b.Bytes())
	return err
}

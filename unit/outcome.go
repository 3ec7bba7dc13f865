package unit

import (
	"fmt"
	"path/filepath"
)

// Status classifies how a test ended.
type Status int

const (
	// Passed means the test completed without reporting a failure.
	Passed Status = iota
	// Failed means the test reported a failure through *T.
	Failed
	// Errored means the test panicked.
	Errored
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Errored:
		return "errored"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Location is a position in a Go source file. The zero Location is
// unknown.
type Location struct {
	File string
	Line int
}

// IsKnown reports whether l points somewhere.
func (l Location) IsKnown() bool {
	return l.File != ""
}

// String returns "file.go:42", using only the base name of the file, or
// an empty string for an unknown location.
func (l Location) String() string {
	if !l.IsKnown() {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(l.File), l.Line)
}

// Outcome is the classified result of running one test. Message and
// Location describe the first failure for Failed, and the panic for
// Errored. Log holds everything the test logged through *T.
type Outcome struct {
	Status   Status
	Message  string
	Location Location
	Log      []string
}

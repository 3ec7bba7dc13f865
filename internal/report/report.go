// Package report renders a run for people and for machines.
//
// Every reporter is a runner.Listener, so reporters that print as the run
// goes (progress characters, test names) see each result the moment it is
// known, and a Report method called once with the final RunResult.
// Reporters only observe: nothing they do changes the run.
package report

import (
	"oss.indeed.com/go/unitrun/internal/result"
	"oss.indeed.com/go/unitrun/internal/runner"
)

// Reporter renders a run.
type Reporter interface {
	runner.Listener

	// Report is called once, after the last test finished.
	Report(res *result.RunResult) error
}

// quiet provides no-op Listener methods for reporters that only render
// the final RunResult.
type quiet struct{}

func (quiet) StartTest(runner.Case) {}

func (quiet) EndTest(runner.Result) {}

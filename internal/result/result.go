// Package result collects the results of a run into a RunResult.
package result

import (
	"time"

	"oss.indeed.com/go/unitrun/internal/runner"
	"oss.indeed.com/go/unitrun/unit"
)

// Collector is a runner.Listener that records every result in the order
// it is received.
type Collector struct {
	results []runner.Result
}

var _ runner.Listener = (*Collector)(nil)

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// StartTest does nothing; only finished cases are recorded.
func (*Collector) StartTest(runner.Case) {}

// EndTest records res.
func (c *Collector) EndTest(res runner.Result) {
	c.results = append(c.results, res)
}

// Result returns a RunResult of everything recorded so far.
func (c *Collector) Result() *RunResult {
	return newRunResult(c.results)
}

// RunResult is the immutable summary of a run.
type RunResult struct {
	results  []runner.Result
	failures int
	errors   int
	elapsed  time.Duration
}

func newRunResult(results []runner.Result) *RunResult {
	r := &RunResult{results: append([]runner.Result(nil), results...)}
	for _, res := range r.results {
		switch res.Outcome.Status {
		case unit.Failed:
			r.failures++
		case unit.Errored:
			r.errors++
		}
		r.elapsed += res.Elapsed
	}
	return r
}

// Results returns every result in execution order.
func (r *RunResult) Results() []runner.Result {
	return append([]runner.Result(nil), r.results...)
}

// Total is the number of executed tests.
func (r *RunResult) Total() int {
	return len(r.results)
}

// Failures is the number of tests that Failed.
func (r *RunResult) Failures() int {
	return r.failures
}

// Errors is the number of tests that Errored.
func (r *RunResult) Errors() int {
	return r.errors
}

// Passes is the number of tests that Passed.
func (r *RunResult) Passes() int {
	return r.Total() - r.failures - r.errors
}

// Elapsed is the time spent running tests.
func (r *RunResult) Elapsed() time.Duration {
	return r.elapsed
}

// WasSuccessful reports whether no test Failed or Errored. A run of zero
// tests is successful.
func (r *RunResult) WasSuccessful() bool {
	return r.failures == 0 && r.errors == 0
}

// Defects returns the tests that Failed or Errored, in execution order.
func (r *RunResult) Defects() []runner.Result {
	return r.filter(func(s unit.Status) bool { return s != unit.Passed })
}

// FailedTests returns the tests that Failed, in execution order.
func (r *RunResult) FailedTests() []runner.Result {
	return r.filter(func(s unit.Status) bool { return s == unit.Failed })
}

// ErroredTests returns the tests that Errored, in execution order.
func (r *RunResult) ErroredTests() []runner.Result {
	return r.filter(func(s unit.Status) bool { return s == unit.Errored })
}

// PassedTests returns the tests that Passed, in execution order.
func (r *RunResult) PassedTests() []runner.Result {
	return r.filter(func(s unit.Status) bool { return s == unit.Passed })
}

func (r *RunResult) filter(keep func(unit.Status) bool) []runner.Result {
	var out []runner.Result
	for _, res := range r.results {
		if keep(res.Outcome.Status) {
			out = append(out, res)
		}
	}
	return out
}

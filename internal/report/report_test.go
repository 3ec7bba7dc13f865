package report

import (
	"context"
	"errors"

	"oss.indeed.com/go/unitrun/internal/result"
	"oss.indeed.com/go/unitrun/internal/runner"
	"oss.indeed.com/go/unitrun/unit"
)

var errBrokenWriter = errors.New("broken writer")

// brokenWriter always fails (for testing).
type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errBrokenWriter
}

type fakeCase string

func (f fakeCase) Name() string {
	return string(f)
}

func (fakeCase) Run(context.Context) unit.Outcome {
	return unit.Outcome{}
}

// fooRun is FooTest::testOk passing, FooTest::testFail failing an
// assertion, FooTest::testPanic erroring and BarTest::testBar passing.
func fooRun() []runner.Result {
	return []runner.Result{
		{Case: fakeCase("FooTest::testOk"), Outcome: unit.Outcome{Status: unit.Passed}},
		{Case: fakeCase("FooTest::testFail"), Outcome: unit.Outcome{
			Status:   unit.Failed,
			Message:  "want 1\ngot 2",
			Location: unit.Location{File: "/src/foo_test.go", Line: 12},
		}},
		{Case: fakeCase("FooTest::testPanic"), Outcome: unit.Outcome{
			Status:   unit.Errored,
			Message:  "panic: boom",
			Location: unit.Location{File: "/src/foo_test.go", Line: 20},
		}},
		{Case: fakeCase("BarTest::testBar"), Outcome: unit.Outcome{Status: unit.Passed}},
	}
}

// play feeds results to r the way the runner would and returns the final
// RunResult.
func play(r runner.Listener, results []runner.Result) *result.RunResult {
	c := result.NewCollector()
	for _, res := range results {
		r.StartTest(res.Case)
		c.StartTest(res.Case)
		r.EndTest(res)
		c.EndTest(res)
	}
	return c.Result()
}

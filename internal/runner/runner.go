// Package runner executes tests one after the other and reports each
// result to listeners as soon as it is known.
package runner

import (
	"context"
	"time"

	"oss.indeed.com/go/unitrun/unit"
)

// Case is something the Runner can execute. *unit.Test is a Case.
type Case interface {
	Name() string
	Run(ctx context.Context) unit.Outcome
}

// Result is the outcome of one executed Case.
type Result struct {
	Case    Case
	Outcome unit.Outcome
	Elapsed time.Duration
}

// Tests converts tests into Cases, keeping their order.
func Tests(tests []*unit.Test) []Case {
	cases := make([]Case, len(tests))
	for i, t := range tests {
		cases[i] = t
	}
	return cases
}

// Runner runs Cases strictly in sequence.
type Runner struct {
	to  Listener
	now func() time.Time
}

// New returns a Runner that reports to the provided listeners, in order.
func New(listeners ...Listener) *Runner {
	return &Runner{
		to:  newMultiListener(listeners...),
		now: time.Now,
	}
}

// Run executes every case exactly once, in order, waiting for each to
// finish before starting the next. A failing or panicking case never stops
// the run: Run always returns after the last case.
//
// Listeners get StartTest before a case runs and EndTest right after it
// finishes, on the calling goroutine.
func (r *Runner) Run(ctx context.Context, cases []Case) {
	for _, c := range cases {
		r.to.StartTest(c)
		start := r.now()
		outcome := c.Run(ctx)
		r.to.EndTest(Result{
			Case:    c,
			Outcome: outcome,
			Elapsed: r.now().Sub(start),
		})
	}
}

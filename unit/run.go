package unit

import (
	"context"
	"runtime"
	"strings"
)

// Run executes the test once and classifies what happened.
//
// SetUp, the test method and TearDown each run on their own goroutine,
// and Run waits for each to finish before starting the next. A panic, or
// a call to FailNow, only ends the function that caused it. The method is
// skipped when SetUp failed; TearDown always runs.
func (t *Test) Run(ctx context.Context) Outcome {
	st := newT(ctx, t.Name())

	var flt *fault
	if t.suite.setUp != nil {
		flt = st.call(t.suite.setUp)
	}
	if flt == nil && !st.Failed() {
		flt = st.call(t.body)
	}
	if t.suite.tearDown != nil {
		if tearDownFlt := st.call(t.suite.tearDown); flt == nil {
			flt = tearDownFlt
		}
	}
	return st.outcome(flt)
}

// fault is a panic recovered from a test function.
type fault struct {
	val interface{}
	loc Location
}

func (t *T) call(fn func(t *T)) *fault {
	return safeCall(func() { fn(t) })
}

// safeCall runs f on a new goroutine and waits for it to return, to panic
// or to call runtime.Goexit. A panic is recovered and returned.
func safeCall(f func()) *fault {
	var flt *fault
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if val := recover(); val != nil {
				flt = &fault{val: val, loc: panicLocation()}
			}
		}()
		f()
	}()
	<-done
	return flt
}

// panicLocation returns the frame that panicked. It must be called
// directly from the deferred function that recovered.
func panicLocation() Location {
	pcs := make([]uintptr, 64)
	// Skip runtime.Callers, panicLocation and the deferred function.
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			return Location{File: frame.File, Line: frame.Line}
		}
		if !more {
			return Location{}
		}
	}
}

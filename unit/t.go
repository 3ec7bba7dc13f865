package unit

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// testifyPrefix matches the frames of testify's assert and require
// packages, which are never the location of a failure.
const testifyPrefix = "github.com/stretchr/testify/"

// methodPrefix is the function name prefix of every method of *T,
// e.g. "oss.indeed.com/go/unitrun/unit.(*T).".
var methodPrefix = func() string {
	name := runtime.FuncForPC(reflect.ValueOf((*T).Name).Pointer()).Name()
	return strings.TrimSuffix(name, "Name")
}()

type failure struct {
	msg string
	loc Location
}

// T is handed to every test method and to the SetUp and TearDown
// functions of its suite. It records failures and log output.
//
// T may be used from goroutines started by the test, but FailNow, Fatal
// and Fatalf must be called from the goroutine running the test function.
type T struct {
	ctx  context.Context
	name string

	mu       sync.Mutex
	failures []failure
	helpers  map[string]struct{}
	logs     []string
}

func newT(ctx context.Context, name string) *T {
	return &T{
		ctx:     ctx,
		name:    name,
		helpers: make(map[string]struct{}),
	}
}

// Name returns the qualified name of the running test.
func (t *T) Name() string {
	return t.name
}

// Context returns the context of the run.
func (t *T) Context() context.Context {
	return t.ctx
}

// Log records its arguments, formatted like fmt.Sprintln.
func (t *T) Log(args ...interface{}) {
	t.log(sprintln(args...))
}

// Logf records its arguments, formatted like fmt.Sprintf.
func (t *T) Logf(format string, args ...interface{}) {
	t.log(fmt.Sprintf(format, args...))
}

// Error marks the test as failed with the given reason and lets it
// continue.
func (t *T) Error(args ...interface{}) {
	t.fail(sprintln(args...), t.callerLocation())
}

// Errorf is like Error but formats its arguments using fmt.Sprintf.
func (t *T) Errorf(format string, args ...interface{}) {
	t.fail(fmt.Sprintf(format, args...), t.callerLocation())
}

// Fail marks the test as failed without a reason and lets it continue.
func (t *T) Fail() {
	if t.Failed() {
		return
	}
	t.fail("", t.callerLocation())
}

// FailNow marks the test as failed and stops the running function.
func (t *T) FailNow() {
	if !t.Failed() {
		t.fail("", t.callerLocation())
	}
	runtime.Goexit()
}

// Fatal is like Error followed by FailNow.
func (t *T) Fatal(args ...interface{}) {
	t.fail(sprintln(args...), t.callerLocation())
	runtime.Goexit()
}

// Fatalf is like Errorf followed by FailNow.
func (t *T) Fatalf(format string, args ...interface{}) {
	t.fail(fmt.Sprintf(format, args...), t.callerLocation())
	runtime.Goexit()
}

// Failed reports whether a failure has been recorded.
func (t *T) Failed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.failures) > 0
}

// Helper marks the calling function as a test helper. Failures reported
// from within a helper are located at the helper's caller instead.
func (t *T) Helper() {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return
	}
	name := runtime.FuncForPC(pc).Name()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.helpers[name] = struct{}{}
}

func (t *T) log(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logs = append(t.logs, msg)
}

func (t *T) fail(msg string, loc Location) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures = append(t.failures, failure{msg: strings.Trim(msg, "\n"), loc: loc})
}

// callerLocation returns the first frame on the stack that is not inside
// *T, testify or a function marked with Helper.
func (t *T) callerLocation() Location {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !t.skipFrame(frame.Function) {
			return Location{File: frame.File, Line: frame.Line}
		}
		if !more {
			return Location{}
		}
	}
}

func (t *T) skipFrame(function string) bool {
	if strings.HasPrefix(function, methodPrefix) || strings.HasPrefix(function, testifyPrefix) {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.helpers[function]
	return ok
}

// outcome classifies everything recorded so far. A panic always wins over
// recorded failures.
func (t *T) outcome(flt *fault) Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()

	o := Outcome{Log: append([]string(nil), t.logs...)}
	switch {
	case flt != nil:
		o.Status = Errored
		o.Message = fmt.Sprintf("panic: %v", flt.val)
		o.Location = flt.loc
	case len(t.failures) > 0:
		first := t.failures[0]
		o.Status = Failed
		o.Message = first.msg
		if o.Message == "" {
			o.Message = "test marked as failed"
		}
		o.Location = first.loc
	default:
		o.Status = Passed
	}
	return o
}

func sprintln(args ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

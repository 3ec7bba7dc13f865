package unit

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runOne(t *testing.T, opts ...Option) Outcome {
	t.Helper()
	reg, err := NewBuilder().Add("FooTest", opts...).Build()
	require.NoError(t, err)
	tests := reg.Tests()
	require.Len(t, tests, 1)
	return tests[0].Run(context.Background())
}

func thisLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

func requireLocation(t *testing.T, line int, loc Location) {
	t.Helper()
	require.Equal(t, "run_test.go", filepath.Base(loc.File))
	require.Equal(t, line, loc.Line)
}

func Test_Test_Run_passed(t *testing.T) {
	o := runOne(t, Method("testOk", func(ut *T) {
		ut.Log("hello", 42)
		ut.Logf("x=%d", 1)
	}))
	require.Equal(t, Passed, o.Status)
	require.Empty(t, o.Message)
	require.False(t, o.Location.IsKnown())
	require.Equal(t, []string{"hello 42", "x=1"}, o.Log)
}

func Test_Test_Run_errorf(t *testing.T) {
	var line int
	o := runOne(t, Method("testFail", func(ut *T) {
		line = thisLine() + 1
		ut.Errorf("want %d", 1)
		ut.Error("second")
	}))
	require.Equal(t, Failed, o.Status)
	require.Equal(t, "want 1", o.Message)
	requireLocation(t, line, o.Location)
}

func Test_Test_Run_fail(t *testing.T) {
	o := runOne(t, Method("testFail", func(ut *T) {
		ut.Fail()
	}))
	require.Equal(t, Failed, o.Status)
	require.Equal(t, "test marked as failed", o.Message)
}

func Test_Test_Run_fatalStopsMethod(t *testing.T) {
	reached := false
	o := runOne(t, Method("testFatal", func(ut *T) {
		ut.Fatalf("stop %s", "here")
		reached = true
	}))
	require.Equal(t, Failed, o.Status)
	require.Equal(t, "stop here", o.Message)
	require.False(t, reached)
}

func Test_Test_Run_failNow(t *testing.T) {
	reached := false
	o := runOne(t, Method("testFailNow", func(ut *T) {
		ut.FailNow()
		reached = true
	}))
	require.Equal(t, Failed, o.Status)
	require.False(t, reached)
}

func Test_Test_Run_panic(t *testing.T) {
	var line int
	o := runOne(t, Method("testPanic", func(ut *T) {
		line = thisLine() + 1
		panic("boom")
	}))
	require.Equal(t, Errored, o.Status)
	require.Equal(t, "panic: boom", o.Message)
	requireLocation(t, line, o.Location)
}

func Test_Test_Run_runtimeError(t *testing.T) {
	var m map[string]int
	o := runOne(t, Method("testNilMap", func(ut *T) {
		m["x"] = 1
	}))
	require.Equal(t, Errored, o.Status)
	require.Contains(t, o.Message, "assignment to entry in nil map")
}

func Test_Test_Run_panicWinsOverFailure(t *testing.T) {
	o := runOne(t, Method("testBoth", func(ut *T) {
		ut.Error("first")
		panic(errors.New("later"))
	}))
	require.Equal(t, Errored, o.Status)
	require.Equal(t, "panic: later", o.Message)
}

func Test_Test_Run_testifyAssert(t *testing.T) {
	var line int
	o := runOne(t, Method("testAssert", func(ut *T) {
		line = thisLine() + 1
		assert.Equal(ut, 1, 2)
	}))
	require.Equal(t, Failed, o.Status)
	require.Contains(t, o.Message, "Not equal")
	requireLocation(t, line, o.Location)
}

func Test_Test_Run_testifyRequire(t *testing.T) {
	reached := false
	o := runOne(t, Method("testRequire", func(ut *T) {
		require.True(ut, false, "must hold")
		reached = true
	}))
	require.Equal(t, Failed, o.Status)
	require.Contains(t, o.Message, "must hold")
	require.False(t, reached)
}

func checkPositive(ut *T, n int) {
	ut.Helper()
	if n <= 0 {
		ut.Errorf("%d is not positive", n)
	}
}

func Test_Test_Run_helper(t *testing.T) {
	var line int
	o := runOne(t, Method("testHelper", func(ut *T) {
		line = thisLine() + 1
		checkPositive(ut, -1)
	}))
	require.Equal(t, Failed, o.Status)
	require.Equal(t, "-1 is not positive", o.Message)
	requireLocation(t, line, o.Location)
}

func Test_Test_Run_fixtureOrder(t *testing.T) {
	var calls []string
	o := runOne(t,
		SetUp(func(ut *T) { calls = append(calls, "setUp") }),
		TearDown(func(ut *T) { calls = append(calls, "tearDown") }),
		Method("testA", func(ut *T) { calls = append(calls, "testA") }),
	)
	require.Equal(t, Passed, o.Status)
	require.Equal(t, []string{"setUp", "testA", "tearDown"}, calls)
}

func Test_Test_Run_fixturePerTest(t *testing.T) {
	setUps := 0
	reg := NewBuilder().Add("FooTest",
		SetUp(func(ut *T) { setUps++ }),
		Method("testA", func(ut *T) {}),
		Method("testB", func(ut *T) {}),
	).MustBuild()
	for _, test := range reg.Tests() {
		require.Equal(t, Passed, test.Run(context.Background()).Status)
	}
	require.Equal(t, 2, setUps)
}

func Test_Test_Run_setUpFailureSkipsMethod(t *testing.T) {
	var calls []string
	o := runOne(t,
		SetUp(func(ut *T) { ut.Fatal("no fixture") }),
		TearDown(func(ut *T) { calls = append(calls, "tearDown") }),
		Method("testA", func(ut *T) { calls = append(calls, "testA") }),
	)
	require.Equal(t, Failed, o.Status)
	require.Equal(t, "no fixture", o.Message)
	require.Equal(t, []string{"tearDown"}, calls)
}

func Test_Test_Run_setUpPanic(t *testing.T) {
	ran := false
	o := runOne(t,
		SetUp(func(ut *T) { panic("setUp") }),
		Method("testA", func(ut *T) { ran = true }),
	)
	require.Equal(t, Errored, o.Status)
	require.Equal(t, "panic: setUp", o.Message)
	require.False(t, ran)
}

func Test_Test_Run_tearDownPanic(t *testing.T) {
	o := runOne(t,
		TearDown(func(ut *T) { panic("tearDown") }),
		Method("testA", func(ut *T) {}),
	)
	require.Equal(t, Errored, o.Status)
	require.Equal(t, "panic: tearDown", o.Message)
}

func Test_Test_Run_firstPanicWins(t *testing.T) {
	o := runOne(t,
		TearDown(func(ut *T) { panic("tearDown") }),
		Method("testA", func(ut *T) { panic("method") }),
	)
	require.Equal(t, Errored, o.Status)
	require.Equal(t, "panic: method", o.Message)
}

func Test_Test_Run_goroutineError(t *testing.T) {
	o := runOne(t, Method("testGoroutine", func(ut *T) {
		done := make(chan struct{})
		go func() {
			defer close(done)
			ut.Error("from goroutine")
		}()
		<-done
	}))
	require.Equal(t, Failed, o.Status)
	require.Equal(t, "from goroutine", o.Message)
}

type ctxKey struct{}

func Test_T_Name(t *testing.T) {
	var name string
	var ctx context.Context
	reg := NewBuilder().Add("FooTest", Method("testName", func(ut *T) {
		name = ut.Name()
		ctx = ut.Context()
	})).MustBuild()
	want := context.WithValue(context.Background(), ctxKey{}, "v")
	reg.Tests()[0].Run(want)
	require.Equal(t, "FooTest::testName", name)
	require.Equal(t, want, ctx)
}

func Test_Status_String(t *testing.T) {
	require.Equal(t, "passed", Passed.String())
	require.Equal(t, "failed", Failed.String())
	require.Equal(t, "errored", Errored.String())
	require.Equal(t, "Status(7)", Status(7).String())
}

func Test_Location_String(t *testing.T) {
	require.Equal(t, "", Location{}.String())
	require.Equal(t, "foo_test.go:12", Location{File: "/src/pkg/foo_test.go", Line: 12}.String())
}

func Test_methodPrefix(t *testing.T) {
	require.True(t, strings.HasSuffix(methodPrefix, "/unit.(*T)."), methodPrefix)
}

func Test_Test_Run_locationNeverInsideT(t *testing.T) {
	for name, report := range map[string]func(ut *T){
		"Error":   func(ut *T) { ut.Error("x") },
		"Errorf":  func(ut *T) { ut.Errorf("x") },
		"Fail":    func(ut *T) { ut.Fail() },
		"FailNow": func(ut *T) { ut.FailNow() },
		"Fatal":   func(ut *T) { ut.Fatal("x") },
		"Fatalf":  func(ut *T) { ut.Fatalf("x") },
	} {
		o := runOne(t, Method("test"+name, report))
		require.Equal(t, Failed, o.Status, name)
		require.Equal(t, "run_test.go", filepath.Base(o.Location.File), name)
		require.NotZero(t, o.Location.Line, name)
	}
}

// Package unit holds the registered tests of a test binary and runs them
// one at a time.
//
// Tests are grouped into suites and registered once, at startup, through
// a Builder:
//
//	reg, err := unit.NewBuilder().
//		Add("StackTest",
//			unit.SetUp(newStack),
//			unit.Method("testPush", testPush),
//			unit.Method("testPop", testPop),
//		).
//		Build()
//
// The resulting Registry is read-only. Select resolves command line names
// ("StackTest", "StackTest::testPop") into an ordered list of tests, and
// Test.Run executes a single test and classifies what happened as an
// Outcome: Passed, Failed (a check inside the test reported a failure
// through *T) or Errored (the test panicked).
//
// *T satisfies the TestingT interfaces of testify's assert and require
// packages, so test bodies can use them directly:
//
//	func testPop(t *unit.T) {
//		require.Equal(t, 3, stack.Pop())
//	}
package unit

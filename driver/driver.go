// Package driver is the entry point of a test binary.
//
// A test binary registers its suites and hands them to Main:
//
//	func main() {
//		reg := unit.NewBuilder().
//			Add("StackTest", unit.Method("testPush", testPush)).
//			MustBuild()
//		driver.Main(reg)
//	}
//
// Run the binary with -h for its options.
package driver

import (
	"context"
	"os"

	"oss.indeed.com/go/unitrun/internal/cmd"
	"oss.indeed.com/go/unitrun/unit"
)

// Main runs the tests of reg selected by the command line and exits the
// process: 0 when no test failed or errored, 1 otherwise.
func Main(reg *unit.Registry) {
	os.Exit(Run(context.Background(), reg, os.Args))
}

// Run is like Main but takes the command line (including the program
// name) and returns the exit code instead of exiting. It uses the
// process's standard streams.
func Run(ctx context.Context, reg *unit.Registry, args []string) int {
	return cmd.Main(ctx, reg, args, cmd.Stdio{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	})
}

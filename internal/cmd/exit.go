package cmd

import "oss.indeed.com/go/unitrun/internal/result"

// Exit codes of a test binary.
const (
	exitSuccess = 0 // help, version, or a run without failures or errors
	exitFailure = 1 // invalid option, or a run with failures or errors
)

// runState is how far an invocation got.
//
//	stateNotStarted -> stateHelp | stateVersion -> exitSuccess
//	stateNotStarted -> stateInvalidOption       -> exitFailure
//	stateNotStarted -> stateRan                 -> depends on the result
type runState int

const (
	stateNotStarted runState = iota
	stateHelp
	stateVersion
	stateInvalidOption
	stateRan
)

// exitCode resolves the exit code of an invocation that ended in state.
// For stateRan it depends only on the counts of res: zero failures and
// zero errors is a success, whatever the number of tests run.
func exitCode(state runState, res *result.RunResult) int {
	switch state {
	case stateHelp, stateVersion:
		return exitSuccess
	case stateRan:
		if res != nil && res.WasSuccessful() {
			return exitSuccess
		}
	}
	return exitFailure
}

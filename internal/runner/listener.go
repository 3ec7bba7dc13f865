package runner

// Listener observes a run. Listeners must not block for long: the next
// case only starts once every listener has returned.
type Listener interface {
	// StartTest is called right before c runs.
	StartTest(c Case)
	// EndTest is called right after a case finished.
	EndTest(res Result)
}

// multiListener forwards events to zero or more listeners.
type multiListener struct {
	listeners []Listener
}

var _ Listener = (*multiListener)(nil)

func newMultiListener(listeners ...Listener) *multiListener {
	return &multiListener{listeners: listeners}
}

func (m *multiListener) StartTest(c Case) {
	for _, l := range m.listeners {
		l.StartTest(c)
	}
}

func (m *multiListener) EndTest(res Result) {
	for _, l := range m.listeners {
		l.EndTest(res)
	}
}

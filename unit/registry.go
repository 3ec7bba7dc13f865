package unit

// Separator joins a suite name and a method name into the qualified name
// of a test.
const Separator = "::"

// Test is a single registered test method.
type Test struct {
	suite  *Suite
	method string
	body   func(t *T)
}

// Suite returns the suite the test belongs to.
func (t *Test) Suite() *Suite {
	return t.suite
}

// Method returns the method name of the test, without the suite.
func (t *Test) Method() string {
	return t.method
}

// Name returns the qualified name of the test, "Suite::method".
func (t *Test) Name() string {
	return t.suite.name + Separator + t.method
}

// Suite is a named, ordered group of tests sharing optional SetUp and
// TearDown functions.
type Suite struct {
	name     string
	tests    []*Test
	byMethod map[string]*Test
	setUp    func(t *T)
	tearDown func(t *T)
}

// Name returns the suite name.
func (s *Suite) Name() string {
	return s.name
}

// Tests returns the tests of the suite in registration order.
func (s *Suite) Tests() []*Test {
	return append([]*Test(nil), s.tests...)
}

// Test returns the test with the given method name.
func (s *Suite) Test(method string) (*Test, bool) {
	t, ok := s.byMethod[method]
	return t, ok
}

// Registry is the read-only set of suites of a test binary. Use a Builder
// to create one.
type Registry struct {
	suites []*Suite
	byName map[string]*Suite
}

// Suites returns all suites in registration order.
func (r *Registry) Suites() []*Suite {
	return append([]*Suite(nil), r.suites...)
}

// Suite returns the suite with the given name.
func (r *Registry) Suite(name string) (*Suite, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Lookup returns the test with the given suite and method names.
func (r *Registry) Lookup(suite, method string) (*Test, bool) {
	s, ok := r.byName[suite]
	if !ok {
		return nil, false
	}
	return s.Test(method)
}

// Tests returns every test of every suite in registration order.
func (r *Registry) Tests() []*Test {
	var tests []*Test
	for _, s := range r.suites {
		tests = append(tests, s.tests...)
	}
	return tests
}

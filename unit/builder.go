package unit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidName is returned by Builder.Build when a suite or method
	// name is empty or contains Separator.
	ErrInvalidName = errors.New("invalid name")

	// ErrDuplicateName is returned by Builder.Build when a suite name, or
	// a method name within a suite, is registered twice.
	ErrDuplicateName = errors.New("already registered")

	errNilFunc      = errors.New("nil function")
	errAlreadyBuilt = errors.New("registry already built")
)

// Option configures a suite passed to Builder.Add.
type Option func(s *Suite) error

// Method adds a test method to the suite. Methods run in the order they
// are added.
func Method(name string, body func(t *T)) Option {
	return func(s *Suite) error {
		if err := checkName(name); err != nil {
			return fmt.Errorf("method %q: %w", name, err)
		}
		if body == nil {
			return fmt.Errorf("method %q: %w", name, errNilFunc)
		}
		if _, ok := s.byMethod[name]; ok {
			return fmt.Errorf("method %q: %w", name, ErrDuplicateName)
		}
		t := &Test{suite: s, method: name, body: body}
		s.tests = append(s.tests, t)
		s.byMethod[name] = t
		return nil
	}
}

// SetUp sets a function run before every test method of the suite. If it
// reports a failure or panics the method itself is not run.
func SetUp(fn func(t *T)) Option {
	return func(s *Suite) error {
		if fn == nil {
			return fmt.Errorf("set up: %w", errNilFunc)
		}
		s.setUp = fn
		return nil
	}
}

// TearDown sets a function run after every test method of the suite, even
// when the method or SetUp failed.
func TearDown(fn func(t *T)) Option {
	return func(s *Suite) error {
		if fn == nil {
			return fmt.Errorf("tear down: %w", errNilFunc)
		}
		s.tearDown = fn
		return nil
	}
}

// Builder collects suites and produces a Registry exactly once.
//
// The first error encountered puts the Builder in a permanent error state:
// later calls to Add are ignored and Build returns that error.
type Builder struct {
	reg   *Registry
	built bool
	err   error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		reg: &Registry{byName: make(map[string]*Suite)},
	}
}

// Add registers a suite. Suites keep the order in which they are added.
func (b *Builder) Add(name string, opts ...Option) *Builder {
	if b.err != nil {
		return b
	}
	if b.built {
		b.err = errAlreadyBuilt
		return b
	}
	if err := checkName(name); err != nil {
		b.err = fmt.Errorf("suite %q: %w", name, err)
		return b
	}
	if _, ok := b.reg.byName[name]; ok {
		b.err = fmt.Errorf("suite %q: %w", name, ErrDuplicateName)
		return b
	}
	s := &Suite{
		name:     name,
		byMethod: make(map[string]*Test),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			b.err = fmt.Errorf("suite %q: %w", name, err)
			return b
		}
	}
	b.reg.suites = append(b.reg.suites, s)
	b.reg.byName[name] = s
	return b
}

// Build returns the Registry, or the first error reported by Add.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.built = true
	return b.reg, nil
}

// MustBuild is like Build but panics on error. It is meant for main
// functions of test binaries, where a registration mistake is a bug.
func (b *Builder) MustBuild() *Registry {
	reg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("unit: %v", err))
	}
	return reg
}

func checkName(name string) error {
	if name == "" || strings.Contains(name, Separator) {
		return ErrInvalidName
	}
	return nil
}

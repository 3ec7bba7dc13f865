package unit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func noop(*T) {}

func Test_Builder_Build(t *testing.T) {
	reg, err := NewBuilder().
		Add("FooTest", Method("testA", noop), Method("testB", noop)).
		Add("BarTest", Method("testC", noop)).
		Build()
	require.NoError(t, err)

	suites := reg.Suites()
	require.Len(t, suites, 2)
	require.Equal(t, "FooTest", suites[0].Name())
	require.Equal(t, "BarTest", suites[1].Name())

	var names []string
	for _, test := range reg.Tests() {
		names = append(names, test.Name())
	}
	require.Equal(t, []string{"FooTest::testA", "FooTest::testB", "BarTest::testC"}, names)
}

func Test_Builder_Build_emptySuite(t *testing.T) {
	reg, err := NewBuilder().Add("EmptyTest").Build()
	require.NoError(t, err)
	s, ok := reg.Suite("EmptyTest")
	require.True(t, ok)
	require.Empty(t, s.Tests())
	require.Empty(t, reg.Tests())
}

func Test_Builder_Build_duplicateSuite(t *testing.T) {
	_, err := NewBuilder().
		Add("FooTest", Method("testA", noop)).
		Add("FooTest", Method("testB", noop)).
		Build()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDuplicateName))
	require.Contains(t, err.Error(), `suite "FooTest"`)
}

func Test_Builder_Build_duplicateMethod(t *testing.T) {
	_, err := NewBuilder().
		Add("FooTest", Method("testA", noop), Method("testA", noop)).
		Build()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDuplicateName))
	require.Contains(t, err.Error(), `method "testA"`)
}

func Test_Builder_Build_invalidNames(t *testing.T) {
	for _, b := range []*Builder{
		NewBuilder().Add(""),
		NewBuilder().Add("Foo::Test"),
		NewBuilder().Add("FooTest", Method("", noop)),
		NewBuilder().Add("FooTest", Method("a::b", noop)),
	} {
		_, err := b.Build()
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidName))
	}
}

func Test_Builder_Build_nilFunctions(t *testing.T) {
	_, err := NewBuilder().Add("FooTest", Method("testA", nil)).Build()
	require.Error(t, err)
	_, err = NewBuilder().Add("FooTest", SetUp(nil)).Build()
	require.Error(t, err)
	_, err = NewBuilder().Add("FooTest", TearDown(nil)).Build()
	require.Error(t, err)
}

func Test_Builder_Add_afterError(t *testing.T) {
	b := NewBuilder().
		Add("").
		Add("FooTest", Method("testA", noop))
	_, err := b.Build()
	require.True(t, errors.Is(err, ErrInvalidName))
}

func Test_Builder_Add_afterBuild(t *testing.T) {
	b := NewBuilder().Add("FooTest", Method("testA", noop))
	reg, err := b.Build()
	require.NoError(t, err)

	b.Add("BarTest", Method("testB", noop))
	_, err = b.Build()
	require.Error(t, err)
	require.True(t, errors.Is(err, errAlreadyBuilt))
	_, ok := reg.Suite("BarTest")
	require.False(t, ok)
}

func Test_Builder_MustBuild(t *testing.T) {
	require.NotPanics(t, func() { NewBuilder().Add("FooTest").MustBuild() })
	require.Panics(t, func() { NewBuilder().Add("").MustBuild() })
}

func Test_Registry_Lookup(t *testing.T) {
	reg := NewBuilder().Add("FooTest", Method("testA", noop)).MustBuild()

	test, ok := reg.Lookup("FooTest", "testA")
	require.True(t, ok)
	require.Equal(t, "FooTest::testA", test.Name())
	require.Equal(t, "testA", test.Method())
	require.Equal(t, "FooTest", test.Suite().Name())

	_, ok = reg.Lookup("FooTest", "testB")
	require.False(t, ok)
	_, ok = reg.Lookup("BarTest", "testA")
	require.False(t, ok)
}

func Test_Registry_Suites_copy(t *testing.T) {
	reg := NewBuilder().Add("FooTest", Method("testA", noop)).MustBuild()
	suites := reg.Suites()
	suites[0] = nil
	require.NotNil(t, reg.Suites()[0])
}

// Package sample holds the suites of the sample test binary: FooTest,
// eight methods with one failing on purpose, and BarTest, a single
// passing method.
package sample

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.indeed.com/go/unitrun/unit"
)

// Register adds the sample suites to b.
func Register(b *unit.Builder) *unit.Builder {
	return b.
		Add("FooTest",
			unit.SetUp(setUpFoo),
			unit.TearDown(tearDownFoo),
			unit.Method("testOk", testOk),
			unit.Method("testFail", testFail),
			unit.Method("testEqual", testEqual),
			unit.Method("testSorted", testSorted),
			unit.Method("testParse", testParse),
			unit.Method("testParseError", testParseError),
			unit.Method("testWrapped", testWrapped),
			unit.Method("testFixture", testFixture),
		).
		Add("BarTest",
			unit.Method("testBar", testBar),
		)
}

// fooFixture is rebuilt before every FooTest method.
type fooFixture struct {
	values []int
}

var foo *fooFixture

func setUpFoo(*unit.T) {
	foo = &fooFixture{values: []int{3, 1, 2}}
}

func tearDownFoo(*unit.T) {
	foo = nil
}

func testOk(t *unit.T) {
	assert.True(t, true)
}

func testFail(t *unit.T) {
	assert.True(t, false, "this test fails on purpose")
}

func testEqual(t *unit.T) {
	require.Equal(t, 6, sum(foo.values))
}

func testSorted(t *unit.T) {
	sort.Ints(foo.values)
	require.Equal(t, []int{1, 2, 3}, foo.values)
}

func testParse(t *unit.T) {
	n, err := strconv.Atoi("42")
	require.NoError(t, err)
	require.Equal(t, 42, n)
}

func testParseError(t *unit.T) {
	_, err := strconv.Atoi("forty-two")
	require.Error(t, err)
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

var errEmpty = errors.New("empty")

func testWrapped(t *unit.T) {
	err := check(nil)
	require.ErrorIs(t, err, errEmpty)
	require.NoError(t, check(foo.values))
}

func testFixture(t *unit.T) {
	// testSorted sorted its own fixture, not this one.
	require.Equal(t, []int{3, 1, 2}, foo.values)
}

func testBar(t *unit.T) {
	require.Len(t, "bar", 3)
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func check(values []int) error {
	if len(values) == 0 {
		return fmt.Errorf("check: %w", errEmpty)
	}
	return nil
}

package tightpair

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type (
	// emptyA and emptyB are distinct stateless types, like a comparator
	// or an allocator policy would be.
	emptyA struct{}
	emptyB struct{}

	// sealed carries no state but opts out of the optimization.
	sealed struct {
		NoCompress
	}
)

// TestEvaluate asserts the strategy precedence for all classes of slot
// types.
func TestEvaluate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		first    reflect.Type
		second   reflect.Type
		expected Strategy
	}{
		{
			name:     "both stateful",
			first:    typeOf[int64](),
			second:   typeOf[string](),
			expected: Default,
		},
		{
			name:     "first empty",
			first:    typeOf[emptyA](),
			second:   typeOf[int64](),
			expected: FirstEmpty,
		},
		{
			name:     "second empty",
			first:    typeOf[int64](),
			second:   typeOf[emptyB](),
			expected: SecondEmpty,
		},
		{
			name:     "distinct empty types",
			first:    typeOf[emptyA](),
			second:   typeOf[emptyB](),
			expected: BothEmpty,
		},
		{
			// Slots are named fields, so two identical empty types
			// never collide.
			name:     "identical empty types",
			first:    typeOf[emptyA](),
			second:   typeOf[emptyA](),
			expected: BothEmpty,
		},
		{
			name:     "zero length array",
			first:    typeOf[[0]int64](),
			second:   typeOf[int64](),
			expected: FirstEmpty,
		},
		{
			// The empty slot would raise the alignment of the pair
			// above that of the byte.
			name:     "over-aligned empty first",
			first:    typeOf[[0]int64](),
			second:   typeOf[uint8](),
			expected: Default,
		},
		{
			name:     "over-aligned empty second",
			first:    typeOf[uint16](),
			second:   typeOf[[0]uint32](),
			expected: Default,
		},
		{
			name:     "under-aligned empty second",
			first:    typeOf[uint64](),
			second:   typeOf[[0]uint32](),
			expected: SecondEmpty,
		},
		{
			name:     "over-aligned empty pair",
			first:    typeOf[[0]int64](),
			second:   typeOf[emptyB](),
			expected: BothEmpty,
		},
		{
			name:     "sealed first",
			first:    typeOf[sealed](),
			second:   typeOf[int64](),
			expected: Default,
		},
		{
			name:     "sealed second",
			first:    typeOf[emptyA](),
			second:   typeOf[sealed](),
			expected: FirstEmpty,
		},
		{
			name:     "both sealed",
			first:    typeOf[sealed](),
			second:   typeOf[sealed](),
			expected: Default,
		},
		{
			name:     "interface slot",
			first:    typeOf[error](),
			second:   typeOf[struct{}](),
			expected: SecondEmpty,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			strategy := Evaluate(testCase.first, testCase.second)
			require.Equal(t, testCase.expected, strategy)
		})
	}
}

// TestStrategyOf asserts that the type parameter entry point agrees with the
// reflection based one.
func TestStrategyOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, Default, StrategyOf[int, string]())
	require.Equal(t, FirstEmpty, StrategyOf[emptyA, []byte]())
	require.Equal(t, SecondEmpty, StrategyOf[error, emptyB]())
	require.Equal(t, BothEmpty, StrategyOf[emptyA, emptyB]())
	require.Equal(t, SecondEmpty, StrategyOf[sealed, emptyB]())
	require.Equal(t, Default, StrategyOf[int64, sealed]())
}

// TestEligibility asserts that NoCompress removes an empty type from the
// optimization without making it stateful.
func TestEligibility(t *testing.T) {
	t.Parallel()

	sealedType := typeOf[sealed]()
	require.True(t, IsEmpty(sealedType))
	require.False(t, IsEligible(sealedType))

	require.True(t, IsEligible(typeOf[emptyA]()))
	require.False(t, IsEmpty(typeOf[int8]()))
	require.False(t, IsEligible(typeOf[*emptyA]()))
	require.False(t, IsEmpty(nil))
}

func TestStrategyString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Default", Default.String())
	require.Equal(t, "FirstEmpty", FirstEmpty.String())
	require.Equal(t, "SecondEmpty", SecondEmpty.String())
	require.Equal(t, "BothEmpty", BothEmpty.String())
	require.Equal(t, "Unknown", Strategy(42).String())

	require.True(t, SecondEmpty.Reversed())
	require.False(t, FirstEmpty.Reversed())
}

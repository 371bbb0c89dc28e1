package interval_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/almanac/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromPairs verifies pairing, empty-pair dropping and error classes.
func TestFromPairs(t *testing.T) {
	s, err := interval.FromPairs(79, 14, 55, 13, 7, 0)
	require.NoError(t, err)
	want := interval.Set{interval.New(79, 93), interval.New(55, 68)}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("FromPairs mismatch (-want +got):\n%s", diff)
	}

	_, err = interval.FromPairs(1, 2, 3)
	assert.ErrorIs(t, err, interval.ErrOddPairs)

	_, err = interval.FromPairs(math.MaxUint64, 1)
	assert.ErrorIs(t, err, interval.ErrOverflow)

	s, err = interval.FromPairs()
	require.NoError(t, err)
	assert.Empty(t, s)
}

// TestSet_LenMinContains checks the aggregate readers.
func TestSet_LenMinContains(t *testing.T) {
	s := interval.Set{interval.New(40, 50), interval.New(5, 8), interval.New(9, 9)}

	assert.Equal(t, uint64(13), s.Len())
	lowest, ok := s.Min()
	assert.True(t, ok)
	assert.Equal(t, uint64(5), lowest)
	assert.True(t, s.Contains(49))
	assert.False(t, s.Contains(8))
	assert.False(t, s.Contains(9), "empty member holds nothing")

	_, ok = interval.Set{}.Min()
	assert.False(t, ok)
	_, ok = interval.Set{interval.New(3, 3)}.Min()
	assert.False(t, ok, "a set of empty members has no minimum")

	huge := interval.Set{interval.New(0, math.MaxUint64), interval.New(0, 10)}
	assert.Equal(t, uint64(math.MaxUint64), huge.Len(), "Len saturates")
}

// TestSet_Normalize verifies sorting, merging of touching/overlapping members
// and that the receiver is left untouched.
func TestSet_Normalize(t *testing.T) {
	cases := []struct {
		name string
		in   interval.Set
		want interval.Set
	}{
		{"Empty", interval.Set{}, interval.Set{}},
		{"DropsEmpty", interval.Set{interval.New(4, 4)}, interval.Set{}},
		{"Single", interval.Set{interval.New(1, 2)}, interval.Set{interval.New(1, 2)}},
		{
			"SortsDisjoint",
			interval.Set{interval.New(20, 30), interval.New(1, 5)},
			interval.Set{interval.New(1, 5), interval.New(20, 30)},
		},
		{
			"MergesTouching",
			interval.Set{interval.New(5, 10), interval.New(1, 5)},
			interval.Set{interval.New(1, 10)},
		},
		{
			"MergesOverlapAndContained",
			interval.Set{interval.New(1, 10), interval.New(3, 4), interval.New(8, 15), interval.New(30, 31)},
			interval.Set{interval.New(1, 15), interval.New(30, 31)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orig := make(interval.Set, len(tc.in))
			copy(orig, tc.in)
			got := tc.in.Normalize()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, orig, tc.in, "receiver must not change")
		})
	}
}

// TestSet_Partition checks chunk count, balance and coverage.
func TestSet_Partition(t *testing.T) {
	var s interval.Set
	for i := uint64(0); i < 10; i++ {
		s = append(s, interval.New(i*10, i*10+5))
	}

	chunks := s.Partition(3)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 4)
	assert.Len(t, chunks[1], 3)
	assert.Len(t, chunks[2], 3)

	var joined interval.Set
	for _, c := range chunks {
		joined = append(joined, c...)
	}
	assert.Equal(t, s, joined, "chunks must cover the set in order")

	assert.Len(t, s.Partition(50), 10, "never more chunks than members")
	assert.Len(t, s.Partition(0), 1)
	assert.Nil(t, interval.Set{}.Partition(4))
}

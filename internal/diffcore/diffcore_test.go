package diffcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// reconstruct applies changes (sorted by P1) to `before` using `after`
// as the replacement source, returning the reconstructed `after`.
func reconstruct[E comparable](before, after []E, changes []Change) []E {
	var out []E
	pos := 0
	for _, c := range changes {
		out = append(out, before[pos:c.P1]...)
		out = append(out, after[c.P2:c.P2+c.Ins]...)
		pos = c.P1 + c.Del
	}
	out = append(out, before[pos:]...)
	return out
}

var algos = []Algorithm{Histogram, Myers, Patience, ONP}

func TestAlgorithmsReconstructExactly(t *testing.T) {
	cases := []struct {
		name string
		a, b []string
	}{
		{"empty", nil, nil},
		{"a-empty", nil, []string{"x", "y"}},
		{"b-empty", []string{"x", "y"}, nil},
		{"identical", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"simple-edit", []string{"foo", "common1", "common2", "bar"}, []string{"qux1", "common1", "common2", "qux2"}},
		{"interleaved", []string{"a", "b", "c", "d", "e"}, []string{"a", "x", "c", "y", "e"}},
		{"repeats", []string{"x", "x", "x", "y", "x", "x"}, []string{"x", "x", "y", "x", "x", "x", "x"}},
	}
	for _, tc := range cases {
		for _, algo := range algos {
			t.Run(tc.name, func(t *testing.T) {
				changes := Diff(algo, tc.a, tc.b)
				got := reconstruct(tc.a, tc.b, changes)
				require.Equal(t, tc.b, got)
			})
		}
	}
}

func TestHistogramDiffNoChanges(t *testing.T) {
	require.Empty(t, HistogramDiff([]string{"a", "b"}, []string{"a", "b"}))
}

func TestAlgorithmFromName(t *testing.T) {
	a, err := AlgorithmFromName("histogram")
	require.NoError(t, err)
	require.Equal(t, Histogram, a)

	_, err = AlgorithmFromName("bogus")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

// Package diffcore implements line-oriented sequence diffing: the
// black-box "standard line-oriented unified-diff algorithm" that
// higher layers (internal/diffbuild, internal/merge3) are built on.
//
// https://github.com/Wilfred/difftastic/wiki/Line-Based-Diffs
// https://neil.fraser.name/writing/diff/
package diffcore

// Operation classifies one element of a diff.
type Operation int8

const (
	Delete Operation = -1
	Equal  Operation = 0
	Insert Operation = 1
)

// Change is a single replace-range: Del elements starting at P1 in the
// "before" sequence are replaced by Ins elements starting at P2 in the
// "after" sequence. A pure insert has Del == 0; a pure delete has
// Ins == 0.
type Change struct {
	P1  int
	P2  int
	Del int
	Ins int
}

// Algorithm selects the line-matching strategy used to produce Changes.
type Algorithm int

const (
	Unspecified Algorithm = iota
	Histogram
	Myers
	Patience
	ONP
)

var algorithmNames = map[string]Algorithm{
	"histogram": Histogram,
	"myers":     Myers,
	"patience":  Patience,
	"onp":       ONP,
}

// AlgorithmFromName parses an --algorithm flag value.
func AlgorithmFromName(name string) (Algorithm, error) {
	if a, ok := algorithmNames[name]; ok {
		return a, nil
	}
	return Unspecified, ErrUnknownAlgorithm
}

// Diff runs the selected algorithm over two line slices and returns the
// edit script in position order.
func Diff[E comparable](algo Algorithm, a, b []E) []Change {
	switch algo {
	case Myers:
		return MyersDiff(a, b)
	case Patience:
		return PatienceDiff(a, b)
	case ONP:
		return OnpDiff(a, b, 0, 0)
	case Histogram, Unspecified:
		fallthrough
	default:
		return HistogramDiff(a, b)
	}
}

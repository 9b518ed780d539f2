package weight

import (
	"math"
	"sort"
	"strconv"
)

// Weight orders listener delivery for one event key. Higher weights are
// delivered first; listeners registered without a weight sit at Bottom and
// are delivered last.
type Weight float64

// Sentinel weights. Both are valid subscription weights in their own right:
// a listener registered at Top outranks every finite weight, and a listener
// explicitly registered at Bottom shares the bucket of unweighted listeners.
var (
	// Top sorts before every finite weight.
	Top = Weight(math.Inf(1))

	// Bottom sorts after every finite weight. It is the default weight for
	// registration names that carry no weight suffix.
	Bottom = Weight(math.Inf(-1))
)

// Tokens for the infinity sentinels, as they appear in registration names.
const (
	TokenTop    = "Infinity"
	TokenBottom = "-Infinity"
)

// Less reports whether w sorts below other. The order is total: the grammar
// cannot produce NaN, so plain float comparison is already well defined for
// every representable weight.
func (w Weight) Less(other Weight) bool {
	return float64(w) < float64(other)
}

// IsTop reports whether w is the positive-infinity sentinel.
func (w Weight) IsTop() bool {
	return math.IsInf(float64(w), 1)
}

// IsBottom reports whether w is the negative-infinity sentinel.
func (w Weight) IsBottom() bool {
	return math.IsInf(float64(w), -1)
}

// String renders the weight the way the name grammar spells it.
func (w Weight) String() string {
	switch {
	case w.IsTop():
		return TokenTop
	case w.IsBottom():
		return TokenBottom
	default:
		return strconv.FormatFloat(float64(w), 'g', -1, 64)
	}
}

// SortDesc sorts weights in delivery order: descending, Top first, Bottom
// last.
func SortDesc(ws []Weight) {
	sort.Slice(ws, func(i, j int) bool {
		return ws[j].Less(ws[i])
	})
}

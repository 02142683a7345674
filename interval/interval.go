// SPDX-License-Identifier: MIT

package interval

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrBadEncoding indicates an encoded interval that is not a two-element numeric array.
var ErrBadEncoding = errors.New("interval: expected [lower, upper]")

// Interval is an inclusive range [lower, upper] of real values.
// The zero value is the degenerate range [0, 0].
type Interval struct {
	lower float64
	upper float64
}

// New constructs [lower, upper] without checking the ordering.
// Complexity: O(1).
func New(lower, upper float64) Interval {
	return Interval{lower: lower, upper: upper}
}

// FromNominal derives [nominal·(1-eps), nominal·(1+eps)] from a nominal
// duration and an uncertainty fraction eps (0.1 means ±10%).
func FromNominal(nominal, eps float64) Interval {
	margin := nominal * eps

	return Interval{lower: nominal - margin, upper: nominal + margin}
}

// Lower returns the lower bound.
func (a Interval) Lower() float64 { return a.lower }

// Upper returns the upper bound.
func (a Interval) Upper() float64 { return a.upper }

// Add returns [a.lower+b.lower, a.upper+b.upper].
func (a Interval) Add(b Interval) Interval {
	return Interval{lower: a.lower + b.lower, upper: a.upper + b.upper}
}

// Negate returns [-a.upper, -a.lower].
func (a Interval) Negate() Interval {
	return Interval{lower: -a.upper, upper: -a.lower}
}

// Sub returns a + (-b) = [a.lower-b.upper, a.upper-b.lower].
func (a Interval) Sub(b Interval) Interval {
	return a.Add(b.Negate())
}

// Union combines two bound estimates into the tighter one:
// [max(a.lower,b.lower), min(a.upper,b.upper)].
//
// The result may be inverted (lower > upper) when the inputs do not overlap;
// that is how an empty combination shows up.
func (a Interval) Union(b Interval) Interval {
	return Interval{lower: math.Max(a.lower, b.lower), upper: math.Min(a.upper, b.upper)}
}

// Width returns upper - lower.
func (a Interval) Width() float64 { return a.upper - a.lower }

// Contains reports whether lower ≤ x ≤ upper.
func (a Interval) Contains(x float64) bool { return a.lower <= x && x <= a.upper }

// Valid reports whether both bounds are finite and lower ≤ upper.
func (a Interval) Valid() bool {
	if math.IsNaN(a.lower) || math.IsNaN(a.upper) || math.IsInf(a.lower, 0) || math.IsInf(a.upper, 0) {
		return false
	}

	return a.lower <= a.upper
}

// String renders the interval as "[lower, upper]".
func (a Interval) String() string {
	return "[" + strconv.FormatFloat(a.lower, 'g', -1, 64) + ", " +
		strconv.FormatFloat(a.upper, 'g', -1, 64) + "]"
}

// MarshalJSON encodes the interval as [lower, upper].
func (a Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{a.lower, a.upper})
}

// UnmarshalJSON decodes [lower, upper].
func (a *Interval) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}

	return a.setPair(pair)
}

// MarshalYAML encodes the interval as a two-element sequence.
func (a Interval) MarshalYAML() (interface{}, error) {
	return []float64{a.lower, a.upper}, nil
}

// UnmarshalYAML decodes a two-element sequence.
func (a *Interval) UnmarshalYAML(node *yaml.Node) error {
	var pair []float64
	if err := node.Decode(&pair); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrBadEncoding, node.Line, err)
	}

	return a.setPair(pair)
}

// Pair returns the bounds as a two-element slice, the shape used by
// decoders that cannot call UnmarshalJSON (e.g. HCL attributes).
func (a Interval) Pair() []float64 { return []float64{a.lower, a.upper} }

// FromPair builds an interval from a two-element slice.
func FromPair(pair []float64) (Interval, error) {
	var a Interval
	if err := a.setPair(pair); err != nil {
		return Interval{}, err
	}

	return a, nil
}

func (a *Interval) setPair(pair []float64) error {
	if len(pair) != 2 {
		return fmt.Errorf("%w: got %d elements", ErrBadEncoding, len(pair))
	}
	a.lower, a.upper = pair[0], pair[1]

	return nil
}

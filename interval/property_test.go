package interval_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/tempus/interval"
)

// Integer-valued bounds keep float addition exact, so associativity can be
// checked with ==.
func boundGen() gopter.Gen { return gen.IntRange(-100000, 100000) }

func mk(l, u int) interval.Interval { return interval.New(float64(l), float64(u)) }

func TestIntervalAlgebra(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("union is commutative", prop.ForAll(
		func(a, b, c, d int) bool {
			x, y := mk(a, b), mk(c, d)
			return x.Union(y) == y.Union(x)
		},
		boundGen(), boundGen(), boundGen(), boundGen(),
	))

	properties.Property("add is commutative", prop.ForAll(
		func(a, b, c, d int) bool {
			x, y := mk(a, b), mk(c, d)
			return x.Add(y) == y.Add(x)
		},
		boundGen(), boundGen(), boundGen(), boundGen(),
	))

	properties.Property("add is associative", prop.ForAll(
		func(a, b, c, d, e, f int) bool {
			x, y, z := mk(a, b), mk(c, d), mk(e, f)
			return x.Add(y).Add(z) == x.Add(y.Add(z))
		},
		boundGen(), boundGen(), boundGen(), boundGen(), boundGen(), boundGen(),
	))

	properties.Property("negate is an involution", prop.ForAll(
		func(a, b int) bool {
			x := mk(a, b)
			return x.Negate().Negate() == x
		},
		boundGen(), boundGen(),
	))

	properties.Property("sub is add of negation", prop.ForAll(
		func(a, b, c, d int) bool {
			x, y := mk(a, b), mk(c, d)
			return x.Sub(y) == x.Add(y.Negate())
		},
		boundGen(), boundGen(), boundGen(), boundGen(),
	))

	properties.TestingRun(t)
}

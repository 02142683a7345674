package stn_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/tempus/builder"
	"github.com/katalvlaran/tempus/core"
	"github.com/katalvlaran/tempus/stn"
)

// randomEdges builds up to 12 integer-bounded constraints over ids 1..6,
// self-constraints (source == target) included.
// When schedule is non-nil every interval contains schedule[target]-schedule[source],
// so the network is feasible by construction.
func randomEdges(seed int64, feasible bool) []builder.Edge {
	rng := rand.New(rand.NewSource(seed))
	schedule := make(map[core.TimePoint]float64)
	for id := core.TimePoint(1); id <= 6; id++ {
		schedule[id] = float64(rng.Intn(100))
	}

	count := 1 + rng.Intn(12)
	edges := make([]builder.Edge, 0, count)
	for i := 0; i < count; i++ {
		s := core.TimePoint(1 + rng.Intn(6))
		t := core.TimePoint(1 + rng.Intn(6))
		var lo, hi float64
		if feasible {
			delta := schedule[t] - schedule[s]
			lo = delta - float64(rng.Intn(20))
			hi = delta + float64(rng.Intn(20))
		} else {
			lo = float64(rng.Intn(100) - 50)
			hi = lo + float64(rng.Intn(30))
		}
		edges = append(edges, builder.Between(s, t, lo, hi))
	}

	return edges
}

// pathConsistent checks the self-distance and triangle-inequality invariants.
func pathConsistent(n *stn.Network) bool {
	ids := n.TimePoints()
	for _, i := range ids {
		if d, ok := n.Distance(i, i); !ok || d != 0 {
			return false
		}
	}
	for _, i := range ids {
		for _, j := range ids {
			for _, k := range ids {
				ik, ok1 := n.Distance(i, k)
				kj, ok2 := n.Distance(k, j)
				if !ok1 || !ok2 {
					continue
				}
				ij, ok := n.Distance(i, j)
				if !ok || ij > ik+kj {
					return false
				}
			}
		}
	}

	return true
}

func TestNetworkInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("feasible networks propagate path-consistently", prop.ForAll(
		func(seed int64) bool {
			n := stn.New()
			if _, _, err := n.Register(randomEdges(seed, true)); err != nil {
				return false
			}
			if err := n.Propagate(); err != nil {
				return false
			}
			return pathConsistent(n)
		},
		gen.Int64Range(1, 1<<31),
	))

	properties.Property("propagation never loosens a direct arc", prop.ForAll(
		func(seed int64) bool {
			n := stn.New()
			if _, _, err := n.Register(randomEdges(seed, false)); err != nil {
				return false
			}
			if err := n.Propagate(); err != nil {
				return true
			}
			for _, a := range n.Graph().Arcs() {
				d, ok := n.Distance(a.From, a.To)
				if !ok || d > a.Weight {
					return false
				}
			}
			return pathConsistent(n)
		},
		gen.Int64Range(1, 1<<31),
	))

	properties.Property("infeasibility names a registered time point", prop.ForAll(
		func(seed int64) bool {
			n := stn.New()
			if _, _, err := n.Register(randomEdges(seed, false)); err != nil {
				return false
			}
			err := n.Propagate()
			if err == nil {
				return true
			}
			var nc *stn.NegativeCycleError
			if !errors.As(err, &nc) {
				return false
			}
			return n.Graph().HasVertex(nc.TimePoint) && n.Table() == nil
		},
		gen.Int64Range(1, 1<<31),
	))

	properties.TestingRun(t)
}

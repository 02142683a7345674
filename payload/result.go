// SPDX-License-Identifier: MIT

package payload

import (
	"github.com/katalvlaran/tempus/core"
	"github.com/katalvlaran/tempus/stn"
)

// Row is one known constraint-table entry: the tightest upper bound on
// t(To) - t(From).
type Row struct {
	From     core.TimePoint `json:"from" yaml:"from"`
	To       core.TimePoint `json:"to" yaml:"to"`
	Distance float64        `json:"distance" yaml:"distance"`
}

// Result is the serializable view of a propagated network.
type Result struct {
	TimePoints     []core.TimePoint `json:"time_points" yaml:"time_points"`
	Rows           []Row            `json:"rows" yaml:"rows"`
	ElapsedSeconds float64          `json:"elapsed_seconds" yaml:"elapsed_seconds"`
}

// NewResult renders n's constraint table. Rows are ordered by the time
// points' registration order, source first; unknown pairs are omitted.
// A network without a table yields a Result with no rows.
func NewResult(n *stn.Network) *Result {
	ids := n.TimePoints()
	res := &Result{
		TimePoints:     ids,
		Rows:           []Row{},
		ElapsedSeconds: n.Elapsed().Seconds(),
	}
	for _, from := range ids {
		for _, to := range ids {
			if d, ok := n.Distance(from, to); ok {
				res.Rows = append(res.Rows, Row{From: from, To: to, Distance: d})
			}
		}
	}

	return res
}

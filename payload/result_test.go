package payload_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tempus/builder"
	"github.com/katalvlaran/tempus/core"
	"github.com/katalvlaran/tempus/payload"
	"github.com/katalvlaran/tempus/stn"
)

func TestNewResult_RowOrder(t *testing.T) {
	req, err := payload.Load(filepath.Join("testdata", "golden.yaml"))
	require.NoError(t, err)
	res := payload.NewResult(solve(t, req))

	assert.Equal(t, []core.TimePoint{1, 2, 3, 4, 5}, res.TimePoints)
	require.Len(t, res.Rows, 25)
	assert.Equal(t, payload.Row{From: 1, To: 1, Distance: 0}, res.Rows[0])
	assert.Equal(t, payload.Row{From: 1, To: 5, Distance: 70}, res.Rows[4])
	assert.Equal(t, payload.Row{From: 3, To: 1, Distance: -40}, res.Rows[10])
	assert.Equal(t, payload.Row{From: 5, To: 5, Distance: 0}, res.Rows[24])
}

func TestNewResult_SkipsUnknownPairs(t *testing.T) {
	n := stn.New()
	_, _, err := n.Register([]builder.Edge{builder.Between(1, 2, 1, 2), builder.Between(3, 4, 1, 2)})
	require.NoError(t, err)
	require.NoError(t, n.Propagate())

	res := payload.NewResult(n)
	assert.Len(t, res.Rows, 8)
	for _, r := range res.Rows {
		assert.False(t, (r.From <= 2) != (r.To <= 2), "row crosses components: %+v", r)
	}
}

func TestNewResult_BeforePropagate(t *testing.T) {
	n := stn.New()
	_, _, err := n.Register([]builder.Edge{builder.Between(1, 2, 1, 2)})
	require.NoError(t, err)

	res := payload.NewResult(n)
	assert.Equal(t, []core.TimePoint{1, 2}, res.TimePoints)
	assert.Empty(t, res.Rows)
}

func TestResult_Encodings(t *testing.T) {
	res := &payload.Result{
		TimePoints: []core.TimePoint{1, 2},
		Rows:       []payload.Row{{From: 1, To: 2, Distance: 20}},
	}

	js, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"time_points":[1,2],"rows":[{"from":1,"to":2,"distance":20}],"elapsed_seconds":0}`,
		string(js))

	ys, err := yaml.Marshal(res)
	require.NoError(t, err)
	assert.YAMLEq(t,
		"time_points: [1, 2]\nrows:\n  - {from: 1, to: 2, distance: 20}\nelapsed_seconds: 0\n",
		string(ys))
}

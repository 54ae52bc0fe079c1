package flamegraph_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/flamecsv/flamegraph"
	"go.jacobcolvin.com/flamecsv/stringtest"
)

func TestTop(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		nodes []flamegraph.Node
		want  []flamegraph.TopEntry
	}{
		"empty": {
			nodes: nil,
			want:  []flamegraph.TopEntry{},
		},
		"aggregates repeated functions": {
			nodes: []flamegraph.Node{
				{Function: "foo", Samples: 30},
				{Function: "bar", Samples: 20},
				{Function: "foo", Samples: 10},
			},
			want: []flamegraph.TopEntry{
				{Function: "foo", Samples: 40, Percent: float64(40) / 60 * 100},
				{Function: "bar", Samples: 20, Percent: float64(20) / 60 * 100},
			},
		},
		"all root is the denominator": {
			nodes: []flamegraph.Node{
				{Function: "all", Samples: 100},
				{Function: "foo", Samples: 40},
				{Function: "bar", Samples: 25},
			},
			want: []flamegraph.TopEntry{
				{Function: "all", Samples: 100, Percent: 100},
				{Function: "foo", Samples: 40, Percent: 40},
				{Function: "bar", Samples: 25, Percent: 25},
			},
		},
		"all root smaller than sum": {
			nodes: []flamegraph.Node{
				{Function: "all", Samples: 50},
				{Function: "foo", Samples: 40},
			},
			want: []flamegraph.TopEntry{
				{Function: "all", Samples: 50, Percent: 100},
				{Function: "foo", Samples: 40, Percent: 80},
			},
		},
		"zero total yields zero percents": {
			nodes: []flamegraph.Node{
				{Function: "foo", Samples: 0},
				{Function: "bar", Samples: 0},
			},
			want: []flamegraph.TopEntry{
				{Function: "bar", Samples: 0, Percent: 0},
				{Function: "foo", Samples: 0, Percent: 0},
			},
		},
		"zero all root yields zero percents": {
			nodes: []flamegraph.Node{
				{Function: "all", Samples: 0},
				{Function: "foo", Samples: 10},
			},
			want: []flamegraph.TopEntry{
				{Function: "foo", Samples: 10, Percent: 0},
				{Function: "all", Samples: 0, Percent: 0},
			},
		},
		"ties broken by ascending name": {
			nodes: []flamegraph.Node{
				{Function: "zeta", Samples: 10},
				{Function: "alpha", Samples: 10},
				{Function: "mid", Samples: 10},
			},
			want: []flamegraph.TopEntry{
				{Function: "alpha", Samples: 10, Percent: float64(10) / 30 * 100},
				{Function: "mid", Samples: 10, Percent: float64(10) / 30 * 100},
				{Function: "zeta", Samples: 10, Percent: float64(10) / 30 * 100},
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, flamegraph.Top(tc.nodes))
		})
	}
}

func TestWriteTopJSON(t *testing.T) {
	t.Parallel()

	nodes := []flamegraph.Node{
		{Function: "all", Samples: 100, Percent: 100},
		{Function: "foo", Samples: 40, Percent: 40},
	}

	var buf bytes.Buffer

	err := flamegraph.WriteTopJSON(&buf, nodes)
	require.NoError(t, err)

	want := stringtest.JoinLF(
		"[",
		"  {",
		`    "function": "all",`,
		`    "samples": 100,`,
		`    "percent": 100`,
		"  },",
		"  {",
		`    "function": "foo",`,
		`    "samples": 40,`,
		`    "percent": 40`,
		"  }",
		"]",
		"",
	)
	assert.Equal(t, want, buf.String())
}

func TestWriteTopJSON_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := flamegraph.WriteTopJSON(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteTopJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	nodes := []flamegraph.Node{
		{Function: "a;b;c", Samples: 3},
		{Function: `quoted "name"`, Samples: 1},
	}

	var buf bytes.Buffer

	err := flamegraph.WriteTopJSON(&buf, nodes)
	require.NoError(t, err)

	var entries []flamegraph.TopEntry

	err = json.Unmarshal(buf.Bytes(), &entries)
	require.NoError(t, err)
	assert.Equal(t, flamegraph.Top(nodes), entries)
}

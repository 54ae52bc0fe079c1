package flamegraph

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

// rootFunction is the synthetic frame name flamegraph generators use for
// the root covering 100% of samples. When present, its total is the
// normalization denominator: some profilers construct a root whose count
// differs from the sum of the remaining frames.
const rootFunction = "all"

// TopEntry is one aggregated function in the ranked JSON summary.
type TopEntry struct {
	Function string  `json:"function"`
	Samples  uint64  `json:"samples"`
	Percent  float64 `json:"percent"`
}

// Top aggregates nodes by function name and ranks the result by
// descending sample total, ties broken by ascending name so the output
// is deterministic. Percentages are normalized against the root frame's
// total when a function named "all" exists, otherwise against the sum of
// all totals; a zero denominator yields 0 percentages.
func Top(nodes []Node) []TopEntry {
	counts := make(map[string]uint64, len(nodes))
	for _, n := range nodes {
		counts[n.Function] += n.Samples
	}

	total, ok := counts[rootFunction]
	if !ok {
		for _, samples := range counts {
			total += samples
		}
	}

	entries := make([]TopEntry, 0, len(counts))

	for function, samples := range counts {
		var percent float64
		if total != 0 {
			percent = float64(samples) / float64(total) * 100
		}

		entries = append(entries, TopEntry{
			Function: function,
			Samples:  samples,
			Percent:  percent,
		})
	}

	slices.SortFunc(entries, func(a, b TopEntry) int {
		c := cmp.Compare(b.Samples, a.Samples)
		if c != 0 {
			return c
		}

		return cmp.Compare(a.Function, b.Function)
	})

	return entries
}

// WriteTopJSON writes the ranked per-function summary as a pretty-printed
// JSON array with a trailing newline.
func WriteTopJSON(w io.Writer, nodes []Node) error {
	out, err := json.MarshalIndent(Top(nodes), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	out = append(out, '\n')

	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

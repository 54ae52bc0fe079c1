package flamegraph

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jszwec/csvutil"
)

// fixed2 renders a float with exactly two digits after the decimal point
// in CSV output.
type fixed2 float64

// MarshalCSV implements [csvutil.Marshaler].
func (f fixed2) MarshalCSV() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(f), 'f', 2, 64), nil
}

// nodeRow is the CSV projection of a [Node].
type nodeRow struct {
	Function string `csv:"function"`
	Samples  uint64 `csv:"samples"`
	Percent  fixed2 `csv:"percent"`
	X        string `csv:"x"`
	Y        string `csv:"y"`
	Width    string `csv:"width"`
	Height   string `csv:"height"`
}

// WriteNodesCSV writes the per-node CSV artifact: a header row followed
// by one row per node in extraction order. Geometry cells are written
// verbatim as captured from the source rectangles.
func WriteNodesCSV(w io.Writer, nodes []Node) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	// Explicit header so an empty node list still produces one.
	err := enc.EncodeHeader(nodeRow{})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	for _, n := range nodes {
		row := nodeRow{
			Function: n.Function,
			Samples:  n.Samples,
			Percent:  fixed2(n.Percent),
			X:        n.X,
			Y:        n.Y,
			Width:    n.Width,
			Height:   n.Height,
		}

		err := enc.Encode(row)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}

	cw.Flush()

	err = cw.Error()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

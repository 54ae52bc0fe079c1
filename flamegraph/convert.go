package flamegraph

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors returned by the converter.
var (
	ErrInputNotFound = errors.New("input svg not found")
	ErrInvalidSVG    = errors.New("invalid svg")
	ErrReadInput     = errors.New("read input")
	ErrWriteOutput   = errors.New("write output")
)

// Converter turns one flamegraph SVG into the two report artifacts,
// <prefix>.nodes.csv and <prefix>.top.json.
//
// Create instances with [Config.NewConverter].
type Converter struct {
	// OutPrefix is the output base path. Empty means the input path with
	// its extension removed.
	OutPrefix string
}

// Result describes a completed conversion.
type Result struct {
	// NodesCSV and TopJSON are the paths of the written artifacts.
	NodesCSV string
	TopJSON  string

	// Nodes is the number of extracted frames.
	Nodes int
}

// Run converts the SVG at svgPath and writes both artifacts. The CSV is
// written first; the first write failure aborts the conversion, leaving
// any already-written artifact on disk.
func (c *Converter) Run(svgPath string) (*Result, error) {
	_, err := os.Stat(svgPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, svgPath)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	data, err := os.ReadFile(svgPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	nodes, err := Parse(data)
	if err != nil {
		return nil, err
	}

	prefix := c.OutPrefix
	if prefix == "" {
		prefix = strings.TrimSuffix(svgPath, filepath.Ext(svgPath))
	}

	result := &Result{
		NodesCSV: prefix + ".nodes.csv",
		TopJSON:  prefix + ".top.json",
		Nodes:    len(nodes),
	}

	err = writeFile(result.NodesCSV, func(w io.Writer) error {
		return WriteNodesCSV(w, nodes)
	})
	if err != nil {
		return nil, err
	}

	err = writeFile(result.TopJSON, func(w io.Writer) error {
		return WriteTopJSON(w, nodes)
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("converted flamegraph",
		slog.String("svg", svgPath),
		slog.String("nodes_csv", result.NodesCSV),
		slog.String("top_json", result.TopJSON),
		slog.Int("nodes", result.Nodes))

	return result, nil
}

// writeFile creates path, runs write against it, and closes it on every
// path.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // Output path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	err = write(f)

	closeErr := f.Close()

	if err != nil {
		return err
	}

	if closeErr != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, closeErr)
	}

	return nil
}

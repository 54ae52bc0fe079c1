// Package flamegraph converts flamegraph SVG visualizations into flat
// report artifacts.
//
// A flamegraph SVG encodes a call-stack profile as nested rectangles:
// each frame is a group element holding a title of the form
//
//	<name> (<count> samples, <percent>%)
//
// and a rect carrying the frame's geometry. [Parse] extracts every such
// frame as a [Node], in document order. Groups without a parseable title
// or without a rectangle are skipped silently; this is the filtering
// policy that ignores decorative groups, not an error.
//
// [WriteNodesCSV] writes one CSV row per node. [WriteTopJSON] writes
// sample totals per function name, ranked descending, normalized against
// the synthetic "all" root frame when one exists. [TopSchema] describes
// the JSON artifact for downstream validation.
//
// [Converter] drives a whole conversion from an input path to the two
// artifacts; build one from a [Config] wired to CLI flags:
//
//	cfg := flamegraph.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//
//	result, err := cfg.NewConverter().Run(svgPath)
//
// The package is not a general SVG parser: it understands exactly the
// group/title/rect convention emitted by flamegraph generators.
package flamegraph

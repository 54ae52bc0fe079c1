package flamegraph

// Node is one call-stack frame extracted from a flamegraph SVG: the
// decoded title of a group element paired with the geometry of its
// rectangle.
//
// Geometry attributes are carried verbatim as authored in the SVG,
// including any units or formatting; no arithmetic is performed on them.
// Nodes are never mutated after construction.
type Node struct {
	// Function is the call-stack entry's display name. It may contain
	// arbitrary characters, including parentheses.
	Function string

	// Samples is the sample count attributed to this frame.
	Samples uint64

	// Percent is the share of total samples, in [0, 100], as written in
	// the title.
	Percent float64

	// X, Y, Width, and Height are the rectangle's attributes, empty when
	// absent.
	X      string
	Y      string
	Width  string
	Height string
}

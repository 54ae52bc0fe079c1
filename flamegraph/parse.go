package flamegraph

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// titleRe decodes a frame title of the form
// "<name> (<count> samples, <percent>%)". The name capture is greedy so
// the rightmost trailing clause wins when a function name itself contains
// the literal " (<n> sample". The count may carry comma thousands
// separators and "samples" may be singular.
var titleRe = regexp.MustCompile(`^(.*) \(([0-9,]+) samples?, ([0-9.]+)%\)$`)

// Parse extracts every stack-frame node from the given SVG document, in
// document order.
//
// A frame is a group element ("g", namespace ignored) with a title child
// whose text matches the flamegraph title convention and a rect child
// carrying the frame's geometry. Groups missing either child, or with a
// title of a different shape, are skipped; decorative groups are expected
// and are not an error.
//
// A non-well-formed document returns an error wrapping [ErrInvalidSVG].
func Parse(data []byte) ([]Node, error) {
	root, err := parseTree(stripDoctype(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSVG, err)
	}

	var (
		nodes  []Node
		groups int
	)

	walkElements(root, func(el *element) {
		if el.local != "g" {
			return
		}

		groups++

		node, ok := frameNode(el)
		if ok {
			nodes = append(nodes, node)
		}
	})

	slog.Debug("extracted flamegraph nodes",
		slog.Int("groups", groups),
		slog.Int("nodes", len(nodes)))

	return nodes, nil
}

// stripDoctype removes DOCTYPE declarations before XML parsing. Some
// flamegraph generators emit a DOCTYPE referencing an external entity
// that a strict parser would try to resolve. Each removal spans from
// "<!DOCTYPE" through the next ">"; an unterminated declaration drops the
// remainder of the input.
func stripDoctype(data []byte) []byte {
	for {
		i := bytes.Index(data, []byte("<!DOCTYPE"))
		if i < 0 {
			return data
		}

		j := bytes.IndexByte(data[i:], '>')
		if j < 0 {
			return data[:i]
		}

		data = append(data[:i:i], data[i+j+1:]...)
	}
}

// element is a minimal XML tree node: namespace-stripped local name,
// attributes, direct text content, and child elements in document order.
type element struct {
	local    string
	text     string
	attrs    []xml.Attr
	children []*element
}

// parseTree decodes an XML document into an element tree rooted at a
// synthetic document element.
func parseTree(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	root := &element{}
	stack := []*element{root}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return root, nil
		}

		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			// Copy: token attribute data aliases the decoder's buffer.
			t = t.Copy()

			el := &element{local: t.Name.Local, attrs: t.Attr}

			parent := stack[len(stack)-1]
			parent.children = append(parent.children, el)

			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			cur := stack[len(stack)-1]
			cur.text += string(t)
		}
	}
}

// walkElements visits every element depth-first in document order.
func walkElements(el *element, visit func(*element)) {
	for _, child := range el.children {
		visit(child)
		walkElements(child, visit)
	}
}

// frameNode decodes one group element into a [Node]. It reports false
// when the group lacks a title or rect child or when the title does not
// follow the frame convention.
func frameNode(g *element) (Node, bool) {
	var title, rect *element

	for _, child := range g.children {
		switch child.local {
		case "title":
			if title == nil {
				title = child
			}

		case "rect":
			if rect == nil {
				rect = child
			}
		}

		if title != nil && rect != nil {
			break
		}
	}

	if title == nil || rect == nil {
		return Node{}, false
	}

	captures := titleRe.FindStringSubmatch(strings.TrimSpace(title.text))
	if captures == nil {
		return Node{}, false
	}

	samples, err := strconv.ParseUint(strings.ReplaceAll(captures[2], ",", ""), 10, 64)
	if err != nil {
		return Node{}, false
	}

	percent, err := strconv.ParseFloat(captures[3], 64)
	if err != nil {
		return Node{}, false
	}

	return Node{
		Function: captures[1],
		Samples:  samples,
		Percent:  percent,
		X:        attrValue(rect, "x"),
		Y:        attrValue(rect, "y"),
		Width:    attrValue(rect, "width"),
		Height:   attrValue(rect, "height"),
	}, true
}

// attrValue returns the named attribute's value, matching on the local
// name, or the empty string when absent.
func attrValue(el *element, name string) string {
	for _, attr := range el.attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}

	return ""
}

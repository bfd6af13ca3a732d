// Package pretty implements a Wadler-style pretty-printing core: a document
// algebra for describing layout candidates with explicit choice points, and
// a single-pass renderer that picks, at every choice point, whether a group
// renders flat on one line or breaks across several, so as to respect a
// caller-supplied page width while minimising vertical space.
//
// Build a [Node] through a [Builder], then render it with [Node.Render] or
// [Node.RenderFmt]:
//
//	alloc := pretty.NewHeapAllocator()
//	b := pretty.NewBuilder(alloc)
//	sexp := b.Group(b.Append(b.Append(b.Text("("),
//		b.Nest(1, b.Intersperse([]*pretty.Node{b.Text("1"), b.Text("2"), b.Text("3")}, b.Space()))),
//		b.Text(")")))
//	var out strings.Builder
//	sexp.RenderFmt(10, &out) // "(1 2 3)"; "(1\n 2\n 3)" at width 5
//
// The document tree is built once and rendered read-only; there is no
// incremental re-layout and no streaming construction.
package pretty

// Node is a handle to a document variant. Its zero value is not a valid
// document; obtain one from a [Builder]. A *Node is immutable once returned
// by a Builder method and may be shared across multiple parent documents,
// forming a DAG rather than a strict tree — this is safe because node
// construction never introduces a back-edge, so a depth-first walk of any
// document always terminates.
type Node struct {
	v variant
}

// variant is the sealed set of document shapes. Only this package can
// implement it, so Allocator's concrete providers are exhaustive by
// construction: HeapAllocator and ArenaAllocator are the only two.
type variant interface {
	isVariant()
}

// nilVariant is the empty document, a two-sided identity for Append.
type nilVariant struct{}

func (nilVariant) isVariant() {}

// appendVariant is left-to-right concatenation of l then r.
type appendVariant struct {
	l, r *Node
}

func (appendVariant) isVariant() {}

// textVariant is literal inline text. Its payload must contain neither '\n'
// nor '\r'; Builder.Text enforces this at construction time.
type textVariant struct {
	s string
}

func (textVariant) isVariant() {}

// spaceVariant renders as one space in flat mode, as a newline plus the
// active indent in break mode.
type spaceVariant struct{}

func (spaceVariant) isVariant() {}

// newlineVariant always renders as a newline plus the active indent,
// regardless of mode.
type newlineVariant struct{}

func (newlineVariant) isVariant() {}

// nestVariant renders d with the active indent increased by k,
// unconditionally.
type nestVariant struct {
	k int
	d *Node
}

func (nestVariant) isVariant() {}

// blockVariant is a conditional nest: k is added to the indent only if the
// indent in force equals the indent most recently emitted as a line prefix;
// otherwise the indent is carried through unchanged.
type blockVariant struct {
	k int
	d *Node
}

func (blockVariant) isVariant() {}

// groupVariant is a choice point: d is attempted in flat mode if it fits in
// the remaining width, otherwise rendered in break mode.
type groupVariant struct {
	d *Node
}

func (groupVariant) isVariant() {}

// annotatedVariant attaches an opaque, caller-defined metadatum to d. It is
// purely semantic: the layout algorithm and the plain sinks in this package
// pass it through without acting on it.
type annotatedVariant struct {
	a any
	d *Node
}

func (annotatedVariant) isVariant() {}

// unionVariant renders x in flat mode if it fits, else renders y in the
// enclosing mode. Group(d) is semantically Union(flatten(d), d) for a
// flatten that rewrites soft breaks to spaces, but is kept separate because
// that flatten would require copying d; Union exists as a hand-assembled
// escape hatch for callers that already have both alternatives in hand.
type unionVariant struct {
	x, y *Node
}

func (unionVariant) isVariant() {}

// isNil reports whether n is the empty document.
func isNil(n *Node) bool {
	_, ok := n.v.(nilVariant)
	return ok
}

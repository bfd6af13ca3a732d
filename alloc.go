package pretty

// Allocator obtains a handle to a freshly constructed document node. It is
// sealed (alloc takes the unexported variant type) so HeapAllocator and
// ArenaAllocator are its only two implementations: a caller picks one at
// document-construction time and every Node passed to Builder.Append,
// Builder.Group, and friends must come from that same Allocator. Mixing
// Nodes from two allocators is a programmer error; nothing in this package
// detects it at runtime, since doing so would require tagging every Node
// with its origin, which Go's Allocator-per-Builder usage pattern already
// makes very easy to avoid in practice.
type Allocator interface {
	alloc(v variant) *Node
}

// HeapAllocator allocates one independent *Node per call and never returns
// the same node twice. It does not prevent sharing above that level: a
// Builder may place one node under several parents (Intersperse reuses its
// sep node). Concurrent renders over distinct roots never interact, since
// rendering only reads nodes.
type HeapAllocator struct{}

// NewHeapAllocator returns an Allocator that allocates each node on the Go
// heap independently.
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{}
}

func (*HeapAllocator) alloc(v variant) *Node {
	return &Node{v: v}
}

// arenaChunkSize bounds how many Nodes are allocated at a time. Growing by
// whole chunks rather than via append on one large slice means a chunk
// never moves once it holds a live Node, so handles into it stay valid for
// the arena's whole lifetime.
const arenaChunkSize = 128

// ArenaAllocator bump-allocates Node values out of fixed-size chunks. It
// amortises per-node allocation cost and, as an optimisation, interns
// Space and Newline to one shared *Node each, since those variants carry no
// payload and are otherwise the most frequently allocated kind of node in a
// typical document tree.
//
// An ArenaAllocator is not safe for concurrent allocation; concurrent reads
// of an already-built document are fine as long as no further allocation
// happens into the same arena while those reads are in flight.
type ArenaAllocator struct {
	chunks []*chunk // never-reallocated backing arrays, grown one at a time

	space   *Node
	newline *Node
}

// chunk is one fixed-size, never-reallocated backing array plus the next
// free slot in it. ArenaAllocator keeps a slice of *chunk rather than one
// growing slice of Node so that handles returned from an earlier chunk are
// never invalidated by a later chunk's allocation.
type chunk struct {
	nodes []Node
	at    int
}

// NewArenaAllocator returns an Allocator that bump-allocates nodes from an
// internal pool, interning Space and Newline to shared sentinels.
func NewArenaAllocator() *ArenaAllocator {
	return &ArenaAllocator{
		space:   &Node{v: spaceVariant{}},
		newline: &Node{v: newlineVariant{}},
	}
}

func (a *ArenaAllocator) alloc(v variant) *Node {
	switch v.(type) {
	case spaceVariant:
		return a.space
	case newlineVariant:
		return a.newline
	}

	if len(a.chunks) == 0 || a.chunks[len(a.chunks)-1].at >= arenaChunkSize {
		a.chunks = append(a.chunks, &chunk{nodes: make([]Node, arenaChunkSize)})
	}

	c := a.chunks[len(a.chunks)-1]
	n := &c.nodes[c.at]
	n.v = v
	c.at++
	return n
}

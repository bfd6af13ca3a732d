package pretty

import (
	"fmt"
	"strings"

	"github.com/arvidkj/pretty/internal/assert"
)

// Builder pairs an Allocator with the fluent combinators used to assemble a
// document. All Nodes passed into a Builder's methods must have come from
// the same Allocator that Builder wraps; see Allocator's doc comment.
type Builder struct {
	alloc Allocator
}

// NewBuilder returns a Builder that allocates every node it constructs
// through alloc.
func NewBuilder(alloc Allocator) *Builder {
	return &Builder{alloc: alloc}
}

// Nil returns the empty document, the two-sided identity for Append.
func (b *Builder) Nil() *Node {
	return b.alloc.alloc(nilVariant{})
}

// Text returns a document rendering s verbatim. s must contain neither '\n'
// nor '\r'; violating this is a programmer error, checked here via
// assert.Invariant.
func (b *Builder) Text(s string) *Node {
	assert.Invariant(!strings.ContainsAny(s, "\n\r"), "pretty: text must not contain line breaks: %q", s)
	return b.alloc.alloc(textVariant{s: s})
}

// AsString is shorthand for Text(fmt.Sprint(v)).
func (b *Builder) AsString(v any) *Node {
	return b.Text(fmt.Sprint(v))
}

// Space returns a soft separator: one space in flat mode, a newline plus
// the active indent in break mode.
func (b *Builder) Space() *Node {
	return b.alloc.alloc(spaceVariant{})
}

// Newline returns a hard break: always a newline plus the active indent.
func (b *Builder) Newline() *Node {
	return b.alloc.alloc(newlineVariant{})
}

// Append concatenates a then b left to right. Appending anything to Nil (or
// Nil to anything) returns the other operand unchanged, and allocates
// nothing new.
func (b *Builder) Append(a, c *Node) *Node {
	if isNil(a) {
		return c
	}
	if isNil(c) {
		return a
	}
	return b.alloc.alloc(appendVariant{l: a, r: c})
}

// Concat left-folds ds under Append, starting from Nil.
func (b *Builder) Concat(ds []*Node) *Node {
	result := b.Nil()
	for _, d := range ds {
		result = b.Append(result, d)
	}
	return result
}

// Intersperse returns ds[0] · sep · ds[1] · sep · ... · sep · ds[n-1], with
// the same sep node placed between each pair and neither a leading nor a
// trailing separator. Intersperse([d], sep) is d alone; Intersperse(nil, sep) is
// Nil.
func (b *Builder) Intersperse(ds []*Node, sep *Node) *Node {
	result := b.Nil()
	for i, d := range ds {
		if i > 0 {
			result = b.Append(result, sep)
		}
		result = b.Append(result, d)
	}
	return result
}

// Group marks d as a choice point: the renderer attempts it in flat mode if
// it fits in the remaining width, otherwise renders it in break mode.
func (b *Builder) Group(d *Node) *Node {
	return b.alloc.alloc(groupVariant{d: d})
}

// Nest renders d with the active indent increased by k. Nest(0, d) returns
// d unchanged, allocating nothing new.
func (b *Builder) Nest(k int, d *Node) *Node {
	if k == 0 {
		return d
	}
	return b.alloc.alloc(nestVariant{k: k, d: d})
}

// Annotate attaches the opaque metadatum a to d. Annotations do not affect
// layout decisions; see Node's doc comment.
func (b *Builder) Annotate(a any, d *Node) *Node {
	return b.alloc.alloc(annotatedVariant{a: a, d: d})
}

// block is the conditional-nest primitive (spec §3.1's Block): k is added
// to the indent only if the indent in force equals the indent most recently
// emitted as a line prefix. It is not exposed on Builder's public surface — spec.md's
// Open Question resolves this by keeping Block reachable only through
// internal construction; the renderer still must and does handle it.
func (b *Builder) block(k int, d *Node) *Node {
	return b.alloc.alloc(blockVariant{k: k, d: d})
}

// union is the two-alternative fallback primitive (spec §3.1's Union): x is
// rendered flat if it fits, else y is rendered in the enclosing mode. Like
// block, it is intentionally absent from Builder's public surface.
func (b *Builder) union(x, y *Node) *Node {
	return b.alloc.alloc(unionVariant{x: x, y: y})
}

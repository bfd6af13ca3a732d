package pretty

import (
	"io"

	"github.com/arvidkj/pretty/internal/assert"
)

// mode is the renderer's per-command layout mode. There is no terminal
// mode; each command on the stack carries its own, per spec.md §4.6.
type mode int

const (
	modeBreak mode = iota
	modeFlat
)

// cmd is a pending rendering command: render doc at indent ind in mode m.
type cmd struct {
	ind  int
	mode mode
	doc  *Node
}

// Render lays root out to fit width columns and writes the result to w.
// Errors from w are returned verbatim; no partial output is retracted.
func Render(root *Node, width int, w io.Writer) error {
	return render(root, width, NewByteSink(w))
}

// RenderFmt is Render for a character sink (e.g. *strings.Builder):
// failures come back wrapped in *FormatError.
func RenderFmt(root *Node, width int, w io.StringWriter) error {
	return render(root, width, NewCharSink(w))
}

// Render is Render(n, width, w).
func (n *Node) Render(width int, w io.Writer) error {
	return Render(n, width, w)
}

// RenderFmt is RenderFmt(n, width, w).
func (n *Node) RenderFmt(width int, w io.StringWriter) error {
	return RenderFmt(n, width, w)
}

// render is the best-layout algorithm of spec.md §4.4: an iterative,
// continuation-stack renderer. todo holds commands not yet emitted; pos is
// the current column; currentIndent is the indent most recently emitted as
// a line prefix, consulted by Block. scratch is reused across fit probes to
// avoid reallocating a stack for every Group.
func render(root *Node, width int, sink Sink) error {
	pos := 0
	currentIndent := 0
	todo := []cmd{{ind: 0, mode: modeBreak, doc: root}}
	var scratch []cmd

	for len(todo) > 0 {
		c := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		ind, m, d := c.ind, c.mode, c.doc

		switch v := d.v.(type) {
		case nilVariant:
			// no-op

		case appendVariant:
			todo = pushAppend(todo, ind, m, d)

		case nestVariant:
			todo = append(todo, cmd{ind: ind + v.k, mode: m, doc: v.d})

		case blockVariant:
			next := ind
			if ind == currentIndent {
				next = ind + v.k
			}
			todo = append(todo, cmd{ind: next, mode: m, doc: v.d})

		case groupVariant:
			// Per spec.md §4.4: a group already inherited as Flat renders
			// flat unchanged, no probe needed — a Group can only have been
			// pushed as Flat by an enclosing probe (fits) or render choice
			// that already verified the surrounding line has room.
			if m == modeFlat {
				todo = append(todo, cmd{ind: ind, mode: modeFlat, doc: v.d})
				break
			}
			scratch = scratch[:0]
			if fits(cmd{ind: ind, mode: modeFlat, doc: v.d}, todo, len(todo), width-pos, &scratch) {
				todo = append(todo, cmd{ind: ind, mode: modeFlat, doc: v.d})
			} else {
				todo = append(todo, cmd{ind: ind, mode: modeBreak, doc: v.d})
			}

		case spaceVariant:
			if m == modeFlat {
				if err := sink.WriteAll(" "); err != nil {
					return err
				}
				pos++
			} else {
				if err := emitNewlineAndIndent(ind, sink); err != nil {
					return err
				}
				currentIndent = ind
				pos = ind
			}

		case newlineVariant:
			if err := emitNewlineAndIndent(ind, sink); err != nil {
				return err
			}
			currentIndent = ind
			pos = ind

		case textVariant:
			if err := sink.WriteAll(v.s); err != nil {
				return err
			}
			pos += len(v.s)

		case annotatedVariant:
			todo = append(todo, cmd{ind: ind, mode: m, doc: v.d})

		case unionVariant:
			scratch = scratch[:0]
			if fits(cmd{ind: ind, mode: modeFlat, doc: v.x}, todo, len(todo), width-pos, &scratch) {
				todo = append(todo, cmd{ind: ind, mode: modeFlat, doc: v.x})
			} else {
				todo = append(todo, cmd{ind: ind, mode: m, doc: v.y})
			}

		default:
			assert.Unreachable("pretty: unhandled variant %T", v)
		}
	}
	return nil
}

// pushAppend pushes the commands needed to render d — which must be an
// Append node — in left-to-right order onto a LIFO stack, walking the left
// spine of the Append chain iteratively. This is what keeps a long chain of
// left-deep concatenations linear instead of quadratic: an Append chain is
// consumed without re-popping intermediate Append nodes. Used by both the
// main render loop and the fit probe.
func pushAppend(stack []cmd, ind int, m mode, d *Node) []cmd {
	av, ok := d.v.(appendVariant)
	assert.Invariant(ok, "pretty: pushAppend called on non-Append node")
	stack = append(stack, cmd{ind: ind, mode: m, doc: av.r})
	l := av.l
	for {
		lv, ok := l.v.(appendVariant)
		if !ok {
			break
		}
		stack = append(stack, cmd{ind: ind, mode: m, doc: lv.r})
		l = lv.l
	}
	stack = append(stack, cmd{ind: ind, mode: m, doc: l})
	return stack
}

// fits decides whether next, followed by the outer continuation bcmds[:bidx]
// read backward from its top, can be rendered within rem columns without
// emitting output. scratch is the shared probe stack; fits truncates it
// back to its entry length before returning, so a probe never leaves
// residue behind for its caller, per spec.md §4.5.
func fits(next cmd, bcmds []cmd, bidx, rem int, scratch *[]cmd) bool {
	start := len(*scratch)
	ok := fitsFrom(next, bcmds, bidx, rem, scratch)
	*scratch = (*scratch)[:start]
	return ok
}

// fitsFrom walks next's subtree and, once exhausted, the outer continuation
// bcmds[:bidx] looking for a column overrun within rem. A forced break
// (Newline, or a Space already committed to modeBreak) means different
// things depending on where it is found. While still inside next's own
// subtree (inSeed), it is content the caller is asking to render flat — a
// break there proves that is impossible, so the probe fails, per spec.md §8
// scenario 6. Once the probe has fallen through into the outer continuation,
// a forced break there just marks where the current line ends regardless of
// what next decides, which is good news for the fit question: the probe
// succeeds. This departs from original_source's fitting_, which always
// treats a forced break as success (spec.md §4.5's prose agrees with it),
// because only resolving in favor of §8 makes scenario 5 and scenario 6
// both hold.
func fitsFrom(next cmd, bcmds []cmd, bidx, rem int, scratch *[]cmd) bool {
	start := len(*scratch)
	*scratch = append(*scratch, next)
	inSeed := true

	for rem >= 0 {
		if len(*scratch) <= start {
			inSeed = false
			if bidx == 0 {
				return true
			}
			bidx--
			*scratch = append(*scratch, bcmds[bidx])
			continue
		}

		c := (*scratch)[len(*scratch)-1]
		*scratch = (*scratch)[:len(*scratch)-1]
		ind, m, d := c.ind, c.mode, c.doc

		switch v := d.v.(type) {
		case nilVariant:
			// 0 cost

		case appendVariant:
			*scratch = pushAppend(*scratch, ind, m, d)

		case nestVariant:
			*scratch = append(*scratch, cmd{ind: ind + v.k, mode: m, doc: v.d})

		case blockVariant:
			// The probe never tracks currentIndent across calls, so Block
			// is treated exactly like Nest here, per original_source's
			// fitting_ (it folds the Nest and Block arms together).
			*scratch = append(*scratch, cmd{ind: ind + v.k, mode: m, doc: v.d})

		case groupVariant:
			*scratch = append(*scratch, cmd{ind: ind, mode: m, doc: v.d})

		case annotatedVariant:
			*scratch = append(*scratch, cmd{ind: ind, mode: m, doc: v.d})

		case spaceVariant:
			if m == modeFlat {
				rem--
			} else if inSeed {
				return false
			} else {
				return true
			}

		case newlineVariant:
			if inSeed {
				return false
			}
			return true

		case textVariant:
			rem -= len(v.s)

		case unionVariant:
			if fits(cmd{ind: ind, mode: modeFlat, doc: v.x}, bcmds, bidx, rem, scratch) {
				return true
			}
			*scratch = append(*scratch, cmd{ind: ind, mode: m, doc: v.y})

		default:
			assert.Unreachable("pretty: unhandled variant %T", v)
		}
	}
	return false
}

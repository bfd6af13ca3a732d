package pretty

import "strings"

// Pretty is a handle returned by Node.Pretty that formats its document
// through a character sink when converted to a string, per spec.md §6.
type Pretty struct {
	doc   *Node
	width int
}

// Pretty returns a handle that lays n out to fit width columns when
// formatted, e.g. with fmt.Sprint or inside a format string's %v/%s verb.
func (n *Node) Pretty(width int) Pretty {
	return Pretty{doc: n, width: width}
}

// String implements fmt.Stringer by rendering through a *strings.Builder,
// which is a CharSink's underlying io.StringWriter.
func (p Pretty) String() string {
	var out strings.Builder
	if err := p.doc.RenderFmt(p.width, &out); err != nil {
		return "<pretty: render error: " + err.Error() + ">"
	}
	return out.String()
}

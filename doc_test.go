package pretty_test

import (
	"testing"

	"github.com/arvidkj/pretty"
	"github.com/teleivo/assertive/assert"
)

func TestNilIdempotence(t *testing.T) {
	alloc := pretty.NewHeapAllocator()
	b := pretty.NewBuilder(alloc)

	d := b.Text("hello")
	nilDoc := b.Nil()

	assert.Truef(t, b.Append(nilDoc, d) == d, "Append(Nil, d) should return d unchanged")
	assert.Truef(t, b.Append(d, nilDoc) == d, "Append(d, Nil) should return d unchanged")
}

func TestNestZeroIsNoop(t *testing.T) {
	alloc := pretty.NewHeapAllocator()
	b := pretty.NewBuilder(alloc)

	d := b.Text("hello")

	assert.Truef(t, b.Nest(0, d) == d, "Nest(0, d) should return d unchanged")
}

func TestIntersperse(t *testing.T) {
	alloc := pretty.NewHeapAllocator()
	b := pretty.NewBuilder(alloc)

	tests := map[string]struct {
		in    []*pretty.Node
		width int
		want  string
	}{
		"single element": {
			in:    []*pretty.Node{b.Text("1")},
			width: 10,
			want:  "1",
		},
		"no elements": {
			in:    nil,
			width: 10,
			want:  "",
		},
		"multiple elements": {
			in:    []*pretty.Node{b.Text("1"), b.Text("2"), b.Text("3")},
			width: 10,
			want:  "1 2 3",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := b.Intersperse(tt.in, b.Space()).Pretty(tt.width).String()
			assert.EqualValuesf(t, got, tt.want, "Intersperse(%v)", tt.in)
		})
	}
}

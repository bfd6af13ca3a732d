package pretty_test

import (
	"testing"

	"github.com/arvidkj/pretty"
	"github.com/teleivo/assertive/assert"
)

func TestAsString(t *testing.T) {
	alloc := pretty.NewHeapAllocator()
	b := pretty.NewBuilder(alloc)

	got := b.AsString(42).Pretty(10).String()
	assert.EqualValuesf(t, got, "42", "AsString(42)")
}

func TestAnnotateIsLayoutTransparent(t *testing.T) {
	alloc := pretty.NewHeapAllocator()
	b := pretty.NewBuilder(alloc)

	plain := b.Group(b.Append(b.Text("a"), b.Append(b.Space(), b.Text("b"))))
	annotated := b.Annotate("some-metadata", plain)

	assert.EqualValuesf(t, annotated.Pretty(10).String(), plain.Pretty(10).String(), "Annotate must not affect layout")
}

func TestTextRejectsEmbeddedNewline(t *testing.T) {
	alloc := pretty.NewHeapAllocator()
	b := pretty.NewBuilder(alloc)

	tests := map[string]string{
		"newline":      "a\nb",
		"carriage ret": "a\rb",
	}

	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Text(%q): want panic but got none", s)
				}
			}()
			_ = b.Text(s)
		})
	}
}

func TestConcat(t *testing.T) {
	alloc := pretty.NewHeapAllocator()
	b := pretty.NewBuilder(alloc)

	got := b.Concat([]*pretty.Node{b.Text("a"), b.Text("b"), b.Text("c")}).Pretty(10).String()
	assert.EqualValuesf(t, got, "abc", "Concat")
}

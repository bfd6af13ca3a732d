package pretty

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/teleivo/assertive/assert"
)

var allowUnexported = cmp.AllowUnexported(textVariant{}, nilVariant{}, spaceVariant{}, newlineVariant{})

func TestHeapAllocatorNeverShares(t *testing.T) {
	a := NewHeapAllocator()

	n1 := a.alloc(textVariant{s: "x"})
	n2 := a.alloc(textVariant{s: "x"})

	assert.Falsef(t, n1 == n2, "HeapAllocator must return a fresh node per call")
	if diff := cmp.Diff(n1.v, n2.v, allowUnexported); diff != "" {
		t.Errorf("identical text payloads should still compare equal structurally (-n1 +n2):\n%s", diff)
	}
}

func TestArenaAllocatorInternsSpaceAndNewline(t *testing.T) {
	a := NewArenaAllocator()

	s1 := a.alloc(spaceVariant{})
	s2 := a.alloc(spaceVariant{})
	assert.Truef(t, s1 == s2, "ArenaAllocator must intern Space to one shared node")

	nl1 := a.alloc(newlineVariant{})
	nl2 := a.alloc(newlineVariant{})
	assert.Truef(t, nl1 == nl2, "ArenaAllocator must intern Newline to one shared node")

	assert.Falsef(t, s1 == nl1, "Space and Newline must not be interned to the same node")
}

func TestArenaAllocatorDoesNotInternText(t *testing.T) {
	a := NewArenaAllocator()

	t1 := a.alloc(textVariant{s: "same"})
	t2 := a.alloc(textVariant{s: "same"})

	assert.Falsef(t, t1 == t2, "Text nodes must not be interned even with identical payloads")
}

func TestArenaAllocatorGrowsByWholeChunks(t *testing.T) {
	a := NewArenaAllocator()

	first := a.alloc(textVariant{s: "first"})

	for i := 0; i < arenaChunkSize+5; i++ {
		a.alloc(textVariant{s: "filler"})
	}

	assert.Truef(t, len(a.chunks) >= 2, "allocating past one chunk's capacity must grow the chunk list, got %d chunks", len(a.chunks))
	if diff := cmp.Diff(first.v, textVariant{s: "first"}, allowUnexported); diff != "" {
		t.Errorf("a handle from an earlier chunk must stay valid after growth (-got +want):\n%s", diff)
	}
}

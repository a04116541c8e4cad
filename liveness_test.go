package cxxtype

import "testing"

// TestArenaLivenessTenThousandArrays covers end-to-end scenario 6 from
// spec.md §8, in the shape of the teacher's
// TestIntegrationLongRunningArena: allocate many distinct values from one
// arena, then verify every earlier handle is still dereferenceable and
// still equal to a repeat call.
func TestArenaLivenessTenThousandArrays(t *testing.T) {
	a := New()
	x := a.IntType()

	const n = 10000
	handles := make([]*Type, n)
	for i := 1; i <= n; i++ {
		handles[i-1] = x.ArrayOf(i)
	}

	for i := 1; i <= n; i++ {
		if x.ArrayOf(i) != handles[i-1] {
			t.Fatalf("array dimension %d did not remain stable across repeated construction", i)
		}
		if handles[i-1].Dims() != i {
			t.Fatalf("array dimension %d reported wrong Dims(): %d", i, handles[i-1].Dims())
		}
		if handles[i-1].Element() != x {
			t.Fatalf("array dimension %d lost its element type", i)
		}
	}

	if got := a.Stats().Arrays; got != n {
		t.Errorf("expected %d arrays in pool stats, got %d", n, got)
	}
}

package cxxtype

import "testing"

func TestEntityOfPrimitive(t *testing.T) {
	a := New()
	p := a.PrimitiveOf(SInt, 4)

	entity, cv, ref := p.Entity()
	if entity != p {
		t.Error("entity(primitive) should be the primitive itself")
	}
	if cv != (CV{}) {
		t.Errorf("entity(primitive) cv should be zero, got %+v", cv)
	}
	if ref != RefNone {
		t.Errorf("entity(primitive) ref should be None, got %v", ref)
	}
}

func TestEntityOfCV(t *testing.T) {
	a := New()
	x := a.IntType()
	c := CV{Const: true}

	entity, cv, ref := x.CVOf(c).Entity()
	if entity != x {
		t.Error("entity(cv_of(x, c)) should unwrap to x")
	}
	if cv != c {
		t.Errorf("entity(cv_of(x, c)) cv should be c, got %+v", cv)
	}
	if ref != RefNone {
		t.Errorf("expected RefNone, got %v", ref)
	}
}

func TestEntityOfLRefOverCV(t *testing.T) {
	a := New()
	x := a.IntType()
	c := CV{Const: true, Volatile: true}

	entity, cv, ref := x.CVOf(c).LRefOf().Entity()
	if entity != x {
		t.Error("entity(lref_of(cv_of(x, c))) should unwrap to x")
	}
	if cv != c {
		t.Errorf("expected cv %+v, got %+v", c, cv)
	}
	if ref != RefLValue {
		t.Errorf("expected RefLValue, got %v", ref)
	}
}

func TestEntitySeesConstructionMergedCV(t *testing.T) {
	// Stacked CV qualifiers are merged at construction, so the walk under
	// a reference meets a single CV node; entity() must report that node's
	// cv exactly, not a further accumulation (spec.md §4.4 & §9).
	a := New()
	x := a.IntType()
	inner := CV{Const: true}
	outer := CV{Volatile: true}

	// cv_of merges {const} and {volatile} into one CV node {const,volatile}
	// before any reference wraps it, so entity() must see the merged
	// result exactly, not a further accumulation.
	merged := x.CVOf(inner).CVOf(outer)
	entity, cv, _ := merged.LRefOf().Entity()
	if entity != x {
		t.Fatal("expected entity to unwrap to x")
	}
	if cv != (CV{Const: true, Volatile: true}) {
		t.Errorf("expected merged cv, got %+v", cv)
	}
}

func TestEntityStopsAtNonReferenceNonCVKinds(t *testing.T) {
	a := New()
	x := a.IntType()

	for _, derived := range []*Type{x.PtrOf(), x.ArrayOf(1)} {
		entity, cv, ref := derived.Entity()
		if entity != derived {
			t.Errorf("entity(%v) should stop at itself", derived.TypeKind())
		}
		if cv != (CV{}) || ref != RefNone {
			t.Errorf("entity(%v) should report zero cv/ref", derived.TypeKind())
		}
	}
}

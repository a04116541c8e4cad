package a

import "github.com/scttfrdmn/cxxtype"

// ungated calls a guarded accessor with no preceding TypeKind() check on
// the same value.
func ungated(t *cxxtype.Type) {
	_ = t.Primitive() // want "Primitive called without a preceding TypeKind\\(\\) check on the same value"
}

// gated checks TypeKind() first, so the same accessor call is fine.
func gated(t *cxxtype.Type) {
	if t.TypeKind() == cxxtype.KindPrimitive {
		_ = t.Primitive()
	}
}

var leaked *cxxtype.Type

// globalEscape stores an arena-produced handle into package state, where
// it can outlive the arena that produced it.
func globalEscape() {
	a := cxxtype.New()
	defer a.Close()
	leaked = a.IntType() // want "cxxtype handle stored into a package-level variable may outlive its Arena"
}

// scoped keeps the handle local, so nothing escapes.
func scoped() cxxtype.Kind {
	a := cxxtype.New()
	defer a.Close()
	t := a.IntType()
	return t.TypeKind()
}

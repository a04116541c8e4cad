package cxxtype

import (
	"fmt"
	"strings"
)

// funcKey and genericKey are the hash-table keys used to intern Function
// and Generic nodes: componentwise data equality plus an identity-based
// encoding of the parameter sequence (spec.md §9 recommends a hash table
// over an ordered set; hashing by handle identity is sound per the
// uniqueness invariant in spec.md §3).
type funcKey struct {
	data   FuncData
	params string
}

type genericKey struct {
	data   GenericData
	params string
}

// paramsKey encodes a parameter sequence by the pointer identity of each
// handle, in order, so two calls with element-equal sequences produce
// the same key and any reordering produces a different one.
func paramsKey(params []*Type) string {
	var b strings.Builder
	for _, p := range params {
		fmt.Fprintf(&b, "%p|", p)
	}
	return b.String()
}

func (t *Type) checkOpen(op string) {
	if t.arena.closed.Load() {
		useAfterClose(op)
	}
}

// LRefOf returns the lvalue-reference type over t, applying the
// idempotence and absorption rules in spec.md §3:
//
//	LRef(LRef(x)) = LRef(x)
//	LRef(RRef(x)) = LRef(x)
//	LRef(Zero) = Zero, LRef(Nullptr) = Nullptr
func (t *Type) LRefOf() *Type {
	t.checkOpen("LRefOf()")
	switch t.kind {
	case KindZero, KindNullptr, KindLRef:
		return t
	case KindRRef:
		return t.element.LRefOf()
	default:
		if t.lref == nil {
			e := t.arena.lrefPool.alloc()
			*e = Type{kind: KindLRef, arena: t.arena, element: t}
			t.lref = e
		}
		return t.lref
	}
}

// RRefOf returns the rvalue-reference type over t:
//
//	RRef(RRef(x)) = RRef(x)
//	RRef(LRef(x)) = LRef(x)
//	RRef(Zero) = Zero, RRef(Nullptr) = Nullptr
func (t *Type) RRefOf() *Type {
	t.checkOpen("RRefOf()")
	switch t.kind {
	case KindZero, KindNullptr, KindLRef:
		return t
	case KindRRef:
		return t
	default:
		if t.rref == nil {
			e := t.arena.rrefPool.alloc()
			*e = Type{kind: KindRRef, arena: t.arena, element: t}
			t.rref = e
		}
		return t.rref
	}
}

// PtrOf returns the pointer type over t. Pointer is never idempotent or
// absorbed; Ptr(Ptr(x)) and Ptr(x) are distinct handles.
func (t *Type) PtrOf() *Type {
	t.checkOpen("PtrOf()")
	if t.ptr == nil {
		e := t.arena.ptrPool.alloc()
		*e = Type{kind: KindPtr, arena: t.arena, element: t}
		t.ptr = e
	}
	return t.ptr
}

// ArrayOf returns the array type over t with the given dimension count,
// interned per dimension (spec.md §4.3's "mapping dim -> handle").
func (t *Type) ArrayOf(dims int) *Type {
	t.checkOpen("ArrayOf()")
	if t.arrayOf == nil {
		t.arrayOf = make(map[int]*Type)
	}
	if e, ok := t.arrayOf[dims]; ok {
		return e
	}
	e := t.arena.arrPool.alloc()
	*e = Type{kind: KindArray, arena: t.arena, element: t, dims: dims}
	t.arrayOf[dims] = e
	return e
}

// CVOf returns t qualified by cv, applying the absorption and merging
// rules in spec.md §3:
//
//	CV(LRef(x), cv) = LRef(x); same for RRef
//	CV(Zero, cv) = Zero; CV(Nullptr, cv) = Nullptr
//	CV(CV(x, cv0), cv1) = CV(x, cv0 ∪ cv1)
//	CV(x, {false,false}) = x
func (t *Type) CVOf(cv CV) *Type {
	t.checkOpen("CVOf()")
	switch t.kind {
	case KindZero, KindNullptr, KindLRef, KindRRef:
		return t
	case KindCV:
		return t.element.CVOf(t.cv.Union(cv))
	default:
		if cv.isZero() {
			return t
		}
		idx := cvIndex(cv)
		if t.cvOf[idx] == nil {
			e := t.arena.cvPool.alloc()
			*e = Type{kind: KindCV, arena: t.arena, element: t, cv: cv}
			t.cvOf[idx] = e
		}
		return t.cvOf[idx]
	}
}

// MemberOf returns the pointer-to-member type whose member type is t and
// whose class is class, interned per class handle.
func (t *Type) MemberOf(class *Type) *Type {
	t.checkOpen("MemberOf()")
	if t.memberOf == nil {
		t.memberOf = make(map[*Type]*Type)
	}
	if e, ok := t.memberOf[class]; ok {
		return e
	}
	e := t.arena.memPool.alloc()
	*e = Type{kind: KindMember, arena: t.arena, element: t, class: class}
	t.memberOf[class] = e
	return e
}

// FunctionOf returns the function type returning t, with the given
// ordered parameter list and func-data, interned by (funcData, params)
// (spec.md §4.3's sorted-set key, implemented as a hash table per §9).
func (t *Type) FunctionOf(params []*Type, fd FuncData) *Type {
	t.checkOpen("FunctionOf()")
	if t.functionOf == nil {
		t.functionOf = make(map[funcKey]*Type)
	}
	key := funcKey{data: fd, params: paramsKey(params)}
	if e, ok := t.functionOf[key]; ok {
		return e
	}
	owned := append([]*Type(nil), params...)
	e := t.arena.fnPool.alloc()
	*e = Type{kind: KindFunction, arena: t.arena, element: t, params: owned, funcData: fd}
	t.functionOf[key] = e
	return e
}

// GenericOf returns the template-instantiation type over t with the
// given ordered parameter list and generic-data, interned the same way
// as FunctionOf.
func (t *Type) GenericOf(params []*Type, gd GenericData) *Type {
	t.checkOpen("GenericOf()")
	if t.genericOf == nil {
		t.genericOf = make(map[genericKey]*Type)
	}
	key := genericKey{data: gd, params: paramsKey(params)}
	if e, ok := t.genericOf[key]; ok {
		return e
	}
	owned := append([]*Type(nil), params...)
	e := t.arena.genPool.alloc()
	*e = Type{kind: KindGeneric, arena: t.arena, element: t, params: owned, genericData: gd}
	t.genericOf[key] = e
	return e
}

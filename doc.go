// Package cxxtype provides a hash-consed, arena-backed representation of
// C++ types for a static-analysis / documentation toolchain.
//
// # Overview
//
// A C++ parser or semantic analyzer builds type values by calling an
// Arena's constructors; every call that describes the same type returns
// the same *Type pointer. Two types are semantically equal exactly when
// their handles are the same pointer, so downstream comparisons are O(1)
// and never need a deep-equality function.
//
// # Quick Start
//
// The simplest way to build a set of related types is within one Scoped
// arena, shared for the lifetime of one analysis pass:
//
//	cxxtype.Scoped(func(a *cxxtype.Arena) int {
//	    intType := a.IntType()
//	    constIntRef := intType.CVOf(cxxtype.CV{Const: true}).LRefOf()
//	    // ... hand constIntRef to the analyzer ...
//	    return 0
//	}) // arena closed here; handles must not be used past this point
//
// # Core Concepts
//
// Arena: owns every Type value for one analysis's lifetime. Create with
// New() or NewArena(Config) for platform-specific primitive sizes, or use
// Scoped() for automatic closing.
//
// Type: an opaque handle to one of fourteen type-value kinds (Zero,
// Nullptr, Primitive, Decl, GenericArg, LRef, RRef, Ptr, Array, CV,
// Member, Function, Generic, Expr). Construct derived types by calling
// methods on an existing handle: LRefOf, RRefOf, PtrOf, ArrayOf, CVOf,
// MemberOf, FunctionOf, GenericOf.
//
// # Canonicalization Rules
//
// References are idempotent: LRef(LRef(x)) = LRef(x), LRef(RRef(x)) =
// LRef(x), RRef(RRef(x)) = RRef(x). CV-qualification on a reference, on
// Zero, or on Nullptr is absorbed — it returns the unqualified handle
// unchanged. Stacking CV qualifiers merges their flags with bitwise OR.
// Function and Generic types are canonicalized by their return/element
// type, their ordered parameter sequence compared element-by-element,
// and their func-data/generic-data compared componentwise.
//
// # Safety Guarantees
//
// Closing an Arena makes every further constructor call on it, and every
// builder or Entity call on the Type handles it produced, panic with a
// diagnostic that names the operation attempted and a hint for fixing it.
// This catches use-after-close construction immediately. The read-only
// accessors (TypeKind, Primitive, Element and the like) do not check
// whether the arena is closed and keep returning the handle's data.
//
// # Error Handling
//
// Calling an accessor or builder the handle's kind does not support
// panics with a *KindMismatchError. Constructing an illegal primitive
// descriptor or cv combination panics with a *OutOfRangeError. Both are
// programming errors in the caller, not runtime conditions, per the
// source this core was distilled from: callers are expected to branch on
// TypeKind() before calling a kind-specific accessor.
//
// # Static Analysis
//
// cxxtype includes typecheck, a go/analysis-based static analyzer that
// catches two classes of caller bug at compile time: kind-specific
// accessor calls not preceded by a TypeKind() switch, and Type/Symbol
// handles retained in package-level state past their Arena's lifetime.
// Run it directly, or wire it into go vet:
//
//	go vet -vettool=$(which typecheck) ./...
package cxxtype

package cxxtype

import "sync/atomic"

// Config parameterizes the platform-dependent root primitives. The
// original implementation hard-wired int/size_t/intptr_t to 4 bytes with
// a TODO to make them configurable (spec.md §4.2, §9); this Config makes
// that choice explicit and caller-supplied instead.
type Config struct {
	IntBytes    int
	SizeBytes   int
	IntPtrBytes int
}

// DefaultConfig reproduces the original hard-wired sizes: int/size_t/
// intptr_t are all 4 bytes, SInt/UInt/SInt respectively.
func DefaultConfig() Config {
	return Config{IntBytes: 4, SizeBytes: 4, IntPtrBytes: 4}
}

// Arena owns every Type value constructed through it. It is a scoped
// resource: after Close, every constructor on the arena and every builder
// or Entity call on a handle it handed out panics (spec.md §5, §7). The
// read-only accessors on those handles do not check for Close.
// An Arena is not safe for concurrent construction from multiple
// goroutines; construction is single-threaded by spec (§5).
type Arena struct {
	cfg    Config
	closed atomic.Bool

	zero     Type
	nullPtr  Type
	primPool pool[Type]
	primitives map[Primitive]*Type

	declPool  pool[Type]
	decls     map[Symbol]*Type
	argPool   pool[Type]
	genArgs   map[Symbol]*Type

	lrefPool pool[Type]
	rrefPool pool[Type]
	ptrPool  pool[Type]
	arrPool  pool[Type]
	cvPool   pool[Type]
	memPool  pool[Type]
	fnPool   pool[Type]
	genPool  pool[Type]
	exprPool pool[Type]
}

// NewArena creates an empty arena configured with cfg.
func NewArena(cfg Config) *Arena {
	a := &Arena{
		cfg:        cfg,
		primitives: make(map[Primitive]*Type),
		decls:      make(map[Symbol]*Type),
		genArgs:    make(map[Symbol]*Type),
	}
	a.zero = Type{kind: KindZero, arena: a}
	a.nullPtr = Type{kind: KindNullptr, arena: a}
	return a
}

// New is a convenience for NewArena(DefaultConfig()).
func New() *Arena {
	return NewArena(DefaultConfig())
}

// Scoped runs fn with a freshly created arena and closes it automatically
// when fn returns, the safest pattern for a single analysis pass that
// shares one arena for the lifetime of one translation unit.
func Scoped[R any](fn func(*Arena) R) R {
	a := New()
	defer a.Close()
	return fn(a)
}

// checkOpen panics with a use-after-close diagnostic if the arena has
// already been closed.
func (a *Arena) checkOpen(op string) {
	if a.closed.Load() {
		useAfterClose(op)
	}
}

// Close releases the arena: subsequent calls into this arena, or builder
// and Entity calls on handles it produced, panic. The read-only accessors
// (TypeKind, Primitive, Element, ...) do not check the closed flag and
// keep returning the handle's data. Close is idempotent-safe
// to call more than once; a second Close is a no-op, unlike the teacher's
// double-free panic, because there is no manual storage to double-release
// here — only the observable "no access survives Close" contract matters.
func (a *Arena) Close() {
	a.closed.Store(true)
}

// Free is an alias for Close, kept for readers used to the
// New/Alloc/Free/Scoped naming convention.
func (a *Arena) Free() {
	a.Close()
}

// Stats reports how many values live in each per-kind pool, for
// diagnostics; it does not require the arena to still be open.
type Stats struct {
	Primitives, Decls, GenericArgs       int
	LRefs, RRefs, Ptrs, Arrays, CVs      int
	Members, Functions, Generics, Exprs int
}

// Stats returns a snapshot of per-kind pool occupancy.
func (a *Arena) Stats() Stats {
	return Stats{
		Primitives:   a.primPool.size(),
		Decls:        a.declPool.size(),
		GenericArgs:  a.argPool.size(),
		LRefs:        a.lrefPool.size(),
		RRefs:        a.rrefPool.size(),
		Ptrs:         a.ptrPool.size(),
		Arrays:       a.arrPool.size(),
		CVs:          a.cvPool.size(),
		Members:      a.memPool.size(),
		Functions:    a.fnPool.size(),
		Generics:     a.genPool.size(),
		Exprs:        a.exprPool.size(),
	}
}

// Zero returns the singleton `void` type.
func (a *Arena) Zero() *Type {
	a.checkOpen("Zero()")
	return &a.zero
}

// NullptrType returns the singleton type of `nullptr`.
func (a *Arena) NullptrType() *Type {
	a.checkOpen("NullptrType()")
	return &a.nullPtr
}

// PrimitiveOf returns the interned handle for the given (class, bytes)
// descriptor, allocating it on first use. Panics with OutOfRangeError if
// the pair is not in the legal grid.
func (a *Arena) PrimitiveOf(class NumericClass, bytes int) *Type {
	a.checkOpen("PrimitiveOf()")
	desc := Primitive{Class: class, Bytes: bytes}
	if !legalPrimitives[desc] {
		outOfRangePrimitive(class, bytes)
	}
	if t, ok := a.primitives[desc]; ok {
		return t
	}
	t := a.primPool.alloc()
	*t = Type{kind: KindPrimitive, arena: a, primitive: desc}
	a.primitives[desc] = t
	return t
}

// IntType returns the primitive the arena was configured to use for
// `int` (spec.md §4.2: SInt at Config.IntBytes).
func (a *Arena) IntType() *Type {
	return a.PrimitiveOf(SInt, a.cfg.IntBytes)
}

// SizeType returns the primitive configured for `size_t` (UInt at
// Config.SizeBytes).
func (a *Arena) SizeType() *Type {
	return a.PrimitiveOf(UInt, a.cfg.SizeBytes)
}

// IntPtrType returns the primitive configured for `intptr_t` (SInt at
// Config.IntPtrBytes).
func (a *Arena) IntPtrType() *Type {
	return a.PrimitiveOf(SInt, a.cfg.IntPtrBytes)
}

// DeclOf returns the interned Decl handle for symbol, allocating it on
// first use. The same symbol always yields the same handle.
func (a *Arena) DeclOf(symbol Symbol) *Type {
	a.checkOpen("DeclOf()")
	if t, ok := a.decls[symbol]; ok {
		return t
	}
	t := a.declPool.alloc()
	*t = Type{kind: KindDecl, arena: a, symbol: symbol}
	a.decls[symbol] = t
	return t
}

// GenericArgOf returns the interned GenericArg handle for symbol,
// allocating it on first use. Decl and GenericArg are distinct maps, so
// DeclOf(s) != GenericArgOf(s) even for the same symbol s.
func (a *Arena) GenericArgOf(symbol Symbol) *Type {
	a.checkOpen("GenericArgOf()")
	if t, ok := a.genArgs[symbol]; ok {
		return t
	}
	t := a.argPool.alloc()
	*t = Type{kind: KindGenericArg, arena: a, symbol: symbol}
	a.genArgs[symbol] = t
	return t
}

// ExprOf returns a fresh Expr placeholder. Per spec.md §9's open
// question, Expr carries no data and has no canonicalizing constructor:
// each call allocates a new, distinct handle that compares by identity
// like every other Type, with behavior beyond that left to the
// not-yet-specified decltype-expression analyzer.
func (a *Arena) ExprOf() *Type {
	a.checkOpen("ExprOf()")
	t := a.exprPool.alloc()
	*t = Type{kind: KindExpr, arena: a}
	return t
}

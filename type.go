package cxxtype

import "fmt"

// Kind discriminates the fourteen type-value variants a Type can hold. See
// spec.md §3 for the authoritative kind table.
type Kind int

const (
	KindZero Kind = iota
	KindNullptr
	KindPrimitive
	KindDecl
	KindGenericArg
	KindLRef
	KindRRef
	KindPtr
	KindArray
	KindCV
	KindMember
	KindFunction
	KindGeneric
	KindExpr
)

func (k Kind) String() string {
	switch k {
	case KindZero:
		return "Zero"
	case KindNullptr:
		return "Nullptr"
	case KindPrimitive:
		return "Primitive"
	case KindDecl:
		return "Decl"
	case KindGenericArg:
		return "GenericArg"
	case KindLRef:
		return "LRef"
	case KindRRef:
		return "RRef"
	case KindPtr:
		return "Ptr"
	case KindArray:
		return "Array"
	case KindCV:
		return "CV"
	case KindMember:
		return "Member"
	case KindFunction:
		return "Function"
	case KindGeneric:
		return "Generic"
	case KindExpr:
		return "Expr"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// NumericClass is the scalar family a Primitive belongs to.
type NumericClass int

const (
	SInt NumericClass = iota
	UInt
	Float
	SChar
	UChar
	Char
	WChar
	Char16
	Char32
	Bool
)

func (c NumericClass) String() string {
	switch c {
	case SInt:
		return "SInt"
	case UInt:
		return "UInt"
	case Float:
		return "Float"
	case SChar:
		return "SChar"
	case UChar:
		return "UChar"
	case Char:
		return "Char"
	case WChar:
		return "WChar"
	case Char16:
		return "Char16"
	case Char32:
		return "Char32"
	case Bool:
		return "Bool"
	default:
		return fmt.Sprintf("NumericClass(%d)", int(c))
	}
}

// Primitive fully describes a built-in scalar: its numeric family and
// byte width.
type Primitive struct {
	Class NumericClass
	Bytes int
}

// legalPrimitives is the grid of (class, bytes) pairs a caller may
// construct; anything outside it is an OutOfRangeError (spec.md §4.2).
var legalPrimitives = map[Primitive]bool{
	{SInt, 1}: true, {SInt, 2}: true, {SInt, 4}: true, {SInt, 8}: true,
	{UInt, 1}: true, {UInt, 2}: true, {UInt, 4}: true, {UInt, 8}: true,
	{Float, 4}: true, {Float, 8}: true,
	{SChar, 1}: true,
	{UChar, 1}: true,
	{Char, 1}:  true,
	{WChar, 2}: true, {WChar, 4}: true,
	{Char16, 2}: true,
	{Char32, 4}: true,
	{Bool, 1}:   true,
}

// CV is the pair of cv-qualifier flags; Union is bitwise OR, the merge
// rule used by CVOf (spec.md §3 "CV merging").
type CV struct {
	Const    bool
	Volatile bool
}

// Union returns the bitwise-OR merge of two CV qualifications.
func (cv CV) Union(other CV) CV {
	return CV{Const: cv.Const || other.Const, Volatile: cv.Volatile || other.Volatile}
}

func (cv CV) isZero() bool {
	return !cv.Const && !cv.Volatile
}

// cvIndex maps a nonzero CV to its slot in the 3-slot per-element table
// (spec.md §4.3): {true,false}->0, {false,true}->1, {true,true}->2.
func cvIndex(cv CV) int {
	switch {
	case cv.Const && !cv.Volatile:
		return 0
	case !cv.Const && cv.Volatile:
		return 1
	case cv.Const && cv.Volatile:
		return 2
	default:
		outOfRangeCV(cv)
		return -1
	}
}

// RefKind names the outermost reference form seen during entity
// extraction (spec.md §4.4); RefNone means no outer reference.
type RefKind int

const (
	RefNone RefKind = iota
	RefLValue
	RefRValue
)

func (r RefKind) String() string {
	switch r {
	case RefNone:
		return "None"
	case RefLValue:
		return "LRef"
	case RefRValue:
		return "RRef"
	default:
		return fmt.Sprintf("RefKind(%d)", int(r))
	}
}

// CallConv names a function type's calling convention. The core treats it
// as an opaque comparable tag; the analyzer/parser collaborator assigns
// platform-specific meaning to specific values.
type CallConv string

// FuncData records the call-convention, variadicness, and
// const/volatile/ref-qualification and noexcept-ness of a function type
// (spec.md §3 "Func-data"). Compared componentwise when interning.
type FuncData struct {
	CallConv  CallConv
	Variadic  bool
	Const     bool
	Volatile  bool
	RefQual   RefKind
	Noexcept  bool
}

// GenericData records whether a template instantiation is complete
// (spec.md §3 "Generic-data"). Compared componentwise when interning.
type GenericData struct {
	Complete bool
}

// Symbol is an opaque identifier supplied by the caller's symbol table.
// The core never dereferences it, only compares it by identity as a map
// key (spec.md §6).
type Symbol interface {
	// Name exists only so Symbol is not a bare `any`; the core never
	// calls it. Collaborators may implement it however they like.
	Name() string
}

// Type is a hash-consed handle to one of the fourteen C++ type-value
// variants (spec.md §3). Two Type pointers are semantically equal iff
// they are the same pointer (spec.md's uniqueness invariant); callers
// compare handles with ==, never a deep-equality function.
type Type struct {
	kind  Kind
	arena *Arena

	// Primitive
	primitive Primitive

	// Decl, GenericArg
	symbol Symbol

	// LRef, RRef, Ptr, Array, CV, Member, Function (return), Generic (element)
	element *Type

	// Array
	dims int

	// CV
	cv CV

	// Member
	class *Type

	// Function, Generic
	params      []*Type
	funcData    FuncData
	genericData GenericData

	// per-parent caches, populated lazily by construct.go
	lref       *Type
	rref       *Type
	ptr        *Type
	arrayOf    map[int]*Type
	cvOf       [3]*Type
	memberOf   map[*Type]*Type
	functionOf map[funcKey]*Type
	genericOf  map[genericKey]*Type
}

// TypeKind reports which of the fourteen variants this handle holds.
func (t *Type) TypeKind() Kind {
	return t.kind
}

// Primitive returns the (class, bytes) descriptor of a Primitive type.
// Panics with KindMismatchError for any other kind.
func (t *Type) Primitive() Primitive {
	if t.kind != KindPrimitive {
		kindMismatch(t.kind, "Primitive()")
	}
	return t.primitive
}

// CV returns the qualifier pair of a CV type. Panics otherwise.
func (t *Type) CV() CV {
	if t.kind != KindCV {
		kindMismatch(t.kind, "CV()")
	}
	return t.cv
}

// Element returns the referent/element type of LRef, RRef, Ptr, Array,
// CV, and Member, and the return type of Function, and the underlying
// template of Generic. Panics otherwise.
func (t *Type) Element() *Type {
	switch t.kind {
	case KindLRef, KindRRef, KindPtr, KindArray, KindCV, KindMember, KindFunction, KindGeneric:
		return t.element
	default:
		kindMismatch(t.kind, "Element()")
		return nil
	}
}

// Class returns the class handle of a Member type. Panics otherwise.
func (t *Type) Class() *Type {
	if t.kind != KindMember {
		kindMismatch(t.kind, "Class()")
	}
	return t.class
}

// Dims returns the dimension count of an Array type. Panics otherwise.
func (t *Type) Dims() int {
	if t.kind != KindArray {
		kindMismatch(t.kind, "Dims()")
	}
	return t.dims
}

// Param returns the i-th parameter of a Function or Generic type. Panics
// for any other kind, or if i is out of bounds.
func (t *Type) Param(i int) *Type {
	if t.kind != KindFunction && t.kind != KindGeneric {
		kindMismatch(t.kind, "Param()")
	}
	if i < 0 || i >= len(t.params) {
		outOfRangeParamIndex(i, len(t.params))
	}
	return t.params[i]
}

// ParamCount returns the parameter count of a Function or Generic type.
// Panics otherwise.
func (t *Type) ParamCount() int {
	if t.kind != KindFunction && t.kind != KindGeneric {
		kindMismatch(t.kind, "ParamCount()")
	}
	return len(t.params)
}

// Func returns the func-data of a Function type. Panics otherwise.
func (t *Type) Func() FuncData {
	if t.kind != KindFunction {
		kindMismatch(t.kind, "Func()")
	}
	return t.funcData
}

// Generic returns the generic-data of a Generic type. Panics otherwise.
func (t *Type) Generic() GenericData {
	if t.kind != KindGeneric {
		kindMismatch(t.kind, "Generic()")
	}
	return t.genericData
}

// Decl returns the Symbol of a Decl or GenericArg type. Panics otherwise.
func (t *Type) Decl() Symbol {
	if t.kind != KindDecl && t.kind != KindGenericArg {
		kindMismatch(t.kind, "Decl()")
	}
	return t.symbol
}

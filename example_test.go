package cxxtype_test

import (
	"fmt"

	"github.com/scttfrdmn/cxxtype"
)

// Example demonstrates building a const lvalue-reference type for a
// declaration like `const int&`.
func Example() {
	result := cxxtype.Scoped(func(a *cxxtype.Arena) string {
		constIntRef := a.IntType().CVOf(cxxtype.CV{Const: true}).LRefOf()
		return constIntRef.TypeKind().String()
	})

	fmt.Println(result)
	// Output: LRef
}

// ExampleArena_PrimitiveOf shows scenario 1 from spec.md §8: integral
// promotion of unary + on char is expected to be represented by the
// analyzer as the same handle as int (SInt/4), because the core always
// returns the same handle for equal descriptors.
func ExampleArena_PrimitiveOf() {
	cxxtype.Scoped(func(a *cxxtype.Arena) int {
		char := a.PrimitiveOf(cxxtype.SChar, 1)
		promoted := a.PrimitiveOf(cxxtype.SInt, 4) // what the analyzer assigns to +c
		intType := a.IntType()

		fmt.Println(char != promoted, promoted == intType)
		return 0
	})
	// Output: true true
}

// Example_referenceCollapsing shows scenario 2 from spec.md §8.
func Example_referenceCollapsing() {
	cxxtype.Scoped(func(a *cxxtype.Arena) int {
		x := a.IntType()

		a1 := x.LRefOf().RRefOf() == x.LRefOf()
		a2 := x.RRefOf().LRefOf() == x.LRefOf()

		fmt.Println(a1, a2)
		return 0
	})
	// Output: true true
}

// Example_cvMerging shows scenario 3 from spec.md §8.
func Example_cvMerging() {
	cxxtype.Scoped(func(a *cxxtype.Arena) int {
		x := a.IntType()

		merged := x.CVOf(cxxtype.CV{Const: true}).CVOf(cxxtype.CV{Volatile: true})
		direct := x.CVOf(cxxtype.CV{Const: true, Volatile: true})

		fmt.Println(merged == direct)
		return 0
	})
	// Output: true
}

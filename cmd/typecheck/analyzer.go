// Command typecheck is a go/analysis static checker for clients of
// github.com/scttfrdmn/cxxtype. It catches two hazards the package's
// panic-on-misuse design otherwise only surfaces at runtime:
//
//   - calling a kind-specific accessor (Primitive, Element, Class, Dims,
//     Param, ParamCount, Func, Generic, Decl) on a *cxxtype.Type without a
//     TypeKind() call on the same value earlier in the function, which
//     is the shape every correct caller is expected to
//     follow per cxxtype's documented contract;
//   - storing a *cxxtype.Type or cxxtype.Symbol obtained from an Arena
//     into package-level state, where it can outlive that Arena's Close.
//
// This mirrors cmd/arenacheck's two-pass "record interesting calls, then
// walk for escapes" SSA analysis, retargeted from arena-pointer escapes
// at the safearena.Arena.Free() boundary to cxxtype's handle-lifetime and
// kind-discipline hazards.
package main

import (
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/buildssa"
	"golang.org/x/tools/go/analysis/singlechecker"
	"golang.org/x/tools/go/ssa"
)

// Analyzer is the typecheck analyzer.
var Analyzer = &analysis.Analyzer{
	Name:     "typecheck",
	Doc:      "checks for ungated cxxtype.Type accessor calls and arena handles retained past their Arena's lifetime",
	Run:      run,
	Requires: []*analysis.Analyzer{buildssa.Analyzer},
}

func main() {
	singlechecker.Main(Analyzer)
}

// guardedAccessors names the *cxxtype.Type methods that panic with
// KindMismatchError when the receiver is the wrong Kind.
var guardedAccessors = map[string]bool{
	"Primitive":  true,
	"Element":    true,
	"Class":      true,
	"Dims":       true,
	"Param":      true,
	"ParamCount": true,
	"Func":       true,
	"Generic":    true,
	"Decl":       true,
}

// arenaProducers names the *cxxtype.Arena and *cxxtype.Type methods that
// hand out a fresh or interned handle tied to one Arena's lifetime, plus
// Decl, which hands out the Symbol held by such a handle.
var arenaProducers = []string{
	"cxxtype.(*Arena).Zero",
	"cxxtype.(*Arena).NullptrType",
	"cxxtype.(*Arena).PrimitiveOf",
	"cxxtype.(*Arena).IntType",
	"cxxtype.(*Arena).SizeType",
	"cxxtype.(*Arena).IntPtrType",
	"cxxtype.(*Arena).DeclOf",
	"cxxtype.(*Arena).GenericArgOf",
	"cxxtype.(*Arena).ExprOf",
	"cxxtype.(*Type).LRefOf",
	"cxxtype.(*Type).RRefOf",
	"cxxtype.(*Type).PtrOf",
	"cxxtype.(*Type).ArrayOf",
	"cxxtype.(*Type).CVOf",
	"cxxtype.(*Type).MemberOf",
	"cxxtype.(*Type).FunctionOf",
	"cxxtype.(*Type).GenericOf",
	"cxxtype.(*Type).Decl",
}

func run(pass *analysis.Pass) (interface{}, error) {
	ssaProg := pass.ResultOf[buildssa.Analyzer].(*buildssa.SSA)

	for _, fn := range ssaProg.SrcFuncs {
		if fn == nil || fn.Blocks == nil {
			continue
		}
		checkAccessorDiscipline(pass, fn)
		checkGlobalRetention(pass, fn)
	}

	return nil, nil
}

// checkAccessorDiscipline flags a guarded-accessor call on a receiver
// that never had TypeKind() called on it anywhere earlier in fn, scanning
// fn's blocks in order. This is a whole-function, identity-based
// heuristic rather than a precise dominance check, in the same spirit as
// the teacher analyzer's whole-function call scans.
func checkAccessorDiscipline(pass *analysis.Pass, fn *ssa.Function) {
	kindChecked := make(map[ssa.Value]bool)

	for _, block := range fn.Blocks {
		for _, instr := range block.Instrs {
			call, ok := instr.(*ssa.Call)
			if !ok {
				continue
			}
			callee := call.Call.StaticCallee()
			if callee == nil || len(call.Call.Args) == 0 {
				continue
			}
			name := callee.String()

			if strings.Contains(name, "cxxtype.(*Type).TypeKind") {
				kindChecked[call.Call.Args[0]] = true
				continue
			}

			if idx := strings.LastIndex(name, "."); idx >= 0 {
				short := name[idx+1:]
				if strings.Contains(name, "cxxtype.(*Type).") && guardedAccessors[short] && !kindChecked[call.Call.Args[0]] {
					pass.Reportf(call.Pos(),
						"%s called without a preceding TypeKind() check on the same value", callee.Name())
				}
			}
		}
	}
}

// checkGlobalRetention flags storing an arena-produced handle into a
// package-level variable, mirroring the teacher's escapesViaStore check.
func checkGlobalRetention(pass *analysis.Pass, fn *ssa.Function) {
	produced := make(map[ssa.Value]bool)

	for _, block := range fn.Blocks {
		for _, instr := range block.Instrs {
			if call, ok := instr.(*ssa.Call); ok {
				if callee := call.Call.StaticCallee(); callee != nil && isArenaProducer(callee.String()) {
					produced[call] = true
				}
			}
		}
	}

	for _, block := range fn.Blocks {
		for _, instr := range block.Instrs {
			store, ok := instr.(*ssa.Store)
			if !ok || !isGlobalAddr(store.Addr) {
				continue
			}
			if tracesToProducer(store.Val, produced, make(map[ssa.Value]bool)) {
				pass.Reportf(store.Pos(), "cxxtype handle stored into a package-level variable may outlive its Arena")
			}
		}
	}
}

func isArenaProducer(fullName string) bool {
	for _, p := range arenaProducers {
		if strings.Contains(fullName, p) {
			return true
		}
	}
	return false
}

func isGlobalAddr(v ssa.Value) bool {
	_, ok := v.(*ssa.Global)
	return ok
}

func tracesToProducer(v ssa.Value, produced map[ssa.Value]bool, visited map[ssa.Value]bool) bool {
	if visited[v] {
		return false
	}
	visited[v] = true

	if produced[v] {
		return true
	}

	switch x := v.(type) {
	case *ssa.UnOp:
		return tracesToProducer(x.X, produced, visited)
	case *ssa.FieldAddr:
		return tracesToProducer(x.X, produced, visited)
	case *ssa.IndexAddr:
		return tracesToProducer(x.X, produced, visited)
	case *ssa.Phi:
		for _, edge := range x.Edges {
			if tracesToProducer(edge, produced, visited) {
				return true
			}
		}
	}
	return false
}

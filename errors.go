package cxxtype

import (
	"fmt"
	"runtime"
	"strings"
)

// stackInfo captures a call-site for diagnostic panic messages.
type stackInfo struct {
	file string
	line int
	fn   string
}

// captureStack captures the caller's location skip frames up from here.
func captureStack(skip int) *stackInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return nil
	}

	fn := runtime.FuncForPC(pc)
	fnName := "unknown"
	if fn != nil {
		fnName = fn.Name()
		if idx := strings.LastIndex(fnName, "/"); idx >= 0 {
			fnName = fnName[idx+1:]
		}
	}

	if idx := strings.LastIndex(file, "/"); idx >= 0 {
		file = file[idx+1:]
	}

	return &stackInfo{file: file, line: line, fn: fnName}
}

// errorWithHint formats a fatal message with an optional remediation hint.
func errorWithHint(message string, stack *stackInfo, hint string) string {
	var msg strings.Builder
	msg.WriteString(message)

	if stack != nil {
		fmt.Fprintf(&msg, "\n  at %s:%d (%s)", stack.file, stack.line, stack.fn)
	}
	if hint != "" {
		fmt.Fprintf(&msg, "\n\n  hint: %s", hint)
	}

	return msg.String()
}

const (
	hintKindMismatch    = "Check TypeKind() before calling a kind-specific accessor or builder."
	hintOutOfRangeBytes = "The (class, bytes) pair is not a legal primitive descriptor for this configuration."
	hintOutOfRangeCV    = "CV flags must not both be false when indexing the per-element cv table directly."
	hintUseAfterClose   = "Arena was closed before this access. Clone data you need out of the arena before Close(), or keep the arena alive for the analysis's full lifetime."
)

// KindMismatchError reports that an accessor or builder was called
// against a Type whose Kind does not carry the requested datum.
type KindMismatchError struct {
	Kind      Kind
	Requested string
	stack     *stackInfo
}

func (e *KindMismatchError) Error() string {
	msg := fmt.Sprintf("cxxtype: kind mismatch: %s has no %s", e.Kind, e.Requested)
	return errorWithHint(msg, e.stack, hintKindMismatch)
}

func kindMismatch(kind Kind, requested string) {
	panic(&KindMismatchError{Kind: kind, Requested: requested, stack: captureStack(3)})
}

// OutOfRangeError reports an illegal primitive descriptor or cv index.
type OutOfRangeError struct {
	Descriptor string
	stack      *stackInfo
	hint       string
}

func (e *OutOfRangeError) Error() string {
	msg := fmt.Sprintf("cxxtype: out of range: %s", e.Descriptor)
	return errorWithHint(msg, e.stack, e.hint)
}

func outOfRangePrimitive(class NumericClass, bytes int) {
	panic(&OutOfRangeError{
		Descriptor: fmt.Sprintf("primitive(%s, %d bytes)", class, bytes),
		stack:      captureStack(3),
		hint:       hintOutOfRangeBytes,
	})
}

func outOfRangeCV(cv CV) {
	panic(&OutOfRangeError{
		Descriptor: fmt.Sprintf("cv(const=%v, volatile=%v)", cv.Const, cv.Volatile),
		stack:      captureStack(3),
		hint:       hintOutOfRangeCV,
	})
}

func outOfRangeParamIndex(i, count int) {
	panic(&OutOfRangeError{
		Descriptor: fmt.Sprintf("param index %d (count=%d)", i, count),
		stack:      captureStack(3),
		hint:       "Param(i) requires 0 <= i < ParamCount().",
	})
}

// useAfterClose panics with a hint naming the arena and the operation
// that was attempted after Close().
func useAfterClose(op string) {
	stack := captureStack(3)
	panic(errorWithHint(fmt.Sprintf("cxxtype: %s after arena close", op), stack, hintUseAfterClose))
}

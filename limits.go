package stringozzi

// Limits bounds pathological grammars. Matching is a plain recursive call
// tree (one check per grammar node): a deeply nested Ref cycle or a
// Repeat whose operand never fails can otherwise grow the Go call stack or
// loop forever. Zero or negative means unlimited.
type Limits struct {
	// MaxDepth bounds check() recursion depth across Sequence/Ref/etc.
	MaxDepth int

	// MaxSteps bounds the iteration count of any single Repeat/Until loop.
	MaxSteps int

	// Trace enables the explicit work-stack frame trace (workstack.go)
	// used to report which matcher nesting tripped MaxDepth. Off by
	// default: it costs one push/pop per check() call.
	Trace bool
}

// DefaultLimits returns the limits used when a Context is constructed
// without explicit ones.
func DefaultLimits() Limits {
	return Limits{MaxDepth: 2000, MaxSteps: 1_000_000}
}

package stringozzi

import "fmt"

// State-touching primitives: named variables and the case-fold flag,
// scoped to the lifetime of a single Context rather than to the rule
// graph.

type caseModifierNode struct {
	on bool
}

// CaseModifier sets or clears FlagCaseInsensitive for the remainder of the
// match; it always succeeds without consuming.
func CaseModifier(on bool) Rule {
	return wrap(caseModifierNode{on: on})
}

func (p caseModifierNode) check(ctx *Context) bool {
	if p.on {
		ctx.SetFlags(ctx.Flags() | FlagCaseInsensitive)
	} else {
		ctx.SetFlags(ctx.Flags() &^ FlagCaseInsensitive)
	}
	return true
}

func (p caseModifierNode) String() string {
	return fmt.Sprintf("CaseModifier(%v)", p.on)
}

type setVarNode struct {
	key, value string
}

// SetVar stores value under key in the context's variable store; it
// always succeeds without consuming.
func SetVar(key, value string) Rule {
	return wrap(setVarNode{key: key, value: value})
}

func (p setVarNode) check(ctx *Context) bool {
	ctx.SetVar(p.key, p.value)
	return true
}

func (p setVarNode) String() string {
	return fmt.Sprintf("SetVar(%q, %q)", p.key, p.value)
}

type delVarNode struct {
	key string
}

// DelVar removes key from the context's variable store; it always
// succeeds without consuming.
func DelVar(key string) Rule {
	return wrap(delVarNode{key: key})
}

func (p delVarNode) check(ctx *Context) bool {
	ctx.DelVar(p.key)
	return true
}

func (p delVarNode) String() string {
	return fmt.Sprintf("DelVar(%q)", p.key)
}

type ifVarNode struct {
	key    string
	values []string
}

// If succeeds without consuming iff key is set in the context's variable
// store to one of values ("1" if values is omitted).
func If(key string, values ...string) Rule {
	if len(values) == 0 {
		values = []string{"1"}
	}
	return wrap(ifVarNode{key: key, values: values})
}

func (p ifVarNode) check(ctx *Context) bool {
	v, ok := ctx.GetVar(p.key)
	if !ok {
		return false
	}
	for _, want := range p.values {
		if v == want {
			return true
		}
	}
	return false
}

func (p ifVarNode) String() string {
	return fmt.Sprintf("If(%q, %v)", p.key, p.values)
}

type ifMatchedNode struct {
	key      string
	min, max int
}

// IfMatched succeeds without consuming iff the number of captures
// recorded under key falls within [min, max] (max == Unbounded for no
// upper bound).
func IfMatched(key string, min, max int) Rule {
	return wrap(ifMatchedNode{key: key, min: min, max: max})
}

func (p ifMatchedNode) check(ctx *Context) bool {
	n := ctx.Matches().CountKey(p.key)
	if n < p.min {
		return false
	}
	if p.max != Unbounded && n > p.max {
		return false
	}
	return true
}

func (p ifMatchedNode) String() string {
	return fmt.Sprintf("IfMatched(%q, %d, %d)", p.key, p.min, p.max)
}

package stringozzi

// Matcher is the contract every rule-graph node implements: check
// attempts to match at the context's current cursor. On true, the
// cursor may have advanced and captures may have been appended. On false,
// the matcher must leave the cursor exactly where it found it. The method
// is unexported so the node set is closed to this package; Rule is the
// value type library users actually hold and pass around.
type Matcher interface {
	check(ctx *Context) bool
	String() string
}

// Rule is a shared-ownership handle over a Matcher subgraph. Copying a
// Rule copies the handle, not the subgraph: two Rule values built from
// the same constructor call refer to the same node, so a rule can
// legally appear in more than one place in a larger graph, including
// through Ref cycles. The zero Rule always fails, which is what a
// still-unbound Ref degrades to.
type Rule struct {
	m Matcher
}

// Check runs the rule at ctx's current cursor.
func (r Rule) Check(ctx *Context) bool {
	if r.m == nil {
		return false
	}
	return ctx.call(r.m)
}

func (r Rule) String() string {
	if r.m == nil {
		return "<nil>"
	}
	return r.m.String()
}

func wrap(m Matcher) Rule {
	return Rule{m: m}
}

package stringozzi

import "github.com/emirpasic/gods/stacks/arraystack"

// frameTrace records the chain of matcher descriptions active when a
// Context's recursion-depth guard (Limits.MaxDepth) trips, using an
// explicit stack rather than Go's call stack. Go's own call stack still
// does the actual traversal; this stack only shadows it for diagnostics,
// so enabling it costs one push/pop per check() without changing match
// semantics.
type frameTrace struct {
	frames *arraystack.Stack
}

func newFrameTrace() *frameTrace {
	return &frameTrace{frames: arraystack.New()}
}

func (t *frameTrace) push(label string) {
	if t == nil {
		return
	}
	t.frames.Push(label)
}

func (t *frameTrace) pop() {
	if t == nil {
		return
	}
	t.frames.Pop()
}

// snapshot returns the current frame labels, outermost first.
func (t *frameTrace) snapshot() []string {
	if t == nil {
		return nil
	}
	size := t.frames.Size()
	out := make([]string, size)
	tmp := arraystack.New()
	for i := size - 1; i >= 0; i-- {
		v, ok := t.frames.Pop()
		if !ok {
			break
		}
		out[i], _ = v.(string)
		tmp.Push(v)
	}
	for {
		v, ok := tmp.Pop()
		if !ok {
			break
		}
		t.frames.Push(v)
	}
	return out
}

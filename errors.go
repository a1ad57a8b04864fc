package stringozzi

import "fmt"

// strzError is the sentinel error type for grammar-construction defects.
// Matching itself never returns an error: a rule either matches or it
// does not. Errors are reserved for malformed grammars discovered at
// construction time and for the recursion/loop guards in Limits.
type strzError struct {
	value string
}

func (err *strzError) Error() string {
	return "stringozzi: " + err.value
}

func errorf(format string, v ...interface{}) error {
	return &strzError{fmt.Sprintf(format, v...)}
}

var (
	errEmptyRuneSet     = errorf("empty rune set")
	errMaxDepthExceeded = errorf("maximum recursion depth exceeded")
	errMaxStepsExceeded = errorf("maximum loop step count exceeded")
)

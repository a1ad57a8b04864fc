// Command balanced is a small worked example of the self-referential
// rule pattern: a grammar that accepts any well-parenthesized run of
// text, built with stringozzi.NewRef:
//
//	R = Is('(') > *(Out("()") | Ref(R)) > Is(')')
//
// It reads one line of input at a time from stdin and reports whether
// the whole line is a single balanced group.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/stringozzi-go/stringozzi"
	"github.com/stringozzi-go/stringozzi/driver"
)

// balancedGroup builds the recursive grammar fresh every call rather
// than caching it in a mutable package-level variable.
func balancedGroup() stringozzi.Rule {
	group, bind := stringozzi.NewRef("group")

	notParen := stringozzi.Not(stringozzi.In("()"))
	inner := stringozzi.ZeroOrMore(stringozzi.OrderedChoice(
		stringozzi.Sequence(notParen, stringozzi.Any),
		group))
	bind(stringozzi.Seq(stringozzi.Is('('), inner, stringozzi.Is(')')))

	end := stringozzi.Not(stringozzi.Any)
	return stringozzi.Sequence(group, end)
}

func main() {
	rule := balancedGroup()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if driver.Test(rule, line, 0) {
			fmt.Printf("%q: balanced\n", line)
		} else {
			fmt.Printf("%q: not balanced\n", line)
		}
	}
}

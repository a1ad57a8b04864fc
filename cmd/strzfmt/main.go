// Command strzfmt is a thin exerciser over the driver package's action
// entry points: it reads stdin line by line, runs one of the named
// derived rules against each line with a chosen driver operation, and
// pretty-prints the rule graph and capture tree with pterm.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/stringozzi-go/stringozzi"
	"github.com/stringozzi-go/stringozzi/derived"
	"github.com/stringozzi-go/stringozzi/driver"
)

var namedRules = map[string]func() stringozzi.Rule{
	"digit":       derived.Digit,
	"hex":         derived.Hex,
	"alphabet":    derived.Alphabet,
	"alnum":       derived.Alphanumeric,
	"natural":     derived.Natural,
	"integer":     derived.Integer,
	"rational":    derived.Rational,
	"scientific":  derived.Scientific,
	"ipv4":        derived.IPv4,
	"ipv6":        derived.IPv6,
	"host":        derived.Host,
	"whitespace":  derived.WhiteSpace,
	"wordstart":   derived.WordStart,
	"wordend":     derived.WordEnd,
	"beginofline": derived.BeginningOfLine,
}

func main() {
	ruleName := flag.String("rule", "ipv4", "named derived rule to run (see -list)")
	op := flag.String("op", "test", "driver operation: test|search|match")
	caseInsensitive := flag.Bool("i", false, "case-insensitive matching")
	listRules := flag.Bool("list", false, "print available rule names and exit")
	tree := flag.Bool("tree", false, "pretty-print the rule graph before matching")
	flag.Parse()

	if *listRules {
		printRuleList()
		return
	}

	build, ok := namedRules[*ruleName]
	if !ok {
		pterm.Error.Printfln("unknown rule %q, see -list", *ruleName)
		os.Exit(2)
	}
	rule := build()

	if *tree {
		printRuleTree(*ruleName, rule)
	}

	var flags stringozzi.Flags
	if *caseInsensitive {
		flags |= stringozzi.FlagCaseInsensitive
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		runOp(*op, rule, line, flags)
	}
	if err := scanner.Err(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func runOp(op string, rule stringozzi.Rule, line string, flags stringozzi.Flags) {
	switch op {
	case "test":
		if driver.Test(rule, line, flags) {
			pterm.Info.Printfln("%q: match", line)
		} else {
			pterm.Println(fmt.Sprintf("%q: no match", line))
		}
	case "search":
		idx := driver.SearchAndGetIndex(rule, line, flags)
		if idx == driver.NoMatch {
			pterm.Println(fmt.Sprintf("%q: not found", line))
			return
		}
		pterm.Info.Printfln("%q: found at byte %d", line, idx)
	case "match":
		matches, ok := driver.Match(rule, line, flags)
		if !ok {
			pterm.Println(fmt.Sprintf("%q: no match", line))
			return
		}
		printCaptures(matches)
	default:
		pterm.Error.Printfln("unknown -op %q", op)
		os.Exit(2)
	}
}

func printCaptures(matches *stringozzi.Captures) {
	var list pterm.LeveledList
	for _, key := range matches.Keys() {
		list = append(list, pterm.LeveledListItem{Level: 0, Text: key})
		for i := 0; i < matches.CountKey(key); i++ {
			if s, ok := matches.Get(key, i); ok {
				list = append(list, pterm.LeveledListItem{Level: 1, Text: s})
			}
		}
	}
	root := pterm.NewTreeFromLeveledList(list)
	pterm.DefaultTree.WithRoot(root).Render()
}

func printRuleTree(name string, rule stringozzi.Rule) {
	list := pterm.LeveledList{{Level: 0, Text: name}, {Level: 1, Text: rule.String()}}
	root := pterm.NewTreeFromLeveledList(list)
	pterm.DefaultTree.WithRoot(root).Render()
}

func printRuleList() {
	for name := range namedRules {
		pterm.Println(name)
	}
}

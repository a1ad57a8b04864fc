// Package derived builds a catalogue of common rune-class and grammar
// rules as functions over the core combinators: freshly constructed
// rules rather than mutable package-level singletons, so callers that
// need a shared cyclic/heavy rule can still opt into memoization through
// the registry.
package derived

import "github.com/stringozzi-go/stringozzi"

// Digit matches one ASCII decimal digit.
func Digit() stringozzi.Rule {
	return stringozzi.Between('0', '9')
}

// Hex matches one hexadecimal digit, either case.
func Hex() stringozzi.Rule {
	return stringozzi.Alt(
		stringozzi.Between('0', '9'),
		stringozzi.Between('a', 'f'),
		stringozzi.Between('A', 'F'))
}

// Octet matches one octal digit.
func Octet() stringozzi.Rule {
	return stringozzi.Between('0', '7')
}

// Binary matches one binary digit.
func Binary() stringozzi.Rule {
	return stringozzi.In("01")
}

// Alphabet matches one ASCII letter.
func Alphabet() stringozzi.Rule {
	return stringozzi.Alt(
		stringozzi.Between('a', 'z'),
		stringozzi.Between('A', 'Z'))
}

// Alphanumeric matches one ASCII letter or digit.
func Alphanumeric() stringozzi.Rule {
	return stringozzi.Alt(Alphabet(), Digit())
}

// Symbol matches one code point that is neither end-of-text nor an ASCII
// letter/digit.
func Symbol() stringozzi.Rule {
	return stringozzi.Sequence(stringozzi.Not(Alphanumeric()), stringozzi.Any)
}

// WhiteSpace matches one of the four common ASCII whitespace characters
// (broader than FlagSkipSpaces, which only ever skips U+0020).
func WhiteSpace() stringozzi.Rule {
	return stringozzi.In(" \t\r\n")
}

// EndOfLine matches CRLF or a lone CR/LF.
func EndOfLine() stringozzi.Rule {
	return stringozzi.Alt(stringozzi.IsText("\r\n"), stringozzi.In("\n\r"))
}

// BeginningOfLine matches the start of text or the position right after
// an EndOfLine.
func BeginningOfLine() stringozzi.Rule {
	return stringozzi.Alt(stringozzi.Beginning, stringozzi.LookBack(EndOfLine()))
}

// WordStart matches a position not preceded by an alphanumeric rune.
//
// LookBack(a) only succeeds when a's match ends exactly at the current
// cursor, so a bare zero-width Not(Alphanumeric()) can never
// satisfy it: tried at the one-code-point-earlier candidate it always
// lands back at that same candidate, never at the cursor. Pairing it with
// Any forces the candidate one step back to be the *only* one whose match
// reaches the cursor, giving the intended one-rune lookbehind.
func WordStart() stringozzi.Rule {
	return stringozzi.Alt(
		stringozzi.Beginning,
		stringozzi.LookBack(stringozzi.Sequence(stringozzi.Not(Alphanumeric()), stringozzi.Any)))
}

// WordEnd matches a position not followed by an alphanumeric rune.
func WordEnd() stringozzi.Rule {
	return stringozzi.LookAhead(stringozzi.Not(Alphanumeric()))
}

package derived

import "github.com/stringozzi-go/stringozzi"

// IPv4 matches a dot-separated quad of decimal octets, using the
// canonical ordered-choice shape:
//
//	25[0-5] | 2[0-4]d | 1dd | [1-9]d | d
//
// The graph is shared process-wide through the registry (registry.go)
// rather than rebuilt on every call.
func IPv4() stringozzi.Rule {
	return cached("derived.IPv4", buildIPv4)
}

func buildIPv4() stringozzi.Rule {
	octet := ipv4Octet()
	dot := stringozzi.Is('.')
	return stringozzi.Seq(octet, dot, octet, dot, octet, dot, octet)
}

func ipv4Octet() stringozzi.Rule {
	digit := Digit()
	return stringozzi.Alt(
		stringozzi.Sequence(stringozzi.IsText("25"), stringozzi.Between('0', '5')),
		stringozzi.Sequence(stringozzi.Is('2'), stringozzi.Sequence(stringozzi.Between('0', '4'), digit)),
		stringozzi.Sequence(stringozzi.Is('1'), stringozzi.Sequence(digit, digit)),
		stringozzi.Sequence(stringozzi.Between('1', '9'), digit),
		digit)
}

// h16 is one to four hexadecimal digits.
func h16() stringozzi.Rule {
	return stringozzi.Repeat(Hex(), 1, 4)
}

// ls32 is the RFC 3986 "least-significant 32 bits" production:
// `(h16":"h16) | IPv4`.
func ls32() stringozzi.Rule {
	return stringozzi.Alt(
		stringozzi.Sequence(h16(), stringozzi.Sequence(stringozzi.Is(':'), h16())),
		IPv4())
}

// IPv6 matches the RFC 3986 IPv6address production, expressed as a
// greedy choice over its nine documented shapes so that, unlike ordered
// choice, the longest-matching shape wins regardless of declaration
// order.
func IPv6() stringozzi.Rule {
	return cached("derived.IPv6", buildIPv6)
}

func buildIPv6() stringozzi.Rule {
	colon := stringozzi.Is(':')
	h := h16()

	nH16Colon := func(n int) stringozzi.Rule {
		return stringozzi.Repeat(stringozzi.Sequence(h16(), colon), n, n)
	}

	shape1 := stringozzi.Sequence(nH16Colon(6), ls32())
	shape2 := stringozzi.Seq(stringozzi.IsText("::"), nH16Colon(5), ls32())
	shape3 := stringozzi.Seq(stringozzi.Optional(h), stringozzi.IsText("::"), nH16Colon(4), ls32())
	// prefixPart is an `h16 ":"` before a "::"; it refuses the colon that
	// opens "::" so the following h16 is left for the shape's last prefix
	// group.
	prefixPart := func() stringozzi.Rule {
		return stringozzi.Seq(h16(), colon, stringozzi.Not(colon))
	}

	shape4 := stringozzi.Seq(
		stringozzi.Optional(stringozzi.Seq(stringozzi.Repeat(prefixPart(), 0, 1), h)),
		stringozzi.IsText("::"), nH16Colon(3), ls32())
	shape5 := stringozzi.Seq(
		stringozzi.Optional(stringozzi.Seq(stringozzi.Repeat(prefixPart(), 0, 2), h)),
		stringozzi.IsText("::"), nH16Colon(2), ls32())
	shape6 := stringozzi.Seq(
		stringozzi.Optional(stringozzi.Seq(stringozzi.Repeat(prefixPart(), 0, 3), h)),
		stringozzi.IsText("::"), nH16Colon(1), ls32())
	shape7 := stringozzi.Seq(
		stringozzi.Optional(stringozzi.Seq(stringozzi.Repeat(prefixPart(), 0, 4), h)),
		stringozzi.IsText("::"), ls32())
	shape8 := stringozzi.Seq(
		stringozzi.Optional(stringozzi.Seq(stringozzi.Repeat(prefixPart(), 0, 5), h)),
		stringozzi.IsText("::"), h)
	shape9 := stringozzi.Seq(
		stringozzi.Optional(stringozzi.Seq(stringozzi.Repeat(prefixPart(), 0, 6), h)),
		stringozzi.IsText("::"))

	return stringozzi.GreedyAlt(shape1, shape2, shape3, shape4, shape5, shape6, shape7, shape8, shape9)
}

// hostReserved is the fixed reserved-character alternation used by Host
// (the `%`-escapes are matched separately, by hostPercentEscape), built once and shared by every Host() call via
// stringozzi.NewTextSet (the ahocorasick-backed phrase-set matcher,
// textset.go) rather than rebuilding the automaton per call.
var hostReserved = stringozzi.NewTextSet(
	"-", "_", ".", "~", "!", "$", "&", "'", "(", ")", "*", "+", ",", ";", "=")

// hostPercentEscape matches a `%`-hex-hex triple.
func hostPercentEscape() stringozzi.Rule {
	return stringozzi.Seq(stringozzi.Is('%'), Hex(), Hex())
}

// Host matches one-or-more of a percent-escape, alphanumeric, or
// reserved-character rune, falling back greedily to IPv4 or IPv6 when
// either parses further.
func Host() stringozzi.Rule {
	return cached("derived.Host", buildHost)
}

func buildHost() stringozzi.Rule {
	hostRune := stringozzi.Alt(hostPercentEscape(), stringozzi.Alt(Alphanumeric(), hostReserved.Rule()))
	plain := stringozzi.OneOrMore(hostRune)
	return stringozzi.GreedyAlt(plain, IPv4(), IPv6())
}

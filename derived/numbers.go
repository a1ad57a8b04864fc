package derived

import "github.com/stringozzi-go/stringozzi"

// Natural matches one or more decimal digits.
func Natural() stringozzi.Rule {
	return stringozzi.OneOrMore(Digit())
}

// Integer matches an optionally signed natural number.
func Integer() stringozzi.Rule {
	return stringozzi.Sequence(stringozzi.Optional(stringozzi.In("+-")), Natural())
}

// Rational matches an Integer with an optional fractional part.
func Rational() stringozzi.Rule {
	return stringozzi.Sequence(
		Integer(),
		stringozzi.Optional(stringozzi.Sequence(stringozzi.Is('.'), Natural())))
}

// Scientific matches a Rational with an optional exponent suffix. The
// exponent sign is required once an exponent marker is present (unlike
// the leading sign on Integer, which is itself optional).
func Scientific() stringozzi.Rule {
	return stringozzi.Sequence(
		Rational(),
		stringozzi.Optional(stringozzi.Seq(
			stringozzi.In("Ee"),
			stringozzi.In("+-"),
			Natural())))
}

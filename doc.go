/*
Package when computes a value by evaluating an ordered list of clauses.

There are two independent flavours of matching. Boolean matching selects the
result of the first clause whose condition holds:

	description := when.Match(
		when.If(n > 0, "positive"),
		when.If(n < 0, "negative"),
		when.Else("zero"),
	)

Value matching selects the result of the first clause listing a value of an
enumerable domain. Matching is required to be exhaustive: either every value of
the domain is covered by a clause, or a default clause is present.

	hex := when.Case(color,
		when.Is(Red, "#FF0000"),
		when.In([]Color{Green, Blue}, "#00FFFF"),
	)

Clauses may be assembled with collectors as well, which support conditional
inclusion and flattening of generated clause groups:

	s := when.Conditions[string]().
		If(n > 0, "positive").
		Either(strict, negatives, nil).
		Else("zero").
		Match()

A clause list which is not exhaustive and has no default clause is a
programming error. Matching then panics with a *NonExhaustiveMatchError or a
*MissingDefaultClauseError. Try converts these panics into a result.Result.

Clause lists are built fresh for every match and are never shared, so matching
is safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package when

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'when'.
func tracer() tracing.Trace {
	return tracing.Select("when")
}

package when

import (
	"github.com/npillmayer/when/maybe"
)

// --- Boolean matching ------------------------------------------------------

// Match returns the result of the first non-default clause which holds. If no
// such clause exists, the result of the first default clause is returned.
//
// Match requires a default clause. If there is none, Match panics with a
// *MissingDefaultClauseError, even if one of the clauses holds.
func Match[R any](clauses ...Clause[R]) R {
	def, ok := firstDefault(clauses)
	if !ok {
		err := &MissingDefaultClauseError{Clauses: len(clauses)}
		tracer().Errorf("%v\n%s", err, Clauses[R](clauses))
		panic(err)
	}
	if c, ok := firstHolding(clauses); ok {
		return c.result
	}
	tracer().Debugf("when: no clause holds, using default")
	return def.result
}

// MatchOptional is like Match, but does not require a default clause. If no
// clause holds and no default is present, Nothing is returned.
func MatchOptional[R any](clauses ...Clause[R]) maybe.Maybe[R] {
	if c, ok := firstHolding(clauses); ok {
		return maybe.Just(c.result)
	}
	if def, ok := firstDefault(clauses); ok {
		tracer().Debugf("when: no clause holds, using default")
		return maybe.Just(def.result)
	}
	return maybe.Nothing[R]()
}

func firstHolding[R any](clauses []Clause[R]) (Clause[R], bool) {
	for i, c := range clauses {
		if c.holds && !c.isDefault {
			tracer().Debugf("when: clause #%d holds", i)
			return c, true
		}
	}
	return Clause[R]{}, false
}

func firstDefault[R any](clauses []Clause[R]) (Clause[R], bool) {
	for _, c := range clauses {
		if c.isDefault {
			return c, true
		}
	}
	return Clause[R]{}, false
}

// --- Value matching --------------------------------------------------------

// Enumerable is a type with a closed, finite set of values. Domain lists all
// of them; it is called on the value to match, and is expected to return the
// same list for every value of the type.
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//	)
//
//	func (c Color) Domain() []Color {
//		return []Color{Red, Green, Blue}
//	}
type Enumerable[V comparable] interface {
	comparable
	Domain() []V
}

// Case matches v against a list of value clauses and returns the result of the
// first clause containing v. If none does, the result of the first default
// clause is returned.
//
// The clauses must either cover every value of v's domain or contain a
// default clause. Otherwise Case panics with a *NonExhaustiveMatchError
// listing the values not covered, regardless of v.
func Case[V Enumerable[V], R any](v V, clauses ...CaseClause[V, R]) R {
	return CaseIn(v, v.Domain(), clauses...)
}

// CaseIn is like Case, but the domain is given explicitly. This is useful for
// types which do not implement Enumerable, or for matching on a sub-domain.
// If v is not a member of domain and no default clause exists, CaseIn panics
// with a *NonExhaustiveMatchError for v.
func CaseIn[V comparable, R any](v V, domain []V, clauses ...CaseClause[V, R]) R {
	unhandled := Unhandled(domain, clauses)
	def, hasDefault := firstCaseDefault(clauses)
	if len(unhandled) > 0 && !hasDefault {
		failNonExhaustive(unhandled, clauses)
	}
	for i, c := range clauses {
		if c.Contains(v) {
			tracer().Debugf("when: case clause #%d matches %v", i, v)
			return c.result
		}
	}
	if !hasDefault {
		// v is outside of domain
		failNonExhaustive([]V{v}, clauses)
	}
	tracer().Debugf("when: no case clause matches %v, using default", v)
	return def.result
}

// Unhandled returns the values of domain which are not contained in any
// non-default clause, in domain order and without duplicates.
func Unhandled[V comparable, R any](domain []V, clauses []CaseClause[V, R]) []V {
	handled := make(map[V]struct{})
	for _, c := range clauses {
		for _, x := range c.values {
			handled[x] = struct{}{}
		}
	}
	var unhandled []V
	for _, x := range domain {
		if _, ok := handled[x]; ok {
			continue
		}
		handled[x] = struct{}{}
		unhandled = append(unhandled, x)
	}
	return unhandled
}

func firstCaseDefault[V comparable, R any](clauses []CaseClause[V, R]) (CaseClause[V, R], bool) {
	for _, c := range clauses {
		if c.isDefault {
			return c, true
		}
	}
	return CaseClause[V, R]{}, false
}

func failNonExhaustive[V comparable, R any](unhandled []V, clauses []CaseClause[V, R]) {
	err := &NonExhaustiveMatchError[V]{Unhandled: unhandled}
	tracer().Errorf("%v\n%s", err, Cases[V, R](clauses))
	panic(err)
}

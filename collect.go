package when

import (
	"github.com/npillmayer/when/maybe"
)

// --- Boolean collector -----------------------------------------------------

// ConditionCollector accumulates boolean clauses in declaration order.
// Nothing is evaluated during collection.
type ConditionCollector[R any] struct {
	clauses []Clause[R]
}

// Conditions starts an empty collection of boolean clauses.
func Conditions[R any]() *ConditionCollector[R] {
	return &ConditionCollector[R]{}
}

// If appends a clause selecting r if cond is true.
func (cc *ConditionCollector[R]) If(cond bool, r R) *ConditionCollector[R] {
	return cc.Add(If(cond, r))
}

// Else appends a default clause.
func (cc *ConditionCollector[R]) Else(r R) *ConditionCollector[R] {
	return cc.Add(Else(r))
}

// Add appends clauses.
func (cc *ConditionCollector[R]) Add(clauses ...Clause[R]) *ConditionCollector[R] {
	cc.clauses = append(cc.clauses, clauses...)
	return cc
}

// Either appends first if cond is true and second otherwise.
func (cc *ConditionCollector[R]) Either(cond bool, first, second []Clause[R]) *ConditionCollector[R] {
	if cond {
		return cc.Add(first...)
	}
	return cc.Add(second...)
}

// Append concatenates groups of clauses, in order.
func (cc *ConditionCollector[R]) Append(groups ...[]Clause[R]) *ConditionCollector[R] {
	for _, g := range groups {
		cc.Add(g...)
	}
	return cc
}

// Clauses returns a copy of the clauses collected so far.
func (cc *ConditionCollector[R]) Clauses() Clauses[R] {
	clauses := make(Clauses[R], len(cc.clauses))
	copy(clauses, cc.clauses)
	return clauses
}

// Match evaluates the collected clauses, see function Match.
func (cc *ConditionCollector[R]) Match() R {
	return Match(cc.clauses...)
}

// MatchOptional evaluates the collected clauses, see function MatchOptional.
func (cc *ConditionCollector[R]) MatchOptional() maybe.Maybe[R] {
	return MatchOptional(cc.clauses...)
}

// Generate creates a group of clauses for each element of xs and concatenates
// the groups, in order.
func Generate[T, R any](xs []T, f func(T) []Clause[R]) []Clause[R] {
	var clauses []Clause[R]
	for _, x := range xs {
		clauses = append(clauses, f(x)...)
	}
	return clauses
}

// --- Value collector -------------------------------------------------------

// CaseCollector accumulates value clauses in declaration order.
type CaseCollector[V comparable, R any] struct {
	clauses []CaseClause[V, R]
}

// CasesOf starts an empty collection of value clauses.
func CasesOf[V comparable, R any]() *CaseCollector[V, R] {
	return &CaseCollector[V, R]{}
}

// Is appends a clause selecting r for v.
func (cc *CaseCollector[V, R]) Is(v V, r R) *CaseCollector[V, R] {
	return cc.Add(Is(v, r))
}

// In appends a clause selecting r for any of vs.
func (cc *CaseCollector[V, R]) In(vs []V, r R) *CaseCollector[V, R] {
	return cc.Add(In(vs, r))
}

// Otherwise appends a default clause.
func (cc *CaseCollector[V, R]) Otherwise(r R) *CaseCollector[V, R] {
	return cc.Add(Otherwise[V](r))
}

// Add appends clauses.
func (cc *CaseCollector[V, R]) Add(clauses ...CaseClause[V, R]) *CaseCollector[V, R] {
	cc.clauses = append(cc.clauses, clauses...)
	return cc
}

// Either appends first if cond is true and second otherwise.
func (cc *CaseCollector[V, R]) Either(cond bool, first, second []CaseClause[V, R]) *CaseCollector[V, R] {
	if cond {
		return cc.Add(first...)
	}
	return cc.Add(second...)
}

// Append concatenates groups of clauses, in order.
func (cc *CaseCollector[V, R]) Append(groups ...[]CaseClause[V, R]) *CaseCollector[V, R] {
	for _, g := range groups {
		cc.Add(g...)
	}
	return cc
}

// Cases returns a copy of the clauses collected so far.
func (cc *CaseCollector[V, R]) Cases() Cases[V, R] {
	clauses := make(Cases[V, R], len(cc.clauses))
	copy(clauses, cc.clauses)
	return clauses
}

// MatchIn evaluates the collected clauses for v over domain, see CaseIn.
func (cc *CaseCollector[V, R]) MatchIn(v V, domain []V) R {
	return CaseIn(v, domain, cc.clauses...)
}

// GenerateCases creates a group of value clauses for each element of xs and
// concatenates the groups, in order.
func GenerateCases[T any, V comparable, R any](xs []T, f func(T) []CaseClause[V, R]) []CaseClause[V, R] {
	var clauses []CaseClause[V, R]
	for _, x := range xs {
		clauses = append(clauses, f(x)...)
	}
	return clauses
}

// MatchCase evaluates the clauses collected in cc for an enumerable v, see Case.
// Go does not allow methods to tighten the constraint of V, hence this is a
// function.
func MatchCase[V Enumerable[V], R any](cc *CaseCollector[V, R], v V) R {
	return Case(v, cc.clauses...)
}

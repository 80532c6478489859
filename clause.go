package when

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// --- Boolean clauses -------------------------------------------------------

// Clause is a (condition, result) pair for boolean matching.
// Conditions are evaluated by the caller at the time the clause is created.
type Clause[R any] struct {
	holds     bool
	result    R
	isDefault bool
}

// If creates a clause selecting r if cond is true.
func If[R any](cond bool, r R) Clause[R] {
	return Clause[R]{holds: cond, result: r}
}

// Else creates a default clause. It is selected only if no other clause holds,
// regardless of its position within the clause list.
func Else[R any](r R) Clause[R] {
	return Clause[R]{holds: true, result: r, isDefault: true}
}

// Holds is true if the condition of c evaluated to true.
func (c Clause[R]) Holds() bool {
	return c.holds
}

// IsDefault is true for clauses created with Else.
func (c Clause[R]) IsDefault() bool {
	return c.isDefault
}

// Result returns the result value of c.
func (c Clause[R]) Result() R {
	return c.result
}

func (c Clause[R]) String() string {
	if c.isDefault {
		return fmt.Sprintf("else => %v", c.result)
	}
	return fmt.Sprintf("%v => %v", c.holds, c.result)
}

// Clauses is an ordered list of boolean clauses.
type Clauses[R any] []Clause[R]

// String renders the clause list as a tree, one node per clause.
func (cs Clauses[R]) String() string {
	header := fmt.Sprintf("when (%d clauses)\n", len(cs))
	printer := tp.New()
	for i, c := range cs {
		printer.AddNode(fmt.Sprintf("#%d  %s", i, c))
	}
	return header + printer.String()
}

// --- Value clauses ---------------------------------------------------------

// CaseClause is a (value set, result) pair for value matching. A default
// clause does not carry any values and matches every value not matched by
// another clause.
type CaseClause[V comparable, R any] struct {
	values    []V
	isDefault bool
	result    R
}

// Is creates a clause selecting r for value v.
func Is[V comparable, R any](v V, r R) CaseClause[V, R] {
	return CaseClause[V, R]{values: []V{v}, result: r}
}

// In creates a clause selecting r for any of the values in vs.
// A clause with an empty value list never matches.
func In[V comparable, R any](vs []V, r R) CaseClause[V, R] {
	values := make([]V, len(vs))
	copy(values, vs)
	return CaseClause[V, R]{values: values, result: r}
}

// Otherwise creates a default clause for value matching. As V cannot be
// inferred from r, clients have to state it explicitly:
//
//	when.Otherwise[Color]("other")
func Otherwise[V comparable, R any](r R) CaseClause[V, R] {
	return CaseClause[V, R]{isDefault: true, result: r}
}

// Contains is true if v is one of the values of c. Default clauses do not
// contain any value.
func (c CaseClause[V, R]) Contains(v V) bool {
	for _, x := range c.values {
		if x == v {
			return true
		}
	}
	return false
}

// Values returns the values c is matching.
func (c CaseClause[V, R]) Values() []V {
	return c.values
}

// IsDefault is true for clauses created with Otherwise.
func (c CaseClause[V, R]) IsDefault() bool {
	return c.isDefault
}

// Result returns the result value of c.
func (c CaseClause[V, R]) Result() R {
	return c.result
}

func (c CaseClause[V, R]) String() string {
	if c.isDefault {
		return fmt.Sprintf("otherwise => %v", c.result)
	}
	if len(c.values) == 1 {
		return fmt.Sprintf("%v => %v", c.values[0], c.result)
	}
	return fmt.Sprintf("%v => %v", c.values, c.result)
}

// Cases is an ordered list of value clauses.
type Cases[V comparable, R any] []CaseClause[V, R]

// String renders the clause list as a tree, one node per clause.
func (cs Cases[V, R]) String() string {
	header := fmt.Sprintf("when case (%d clauses)\n", len(cs))
	printer := tp.New()
	for i, c := range cs {
		printer.AddNode(fmt.Sprintf("#%d  %s", i, c))
	}
	return header + printer.String()
}

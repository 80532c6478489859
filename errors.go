package when

import (
	"errors"
	"fmt"

	"github.com/npillmayer/when/result"
)

// ErrMatch is the error every match error reports to be, as judged by errors.Is.
var ErrMatch = errors.New("when: invalid match")

// MissingDefaultClauseError is raised as a panic if a boolean match which
// requires a default clause has none.
type MissingDefaultClauseError struct {
	Clauses int // number of clauses given
}

func (e *MissingDefaultClauseError) Error() string {
	return fmt.Sprintf("when: boolean match requires a default clause (%d clauses given)", e.Clauses)
}

func (e *MissingDefaultClauseError) Is(target error) bool {
	return target == ErrMatch
}

// NonExhaustiveMatchError is raised as a panic if a value match neither covers
// every value of its domain nor has a default clause.
type NonExhaustiveMatchError[V comparable] struct {
	Unhandled []V // values not covered by any clause, in domain order
}

func (e *NonExhaustiveMatchError[V]) Error() string {
	return fmt.Sprintf("when: match must have a default clause or handle all cases: %v", e.Unhandled)
}

func (e *NonExhaustiveMatchError[V]) Is(target error) bool {
	return target == ErrMatch
}

// Try calls f and converts panics caused by match errors into an error result.
// Any other panic is propagated.
//
//	r := when.Try(func() string {
//		return when.Case(c, when.Is(Red, "red"))
//	})
func Try[R any](f func() R) (res result.Result[R]) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok || !errors.Is(err, ErrMatch) {
				panic(r)
			}
			tracer().Debugf("recovered from match error: %v", err)
			res = result.Err[R](err)
		}
	}()
	return result.Ok(f())
}

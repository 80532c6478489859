package when_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/when"
)

func TestConditionsLinear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "when")
	defer teardown()
	//
	describe := func(n int) string {
		return when.Conditions[string]().
			If(n > 0, "positive").
			If(n < 0, "negative").
			Else("zero").
			Match()
	}
	for n, expected := range map[int]string{10: "positive", -10: "negative", 0: "zero"} {
		if d := describe(n); d != expected {
			t.Errorf("expected describe(%d) to be %q, is %q", n, expected, d)
		}
	}
}

func TestConditionsEither(t *testing.T) {
	first := []when.Clause[string]{when.If(true, "first-a"), when.If(false, "first-b")}
	second := []when.Clause[string]{when.If(false, "second-a")}
	for _, cond := range []bool{true, false} {
		cs := when.Conditions[string]().
			If(false, "before").
			Either(cond, first, second).
			If(true, "after").
			Clauses()
		var results []string
		for _, c := range cs {
			results = append(results, c.Result())
		}
		expected := "before,second-a,after"
		if cond {
			expected = "before,first-a,first-b,after"
		}
		if got := strings.Join(results, ","); got != expected {
			t.Errorf("either(%v): expected clause order %s, got %s", cond, expected, got)
		}
	}
	r := when.Conditions[string]().
		Either(false, first, second).
		If(true, "after").
		Else("none").
		Match()
	if r != "after" {
		t.Errorf("expected sibling clause to match after empty branch, got %q", r)
	}
}

func TestConditionsAppendAndGenerate(t *testing.T) {
	thresholds := []int{100, 10, 1}
	classify := func(n int) string {
		return when.Conditions[string]().
			Append(when.Generate(thresholds, func(th int) []when.Clause[string] {
				return []when.Clause[string]{when.If(n >= th, ">="+strconv.Itoa(th))}
			})).
			Else("small").
			Match()
	}
	if c := classify(50); c != ">=10" {
		t.Errorf("expected classify(50) to be >=10, is %q", c)
	}
	if c := classify(0); c != "small" {
		t.Errorf("expected classify(0) to be small, is %q", c)
	}
	cs := when.Conditions[int]().Append(
		[]when.Clause[int]{when.If(false, 1), when.If(false, 2)},
		nil,
		[]when.Clause[int]{when.If(false, 3)},
	).Clauses()
	for i, c := range cs {
		if c.Result() != i+1 {
			t.Errorf("expected clause #%d to have result %d, has %d", i, i+1, c.Result())
		}
	}
}

func TestConditionsClausesIsCopy(t *testing.T) {
	cc := when.Conditions[int]().If(true, 1)
	cs := cc.Clauses()
	cs[0] = when.Else(2)
	if cc.Clauses()[0].IsDefault() {
		t.Error("expected Clauses() to return a copy, modification leaked into collector")
	}
}

func TestConditionsMatchOptional(t *testing.T) {
	x := when.Conditions[int]().If(false, 1).MatchOptional()
	if _, ok := x.Get(); ok {
		t.Errorf("expected Nothing, got %v", x)
	}
}

func TestCasesCollector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "when")
	defer teardown()
	//
	warm := true
	cc := when.CasesOf[Color, string]().
		Either(warm,
			[]when.CaseClause[Color, string]{when.Is(Red, "warm")},
			[]when.CaseClause[Color, string]{when.Is(Red, "red")}).
		In([]Color{Blue, Green}, "cool")
	if r := when.MatchCase(cc, Red); r != "warm" {
		t.Errorf("expected Red to be warm, is %q", r)
	}
	if r := when.MatchCase(cc, Green); r != "cool" {
		t.Errorf("expected Green to be cool, is %q", r)
	}
	if n := len(cc.Cases()); n != 2 {
		t.Errorf("expected 2 collected clauses, have %d", n)
	}
}

func TestCasesCollectorGenerate(t *testing.T) {
	names := map[Color]string{Red: "red", Blue: "blue"}
	cc := when.CasesOf[Color, string]().
		Append(when.GenerateCases(Red.Domain()[:2], func(c Color) []when.CaseClause[Color, string] {
			return []when.CaseClause[Color, string]{when.Is(c, names[c])}
		})).
		Otherwise("other")
	for c, expected := range map[Color]string{Red: "red", Blue: "blue", Green: "other"} {
		if r := when.MatchCase(cc, c); r != expected {
			t.Errorf("expected %v to yield %q, got %q", c, expected, r)
		}
	}
	if r := cc.MatchIn(Green, []Color{Red}); r != "other" {
		t.Errorf("expected value outside of sub-domain to yield default, got %q", r)
	}
}

func TestClausesString(t *testing.T) {
	cs := when.Conditions[string]().If(true, "yes").Else("no").Clauses()
	s := cs.String()
	t.Logf("clauses =\n%s", s)
	if !strings.Contains(s, "true => yes") || !strings.Contains(s, "else => no") {
		t.Errorf("expected clause dump to list both clauses, is %q", s)
	}
	cases := when.CasesOf[Color, int]().In([]Color{Red, Blue}, 1).Is(Green, 2).Otherwise(0).Cases()
	s = cases.String()
	t.Logf("cases =\n%s", s)
	for _, part := range []string{"[red blue] => 1", "green => 2", "otherwise => 0"} {
		if !strings.Contains(s, part) {
			t.Errorf("expected case dump to contain %q, is %q", part, s)
		}
	}
}

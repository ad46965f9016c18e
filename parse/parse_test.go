package parse

import "testing"

type noWorld struct{}

func TestLiteralExactMatch(t *testing.T) {
	l := NewLiteral[noWorld]("tp")
	res, next := l.IterParse(noWorld{}, nil, "tp 1 2 3")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Rest != " 1 2 3" {
		t.Errorf("Rest = %q, want %q", res.Rest, " 1 2 3")
	}
	if next != nil {
		t.Error("literal should never backtrack")
	}
}

func TestLiteralMismatch(t *testing.T) {
	l := NewLiteral[noWorld]("tp")
	res, _ := l.IterParse(noWorld{}, nil, "ban steve")
	if res.Err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLiteralTooShort(t *testing.T) {
	l := NewLiteral[noWorld]("tp")
	res, _ := l.IterParse(noWorld{}, nil, "t")
	if res.Err == nil {
		t.Fatal("expected a parse error for a too-short prefix")
	}
}

func TestOneOrMoreSpaceRequiresAtLeastOne(t *testing.T) {
	sp := OneOrMoreSpace[noWorld]{}

	res, _ := sp.IterParse(noWorld{}, nil, "   abc")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Rest != "abc" {
		t.Errorf("Rest = %q, want %q", res.Rest, "abc")
	}

	if res, _ := sp.IterParse(noWorld{}, nil, "abc"); res.Err == nil {
		t.Error("expected an error when there is no leading space")
	}
	if res, _ := sp.IterParse(noWorld{}, nil, ""); res.Err == nil {
		t.Error("expected an error on empty input")
	}
}

func TestMaybeSpacesAcceptsNone(t *testing.T) {
	sp := MaybeSpaces[noWorld]{}
	res, _ := sp.IterParse(noWorld{}, nil, "abc")
	if res.Err != nil || res.Rest != "abc" {
		t.Errorf("got (%v, %q), want (nil, %q)", res.Err, res.Rest, "abc")
	}
}

func TestIntParsesSignedDecimal(t *testing.T) {
	i := Int[noWorld]{}
	for _, tc := range []struct {
		in   string
		want int
		rest string
	}{
		{"42", 42, ""},
		{"-7 remaining", -7, " remaining"},
		{"+3x", 3, "x"},
	} {
		res, _ := i.IterParse(noWorld{}, nil, tc.in)
		if res.Err != nil {
			t.Fatalf("IterParse(%q): %v", tc.in, res.Err)
		}
		if res.Value != tc.want {
			t.Errorf("IterParse(%q).Value = %v, want %v", tc.in, res.Value, tc.want)
		}
		if res.Rest != tc.rest {
			t.Errorf("IterParse(%q).Rest = %q, want %q", tc.in, res.Rest, tc.rest)
		}
	}
}

func TestIntRejectsNonDigits(t *testing.T) {
	i := Int[noWorld]{}
	res, _ := i.IterParse(noWorld{}, nil, "abc")
	if res.Err == nil {
		t.Fatal("expected an error")
	}
}

func TestWordStopsAtWhitespace(t *testing.T) {
	w := Word[noWorld]{}
	res, _ := w.IterParse(noWorld{}, nil, "steve hit the creeper")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Value != "steve" || res.Rest != " hit the creeper" {
		t.Errorf("got (%v, %q)", res.Value, res.Rest)
	}
}

func TestAndSequencesLiteralAndSpaceAndInt(t *testing.T) {
	p := NewAnd[noWorld](NewLiteral[noWorld]("tp"), NewAnd[noWorld](OneOrMoreSpace[noWorld]{}, Int[noWorld]{}))

	res, _ := p.IterParse(noWorld{}, nil, "tp 42")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	vals, ok := res.Value.([]any)
	if !ok {
		t.Fatalf("expected []any, got %T", res.Value)
	}
	if len(vals) != 1 || vals[0] != 42 {
		t.Errorf("extracted values = %v, want [42]", vals)
	}
	if res.Rest != "" {
		t.Errorf("Rest = %q, want empty", res.Rest)
	}
}

func TestAndFailurePropagatesBestError(t *testing.T) {
	p := NewAnd[noWorld](NewLiteral[noWorld]("tp"), NewAnd[noWorld](OneOrMoreSpace[noWorld]{}, Int[noWorld]{}))

	res, _ := p.IterParse(noWorld{}, nil, "tp notanumber")
	if res.Err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestOptAcceptsPresentThenAbsent(t *testing.T) {
	o := NewOpt[noWorld](Int[noWorld]{})

	res, next := o.IterParse(noWorld{}, nil, "5 rest")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	v, ok := res.Value.(*any)
	if !ok || v == nil || *v != 5 {
		t.Errorf("Value = %#v, want pointer to 5", res.Value)
	}
	if res.Rest != " rest" {
		t.Errorf("Rest = %q", res.Rest)
	}
	if next == nil {
		t.Fatal("expected a backtrack state offering the None alternative")
	}

	res2, _ := o.IterParse(noWorld{}, next, "5 rest")
	if res2.Err != nil {
		t.Fatalf("unexpected error on second alternative: %v", res2.Err)
	}
	v2, ok := res2.Value.(*any)
	if !ok || v2 != nil {
		t.Errorf("second alternative Value = %#v, want nil pointer", res2.Value)
	}
	if res2.Rest != "5 rest" {
		t.Errorf("second alternative Rest = %q, want unconsumed input", res2.Rest)
	}
}

func TestOptOnNonMatchingInputStillOffersNone(t *testing.T) {
	o := NewOpt[noWorld](Int[noWorld]{})

	res, next := o.IterParse(noWorld{}, nil, "notanumber")
	if res.Err == nil {
		t.Fatal("expected the first attempt to fail")
	}
	if next == nil {
		t.Fatal("expected a backtrack state")
	}

	res2, _ := o.IterParse(noWorld{}, next, "notanumber")
	if res2.Err != nil {
		t.Fatalf("expected the None alternative to succeed, got %v", res2.Err)
	}
	if res2.Rest != "notanumber" {
		t.Errorf("Rest = %q, want input untouched", res2.Rest)
	}
}

func TestGreedyStringBacktracksForTrailingLiteral(t *testing.T) {
	g := GreedyString[noWorld]{}

	res, next := g.IterParse(noWorld{}, nil, "hello world")
	if res.Value != "hello world" || res.Rest != "" {
		t.Fatalf("first attempt = (%v, %q)", res.Value, res.Rest)
	}
	if next == nil {
		t.Fatal("expected a state to allow giving back trailing runes")
	}

	res2, _ := g.IterParse(noWorld{}, next, "hello world")
	if res2.Value != "hello worl" || res2.Rest != "d" {
		t.Errorf("second attempt = (%v, %q), want (%q, %q)", res2.Value, res2.Rest, "hello worl", "d")
	}
}

func TestRegexCompositionNestsSubexpressions(t *testing.T) {
	p := NewAnd[noWorld](NewLiteral[noWorld]("tp"), NewAnd[noWorld](OneOrMoreSpace[noWorld]{}, Int[noWorld]{}))
	want := `(tp)((\s+)([+-]?\d+))`
	if got := p.Regex(); got != want {
		t.Errorf("Regex() = %q, want %q", got, want)
	}
}

package automata

import (
	"regexp/syntax"
	"unicode"
)

// Compile parses pattern as a Perl-flavored regular expression and lowers
// it to an NFA. Parsing and unsupported-feature detection are done in a
// single walk of the syntax.Regexp parse tree: anchors and word-boundary
// assertions have no byte-level NFA equivalent here (this package only
// ever asks "does the whole input match", never "where in a larger text",
// so ^, $, \A, \z and \b carry no meaning) and are rejected with a
// RegexError naming the offending Feature. Lazy quantifiers (*?, +?, ??,
// {n,m}?) are rejected the same way, with FeatureNonGreedy.
func Compile(pattern string) (NFA, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return NFA{}, parseFailure(pattern, err)
	}
	return compileNode(pattern, re)
}

func compileNode(pattern string, re *syntax.Regexp) (NFA, error) {
	switch re.Op {
	case syntax.OpStar, syntax.OpPlus, syntax.OpQuest, syntax.OpRepeat:
		if re.Flags&syntax.NonGreedy != 0 {
			return NFA{}, unsupportedFeature(pattern, FeatureNonGreedy)
		}
	}

	switch re.Op {
	case syntax.OpNoMatch:
		return noMatchNFA()

	case syntax.OpEmptyMatch:
		return emptyMatchNFA()

	case syntax.OpLiteral:
		return compileLiteral(re)

	case syntax.OpCharClass:
		return compileCharClass(re)

	case syntax.OpAnyCharNotNL:
		any, err := FromRange(0, unicode.MaxRune)
		if err != nil {
			return NFA{}, err
		}
		return excludeByte(any, '\n')

	case syntax.OpAnyChar:
		return FromRange(0, unicode.MaxRune)

	case syntax.OpBeginLine:
		return NFA{}, unsupportedFeature(pattern, FeatureStartLine)
	case syntax.OpEndLine:
		return NFA{}, unsupportedFeature(pattern, FeatureEndLine)
	case syntax.OpBeginText:
		return NFA{}, unsupportedFeature(pattern, FeatureStartText)
	case syntax.OpEndText:
		return NFA{}, unsupportedFeature(pattern, FeatureEndText)
	case syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return NFA{}, unsupportedFeature(pattern, FeatureWordBoundary)

	case syntax.OpCapture:
		return compileNode(pattern, re.Sub[0])

	case syntax.OpStar:
		body, err := compileNode(pattern, re.Sub[0])
		if err != nil {
			return NFA{}, err
		}
		return Repeat(body)

	case syntax.OpPlus:
		body, err := compileNode(pattern, re.Sub[0])
		if err != nil {
			return NFA{}, err
		}
		tail, err := compileNode(pattern, re.Sub[0])
		if err != nil {
			return NFA{}, err
		}
		tailStar, err := Repeat(tail)
		if err != nil {
			return NFA{}, err
		}
		return FollowedBy(body, tailStar)

	case syntax.OpQuest:
		body, err := compileNode(pattern, re.Sub[0])
		if err != nil {
			return NFA{}, err
		}
		return Optional(body)

	case syntax.OpRepeat:
		return compileRepeat(pattern, re)

	case syntax.OpConcat:
		return compileFold(pattern, re.Sub, FollowedBy)

	case syntax.OpAlternate:
		return compileFold(pattern, re.Sub, Union)

	default:
		return NFA{}, buildErr("compile", ErrTooManyStates)
	}
}

func compileFold(pattern string, subs []*syntax.Regexp, op func(a, b NFA) (NFA, error)) (NFA, error) {
	acc, err := compileNode(pattern, subs[0])
	if err != nil {
		return NFA{}, err
	}
	for _, sub := range subs[1:] {
		next, err := compileNode(pattern, sub)
		if err != nil {
			return NFA{}, err
		}
		acc, err = op(acc, next)
		if err != nil {
			return NFA{}, err
		}
	}
	return acc, nil
}

func compileLiteral(re *syntax.Regexp) (NFA, error) {
	acc := Empty()
	for _, r := range re.Rune {
		var runeNFA NFA
		var err error
		if re.Flags&syntax.FoldCase != 0 {
			runeNFA, err = foldedRune(r)
		} else {
			buf := make([]byte, 4)
			n := encodeRune(buf, r)
			runeNFA, err = Literal(string(buf[:n]))
		}
		if err != nil {
			return NFA{}, err
		}
		acc, err = FollowedBy(acc, runeNFA)
		if err != nil {
			return NFA{}, err
		}
	}
	if acc.IsEmpty() {
		return emptyMatchNFA()
	}
	return acc, nil
}

// foldedRune builds an NFA matching r or its opposite-case ASCII letter.
// Case folding is deliberately ASCII-only: unicode.SimpleFold also folds
// across scripts (e.g. Kelvin sign with 'k', long s with 's'), which
// would silently match characters a user never typed. (?i) is kept for
// ordinary ASCII-letter literals only; full Unicode case folding is not
// supported.
func foldedRune(r rune) (NFA, error) {
	variants := []rune{r}
	if r >= 'A' && r <= 'Z' {
		variants = append(variants, r+('a'-'A'))
	} else if r >= 'a' && r <= 'z' {
		variants = append(variants, r-('a'-'A'))
	}

	buf := make([]byte, 4)
	n := encodeRune(buf, variants[0])
	acc, err := Literal(string(buf[:n]))
	if err != nil {
		return NFA{}, err
	}
	for _, f := range variants[1:] {
		n := encodeRune(buf, f)
		alt, err := Literal(string(buf[:n]))
		if err != nil {
			return NFA{}, err
		}
		acc, err = Union(acc, alt)
		if err != nil {
			return NFA{}, err
		}
	}
	return acc, nil
}

func compileCharClass(re *syntax.Regexp) (NFA, error) {
	acc := Empty()
	for i := 0; i+1 < len(re.Rune); i += 2 {
		r, err := FromRange(re.Rune[i], re.Rune[i+1])
		if err != nil {
			return NFA{}, err
		}
		acc, err = Union(acc, r)
		if err != nil {
			return NFA{}, err
		}
	}
	return acc, nil
}

// repeatedNTimes builds the concatenation of exactly n copies of body,
// by repeated doubling rather than n literal concatenations: body is
// squared at every bit position, and folded into the result only where
// n has that bit set. This keeps Compile fast even for patterns like
// a{100000}.
func repeatedNTimes(body NFA, n uint32) (NFA, error) {
	result := Empty()
	for bit := 0; bit < 32 && (uint32(1)<<uint(bit)) <= n; bit++ {
		if n&(1<<uint(bit)) != 0 {
			var err error
			result, err = FollowedBy(result, body.Clone())
			if err != nil {
				return NFA{}, err
			}
		}
		doubled, err := FollowedBy(body.Clone(), body)
		if err != nil {
			return NFA{}, err
		}
		body = doubled
	}
	if result.IsEmpty() {
		return emptyMatchNFA()
	}
	return result, nil
}

func compileRepeat(pattern string, re *syntax.Regexp) (NFA, error) {
	body, err := compileNode(pattern, re.Sub[0])
	if err != nil {
		return NFA{}, err
	}

	min := uint32(re.Min)

	switch {
	case re.Max == re.Min:
		return repeatedNTimes(body, min)

	case re.Max == -1:
		prefix, err := repeatedNTimes(body.Clone(), min)
		if err != nil {
			return NFA{}, err
		}
		tail, err := Repeat(body)
		if err != nil {
			return NFA{}, err
		}
		return FollowedBy(prefix, tail)

	default:
		max := uint32(re.Max)
		step, err := repeatedNTimes(body.Clone(), min)
		if err != nil {
			return NFA{}, err
		}
		result := Empty()
		for k := min; k <= max; k++ {
			result, err = Union(result, step.Clone())
			if err != nil {
				return NFA{}, err
			}
			if k < max {
				step, err = FollowedBy(step, body.Clone())
				if err != nil {
					return NFA{}, err
				}
			}
		}
		return result, nil
	}
}

// emptyMatchNFA returns an NFA accepting only the empty string: a single
// state that is both start and end, with no outgoing transitions. This
// is distinct from Empty() (zero states, the combinators' identity
// element) — unioning or concatenating with an emptyMatchNFA must behave
// like a real "matches empty string" alternative, not a no-op.
func emptyMatchNFA() (NFA, error) {
	n := WithCapacity(1, 0, 1)
	s, err := n.PushState()
	if err != nil {
		return NFA{}, err
	}
	n.PushEnd(s)
	return n, nil
}

// noMatchNFA returns an NFA accepting nothing at all: a single,
// non-accepting state with no transitions.
func noMatchNFA() (NFA, error) {
	n := WithCapacity(1, 0, 0)
	_, err := n.PushState()
	return n, err
}

// excludeByte removes the single-byte transition for b from a's start
// state, used only to carve \n out of "any character" for
// OpAnyCharNotNL. a's start state always has a direct one-byte edge for
// every ASCII byte (built by FromRange/between's length-1 case), so
// zeroing that one slot in its byte class is enough; it does not disturb
// any multi-byte UTF-8 path, since those never lead with an ASCII byte.
func excludeByte(a NFA, b byte) (NFA, error) {
	out := a.Clone()
	start := out.Start()
	state := &out.states[start]
	newClass := out.classes.get(state.class)
	newClass[b] = 0
	state.class = out.classes.intern(newClass)
	return out, nil
}

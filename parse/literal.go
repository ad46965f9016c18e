package parse

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Literal matches one fixed string exactly, consuming nothing else.
// World is carried only as a type parameter so Literal can be composed
// with parsers that do use it, mirroring the phantom-typed Lit<World>
// of the Rust original.
type Literal[W any] struct {
	s string
}

// NewLiteral builds a Literal parser for s.
func NewLiteral[W any](s string) Literal[W] {
	return Literal[W]{s: s}
}

func (l Literal[W]) Regex() string {
	return regexp.QuoteMeta(l.s)
}

// IterParse never backtracks: a literal either matches in full or it
// doesn't, so the returned state is always nil.
func (l Literal[W]) IterParse(world W, state any, input string) (ParseResult, any) {
	ov, rest := overlap(input, l.s)

	if len(ov) == len(l.s) {
		return ParseResult{Rest: rest}, nil
	}
	if ov == "" {
		return ParseResult{Err: &ParseError{
			Rest: rest,
			Msg:  fmt.Sprintf("expected the literal %q, but found no overlap", l.s),
		}}, nil
	}
	return ParseResult{Err: &ParseError{
		Rest: rest,
		Msg:  fmt.Sprintf("expected the literal %q, but found only the beginning %q", l.s, ov),
	}}, nil
}

// overlap splits input at the point where literal's matching prefix
// ends: if literal is a true prefix of input, the first half is exactly
// literal and the second is whatever followed it. If input is shorter
// than literal, or diverges partway through, the first half reports how
// much of literal could be matched (possibly empty) for error
// reporting.
func overlap(input, literal string) (string, string) {
	n := 0
	for n < len(literal) {
		_, size := utf8.DecodeRuneInString(literal[n:])
		if n+size > len(input) || input[n:n+size] != literal[n:n+size] {
			break
		}
		n += size
	}
	return input[:n], input[n:]
}

// stringOverlapIndex finds the smallest rune-boundary index i into left
// such that left[i:] could still be a prefix of right (length
// permitting) and actually is. Returns len(left) if no such index
// exists, meaning no overlap at all.
func stringOverlapIndex(left, right string) int {
	for i := 0; i < len(left); {
		sliceLen := len(left) - i
		if sliceLen <= len(right) && left[i:] == right[:sliceLen] {
			return i
		}
		_, size := utf8.DecodeRuneInString(left[i:])
		i += size
	}
	return len(left)
}

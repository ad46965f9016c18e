package parse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// OneOrMoreSpace requires at least one whitespace rune, consuming all
// leading whitespace present. Used to separate a command's literal from
// its first argument.
type OneOrMoreSpace[W any] struct{}

func (OneOrMoreSpace[W]) Regex() string { return `\s+` }

func (OneOrMoreSpace[W]) IterParse(world W, state any, input string) (ParseResult, any) {
	if len(input) == 0 {
		return ParseResult{Err: &ParseError{
			Rest: input,
			Msg:  "expected a space, but input was empty",
		}}, nil
	}

	trimmed := strings.TrimLeftFunc(input, unicode.IsSpace)
	if len(trimmed) == len(input) {
		r, _ := utf8.DecodeRuneInString(input)
		return ParseResult{Err: &ParseError{
			Rest: input,
			Msg:  fmt.Sprintf("expected a space, but found %q", r),
		}}, nil
	}

	return ParseResult{Rest: trimmed}, nil
}

// MaybeSpaces consumes any leading whitespace, succeeding even if there
// is none. Used to absorb trailing whitespace at the end of a command.
type MaybeSpaces[W any] struct{}

func (MaybeSpaces[W]) Regex() string { return `\s*` }

func (MaybeSpaces[W]) IterParse(world W, state any, input string) (ParseResult, any) {
	return ParseResult{Rest: strings.TrimLeftFunc(input, unicode.IsSpace)}, nil
}

package parse

// And sequences two parsers: a, then b. Its State threads through both
// sub-parsers' states plus a flag recording which side is currently
// being (re)tried, so the combinator can resume either side across
// successive IterParse calls without losing its place.
type And[W any] struct {
	a, b IterParser[W]
}

// NewAnd composes a then b. Does not insert a separator between them;
// callers wanting whitespace between a command literal and its first
// argument compose with OneOrMoreSpace explicitly.
func NewAnd[W any](a, b IterParser[W]) And[W] {
	return And[W]{a: a, b: b}
}

func (p And[W]) Regex() string {
	return "(" + p.a.Regex() + ")(" + p.b.Regex() + ")"
}

type andState struct {
	aState   any
	bState   any
	lookForA bool
}

func (p And[W]) IterParse(world W, state any, input string) (ParseResult, any) {
	st, ok := state.(*andState)
	if !ok || st == nil {
		st = &andState{lookForA: true}
	}

	var bestErr *ParseError
	note := func(e *ParseError) {
		if e.gotFurther(bestErr) {
			bestErr = e
		}
	}

	var aExt any
	var aOut string
	var moreAStates bool
	var aState any

	if st.lookForA {
		for {
			res, next := p.a.IterParse(world, st.aState, input)
			if res.Err == nil {
				st.lookForA = false
				aExt, aOut = res.Value, res.Rest
				moreAStates = next != nil
				aState = next
				break
			}
			note(res.Err)
			if next == nil {
				return ParseResult{Err: bestErr}, nil
			}
			st.aState = next
		}
	} else {
		res, next := p.a.IterParse(world, st.aState, input)
		aExt, aOut = res.Value, res.Rest
		moreAStates = next != nil
		aState = next
	}

	for {
		res, next := p.b.IterParse(world, st.bState, aOut)
		if res.Err == nil {
			combined := combine(aExt, res.Value)
			if next == nil {
				if !moreAStates {
					return ParseResult{Value: combined, Rest: res.Rest}, nil
				}
				st.lookForA = true
				st.bState = nil
				st.aState = aState
				return ParseResult{Value: combined, Rest: res.Rest}, st
			}
			st.lookForA = false
			st.bState = next
			return ParseResult{Value: combined, Rest: res.Rest}, st
		}

		note(res.Err)
		if next == nil {
			if !moreAStates {
				return ParseResult{Err: bestErr}, nil
			}
			st.lookForA = true
			st.bState = nil
			st.aState = aState
			return ParseResult{Err: bestErr}, st
		}
		st.bState = next
	}
}

// combine flattens two parser extractions into a single slice, the way
// the Rust original's Combine/Tuple machinery joins heterogeneous tuple
// types. A nil extraction (literals, spaces) contributes nothing.
func combine(a, b any) []any {
	out := append(flatten(a), flatten(b)...)
	return out
}

func flatten(v any) []any {
	if v == nil {
		return nil
	}
	if s, ok := v.([]any); ok {
		return s
	}
	return []any{v}
}

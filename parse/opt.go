package parse

// Opt makes a parser optional. The first call returns a's own result,
// success or error; once a has no alternatives left, the returned state
// offers one more: success with a nil extraction and the input
// untouched. The extracted value on
// success is a *any holding a's value (nil pointer stands for "absent",
// a non-nil pointer for "present"), since Go has no enum equivalent to
// Rust's Option<T> to reuse here.
type Opt[W any] struct {
	a IterParser[W]
}

// NewOpt wraps a to make it optional.
func NewOpt[W any](a IterParser[W]) Opt[W] {
	return Opt[W]{a: a}
}

func (p Opt[W]) Regex() string {
	return "(" + p.a.Regex() + ")?"
}

type optState struct {
	exhausted bool
	aState    any
}

func (p Opt[W]) IterParse(world W, state any, input string) (ParseResult, any) {
	st, ok := state.(*optState)
	if !ok || st == nil {
		st = &optState{}
	}

	if st.exhausted {
		return ParseResult{Value: (*any)(nil), Rest: input}, nil
	}

	res, next := p.a.IterParse(world, st.aState, input)
	if res.Err == nil {
		v := res.Value
		if next == nil {
			return ParseResult{Value: &v, Rest: res.Rest}, &optState{exhausted: true}
		}
		return ParseResult{Value: &v, Rest: res.Rest}, &optState{aState: next}
	}

	if next == nil {
		return ParseResult{Err: res.Err}, &optState{exhausted: true}
	}
	return ParseResult{Err: res.Err}, &optState{aState: next}
}

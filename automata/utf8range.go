package automata

// This file compiles a Unicode code point range into byte-level NFA
// transitions between two existing states, start and end. The NFA only
// ever sees bytes, so a range like [é, ȶ] has to be lowered to whatever
// set of UTF-8 byte sequences spans it — and since UTF-8 uses one to
// four bytes per code point with very different leader/continuation
// layouts, that lowering has a case for every combination of encoded
// lengths. The byte layout for each length:
//
//	length  1st byte    2nd byte    3rd byte    4th byte
//	1       0x00..0x7F
//	2       0xC0..0xDF  0x80..0xBF
//	3       0xE0..0xEF  0x80..0xBF  0x80..0xBF
//	4       0xF0..0xF7  0x80..0xBF  0x80..0xBF  0x80..0xBF
//
// (continuation bytes are always 0x80..0xBF regardless of length).

// anyCharOfLengthN adds transitions from start to end recognizing any
// well-formed UTF-8 encoding of length n (1..=4).
func (n *NFA) anyCharOfLengthN(length int, start, end StateID) error {
	switch length {
	case 1:
		return n.PushEdges(start, end, 0x00, 0x7F)
	case 2:
		a, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdges(start, a, 0xC0, 0xDF); err != nil {
			return err
		}
		return n.PushEdges(a, end, 0x80, 0xBF)
	case 3:
		a, err := n.PushState()
		if err != nil {
			return err
		}
		b, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdges(start, a, 0xE0, 0xEF); err != nil {
			return err
		}
		if err := n.PushEdges(a, b, 0x80, 0xBF); err != nil {
			return err
		}
		return n.PushEdges(b, end, 0x80, 0xBF)
	case 4:
		a, err := n.PushState()
		if err != nil {
			return err
		}
		b, err := n.PushState()
		if err != nil {
			return err
		}
		c, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdges(start, a, 0xF0, 0xF7); err != nil {
			return err
		}
		if err := n.PushEdges(a, b, 0x80, 0xBF); err != nil {
			return err
		}
		if err := n.PushEdges(b, c, 0x80, 0xBF); err != nil {
			return err
		}
		return n.PushEdges(c, end, 0x80, 0xBF)
	default:
		panic("anyCharOfLengthN: length must be 1, 2, 3 or 4")
	}
}

// belowOrEq adds transitions from start to end recognizing any code
// point whose UTF-8 encoding has the same byte length as c and whose
// value is <= c.
func (n *NFA) belowOrEq(c rune, start, end StateID) error {
	buf := make([]byte, 4)
	size := encodeRune(buf, c)
	b := buf[:size]

	switch size {
	case 1:
		return n.PushEdges(start, end, 0x00, b[0])

	case 2:
		a, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a, b[0]); err != nil {
			return err
		}
		if err := n.PushEdges(a, end, 0x80, b[1]); err != nil {
			return err
		}
		if b[0] != 0xC0 {
			a2, err := n.PushState()
			if err != nil {
				return err
			}
			if err := n.PushEdges(start, a2, 0xC0, b[0]-1); err != nil {
				return err
			}
			if err := n.PushEdges(a2, end, 0x80, 0xBF); err != nil {
				return err
			}
		}
		return nil

	case 3:
		a, err := n.PushState()
		if err != nil {
			return err
		}
		b2, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a, b[0]); err != nil {
			return err
		}
		if err := n.PushEdge(a, b2, b[1]); err != nil {
			return err
		}
		if err := n.PushEdges(b2, end, 0x80, b[2]); err != nil {
			return err
		}

		if b[1] != 0x80 {
			a2, err := n.PushState()
			if err != nil {
				return err
			}
			bb2, err := n.PushState()
			if err != nil {
				return err
			}
			if err := n.PushEdge(start, a2, b[0]); err != nil {
				return err
			}
			if err := n.PushEdges(a2, bb2, 0x80, b[1]-1); err != nil {
				return err
			}
			if err := n.PushEdges(bb2, end, 0x80, 0xBF); err != nil {
				return err
			}
		}

		if b[0] != 0xE0 {
			a3, err := n.PushState()
			if err != nil {
				return err
			}
			b3, err := n.PushState()
			if err != nil {
				return err
			}
			if err := n.PushEdges(start, a3, 0xE0, b[0]-1); err != nil {
				return err
			}
			if err := n.PushEdges(a3, b3, 0x80, 0xBF); err != nil {
				return err
			}
			if err := n.PushEdges(b3, end, 0x80, 0xBF); err != nil {
				return err
			}
		}
		return nil

	case 4:
		a, err := n.PushState()
		if err != nil {
			return err
		}
		b2, err := n.PushState()
		if err != nil {
			return err
		}
		c2, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a, b[0]); err != nil {
			return err
		}
		if err := n.PushEdge(a, b2, b[1]); err != nil {
			return err
		}
		if err := n.PushEdge(b2, c2, b[2]); err != nil {
			return err
		}
		if err := n.PushEdges(c2, end, 0x80, b[3]); err != nil {
			return err
		}

		if b[2] != 0x80 {
			a2, err := n.PushState()
			if err != nil {
				return err
			}
			b3, err := n.PushState()
			if err != nil {
				return err
			}
			c3, err := n.PushState()
			if err != nil {
				return err
			}
			if err := n.PushEdge(start, a2, b[0]); err != nil {
				return err
			}
			if err := n.PushEdge(a2, b3, b[1]); err != nil {
				return err
			}
			if err := n.PushEdges(b3, c3, 0x80, b[2]-1); err != nil {
				return err
			}
			if err := n.PushEdges(c3, end, 0x80, 0xBF); err != nil {
				return err
			}
		}

		if b[1] != 0x80 {
			a3, err := n.PushState()
			if err != nil {
				return err
			}
			b4, err := n.PushState()
			if err != nil {
				return err
			}
			c4, err := n.PushState()
			if err != nil {
				return err
			}
			if err := n.PushEdge(start, a3, b[0]); err != nil {
				return err
			}
			if err := n.PushEdges(a3, b4, 0x80, b[1]-1); err != nil {
				return err
			}
			if err := n.PushEdges(b4, c4, 0x80, 0xBF); err != nil {
				return err
			}
			if err := n.PushEdges(c4, end, 0x80, 0xBF); err != nil {
				return err
			}
		}

		if b[0] != 0xF0 {
			a4, err := n.PushState()
			if err != nil {
				return err
			}
			b5, err := n.PushState()
			if err != nil {
				return err
			}
			c5, err := n.PushState()
			if err != nil {
				return err
			}
			if err := n.PushEdges(start, a4, 0xF0, b[0]-1); err != nil {
				return err
			}
			if err := n.PushEdges(a4, b5, 0x80, 0xBF); err != nil {
				return err
			}
			if err := n.PushEdges(b5, c5, 0x80, 0xBF); err != nil {
				return err
			}
			if err := n.PushEdges(c5, end, 0x80, 0xBF); err != nil {
				return err
			}
		}
		return nil

	default:
		panic("belowOrEq: invalid utf8 length")
	}
}

// overOrEq adds transitions from start to end recognizing any code
// point whose UTF-8 encoding has the same byte length as c and whose
// value is >= c.
func (n *NFA) overOrEq(c rune, start, end StateID) error {
	buf := make([]byte, 4)
	size := encodeRune(buf, c)
	b := buf[:size]

	switch size {
	case 1:
		return n.PushEdges(start, end, b[0], 0x7F)

	case 2:
		a, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a, b[0]); err != nil {
			return err
		}
		if err := n.PushEdges(a, end, b[1], 0xBF); err != nil {
			return err
		}
		if b[0] != 0xDF {
			a2, err := n.PushState()
			if err != nil {
				return err
			}
			if err := n.PushEdges(start, a2, b[0]+1, 0xDF); err != nil {
				return err
			}
			if err := n.PushEdges(a2, end, 0x80, 0xBF); err != nil {
				return err
			}
		}
		return nil

	case 3:
		a, err := n.PushState()
		if err != nil {
			return err
		}
		b2, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a, b[0]); err != nil {
			return err
		}
		if err := n.PushEdge(a, b2, b[1]); err != nil {
			return err
		}
		if err := n.PushEdges(b2, end, b[2], 0xBF); err != nil {
			return err
		}

		if b[1] != 0xBF {
			a2, err := n.PushState()
			if err != nil {
				return err
			}
			bb2, err := n.PushState()
			if err != nil {
				return err
			}
			if err := n.PushEdge(start, a2, b[0]); err != nil {
				return err
			}
			if err := n.PushEdges(a2, bb2, b[1]+1, 0xBF); err != nil {
				return err
			}
			if err := n.PushEdges(bb2, end, 0x80, 0xBF); err != nil {
				return err
			}
		}

		if b[0] != 0xEF {
			a3, err := n.PushState()
			if err != nil {
				return err
			}
			b3, err := n.PushState()
			if err != nil {
				return err
			}
			if err := n.PushEdges(start, a3, b[0]+1, 0xEF); err != nil {
				return err
			}
			if err := n.PushEdges(a3, b3, 0x80, 0xBF); err != nil {
				return err
			}
			if err := n.PushEdges(b3, end, 0x80, 0xBF); err != nil {
				return err
			}
		}
		return nil

	case 4:
		a, err := n.PushState()
		if err != nil {
			return err
		}
		b2, err := n.PushState()
		if err != nil {
			return err
		}
		c2, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a, b[0]); err != nil {
			return err
		}
		if err := n.PushEdge(a, b2, b[1]); err != nil {
			return err
		}
		if err := n.PushEdge(b2, c2, b[2]); err != nil {
			return err
		}
		if err := n.PushEdges(c2, end, b[3], 0xBF); err != nil {
			return err
		}

		if b[2] != 0xBF {
			a2, err := n.PushState()
			if err != nil {
				return err
			}
			b3, err := n.PushState()
			if err != nil {
				return err
			}
			c3, err := n.PushState()
			if err != nil {
				return err
			}
			if err := n.PushEdge(start, a2, b[0]); err != nil {
				return err
			}
			if err := n.PushEdge(a2, b3, b[1]); err != nil {
				return err
			}
			if err := n.PushEdges(b3, c3, b[2]+1, 0xBF); err != nil {
				return err
			}
			if err := n.PushEdges(c3, end, 0x80, 0xBF); err != nil {
				return err
			}
		}

		if b[1] != 0xBF {
			a3, err := n.PushState()
			if err != nil {
				return err
			}
			b4, err := n.PushState()
			if err != nil {
				return err
			}
			c4, err := n.PushState()
			if err != nil {
				return err
			}
			if err := n.PushEdge(start, a3, b[0]); err != nil {
				return err
			}
			if err := n.PushEdges(a3, b4, b[1]+1, 0xBF); err != nil {
				return err
			}
			if err := n.PushEdges(b4, c4, 0x80, 0xBF); err != nil {
				return err
			}
			if err := n.PushEdges(c4, end, 0x80, 0xBF); err != nil {
				return err
			}
		}

		if b[0] != 0xF7 {
			a4, err := n.PushState()
			if err != nil {
				return err
			}
			b5, err := n.PushState()
			if err != nil {
				return err
			}
			c5, err := n.PushState()
			if err != nil {
				return err
			}
			if err := n.PushEdges(start, a4, b[0]+1, 0xF7); err != nil {
				return err
			}
			if err := n.PushEdges(a4, b5, 0x80, 0xBF); err != nil {
				return err
			}
			if err := n.PushEdges(b5, c5, 0x80, 0xBF); err != nil {
				return err
			}
			if err := n.PushEdges(c5, end, 0x80, 0xBF); err != nil {
				return err
			}
		}
		return nil

	default:
		panic("overOrEq: invalid utf8 length")
	}
}

func (n *NFA) between2(from, to [2]byte, start, end StateID) error {
	if from[0] == to[0] {
		a, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a, from[0]); err != nil {
			return err
		}
		return n.PushEdges(a, end, from[1], to[1])
	}

	a, err := n.PushState()
	if err != nil {
		return err
	}
	if err := n.PushEdge(start, a, from[0]); err != nil {
		return err
	}
	if err := n.PushEdges(a, end, from[1], 0xBF); err != nil {
		return err
	}

	b, err := n.PushState()
	if err != nil {
		return err
	}
	if err := n.PushEdge(start, b, to[0]); err != nil {
		return err
	}
	if err := n.PushEdges(b, end, 0x80, to[1]); err != nil {
		return err
	}

	if to[0]-from[0] > 1 {
		c, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdges(start, c, from[0]+1, to[0]-1); err != nil {
			return err
		}
		if err := n.PushEdges(c, end, 0x80, 0xBF); err != nil {
			return err
		}
	}
	return nil
}

func (n *NFA) between3(from, to [3]byte, start, end StateID) error {
	if from[0] == to[0] {
		a, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a, from[0]); err != nil {
			return err
		}
		return n.between2([2]byte{from[1], from[2]}, [2]byte{to[1], to[2]}, a, end)
	}

	a, err := n.PushState()
	if err != nil {
		return err
	}
	b, err := n.PushState()
	if err != nil {
		return err
	}
	if err := n.PushEdge(start, a, from[0]); err != nil {
		return err
	}
	if err := n.PushEdge(a, b, from[1]); err != nil {
		return err
	}
	if err := n.PushEdges(b, end, from[2], 0xBF); err != nil {
		return err
	}

	if from[1] != 0xBF {
		a2, err := n.PushState()
		if err != nil {
			return err
		}
		b2, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a2, from[0]); err != nil {
			return err
		}
		if err := n.PushEdges(a2, b2, from[1]+1, 0xBF); err != nil {
			return err
		}
		if err := n.PushEdges(b2, end, 0x80, 0xBF); err != nil {
			return err
		}
	}

	a3, err := n.PushState()
	if err != nil {
		return err
	}
	b3, err := n.PushState()
	if err != nil {
		return err
	}
	if err := n.PushEdge(start, a3, to[0]); err != nil {
		return err
	}
	if err := n.PushEdge(a3, b3, to[1]); err != nil {
		return err
	}
	if err := n.PushEdges(b3, end, 0x80, to[2]); err != nil {
		return err
	}

	if to[1] != 0x80 {
		a4, err := n.PushState()
		if err != nil {
			return err
		}
		b4, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a4, to[0]); err != nil {
			return err
		}
		if err := n.PushEdges(a4, b4, 0x80, to[1]-1); err != nil {
			return err
		}
		if err := n.PushEdges(b4, end, 0x80, 0xBF); err != nil {
			return err
		}
	}

	if to[0]-from[0] > 1 {
		a5, err := n.PushState()
		if err != nil {
			return err
		}
		b5, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdges(start, a5, from[0]+1, to[0]-1); err != nil {
			return err
		}
		if err := n.PushEdges(a5, b5, 0x80, 0xBF); err != nil {
			return err
		}
		if err := n.PushEdges(b5, end, 0x80, 0xBF); err != nil {
			return err
		}
	}
	return nil
}

func (n *NFA) between4(from, to [4]byte, start, end StateID) error {
	if from[0] == to[0] {
		a, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a, from[0]); err != nil {
			return err
		}
		return n.between3([3]byte{from[1], from[2], from[3]}, [3]byte{to[1], to[2], to[3]}, a, end)
	}

	a, err := n.PushState()
	if err != nil {
		return err
	}
	b, err := n.PushState()
	if err != nil {
		return err
	}
	c, err := n.PushState()
	if err != nil {
		return err
	}
	if err := n.PushEdge(start, a, from[0]); err != nil {
		return err
	}
	if err := n.PushEdge(a, b, from[1]); err != nil {
		return err
	}
	if err := n.PushEdge(b, c, from[2]); err != nil {
		return err
	}
	if err := n.PushEdges(c, end, from[3], 0xBF); err != nil {
		return err
	}

	if from[2] != 0xBF {
		a2, err := n.PushState()
		if err != nil {
			return err
		}
		b2, err := n.PushState()
		if err != nil {
			return err
		}
		c2, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a2, from[0]); err != nil {
			return err
		}
		if err := n.PushEdge(a2, b2, from[1]); err != nil {
			return err
		}
		if err := n.PushEdges(b2, c2, from[2]+1, 0xBF); err != nil {
			return err
		}
		if err := n.PushEdges(c2, end, 0x80, 0xBF); err != nil {
			return err
		}
	}

	if from[1] != 0xBF {
		a3, err := n.PushState()
		if err != nil {
			return err
		}
		b3, err := n.PushState()
		if err != nil {
			return err
		}
		c3, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a3, from[0]); err != nil {
			return err
		}
		if err := n.PushEdges(a3, b3, from[1]+1, 0xBF); err != nil {
			return err
		}
		if err := n.PushEdges(b3, c3, 0x80, 0xBF); err != nil {
			return err
		}
		if err := n.PushEdges(c3, end, 0x80, 0xBF); err != nil {
			return err
		}
	}

	a4, err := n.PushState()
	if err != nil {
		return err
	}
	b4, err := n.PushState()
	if err != nil {
		return err
	}
	c4, err := n.PushState()
	if err != nil {
		return err
	}
	if err := n.PushEdge(start, a4, to[0]); err != nil {
		return err
	}
	if err := n.PushEdge(a4, b4, to[1]); err != nil {
		return err
	}
	if err := n.PushEdge(b4, c4, to[2]); err != nil {
		return err
	}
	if err := n.PushEdges(c4, end, 0x80, to[3]); err != nil {
		return err
	}

	if to[2] != 0x80 {
		a5, err := n.PushState()
		if err != nil {
			return err
		}
		b5, err := n.PushState()
		if err != nil {
			return err
		}
		c5, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a5, to[0]); err != nil {
			return err
		}
		if err := n.PushEdge(a5, b5, to[1]); err != nil {
			return err
		}
		if err := n.PushEdges(b5, c5, 0x80, to[2]-1); err != nil {
			return err
		}
		if err := n.PushEdges(c5, end, 0x80, 0xBF); err != nil {
			return err
		}
	}

	if to[1] != 0x80 {
		a6, err := n.PushState()
		if err != nil {
			return err
		}
		b6, err := n.PushState()
		if err != nil {
			return err
		}
		c6, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdge(start, a6, to[0]); err != nil {
			return err
		}
		if err := n.PushEdges(a6, b6, 0x80, to[1]-1); err != nil {
			return err
		}
		if err := n.PushEdges(b6, c6, 0x80, 0xBF); err != nil {
			return err
		}
		if err := n.PushEdges(c6, end, 0x80, 0xBF); err != nil {
			return err
		}
	}

	if to[0]-from[0] > 1 {
		a7, err := n.PushState()
		if err != nil {
			return err
		}
		b7, err := n.PushState()
		if err != nil {
			return err
		}
		c7, err := n.PushState()
		if err != nil {
			return err
		}
		if err := n.PushEdges(start, a7, from[0]+1, to[0]-1); err != nil {
			return err
		}
		if err := n.PushEdges(a7, b7, 0x80, 0xBF); err != nil {
			return err
		}
		if err := n.PushEdges(b7, c7, 0x80, 0xBF); err != nil {
			return err
		}
		if err := n.PushEdges(c7, end, 0x80, 0xBF); err != nil {
			return err
		}
	}
	return nil
}

// between adds transitions from start to end recognizing any code point
// in [from, to] (swapped if given in the wrong order).
func (n *NFA) between(from, to rune, start, end StateID) error {
	if from > to {
		from, to = to, from
	}

	fromb := make([]byte, 4)
	tob := make([]byte, 4)
	fromLen := encodeRune(fromb, from)
	toLen := encodeRune(tob, to)

	switch {
	case fromLen == 1 && toLen == 1:
		return n.PushEdges(start, end, fromb[0], tob[0])
	case fromLen == 1 && toLen == 2:
		if err := n.overOrEq(from, start, end); err != nil {
			return err
		}
		return n.belowOrEq(to, start, end)
	case fromLen == 1 && toLen == 3:
		if err := n.overOrEq(from, start, end); err != nil {
			return err
		}
		if err := n.anyCharOfLengthN(2, start, end); err != nil {
			return err
		}
		return n.belowOrEq(to, start, end)
	case fromLen == 1 && toLen == 4:
		if err := n.overOrEq(from, start, end); err != nil {
			return err
		}
		if err := n.anyCharOfLengthN(2, start, end); err != nil {
			return err
		}
		if err := n.anyCharOfLengthN(3, start, end); err != nil {
			return err
		}
		return n.belowOrEq(to, start, end)
	case fromLen == 2 && toLen == 2:
		return n.between2([2]byte{fromb[0], fromb[1]}, [2]byte{tob[0], tob[1]}, start, end)
	case fromLen == 2 && toLen == 3:
		if err := n.overOrEq(from, start, end); err != nil {
			return err
		}
		return n.belowOrEq(to, start, end)
	case fromLen == 2 && toLen == 4:
		if err := n.overOrEq(from, start, end); err != nil {
			return err
		}
		if err := n.anyCharOfLengthN(3, start, end); err != nil {
			return err
		}
		return n.belowOrEq(to, start, end)
	case fromLen == 3 && toLen == 3:
		return n.between3([3]byte{fromb[0], fromb[1], fromb[2]}, [3]byte{tob[0], tob[1], tob[2]}, start, end)
	case fromLen == 3 && toLen == 4:
		if err := n.overOrEq(from, start, end); err != nil {
			return err
		}
		return n.belowOrEq(to, start, end)
	case fromLen == 4 && toLen == 4:
		return n.between4([4]byte(fromb), [4]byte(tob), start, end)
	default:
		panic("between: invalid utf8 length combination")
	}
}

// FromRange builds an NFA recognizing exactly the code points in
// [lo, hi] (a Unicode range endpoint pair, as produced by regexp/syntax
// character classes).
func FromRange(lo, hi rune) (NFA, error) {
	n := Empty()
	start, err := n.PushState()
	if err != nil {
		return NFA{}, err
	}
	end, err := n.PushState()
	if err != nil {
		return NFA{}, err
	}
	n.PushEnd(end)
	if err := n.between(lo, hi, start, end); err != nil {
		return NFA{}, err
	}
	return n, nil
}

// encodeRune writes the UTF-8 encoding of r into buf (which must have
// room for at least 4 bytes) and returns its length.
func encodeRune(buf []byte, r rune) int {
	switch {
	case r < 0x80:
		buf[0] = byte(r)
		return 1
	case r < 0x800:
		buf[0] = 0xC0 | byte(r>>6)
		buf[1] = 0x80 | byte(r&0x3F)
		return 2
	case r < 0x10000:
		buf[0] = 0xE0 | byte(r>>12)
		buf[1] = 0x80 | byte((r>>6)&0x3F)
		buf[2] = 0x80 | byte(r&0x3F)
		return 3
	default:
		buf[0] = 0xF0 | byte(r>>18)
		buf[1] = 0x80 | byte((r>>12)&0x3F)
		buf[2] = 0x80 | byte((r>>6)&0x3F)
		buf[3] = 0x80 | byte(r&0x3F)
		return 4
	}
}

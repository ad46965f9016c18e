package automata

import "testing"

func TestOptional(t *testing.T) {
	n, err := Optional(mustLiteral(t, "foo"))
	if err != nil {
		t.Fatalf("Optional: %v", err)
	}

	for _, in := range []string{"", "foo"} {
		if !n.Find([]byte(in)).Matched {
			t.Errorf("expected %q to match", in)
		}
	}
	for _, in := range []string{"f", "fooo", "bar"} {
		if n.Find([]byte(in)).Matched {
			t.Errorf("expected %q not to match", in)
		}
	}
}

func TestOptionalOfEmptyIsEmpty(t *testing.T) {
	n, err := Optional(Empty())
	if err != nil {
		t.Fatal(err)
	}
	if !n.IsEmpty() {
		t.Error("Optional(Empty()) should stay the identity element")
	}
}

package command

import (
	"errors"
	"testing"
)

func TestParseErrorMessage(t *testing.T) {
	e := &ParseError{Rest: "xyz", Msg: "expected an integer"}
	if got, want := e.Error(), `expected an integer (at "xyz")`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	e2 := &ParseError{Msg: "expected an integer"}
	if got, want := e2.Error(), "expected an integer"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestExecErrorUnwrap(t *testing.T) {
	cause := errors.New("player not found")
	e := &ExecError{Msg: "teleport failed", Err: cause}

	if !errors.Is(e, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
	if got, want := e.Error(), "teleport failed: player not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

package errorutils

import (
	"errors"
	"testing"
)

func TestMustReturnsValue(t *testing.T) {
	if v := Must(42, nil); v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()

	Must(0, errors.New("boom"))
}

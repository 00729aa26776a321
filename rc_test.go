package dioteko

import (
	"strings"
	"testing"
)

func expectPanic(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", contains)
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		}
		if !strings.Contains(msg, contains) {
			t.Errorf("panic %q does not contain %q", msg, contains)
		}
	}()
	fn()
}

func TestRcBlockStartsAtOneOne(t *testing.T) {
	b := newRcBlock()
	if b.strong != 1 || b.weak != 1 || b.freed {
		t.Errorf("new block = %+v, want {1 1 false}", *b)
	}
}

func TestRcBlockLifecycle(t *testing.T) {
	b := newRcBlock()
	b.incStrong()
	b.incWeak()
	if b.strong != 2 || b.weak != 2 {
		t.Fatalf("counts = %d/%d, want 2/2", b.strong, b.weak)
	}
	if got := b.decStrong(); got != 1 {
		t.Errorf("decStrong = %d, want 1", got)
	}
	if got := b.decStrong(); got != 0 {
		t.Errorf("decStrong = %d, want 0", got)
	}
	if b.decWeak() {
		t.Error("block freed while a weak reference remains")
	}
	if !b.decWeak() {
		t.Error("block should be freed when weak reaches zero")
	}
	if !b.freed {
		t.Error("freed flag not set")
	}
}

func TestRcBlockStrongUnderflowPanics(t *testing.T) {
	b := newRcBlock()
	b.decStrong()
	expectPanic(t, "underflow", func() { b.decStrong() })
}

func TestRcBlockWeakZeroWithStrongPanics(t *testing.T) {
	b := newRcBlock()
	expectPanic(t, "invariant", func() { b.decWeak() })
}

func TestRcBlockUseAfterFreePanics(t *testing.T) {
	b := newRcBlock()
	b.decStrong()
	b.decWeak()
	expectPanic(t, "freed block", func() { b.incWeak() })
	expectPanic(t, "freed block", func() { b.incStrong() })
}

package dioteko

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// unloadCounter records unload calls for handles built without an engine.
type unloadCounter struct {
	calls int
	last  RawTexture
}

func (u *unloadCounter) unload(t RawTexture) {
	u.calls++
	u.last = t
}

func newTestTexture(u *unloadCounter) *Texture {
	return newHandle(RawTexture{ID: 7, Width: 16, Height: 8, Mipmaps: 1, Format: PixelFormatR8G8B8A8}, nil, u.unload)
}

func checkCounts(t *testing.T, label string, gotStrong, gotWeak, wantStrong, wantWeak int) {
	t.Helper()
	if gotStrong != wantStrong || gotWeak != wantWeak {
		t.Errorf("%s: counts = %d/%d, want %d/%d", label, gotStrong, gotWeak, wantStrong, wantWeak)
	}
}

// --- Clone / downgrade / upgrade ---

func TestHandleLifecycleScenario(t *testing.T) {
	var u unloadCounter
	a := newTestTexture(&u)
	s, w := a.Counts()
	checkCounts(t, "load", s, w, 1, 1)

	b := a.Clone()
	s, w = b.Counts()
	checkCounts(t, "clone", s, w, 2, 1)

	weak := a.Downgrade()
	s, w = weak.Counts()
	checkCounts(t, "downgrade", s, w, 2, 2)

	if err := a.Release(); err != nil {
		t.Fatalf("release a: %v", err)
	}
	s, w = b.Counts()
	checkCounts(t, "drop a", s, w, 1, 2)
	if u.calls != 0 {
		t.Fatalf("unload fired with a strong handle left")
	}

	if err := b.Release(); err != nil {
		t.Fatalf("release b: %v", err)
	}
	s, w = weak.Counts()
	checkCounts(t, "drop b", s, w, 0, 1)
	if u.calls != 1 || u.last.ID != 7 {
		t.Fatalf("unload calls = %d (last %+v), want exactly one for ID 7", u.calls, u.last)
	}

	if got, ok := weak.Upgrade(); ok || got != nil {
		t.Error("upgrade after last strong release should fail")
	}

	block := weak.res.rc
	weak.Release()
	if block.weak != 0 || !block.freed {
		t.Errorf("block = %+v, want freed with weak 0", *block)
	}
	if u.calls != 1 {
		t.Errorf("unload calls = %d after weak release, want 1", u.calls)
	}
}

func TestUpgradeWhileAlive(t *testing.T) {
	var u unloadCounter
	a := newTestTexture(&u)
	weak := a.Downgrade()
	defer weak.Release()

	up, ok := weak.Upgrade()
	if !ok {
		t.Fatal("upgrade should succeed while a strong handle exists")
	}
	s, w := up.Counts()
	checkCounts(t, "upgraded", s, w, 2, 2)
	if up.Raw() != a.Raw() {
		t.Error("upgraded handle must share the descriptor")
	}

	_ = a.Release()
	if u.calls != 0 {
		t.Error("upgraded handle should keep the resource alive")
	}
	_ = up.Release()
	if u.calls != 1 {
		t.Errorf("unload calls = %d, want 1", u.calls)
	}
}

func TestWeakCloneSharesBlock(t *testing.T) {
	var u unloadCounter
	a := newTestTexture(&u)
	w1 := a.Downgrade()
	w2 := w1.Clone()
	s, w := w2.Counts()
	checkCounts(t, "weak clone", s, w, 1, 3)

	_ = a.Release()
	w1.Release()
	if w2.res.rc.freed {
		t.Error("block freed while a weak handle remains")
	}
	w2.Release()
	if !w2.res.rc.freed {
		t.Error("block should be freed")
	}
}

// --- Release ---

func TestReleaseIsIdempotentPerHandle(t *testing.T) {
	var u unloadCounter
	a := newTestTexture(&u)
	b := a.Clone()

	_ = a.Release()
	_ = a.Release()
	s, _ := b.Counts()
	if s != 1 {
		t.Errorf("double release of one handle dropped strong to %d", s)
	}
	if !a.Released() || b.Released() {
		t.Error("Released flags wrong")
	}
	_ = b.Release()
	if u.calls != 1 {
		t.Errorf("unload calls = %d, want 1", u.calls)
	}
}

func TestReleasedHandlePanicsOnUse(t *testing.T) {
	var u unloadCounter
	a := newTestTexture(&u)
	_ = a.Release()

	expectPanic(t, ErrHandleReleased.Error(), func() { a.Raw() })
	expectPanic(t, ErrHandleReleased.Error(), func() { a.Clone() })
	expectPanic(t, ErrHandleReleased.Error(), func() { a.Downgrade() })
}

func TestReleasedWeakPanicsOnUpgrade(t *testing.T) {
	var u unloadCounter
	a := newTestTexture(&u)
	defer a.Release()
	w := a.Downgrade()
	w.Release()
	w.Release()
	expectPanic(t, ErrHandleReleased.Error(), func() { w.Upgrade() })
}

func TestSizeAccessors(t *testing.T) {
	var u unloadCounter
	a := newTestTexture(&u)
	defer a.Release()
	if a.Width() != 16 || a.Height() != 8 {
		t.Errorf("size = %dx%d, want 16x8", a.Width(), a.Height())
	}
}

func TestReleaseAfterSessionClosedSkipsUnload(t *testing.T) {
	var u unloadCounter
	owner := &Window{state: StateReady}
	a := newHandle(RawTexture{ID: 3, Width: 1, Height: 1}, owner, u.unload)
	if owner.live != 1 {
		t.Fatalf("owner.live = %d, want 1", owner.live)
	}
	owner.state = StateClosed

	err := a.Release()
	if !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("Release error = %v, want ErrSessionClosed", err)
	}
	var pv *ProtocolViolation
	if !errors.As(err, &pv) || pv.Op != "texture.Release" {
		t.Errorf("error = %#v, want *ProtocolViolation for texture.Release", err)
	}
	if u.calls != 0 {
		t.Error("unload must not reach a closed engine context")
	}
	if !a.res.rc.freed {
		t.Error("counter block should still be freed")
	}
}

// --- Operation sequences ---

// TestHandleOperationSequences drives random clone/downgrade/upgrade/release
// orders against a model of the live handles and checks the block after
// every step.
func TestHandleOperationSequences(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		rng := rand.New(rand.NewPCG(seed, 0x5eed))
		var u unloadCounter
		first := newTestTexture(&u)
		block := first.res.rc
		strongs := []*Texture{first}
		var weaks []*WeakTexture

		pick := func(n int) int { return rng.IntN(n) }
		for step := 0; len(strongs)+len(weaks) > 0; step++ {
			op := rng.IntN(6)
			if step >= 40 {
				// Drain: only releases from here on.
				op = 4 + rng.IntN(2)
			}
			switch {
			case op == 0 && len(strongs) > 0:
				strongs = append(strongs, strongs[pick(len(strongs))].Clone())
			case op == 1 && len(strongs) > 0:
				weaks = append(weaks, strongs[pick(len(strongs))].Downgrade())
			case op == 2 && len(weaks) > 0:
				got, ok := weaks[pick(len(weaks))].Upgrade()
				if ok != (len(strongs) > 0) || (got != nil) != ok {
					t.Fatalf("seed %d step %d: upgrade ok=%v with %d strong handles", seed, step, ok, len(strongs))
				}
				if ok {
					strongs = append(strongs, got)
				}
			case op == 3 && len(weaks) > 0:
				weaks = append(weaks, weaks[pick(len(weaks))].Clone())
			case op == 4 && len(strongs) > 0:
				i := pick(len(strongs))
				if err := strongs[i].Release(); err != nil {
					t.Fatalf("seed %d step %d: release: %v", seed, step, err)
				}
				strongs = append(strongs[:i], strongs[i+1:]...)
			case op == 5 && len(weaks) > 0:
				i := pick(len(weaks))
				weaks[i].Release()
				weaks = append(weaks[:i], weaks[i+1:]...)
			default:
				continue
			}

			wantWeak := len(weaks)
			if len(strongs) > 0 {
				wantWeak++
			}
			if block.strong != len(strongs) || block.weak != wantWeak {
				t.Fatalf("seed %d step %d: block = %d/%d, want %d/%d",
					seed, step, block.strong, block.weak, len(strongs), wantWeak)
			}
			wantUnloads := 0
			if len(strongs) == 0 {
				wantUnloads = 1
			}
			if u.calls != wantUnloads {
				t.Fatalf("seed %d step %d: unload calls = %d, want %d", seed, step, u.calls, wantUnloads)
			}
			if block.freed != (block.weak == 0) {
				t.Fatalf("seed %d step %d: freed = %v with weak %d", seed, step, block.freed, block.weak)
			}
		}
		if u.calls != 1 || !block.freed {
			t.Errorf("seed %d: end state unloads %d, freed %v", seed, u.calls, block.freed)
		}
	}
}

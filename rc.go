package dioteko

import "fmt"

// rcBlock is the strong/weak counter pair shared by every handle to one
// engine resource. While strong > 0 the resource is alive and weak >= 1,
// because the strong handles together hold one implicit weak reference.
//
// The counters are plain ints: handles are confined to the goroutine that
// owns the window session.
type rcBlock struct {
	strong int
	weak   int
	freed  bool
}

func newRcBlock() *rcBlock {
	return &rcBlock{strong: 1, weak: 1}
}

func (b *rcBlock) incStrong() {
	b.mustLive("incStrong")
	b.strong++
}

// decStrong decrements strong and returns the new value.
func (b *rcBlock) decStrong() int {
	b.mustLive("decStrong")
	if b.strong == 0 {
		panic(fmt.Sprintf("dioteko: rc underflow: strong already zero (weak=%d)", b.weak))
	}
	b.strong--
	return b.strong
}

func (b *rcBlock) incWeak() {
	b.mustLive("incWeak")
	b.weak++
}

// decWeak decrements weak, frees the block when it reaches zero, and
// reports whether the block was freed.
func (b *rcBlock) decWeak() bool {
	b.mustLive("decWeak")
	if b.weak == 0 {
		panic(fmt.Sprintf("dioteko: rc underflow: weak already zero (strong=%d)", b.strong))
	}
	b.weak--
	if b.weak > 0 {
		return false
	}
	if b.strong != 0 {
		panic(fmt.Sprintf("dioteko: rc invariant broken: weak reached zero with strong=%d", b.strong))
	}
	b.freed = true
	return true
}

func (b *rcBlock) mustLive(op string) {
	if b.freed {
		panic("dioteko: rc " + op + " on freed block")
	}
}

// noCopy marks a struct that must not be copied after first use.
// go vet's copylocks check reports violations.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

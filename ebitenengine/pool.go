package ebitenengine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// targetPool manages reusable offscreen ebiten.Images keyed by exact
// dimensions. Unloaded render textures go back to the pool instead of being
// deallocated; the pool is emptied when the window closes.
type targetPool struct {
	buckets map[uint64][]*ebiten.Image
	size    int
}

// poolKey packs width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// acquire returns a cleared offscreen image of exactly (w, h) pixels.
func (p *targetPool) acquire(w, h int) *ebiten.Image {
	key := poolKey(w, h)
	if stack := p.buckets[key]; len(stack) > 0 {
		img := stack[len(stack)-1]
		p.buckets[key] = stack[:len(stack)-1]
		p.size--
		img.Clear()
		return img
	}
	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, w, h),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// release returns an image to the pool for reuse. The image is cleared on
// the next acquire, not here.
func (p *targetPool) release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())
	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
	p.size++
}

// len returns the number of idle images held.
func (p *targetPool) len() int {
	return p.size
}

// dispose deallocates every pooled image.
func (p *targetPool) dispose() {
	for key, stack := range p.buckets {
		for _, img := range stack {
			img.Deallocate()
		}
		delete(p.buckets, key)
	}
	p.size = 0
}

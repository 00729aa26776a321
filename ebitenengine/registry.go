package ebitenengine

// registry maps descriptor IDs to backend objects. Descriptors handed to
// dioteko carry only the ID; the object stays here until unloaded. IDs come
// from the engine-wide counter so no two live objects share one.
//
// Only the application goroutine touches a registry.
type registry[V any] struct {
	items map[uint32]V
}

func newRegistry[V any]() registry[V] {
	return registry[V]{items: make(map[uint32]V)}
}

func (r *registry[V]) register(id uint32, v V) {
	r.items[id] = v
}

// lookup returns the object for id. ok is false for zero or unknown IDs.
func (r *registry[V]) lookup(id uint32) (v V, ok bool) {
	v, ok = r.items[id]
	return v, ok
}

// unregister removes id and returns what it held.
func (r *registry[V]) unregister(id uint32) (v V, ok bool) {
	v, ok = r.items[id]
	if ok {
		delete(r.items, id)
	}
	return v, ok
}

func (r *registry[V]) count() int {
	return len(r.items)
}

// drain removes every entry, calling fn on each.
func (r *registry[V]) drain(fn func(uint32, V)) {
	for id, v := range r.items {
		fn(id, v)
	}
	clear(r.items)
}

// idSource hands out descriptor IDs. Zero is never issued because the
// dioteko probes treat it as a failed load.
type idSource struct {
	next uint32
}

func (s *idSource) alloc() uint32 {
	s.next++
	if s.next == 0 {
		s.next = 1
	}
	return s.next
}

package activity

// Ring is a bounded, time-ordered buffer of recent samples. Pushing onto a
// full ring drops the oldest sample.
type Ring[T any] struct {
	items []T
	size  int
}

func NewRing[T any](size int) *Ring[T] {
	return &Ring[T]{
		items: make([]T, 0, size),
		size:  size,
	}
}

func (r *Ring[T]) Push(v T) {
	if len(r.items) == r.size {
		copy(r.items, r.items[1:])
		r.items = r.items[:len(r.items)-1]
	}
	r.items = append(r.items, v)
}

// Items returns the window oldest-first. The returned slice is a copy.
func (r *Ring[T]) Items() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Ring[T]) Len() int {
	return len(r.items)
}

func (r *Ring[T]) Full() bool {
	return len(r.items) == r.size
}

func (r *Ring[T]) Reset() {
	r.items = r.items[:0]
}

package survival

// Handle identifies one activation of a pool slot.
// A handle goes stale once its slot is released, even if the slot is reused.
type Handle struct {
	index int
	gen   uint32
}

type slot[T any] struct {
	value  T
	active bool
	gen    uint32
}

// Pool is a fixed-capacity arena of reusable entities.
// Slots are activated and deactivated instead of allocated and freed.
type Pool[T any] struct {
	slots  []slot[T]
	active int
}

// NewPool creates a pool with the given capacity.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{slots: make([]slot[T], capacity)}
}

// Cap returns the pool capacity.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Active returns the number of active entities.
func (p *Pool[T]) Active() int {
	return p.active
}

// Full reports whether every slot is active.
func (p *Pool[T]) Full() bool {
	return p.active == len(p.slots)
}

// Acquire activates the first free slot with v.
// Returns false without side effects when the pool is exhausted.
func (p *Pool[T]) Acquire(v T) (Handle, bool) {
	for i := range p.slots {
		s := &p.slots[i]
		if s.active {
			continue
		}
		s.gen++
		s.value = v
		s.active = true
		p.active++
		return Handle{index: i, gen: s.gen}, true
	}
	return Handle{}, false
}

// Release deactivates the entity behind h.
// Releasing a stale or already-released handle is a no-op and returns false.
func (p *Pool[T]) Release(h Handle) bool {
	s := p.lookup(h)
	if s == nil {
		return false
	}
	var zero T
	s.value = zero
	s.active = false
	p.active--
	return true
}

// Get returns the entity behind h if it is still active.
func (p *Pool[T]) Get(h Handle) (*T, bool) {
	s := p.lookup(h)
	if s == nil {
		return nil, false
	}
	return &s.value, true
}

func (p *Pool[T]) lookup(h Handle) *slot[T] {
	if h.index < 0 || h.index >= len(p.slots) {
		return nil
	}
	s := &p.slots[h.index]
	if !s.active || s.gen != h.gen {
		return nil
	}
	return s
}

// Each calls fn for every active entity in slot order.
// fn may release the entity it is given.
func (p *Pool[T]) Each(fn func(h Handle, v *T)) {
	for i := range p.slots {
		s := &p.slots[i]
		if !s.active {
			continue
		}
		fn(Handle{index: i, gen: s.gen}, &s.value)
	}
}

// Reset deactivates every slot and invalidates all outstanding handles.
func (p *Pool[T]) Reset() {
	var zero T
	for i := range p.slots {
		s := &p.slots[i]
		if s.active {
			s.gen++
		}
		s.value = zero
		s.active = false
	}
	p.active = 0
}

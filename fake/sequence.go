package fake

import (
	"iter"
	"sync"
)

// Sequence draws successive values from a lazily evaluated source.
// When the source is exhausted it is rebuilt from scratch and drawing
// continues, so a Sequence never runs dry. Finite sources therefore repeat
// their values eventually; treat uniqueness as a convenience, not a
// guarantee, and use an infinite source like Count when collisions matter.
type Sequence[T any] struct {
	mu sync.Mutex

	source func() iter.Seq[T]
	next   func() (T, bool)
	stop   func()
}

// NewSequence returns a Sequence drawing from source.
// The source function is called again each time the sequence is exhausted.
func NewSequence[T any](source func() iter.Seq[T]) *Sequence[T] {
	return &Sequence[T]{
		mu:     sync.Mutex{},
		source: source,
		next:   nil,
		stop:   nil,
	}
}

// Next returns the next value and advances the cursor.
// It panics if the source yields no values at all, as such a sequence can
// never satisfy a draw.
func (s *Sequence[T]) Next() T { //nolint:ireturn // generic value, not an interface
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next == nil {
		s.next, s.stop = iter.Pull(s.source())
	}

	v, ok := s.next()
	if !ok {
		s.stop()
		s.next, s.stop = iter.Pull(s.source())

		v, ok = s.next()
		if !ok {
			panic("fake: sequence source is empty")
		}
	}

	return v
}

// Count returns an infinite source of integers beginning at start.
func Count(start int64) func() iter.Seq[int64] {
	return func() iter.Seq[int64] {
		return func(yield func(int64) bool) {
			for i := start; ; i++ {
				if !yield(i) {
					return
				}
			}
		}
	}
}

// Product returns a source ranging over the cartesian product of the given
// word lists, in order, one combination per draw. The product of finite
// lists is finite, so sequences built on it restart once every combination
// was handed out.
func Product(lists ...[]string) func() iter.Seq[[]string] {
	return func() iter.Seq[[]string] {
		return func(yield func([]string) bool) {
			combination := make([]string, len(lists))
			yieldProduct(lists, combination, 0, yield)
		}
	}
}

func yieldProduct(lists [][]string, combination []string, depth int, yield func([]string) bool) bool {
	if depth == len(lists) {
		out := make([]string, len(combination))
		copy(out, combination)

		return yield(out)
	}

	for _, w := range lists[depth] {
		combination[depth] = w
		if !yieldProduct(lists, combination, depth+1, yield) {
			return false
		}
	}

	return true
}

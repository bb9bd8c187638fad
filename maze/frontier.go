package maze

import "container/heap"

// frontier is a binary min-heap ordered by an explicit comparator.
// It backs the Prim edge queue and the solver open sets; stale entries are
// left in place and skipped by the caller when popped (lazy decrease-key).
type frontier[T any] struct {
	items []T
	less  func(a, b T) bool
}

// newFrontier returns an empty frontier ordered by less.
func newFrontier[T any](less func(a, b T) bool) *frontier[T] {
	f := &frontier[T]{less: less}
	heap.Init(f)
	return f
}

// push adds v to the frontier.
func (f *frontier[T]) push(v T) {
	heap.Push(f, v)
}

// pop removes and returns the smallest item. The frontier must not be empty.
func (f *frontier[T]) pop() T {
	return heap.Pop(f).(T)
}

// empty reports whether no items are left.
func (f *frontier[T]) empty() bool {
	return len(f.items) == 0
}

// Len, Less, Swap, Push and Pop implement heap.Interface.

func (f *frontier[T]) Len() int { return len(f.items) }

func (f *frontier[T]) Less(i, j int) bool { return f.less(f.items[i], f.items[j]) }

func (f *frontier[T]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier[T]) Push(x any) { f.items = append(f.items, x.(T)) }

func (f *frontier[T]) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero
	f.items = old[:n-1]
	return item
}

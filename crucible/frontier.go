package crucible

// entry is one frontier candidate: a state at cell index pos, entered on
// axis, with accumulated cost.
type entry struct {
	cost int64
	axis Axis
	pos  int // row-major cell index
}

// frontier is a min-heap of entries ordered by cost ascending.
// We use the lazy-decrease-key approach: an improved state is pushed again
// and the outdated entry is skipped when popped (cost > dist[state]).
type frontier []entry

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by cost; ties are arbitrary.
func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap. Called by heap.Push; x must be an entry.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

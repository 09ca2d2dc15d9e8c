package search

import "container/heap"

// frontier orders unexpanded states. Entries are arena handles; the
// strategy decides which one comes out next.
type frontier interface {
	push(h int32, priority int)
	// pop removes the next state per strategy order. ok is false when the
	// frontier is empty.
	pop() (h int32, ok bool)
}

// fifoFrontier pops in insertion order (breadth-first).
type fifoFrontier struct {
	q    []int32
	head int
}

func (f *fifoFrontier) push(h int32, _ int) {
	f.q = append(f.q, h)
}

func (f *fifoFrontier) pop() (int32, bool) {
	if f.head >= len(f.q) {
		return 0, false
	}
	h := f.q[f.head]
	f.head++
	return h, true
}

// lifoFrontier pops the most recently inserted state (depth-first).
type lifoFrontier struct {
	s []int32
}

func (f *lifoFrontier) push(h int32, _ int) {
	f.s = append(f.s, h)
}

func (f *lifoFrontier) pop() (int32, bool) {
	if len(f.s) == 0 {
		return 0, false
	}
	h := f.s[len(f.s)-1]
	f.s = f.s[:len(f.s)-1]
	return h, true
}

// heapFrontier pops the minimum-priority state. Equal priorities are broken
// by insertion order, so the cost-aware strategies are deterministic for a
// fixed snapshot.
type heapFrontier struct {
	items heapItems
	seq   int
}

type heapItem struct {
	handle   int32
	priority int
	seq      int
}

type heapItems []heapItem

func (h heapItems) Len() int { return len(h) }
func (h heapItems) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h heapItems) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *heapItems) Push(x any)   { *h = append(*h, x.(heapItem)) }
func (h *heapItems) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func (f *heapFrontier) push(h int32, priority int) {
	heap.Push(&f.items, heapItem{handle: h, priority: priority, seq: f.seq})
	f.seq++
}

func (f *heapFrontier) pop() (int32, bool) {
	if f.items.Len() == 0 {
		return 0, false
	}
	item := heap.Pop(&f.items).(heapItem)
	return item.handle, true
}

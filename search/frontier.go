package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// node is a frontier entry: a cell plus the accumulated cost that
// reached it. FIFO and LIFO frontiers carry g for depth accounting only.
type node struct {
	at grid.Coordinate
	g  int
}

// pkey orders priority frontiers: primary ascending, then secondary
// ascending. A* files entries under {f, g} so equal-f ties prefer the
// entry already closer to done; Dijkstra and Greedy leave secondary 0.
type pkey struct {
	primary, secondary int
}

// less reports whether k orders strictly before o.
func (k pkey) less(o pkey) bool {
	if k.primary != o.primary {
		return k.primary < o.primary
	}

	return k.secondary < o.secondary
}

// frontier is the per-algorithm work set: a FIFO queue, a LIFO stack, or
// a min-heap over pkey. It owns nothing beyond cells and their keys.
type frontier interface {
	push(n node, k pkey)
	pop() node
	empty() bool
}

// fifoFrontier is a FIFO queue (BFS, Bidirectional). Keys are ignored.
type fifoFrontier struct {
	items []node
}

func newFIFO() *fifoFrontier { return &fifoFrontier{} }

func (f *fifoFrontier) push(n node, _ pkey) { f.items = append(f.items, n) }

func (f *fifoFrontier) pop() node {
	n := f.items[0]
	f.items = f.items[1:]

	return n
}

func (f *fifoFrontier) empty() bool { return len(f.items) == 0 }

// lifoFrontier is a LIFO stack (DFS). Keys are ignored.
type lifoFrontier struct {
	items []node
}

func newLIFO() *lifoFrontier { return &lifoFrontier{} }

func (f *lifoFrontier) push(n node, _ pkey) { f.items = append(f.items, n) }

func (f *lifoFrontier) pop() node {
	last := len(f.items) - 1
	n := f.items[last]
	f.items = f.items[:last]

	return n
}

func (f *lifoFrontier) empty() bool { return len(f.items) == 0 }

// heapFrontier is a binary min-heap over pkey (Dijkstra, A*, Greedy,
// JumpPoint). It follows the lazy-decrease-key pattern: improved costs
// push duplicate entries and stale ones are skipped at pop time by the
// walker's visited check.
type heapFrontier struct {
	items heapItems
}

type heapItem struct {
	n node
	k pkey
}

type heapItems []heapItem

func (h heapItems) Len() int            { return len(h) }
func (h heapItems) Less(i, j int) bool  { return h[i].k.less(h[j].k) }
func (h heapItems) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *heapItems) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *heapItems) Pop() interface{} {
	old := *h
	last := len(old) - 1
	it := old[last]
	*h = old[:last]

	return it
}

func newHeap() *heapFrontier {
	f := &heapFrontier{items: make(heapItems, 0)}
	heap.Init(&f.items)

	return f
}

func (f *heapFrontier) push(n node, k pkey) {
	heap.Push(&f.items, heapItem{n: n, k: k})
}

func (f *heapFrontier) pop() node {
	return heap.Pop(&f.items).(heapItem).n
}

func (f *heapFrontier) empty() bool { return f.items.Len() == 0 }

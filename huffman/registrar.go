package huffman

import (
	"container/heap"
	"fmt"
	"math"
	"slices"
)

// Registrar collects symbol frequencies for building a Tree.
//
// The zero value is ready to use. A Registrar is consumed by Solve; every
// method called afterwards fails with ErrConsumed.
type Registrar struct {
	// Limit is the maximum number of symbols that may be pushed.
	// Zero (or anything above MaxSymbols) means MaxSymbols; set it to
	// 256 for a byte alphabet.
	Limit int

	nodes  []node
	heap   freqHeap
	solved bool
}

// Push registers a new symbol with the given frequency and returns its id.
// Ids start at 0 and increase by one with each call.
func (r *Registrar) Push(freq uint32) (Symbol, error) {
	if r.solved {
		return 0, ErrConsumed
	}
	if limit := r.limit(); len(r.nodes) >= limit {
		return 0, fmt.Errorf("%w: limit is %d", ErrTooManySymbols, limit)
	}

	index := int32(len(r.nodes))
	symbol := Symbol(index)
	r.nodes = append(r.nodes, node{
		parent:   noNode,
		children: [2]int32{noNode, noNode},
		symbol:   symbol,
		leaf:     true,
	})
	heap.Push(&r.heap, heapEntry{freq: freq, index: index})
	return symbol, nil
}

// Len returns the number of symbols pushed so far.
func (r *Registrar) Len() int {
	return len(r.nodes)
}

func (r *Registrar) limit() int {
	if r.Limit <= 0 || r.Limit > MaxSymbols {
		return MaxSymbols
	}
	return r.Limit
}

// Solve builds the Huffman tree for the registered frequencies.
//
// The two least frequent entries are merged into a new internal node whose
// first child is the entry popped first. Merged frequencies saturate at
// math.MaxUint32. With no symbols the tree is empty; with one symbol the
// tree is that single leaf and its code is empty.
func (r *Registrar) Solve() (*Tree, error) {
	if r.solved {
		return nil, ErrConsumed
	}
	r.solved = true

	nodes, h := r.nodes, r.heap
	r.nodes, r.heap = nil, freqHeap{}

	numLeaves := len(nodes)
	if h.Len() == 0 {
		return newTree(noNode, nodes, numLeaves), nil
	}

	nodes = slices.Grow(nodes, numLeaves-1)
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapEntry)
		b := heap.Pop(&h).(heapEntry)

		parent := int32(len(nodes))
		nodes[a.index].parent = parent
		nodes[b.index].parent = parent
		nodes = append(nodes, node{
			parent:   noNode,
			children: [2]int32{a.index, b.index},
		})
		heap.Push(&h, heapEntry{freq: saturatingAdd(a.freq, b.freq), index: parent})
	}

	root := heap.Pop(&h).(heapEntry)
	return newTree(root.index, nodes, numLeaves), nil
}

func saturatingAdd(a, b uint32) uint32 {
	sum := a + b
	if sum < a {
		return math.MaxUint32
	}
	return sum
}

// type heapEntry + type freqHeap {{{

type heapEntry struct {
	freq  uint32
	index int32
}

// freqHeap orders entries by frequency, then by arena index. Leaves are
// indexed in push order and internal nodes after them in creation order,
// so the same pushes always produce the same tree.
type freqHeap struct {
	list []heapEntry
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.index < b.index
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapEntry))
}

func (h *freqHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}

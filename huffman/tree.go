package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// noNode is the root of an empty tree and the child index of a leaf.
const noNode = -1

type node struct {
	// parent is informational; a node is owned by the arena, not by
	// its parent.
	parent   int32
	children [2]int32
	symbol   Symbol
	leaf     bool
}

// Tree is a solved Huffman tree together with the code for every symbol.
// It is never modified after Solve returns it.
type Tree struct {
	root  int32
	nodes []node
	codes []Code
}

// newTree computes the code table with an explicit stack, so that a
// degenerate tree of depth n-1 does not recurse n-1 levels deep. The first
// child of a node extends the code with a 0 bit and the second with a 1 bit,
// which lets the decoder use each bit as a child index.
func newTree(root int32, nodes []node, numLeaves int) *Tree {
	assert.Assertf(numLeaves <= len(nodes), "numLeaves %d > len(nodes) %d", numLeaves, len(nodes))

	codes := make([]Code, numLeaves)
	for i := range codes {
		codes[i] = unsetCode
	}

	type frame struct {
		index int32
		code  Code
	}

	if root != noNode {
		stack := []frame{{index: root}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			n := &nodes[top.index]
			if n.leaf {
				codes[n.symbol] = top.code
				continue
			}
			stack = append(stack,
				frame{n.children[0], top.code.Append(false)},
				frame{n.children[1], top.code.Append(true)},
			)
		}
	}

	for symbol, hc := range codes {
		assert.Assertf(hc.size >= 0, "no code assigned to symbol %d", symbol)
	}

	return &Tree{root: root, nodes: nodes, codes: codes}
}

// Len returns the number of symbols in the tree.
func (t *Tree) Len() int {
	return len(t.codes)
}

// Code returns the code for symbol.
func (t *Tree) Code(symbol Symbol) (Code, error) {
	if int(symbol) >= len(t.codes) {
		return Code{}, fmt.Errorf("%w: %d, tree has %d symbols", ErrSymbolRange, symbol, len(t.codes))
	}
	return t.codes[symbol], nil
}

// Codes returns a copy of the code table, indexed by symbol.
func (t *Tree) Codes() []Code {
	out := make([]Code, len(t.codes))
	copy(out, t.codes)
	return out
}

// CodeLengths returns the bit length of every symbol's code.
func (t *Tree) CodeLengths() []int {
	out := make([]int, len(t.codes))
	for symbol, hc := range t.codes {
		out[symbol] = hc.Len()
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(t.codes))
	for symbol, hc := range t.codes {
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

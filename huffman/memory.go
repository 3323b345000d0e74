package huffman

import "unsafe"

// SoftSymbolLimit is the practical ceiling on alphabet size. Nothing
// enforces it, but past this point a skewed frequency distribution makes
// the code table grow quadratically: codes of length up to n-1 are stored
// per symbol, and EstimateMemory for 16384 symbols is already tens of
// megabytes.
const SoftSymbolLimit = 1 << 14

// EstimateMemory returns the worst-case number of bytes needed to solve a
// Registrar with the given number of symbols: the node arena, the heap, the
// traversal stack and the code table. The worst case is a fully skewed tree,
// where the codes have lengths 1, 2, …, n-1, n-1. It allocates nothing.
func EstimateMemory(symbols int) int {
	if symbols <= 0 {
		return 0
	}

	var (
		nodeSize  = int(unsafe.Sizeof(node{}))
		entrySize = int(unsafe.Sizeof(heapEntry{}))
		codeSize  = int(unsafe.Sizeof(Code{}))
		frameSize = int(unsafe.Sizeof(struct {
			index int32
			code  Code
		}{}))
	)

	nodes := 2*symbols - 1
	maxLen := symbols - 1

	// Each code of length l owns l/64+1 words.
	var codeWords int
	for l := 1; l < symbols; l++ {
		codeWords += l>>6 + 1
	}
	if symbols > 1 {
		codeWords += maxLen>>6 + 1
	}

	// The stack never holds more frames than the tree is deep, plus one.
	stack := symbols * (frameSize + (maxLen>>6+1)*8)

	return nodes*nodeSize +
		symbols*entrySize +
		symbols*codeSize + codeWords*8 +
		stack
}

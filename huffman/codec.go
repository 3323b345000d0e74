package huffman

import (
	"fmt"
	"iter"
)

// BitWriter is the destination for encoded bits. *bitbuf.Writer implements
// it.
type BitWriter interface {
	WriteBit(bit bool) error
}

// Encode returns the code of each symbol in symbols. The sequence is lazy;
// ranging over it again encodes symbols again. If a symbol has no code, the
// sequence yields an error wrapping ErrSymbolRange and stops.
func (t *Tree) Encode(symbols iter.Seq[Symbol]) iter.Seq2[Code, error] {
	return func(yield func(Code, error) bool) {
		for symbol := range symbols {
			hc, err := t.Code(symbol)
			if !yield(hc, err) || err != nil {
				return
			}
		}
	}
}

// Decode returns the symbols encoded in bits.
//
// Decoding starts at the root and follows one child per bit; reaching a leaf
// yields its symbol and returns to the root. If bits runs out at the root,
// the sequence ends. If it runs out anywhere else, the sequence yields an
// error wrapping ErrTruncated.
//
// Trees with fewer than two symbols have no non-empty codes, so for them
// any bit at all is reported as ErrUnexpectedBits.
func (t *Tree) Decode(bits iter.Seq[bool]) iter.Seq2[Symbol, error] {
	return func(yield func(Symbol, error) bool) {
		pos := t.root
		var depth, consumed int
		for bit := range bits {
			consumed++
			if pos == noNode || t.nodes[pos].leaf {
				yield(0, fmt.Errorf("%w: bit %d", ErrUnexpectedBits, consumed-1))
				return
			}

			child := 0
			if bit {
				child = 1
			}
			pos = t.nodes[pos].children[child]
			depth++

			if n := &t.nodes[pos]; n.leaf {
				if !yield(n.symbol, nil) {
					return
				}
				pos = t.root
				depth = 0
			}
		}
		if depth != 0 {
			yield(0, fmt.Errorf("%w: %d bits into a code after %d bits", ErrTruncated, depth, consumed))
		}
	}
}

// WriteSymbols encodes symbols and writes the codes to w. It returns the
// number of bits written, which callers need in order to tell data from the
// padding added by a final flush.
func (t *Tree) WriteSymbols(w BitWriter, symbols iter.Seq[Symbol]) (int, error) {
	var n int
	for hc, err := range t.Encode(symbols) {
		if err != nil {
			return n, err
		}
		if err := hc.Write(w); err != nil {
			return n, err
		}
		n += hc.Len()
	}
	return n, nil
}

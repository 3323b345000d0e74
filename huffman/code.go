package huffman

import (
	"iter"
	"strconv"
	"strings"
)

// Code is a sequence of bits. Codes are immutable: Append returns a new Code
// and never modifies the receiver's storage.
type Code struct {
	size int

	// words holds the bits, first bit in the most significant position
	// of words[0]. Bits past size are always zero.
	words []uint64
}

// unsetCode marks a table slot that has not been assigned yet.
var unsetCode = Code{size: -1}

// MakeCode is a convenience function that constructs a Code from bits.
func MakeCode(bits ...bool) Code {
	var c Code
	for _, bit := range bits {
		c = c.Append(bit)
	}
	return c
}

// Len returns the number of bits in the code.
func (c Code) Len() int {
	if c.size < 0 {
		return 0
	}
	return c.size
}

// Bit returns the i'th bit.
func (c Code) Bit(i int) bool {
	return c.words[i>>6]>>(63-i&63)&1 != 0
}

// Append returns a copy of c extended by one bit.
func (c Code) Append(bit bool) Code {
	n := c.Len()
	words := make([]uint64, n>>6+1)
	copy(words, c.words)
	if bit {
		words[n>>6] |= 1 << (63 - n&63)
	}
	return Code{size: n + 1, words: words}
}

// Bits returns the bits of c in order.
func (c Code) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < c.size; i++ {
			if !yield(c.Bit(i)) {
				return
			}
		}
	}
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.Len() > c.Len() {
		return false
	}
	full := p.Len() >> 6
	for i := 0; i < full; i++ {
		if c.words[i] != p.words[i] {
			return false
		}
	}
	rest := uint(p.Len() & 63)
	if rest == 0 {
		return true
	}
	mask := ^uint64(0) << (64 - rest)
	return c.words[full]&mask == p.words[full]
}

// Equal reports whether c and o hold the same bits.
func (c Code) Equal(o Code) bool {
	return c.Len() == o.Len() && c.HasPrefix(o)
}

// Write sends the bits of c to w.
func (c Code) Write(w BitWriter) error {
	for i := 0; i < c.size; i++ {
		if err := w.WriteBit(c.Bit(i)); err != nil {
			return err
		}
	}
	return nil
}

// String returns the bits of c as a quoted string of 0s and 1s.
func (c Code) String() string {
	var sb strings.Builder
	for i := 0; i < c.size; i++ {
		if c.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

package lzio

import (
	"encoding/binary"
	"math/bits"
)

// FindLongest returns the longest prefix of lookahead that also occurs as a
// prefix of a suffix of window. Offset counts back from the end of window,
// so the match is window[len(window)-Offset:]. Offsets are tried from 1
// upwards and only a strictly longer match replaces the current best, so the
// smallest offset wins ties. A match never extends past the end of window.
//
// It takes O(len(window) × len(lookahead)) time.
func FindLongest(window, lookahead []byte) Backref {
	var best Backref
	n := len(window)
	for offset := 1; offset <= n && best.Length < len(lookahead); offset++ {
		if length := matchLen(window[n-offset:], lookahead); length > best.Length {
			best = Backref{Offset: offset, Length: length}
		}
	}
	return best
}

// matchLen returns the length of the common prefix of a and b.
func matchLen(a, b []byte) int {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]

	// Compare 8 bytes at a time. When they differ, the XOR of the two
	// little-endian words has its lowest set bit in the first differing
	// byte.
	i := 0
	for ; i+8 <= n; i += 8 {
		if x := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:]); x != 0 {
			return i + bits.TrailingZeros64(x)>>3
		}
	}
	for ; i < n && a[i] == b[i]; i++ {
	}
	return i
}

// Naive is a Searcher that calls FindLongest at every position. It is the
// reference the faster searchers are checked against.
type Naive struct {
	// WindowSize is the maximum offset of a backreference.
	// The default is 32 KiB.
	WindowSize int
}

func (Naive) Reset() {}

func (s Naive) Search(src []byte, pos int) Backref {
	start := max(0, pos-windowSize(s.WindowSize))
	return FindLongest(src[start:pos], src[pos:])
}

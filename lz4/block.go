// Package lz4 writes LZ77 token streams in the LZ4 block and frame formats.
package lz4

import (
	"encoding/binary"

	"github.com/lzio/lzio"
)

// A BlockEncoder implements the lzio.Encoder interface, writing in the LZ4
// block format. Matches must be at least 4 bytes long and reach back no more
// than 65535 bytes.
type BlockEncoder struct{}

func (BlockEncoder) Reset() {}

func (BlockEncoder) Encode(dst []byte, src []byte, matches []lzio.Match, lastBlock bool) []byte {
	matches = trimTail(src, matches)

	pos := 0
	for _, m := range matches {
		token := byte(min(m.Unmatched, 15)<<4) | byte(min(m.Length-4, 15))
		dst = append(dst, token)
		if m.Unmatched >= 15 {
			dst = appendInt(dst, m.Unmatched-15)
		}
		dst = append(dst, src[pos:pos+m.Unmatched]...)

		dst = binary.LittleEndian.AppendUint16(dst, uint16(m.Distance))
		if m.Length-4 >= 15 {
			dst = appendInt(dst, m.Length-19)
		}

		pos += m.Unmatched + m.Length
	}

	// Write the final, literals-only sequence.
	literals := len(src) - pos
	dst = append(dst, byte(min(literals, 15)<<4))
	if literals >= 15 {
		dst = appendInt(dst, literals-15)
	}
	return append(dst, src[pos:]...)
}

// trimTail drops matches from the end until the block ends with at least 5
// literal bytes and the last match starts at least 12 bytes before the end
// of the block, as the format requires.
func trimTail(src []byte, matches []lzio.Match) []lzio.Match {
	end := 0
	for _, m := range matches {
		end += m.Unmatched + m.Length
	}

	n := len(matches)
	for n > 0 {
		m := matches[n-1]
		tail := len(src) - end
		if m.Length > 0 && tail >= 5 && tail+m.Length >= 12 {
			break
		}
		end -= m.Unmatched + m.Length
		n--
	}
	return matches[:n]
}

// appendInt appends n to dst in LZ4's variable-length integer format.
func appendInt(dst []byte, n int) []byte {
	for n >= 255 {
		dst = append(dst, 255)
		n -= 255
	}
	return append(dst, byte(n))
}

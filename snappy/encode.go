// Package snappy writes LZ77 token streams in the Snappy block and framing
// formats.
package snappy

import (
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/lzio/lzio"
)

// maxBlockSize is the largest amount of uncompressed data in one frame
// chunk.
const maxBlockSize = 65536

// An Encoder implements the lzio.Encoder interface, writing in the Snappy
// framing format. Every block is a separate chunk, so blocks must not be
// longer than 64 KiB.
type Encoder struct {
	wroteHeader bool
}

var magicChunk = []byte("\xff\x06\x00\x00sNaPpY")

var crcTable = crc32.MakeTable(crc32.Castagnoli)

// crc implements the checksum specified in section 3 of
// https://github.com/google/snappy/blob/master/framing_format.txt
func crc(b []byte) uint32 {
	c := crc32.Update(0, crcTable, b)
	return (c>>15 | c<<17) + 0xa282ead8
}

func (e *Encoder) Reset() {
	e.wroteHeader = false
}

func (e *Encoder) Encode(dst []byte, src []byte, matches []lzio.Match, lastBlock bool) []byte {
	if len(src) > maxBlockSize {
		panic("snappy: block too large")
	}

	if !e.wroteHeader {
		dst = append(dst, magicChunk...)
		e.wroteHeader = true
	}

	start := len(dst)
	dst = append(dst,
		0,       // chunk type: compressed data
		0, 0, 0, // placeholder for chunk length
	)
	dst = binary.LittleEndian.AppendUint32(dst, crc(src))
	dataStart := len(dst)

	dst = AppendBlock(dst, src, matches)

	dataLen := len(dst) - dataStart
	if dataLen >= len(src)-len(src)/8 {
		// The compression isn't saving even 12.5%.
		// Just do an uncompressed chunk.
		dst = append(dst[:dataStart], src...)
		dst[start] = 1 // chunk type: uncompressed data
		dataLen = len(src)
	}

	chunkLen := dataLen + 4
	dst[start+1] = byte(chunkLen)
	dst[start+2] = byte(chunkLen >> 8)
	dst[start+3] = byte(chunkLen >> 16)

	return dst
}

// AppendBlock appends src to dst in the Snappy block format, using matches
// for the copies, and returns dst. Matches must be at least 4 bytes long and
// reach back no more than 65535 bytes.
func AppendBlock(dst, src []byte, matches []lzio.Match) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(src)))

	pos := 0
	for _, m := range matches {
		if m.Unmatched > 0 {
			dst = appendLiteral(dst, src[pos:pos+m.Unmatched])
			pos += m.Unmatched
		}
		if m.Length > 0 {
			dst = appendCopy(dst, m.Length, m.Distance)
			pos += m.Length
		}
	}
	if pos < len(src) {
		dst = appendLiteral(dst, src[pos:])
	}
	return dst
}

const (
	tagLiteral = 0x00
	tagCopy1   = 0x01
	tagCopy2   = 0x02
)

func appendLiteral(dst, lit []byte) []byte {
	n := len(lit) - 1
	switch {
	case n < 60:
		dst = append(dst, byte(n)<<2|tagLiteral)
	case n < 1<<8:
		dst = append(dst, 60<<2|tagLiteral, byte(n))
	case n < 1<<16:
		dst = append(dst, 61<<2|tagLiteral, byte(n), byte(n>>8))
	case n < 1<<24:
		dst = append(dst, 62<<2|tagLiteral, byte(n), byte(n>>8), byte(n>>16))
	default:
		dst = append(dst, 63<<2|tagLiteral, byte(n), byte(n>>8), byte(n>>16), byte(n>>24))
	}
	return append(dst, lit...)
}

func appendCopy(dst []byte, length, offset int) []byte {
	// A tagCopy2 op holds at most 64 bytes and a tagCopy1 op at least 4.
	// Long copies are cut into 64-byte pieces while more than 67 bytes
	// remain; a remainder of 65-67 bytes is cut at 60 instead, so the last
	// piece never drops below 4 bytes.
	for length >= 68 {
		dst = append(dst, 63<<2|tagCopy2, byte(offset), byte(offset>>8))
		length -= 64
	}
	if length > 64 {
		dst = append(dst, 59<<2|tagCopy2, byte(offset), byte(offset>>8))
		length -= 60
	}
	if length >= 12 || offset >= 2048 {
		return append(dst, byte(length-1)<<2|tagCopy2, byte(offset), byte(offset>>8))
	}
	return append(dst, byte(offset>>8)<<5|byte(length-4)<<2|tagCopy1, byte(offset))
}

// NewWriter returns an lzio.Writer that writes a Snappy stream to dst.
func NewWriter(dst io.Writer) *lzio.Writer {
	return &lzio.Writer{
		Dest:      dst,
		Searcher:  &lzio.HashChain{},
		Encoder:   &Encoder{},
		BlockSize: maxBlockSize,
		MinLength: 4,
	}
}

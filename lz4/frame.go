package lz4

import (
	"encoding/binary"
	"hash"
	"io"

	"github.com/lzio/lzio"
	"github.com/pierrec/xxHash/xxHash32"
)

const (
	frameMagic = 0x184D2204

	// Version 01, independent blocks, content checksum.
	frameFlags = 0x40 | 0x20 | 0x04

	// Maximum block size 4 MiB.
	frameBlockDescriptor = 7 << 4
	maxBlockSize         = 4 << 20

	uncompressedBit = 1 << 31
)

// A FrameEncoder implements the lzio.Encoder interface,
// writing in the LZ4 frame format.
type FrameEncoder struct {
	hasher      hash.Hash32
	blockBuffer []byte
}

func (f *FrameEncoder) Reset() {
	f.hasher = nil
}

func (f *FrameEncoder) Encode(dst []byte, src []byte, matches []lzio.Match, lastBlock bool) []byte {
	if len(src) > maxBlockSize {
		panic("lz4: block too large")
	}

	if f.hasher == nil {
		f.hasher = xxHash32.New(0)
		dst = binary.LittleEndian.AppendUint32(dst, frameMagic)
		descriptor := []byte{frameFlags, frameBlockDescriptor}
		dst = append(dst, descriptor...)
		dst = append(dst, byte(xxHash32.Checksum(descriptor, 0)>>8))
	}

	if len(src) > 0 {
		var be BlockEncoder
		f.blockBuffer = be.Encode(f.blockBuffer[:0], src, matches, lastBlock)
		if len(f.blockBuffer) < len(src) {
			dst = binary.LittleEndian.AppendUint32(dst, uint32(len(f.blockBuffer)))
			dst = append(dst, f.blockBuffer...)
		} else {
			dst = binary.LittleEndian.AppendUint32(dst, uint32(len(src))|uncompressedBit)
			dst = append(dst, src...)
		}
		f.hasher.Write(src)
	}

	if lastBlock {
		dst = append(dst, 0, 0, 0, 0)
		dst = binary.LittleEndian.AppendUint32(dst, f.hasher.Sum32())
	}

	return dst
}

// NewWriter returns an lzio.Writer that writes an LZ4 frame to dst.
func NewWriter(dst io.Writer) *lzio.Writer {
	return &lzio.Writer{
		Dest:      dst,
		Searcher:  &lzio.HashChain{},
		Encoder:   &FrameEncoder{},
		BlockSize: 1 << 16,
		MinLength: 4,
	}
}

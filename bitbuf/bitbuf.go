// Package bitbuf packs individual bits into bytes, most significant bit
// first, and forwards each completed byte to an io.Writer.
package bitbuf

import (
	"errors"
	"io"
	"iter"
)

// sentinel marks the fill level of the accumulator. It is shifted left once
// per bit; when it falls off the top, the byte is complete.
const sentinel = 0x01

// ErrWidth is returned by WriteBits for widths above 64.
var ErrWidth = errors.New("bitbuf: width exceeds 64 bits")

// A Writer buffers up to 7 bits. Every completed byte is passed to the
// underlying writer with its own Write call. Errors from the underlying
// writer are returned unchanged and are sticky: once a write has failed,
// every later call returns the same error.
type Writer struct {
	w   io.Writer
	acc byte
	err error

	buf [1]byte
}

// NewWriter returns a Writer that sends completed bytes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, acc: sentinel}
}

// WriteBit appends one bit.
func (b *Writer) WriteBit(bit bool) error {
	if b.err != nil {
		return b.err
	}
	full := b.acc&0x80 != 0
	b.acc <<= 1
	if bit {
		b.acc |= 1
	}
	if full {
		return b.emit(b.acc)
	}
	return nil
}

// WriteBits appends the low width bits of value, most significant first.
// It is meant for fixed-width header fields.
func (b *Writer) WriteBits(value uint64, width uint) error {
	if width > 64 {
		return ErrWidth
	}
	for i := width; i > 0; i-- {
		if err := b.WriteBit(value>>(i-1)&1 != 0); err != nil {
			return err
		}
	}
	return nil
}

// Flush pads the buffered bits with zeros up to a byte boundary and writes
// the byte. It writes nothing if no bits are buffered. Callers must keep
// track of how many bits they wrote, since the padding is indistinguishable
// from data.
func (b *Writer) Flush() error {
	if b.err != nil {
		return b.err
	}
	if b.acc == sentinel {
		return nil
	}
	acc := b.acc
	for acc&0x80 == 0 {
		acc <<= 1
	}
	return b.emit(acc << 1)
}

// Reset discards any buffered bits without writing them.
func (b *Writer) Reset() {
	b.acc = sentinel
}

// Buffered returns the number of bits waiting for a full byte.
func (b *Writer) Buffered() int {
	n := 0
	for acc := b.acc; acc != sentinel; acc >>= 1 {
		n++
	}
	return n
}

func (b *Writer) emit(c byte) error {
	b.acc = sentinel
	b.buf[0] = c
	n, err := b.w.Write(b.buf[:])
	if err == nil && n < 1 {
		err = io.ErrShortWrite
	}
	b.err = err
	return err
}

// Bits returns the first n bits of p, most significant bit of each byte
// first. n is clamped to 8*len(p).
func Bits(p []byte, n int) iter.Seq[bool] {
	if n > 8*len(p) {
		n = 8 * len(p)
	}
	return func(yield func(bool) bool) {
		for i := 0; i < n; i++ {
			if !yield(p[i>>3]&(0x80>>(i&7)) != 0) {
				return
			}
		}
	}
}

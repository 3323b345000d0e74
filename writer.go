package lzio

import "io"

// Writer is an io.WriteCloser that tokenizes its input a block at a time
// and writes the encoded blocks to Dest. Each block is tokenized on its
// own, so backreferences never cross a block boundary.
type Writer struct {
	Dest     io.Writer
	Searcher Searcher
	Encoder  Encoder

	// BlockSize is the number of bytes tokenized at once.
	// The default is 64 KiB.
	BlockSize int

	// MinLength is the shortest backreference passed to the Encoder;
	// shorter ones are encoded as literals. The default is 4.
	MinLength int

	inBuf   []byte
	outBuf  []byte
	tokens  []Token
	matches []Match
	err     error
}

func (w *Writer) blockSize() int {
	if w.BlockSize <= 0 {
		return 1 << 16
	}
	return w.BlockSize
}

func (w *Writer) minLength() int {
	if w.MinLength <= 0 {
		return 4
	}
	return w.MinLength
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}

	size := w.blockSize()
	w.inBuf = append(w.inBuf, p...)
	for len(w.inBuf) > size && w.err == nil {
		w.encodeBlock(w.inBuf[:size], false)
		w.inBuf = append(w.inBuf[:0], w.inBuf[size:]...)
	}
	if w.err != nil {
		return 0, w.err
	}
	return len(p), nil
}

// Close encodes the remaining input as the last block. It does not close
// Dest.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	w.encodeBlock(w.inBuf, true)
	w.inBuf = w.inBuf[:0]
	return w.err
}

// Reset discards the Writer's state and makes it equivalent to the result of
// its original state, but writing to newDest instead.
func (w *Writer) Reset(newDest io.Writer) {
	w.Dest = newDest
	w.Searcher.Reset()
	w.Encoder.Reset()
	w.inBuf = w.inBuf[:0]
	w.err = nil
}

func (w *Writer) encodeBlock(src []byte, lastBlock bool) {
	w.tokens = Tokenize(w.tokens[:0], w.Searcher, src)
	w.matches = AppendMatches(w.matches[:0], w.tokens, w.minLength())
	w.outBuf = w.Encoder.Encode(w.outBuf[:0], src, w.matches, lastBlock)
	_, w.err = w.Dest.Write(w.outBuf)
}

// Package lzio finds LZ77 backreferences and turns byte streams into token
// streams for a later coding stage.
//
// Compression is split into two parts that are usually tied together:
//   - Something that looks for repeated sequences of bytes (a Searcher)
//   - An encoder for the compressed data format (an Encoder)
//
// Tokenize connects a Searcher to a token stream, AppendMatches converts the
// token stream to the run-length form Encoders consume, and Writer ties the
// whole pipeline to an io.Writer.
package lzio

import "fmt"

// WindowSize is the default size of the window of already-processed bytes
// that backreferences may point into.
const WindowSize = 32 * 1024

// maxWindowSize is the largest window a HashChain can index.
const maxWindowSize = 1<<16 - 1

// A Backref describes Length bytes that repeat the bytes starting Offset
// bytes before the current position.
type Backref struct {
	Offset int
	Length int
}

// A Token is one step of an LZ77 token stream. It is a backreference when
// Length is positive, otherwise the single byte Literal.
type Token struct {
	Backref
	Literal byte
}

// IsLiteral reports whether t is a literal byte.
func (t Token) IsLiteral() bool {
	return t.Length == 0
}

// Size returns the number of input bytes t covers.
func (t Token) Size() int {
	if t.IsLiteral() {
		return 1
	}
	return t.Length
}

func (t Token) String() string {
	if t.IsLiteral() {
		return fmt.Sprintf("%#02x", t.Literal)
	}
	return fmt.Sprintf("<-%d;%d>", t.Offset, t.Length)
}

// A Match is the run-length form of a token stream: Unmatched literal bytes
// followed by a copy of Length bytes from Distance bytes back.
type Match struct {
	Unmatched int // the number of unmatched bytes since the previous match
	Length    int // the number of bytes in the matched string; it may be 0 at the end of the input
	Distance  int // how far back in the stream to copy from
}

// An Encoder encodes the data in its final format.
type Encoder interface {
	// Encode appends the encoded format of src to dst, using the match
	// information from matches.
	Encode(dst []byte, src []byte, matches []Match, lastBlock bool) []byte

	// Reset clears any internal state, preparing the Encoder to be used with
	// a new stream.
	Reset()
}

// A Searcher finds backreferences one position at a time.
type Searcher interface {
	// Search returns the longest backreference for src[pos:] into the
	// window that ends at pos. Among matches of equal length the one with
	// the smallest offset wins. A zero Length means there is no match.
	// Calls for one src must come in increasing order of pos.
	Search(src []byte, pos int) Backref

	// Reset clears any internal state, preparing the Searcher to be used
	// with a new src.
	Reset()
}

func windowSize(n int) int {
	if n <= 0 {
		return WindowSize
	}
	return n
}

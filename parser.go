package lzio

import (
	"errors"
	"fmt"
)

// ErrBadOffset is returned by Expand for a backreference that points before
// the start of the output.
var ErrBadOffset = errors.New("lzio: backreference offset out of range")

// Tokenize appends the token stream for src to dst and returns dst.
//
// At each position it asks s for a backreference. If one is found, it emits
// it and skips Length bytes; otherwise it emits the byte at that position as
// a literal and moves on by one. s is reset before the first search.
func Tokenize(dst []Token, s Searcher, src []byte) []Token {
	s.Reset()
	for pos := 0; pos < len(src); {
		m := s.Search(src, pos)
		if m.Length > 0 {
			dst = append(dst, Token{Backref: m})
			pos += m.Length
		} else {
			dst = append(dst, Token{Literal: src[pos]})
			pos++
		}
	}
	return dst
}

// AppendMatches converts tokens to Matches, appends them to dst, and returns
// dst. Backreferences shorter than minLength are turned back into literal
// bytes, for formats that cannot encode short copies.
func AppendMatches(dst []Match, tokens []Token, minLength int) []Match {
	minLength = max(minLength, 1)
	unmatched := 0
	for _, t := range tokens {
		if t.Length < minLength {
			unmatched += t.Size()
			continue
		}
		dst = append(dst, Match{
			Unmatched: unmatched,
			Length:    t.Length,
			Distance:  t.Offset,
		})
		unmatched = 0
	}
	if unmatched > 0 {
		dst = append(dst, Match{
			Unmatched: unmatched,
		})
	}
	return dst
}

// Expand appends the bytes described by tokens to dst and returns dst.
// Offsets are relative to the bytes Expand writes, not to any existing
// contents of dst.
func Expand(dst []byte, tokens []Token) ([]byte, error) {
	base := len(dst)
	for i, t := range tokens {
		if t.IsLiteral() {
			dst = append(dst, t.Literal)
			continue
		}
		start := len(dst) - t.Offset
		if t.Offset <= 0 || start < base {
			return dst, fmt.Errorf("%w: token %d has offset %d at position %d", ErrBadOffset, i, t.Offset, len(dst)-base)
		}
		// The source may overlap the bytes being appended.
		for j := 0; j < t.Length; j++ {
			dst = append(dst, dst[start+j])
		}
	}
	return dst, nil
}

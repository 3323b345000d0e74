// Package brotli compresses with the Brotli encoder from
// github.com/andybalholm/brotli, using an lzio.Searcher to find matches.
package brotli

import (
	"io"

	"github.com/andybalholm/brotli"
	"github.com/andybalholm/brotli/matchfinder"
	"github.com/lzio/lzio"
)

// A MatchFinder adapts an lzio.Searcher to the matchfinder.MatchFinder
// interface.
type MatchFinder struct {
	Searcher lzio.Searcher

	// MinLength is the shortest match reported. The default is 4.
	MinLength int

	tokens  []lzio.Token
	matches []lzio.Match
}

func (f *MatchFinder) Reset() {
	f.Searcher.Reset()
}

func (f *MatchFinder) FindMatches(dst []matchfinder.Match, src []byte) []matchfinder.Match {
	minLength := f.MinLength
	if minLength <= 0 {
		minLength = 4
	}
	f.tokens = lzio.Tokenize(f.tokens[:0], f.Searcher, src)
	f.matches = lzio.AppendMatches(f.matches[:0], f.tokens, minLength)
	for _, m := range f.matches {
		dst = append(dst, matchfinder.Match{
			Unmatched: m.Unmatched,
			Length:    m.Length,
			Distance:  m.Distance,
		})
	}
	return dst
}

// NewWriter returns a Writer that compresses to dst in Brotli format,
// finding matches with an lzio.HashChain.
func NewWriter(dst io.Writer) *matchfinder.Writer {
	return &matchfinder.Writer{
		Dest:        dst,
		MatchFinder: &MatchFinder{Searcher: &lzio.HashChain{}},
		Encoder:     &brotli.Encoder{},
		BlockSize:   1 << 16,
	}
}

package lzio

import (
	"bytes"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLongest(t *testing.T) {
	window := []byte{0, 1, 1, 0, 0}

	assert.Equal(t, Backref{Offset: 2, Length: 2}, FindLongest(window, []byte{0, 0}))
	assert.Equal(t, Backref{Offset: 4, Length: 3}, FindLongest(window, []byte{1, 1, 0}))
}

func TestFindLongest_TieBreak(t *testing.T) {
	// Offsets 2 and 4 both match two bytes; the nearer one wins.
	assert.Equal(t, Backref{Offset: 2, Length: 2}, FindLongest([]byte{1, 2, 1, 2}, []byte{1, 2}))

	// A longer match further back does replace it.
	assert.Equal(t, Backref{Offset: 5, Length: 3}, FindLongest([]byte{1, 2, 3, 1, 2}, []byte{1, 2, 3}))
}

func TestFindLongest_NoMatch(t *testing.T) {
	assert.Equal(t, Backref{}, FindLongest(nil, []byte{1}))
	assert.Equal(t, Backref{}, FindLongest([]byte{1}, nil))
	assert.Equal(t, Backref{}, FindLongest([]byte{1, 2, 3}, []byte{4}))
}

func TestFindLongest_StaysInWindow(t *testing.T) {
	// The match for offset 1 cannot run on into the lookahead.
	assert.Equal(t, Backref{Offset: 1, Length: 1}, FindLongest([]byte{7}, []byte{7, 7, 7}))
}

func TestMatchLen(t *testing.T) {
	a := bytes.Repeat([]byte("0123456789"), 4)
	for i := 0; i <= len(a); i++ {
		b := bytes.Clone(a)
		if i < len(b) {
			b[i] ^= 0xff
		}
		assert.Equal(t, i, matchLen(a, b), "diff at %d", i)
		assert.Equal(t, i, matchLen(a[:i], a), "prefix %d", i)
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize(nil, Naive{}, []byte("abcabcx"))
	assert.Equal(t, []Token{
		{Literal: 'a'},
		{Literal: 'b'},
		{Literal: 'c'},
		{Backref: Backref{Offset: 3, Length: 3}},
		{Literal: 'x'},
	}, tokens)
	assert.Equal(t, "0x61", tokens[0].String())
	assert.Equal(t, "<-3;3>", tokens[3].String())
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(nil, &HashChain{}, nil))
}

func TestNaive_WindowSize(t *testing.T) {
	src := []byte("abcdXYZWabcd")
	assert.Equal(t, Backref{Offset: 8, Length: 4}, Naive{}.Search(src, 8))
	assert.Equal(t, Backref{}, Naive{WindowSize: 7}.Search(src, 8))

	var q HashChain
	assert.Equal(t, Backref{Offset: 8, Length: 4}, q.Search(src, 8))
	q = HashChain{WindowSize: 7}
	assert.Equal(t, Backref{}, q.Search(src, 8))
}

func randomInput(rng *rand.Rand, n, alphabet int) []byte {
	src := make([]byte, n)
	for i := 0; i < n; {
		if i > 8 && rng.Intn(4) == 0 {
			// Copy an earlier run to create long matches.
			start := rng.Intn(i)
			run := 1 + rng.Intn(16)
			for j := 0; j < run && i < n; j++ {
				src[i] = src[start+j]
				i++
			}
			continue
		}
		src[i] = byte(rng.Intn(alphabet))
		i++
	}
	return src
}

func TestHashChain_MatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 40; round++ {
		src := randomInput(rng, 1+rng.Intn(2000), 1+rng.Intn(8))
		window := 1 + rng.Intn(300)

		naive := Naive{WindowSize: window}
		chain := &HashChain{WindowSize: window}
		for pos := 0; pos < len(src); pos++ {
			require.Equal(t, naive.Search(src, pos), chain.Search(src, pos), "round %d pos %d", round, pos)
		}

		require.Equal(t, Tokenize(nil, naive, src), Tokenize(nil, chain, src), "round %d", round)
	}
}

func TestHashChain_Reuse(t *testing.T) {
	var q HashChain
	a := []byte("xyzxyzxyz")
	b := []byte("pqrspqrs")

	assert.Equal(t, Tokenize(nil, Naive{}, a), Tokenize(nil, &q, a))
	assert.Equal(t, Tokenize(nil, Naive{}, b), Tokenize(nil, &q, b))

	// Searching an earlier position restarts the index.
	assert.Equal(t, Backref{Offset: 4, Length: 4}, q.Search(b, 4))
	assert.Equal(t, Backref{}, q.Search(b, 2))
}

func TestExpand(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for round := 0; round < 20; round++ {
		src := randomInput(rng, rng.Intn(5000), 1+rng.Intn(4))
		tokens := Tokenize(nil, &HashChain{}, src)

		covered := 0
		for _, tok := range tokens {
			covered += tok.Size()
		}
		require.Equal(t, len(src), covered)

		out, err := Expand([]byte("prefix"), tokens)
		require.NoError(t, err)
		require.Equal(t, src, out[len("prefix"):])
	}
}

func TestExpand_BadOffset(t *testing.T) {
	_, err := Expand([]byte("xyz"), []Token{{Literal: 'a'}, {Backref: Backref{Offset: 2, Length: 1}}})
	require.ErrorIs(t, err, ErrBadOffset)
}

func TestExpand_Overlap(t *testing.T) {
	out, err := Expand(nil, []Token{{Literal: 'a'}, {Backref: Backref{Offset: 1, Length: 4}}})
	require.NoError(t, err)
	assert.Equal(t, []byte("aaaaa"), out)
}

func TestAppendMatches(t *testing.T) {
	tokens := []Token{
		{Literal: 'a'},
		{Literal: 'b'},
		{Backref: Backref{Offset: 2, Length: 2}},
		{Backref: Backref{Offset: 4, Length: 6}},
		{Backref: Backref{Offset: 1, Length: 5}},
		{Literal: 'c'},
	}

	assert.Equal(t, []Match{
		{Unmatched: 4, Length: 6, Distance: 4},
		{Unmatched: 0, Length: 5, Distance: 1},
		{Unmatched: 1},
	}, AppendMatches(nil, tokens, 4))

	assert.Equal(t, []Match{
		{Unmatched: 2, Length: 2, Distance: 2},
		{Unmatched: 0, Length: 6, Distance: 4},
		{Unmatched: 0, Length: 5, Distance: 1},
		{Unmatched: 1},
	}, AppendMatches(nil, tokens, 0))
}

func TestWriter_TextEncoder(t *testing.T) {
	var b bytes.Buffer
	w := &Writer{
		Dest:     &b,
		Searcher: &HashChain{},
		Encoder:  TextEncoder{},
	}
	_, err := w.Write([]byte("HelloHelloHello, world"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, "Hello<5,5><5,5>, world", b.String())
}

func TestWriter_Blocks(t *testing.T) {
	var b bytes.Buffer
	w := &Writer{
		Dest:      &b,
		Searcher:  Naive{},
		Encoder:   TextEncoder{},
		BlockSize: 8,
	}
	for _, chunk := range []string{"abc", "dabcdab", "cdabcd"} {
		_, err := w.Write([]byte(chunk))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	assert.Equal(t, "abcd<4,4>abcd<4,4>", b.String())

	b.Reset()
	w.Reset(&b)
	_, err := w.Write([]byte("xyxyxyxy"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "xyxy<4,4>", b.String())
}

func BenchmarkSearch(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	src := randomInput(rng, 1<<14, 16)

	for _, s := range []Searcher{Naive{}, &HashChain{}} {
		name := "Naive"
		if _, ok := s.(*HashChain); ok {
			name = "HashChain"
		}
		b.Run(name+"/"+strconv.Itoa(len(src)), func(b *testing.B) {
			b.SetBytes(int64(len(src)))
			var tokens []Token
			for b.Loop() {
				tokens = Tokenize(tokens[:0], s, src)
			}
		})
	}
}

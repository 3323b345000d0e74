package huffman

import "errors"

// Symbol identifies an element of the alphabet. Symbols are numbered from 0
// in the order they were registered.
type Symbol uint16

// MaxSymbols is the number of distinct Symbol values.
const MaxSymbols = 1 << 16

var (
	// ErrTooManySymbols is returned by Registrar.Push when every id
	// allowed by the registrar's limit is already in use.
	ErrTooManySymbols = errors.New("huffman: too many symbols")

	// ErrConsumed is returned when a Registrar is used after Solve.
	ErrConsumed = errors.New("huffman: registrar already solved")

	// ErrSymbolRange is returned when encoding a symbol that the tree has
	// no code for.
	ErrSymbolRange = errors.New("huffman: symbol out of range")

	// ErrTruncated is returned when the bit stream ends in the middle of
	// a code.
	ErrTruncated = errors.New("huffman: bit stream ends mid-code")

	// ErrUnexpectedBits is returned when decoding bits with a tree that
	// has fewer than two symbols, since such a tree has no non-empty codes.
	ErrUnexpectedBits = errors.New("huffman: unexpected bits for degenerate tree")
)

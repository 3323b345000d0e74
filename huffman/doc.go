// Package huffman builds Huffman codes from symbol frequencies and encodes and
// decodes symbol streams with them.
//
// A Registrar collects one frequency per symbol and is consumed by Solve,
// which merges the two least frequent nodes until a single tree remains.
// Nodes live in one append-only slice and refer to each other by index.
// The resulting Tree is immutable, so any number of goroutines may encode
// and decode with it at the same time.
//
// References:
//
//	<https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman

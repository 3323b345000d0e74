package lzio

// HashChain is a Searcher that links every position to the previous
// position holding the same byte. Walking a chain visits candidates
// nearest first, which is the order FindLongest tries offsets in, so its
// results are identical to Naive's; it just skips the offsets whose first
// byte already differs.
type HashChain struct {
	// WindowSize is the maximum offset of a backreference.
	// The default is 32 KiB, and the maximum is 65535.
	WindowSize int

	// head[b] is one more than the latest indexed position holding b.
	head [256]uint32

	// chain[i] is the distance from i back to the previous position
	// holding the same byte, or 0 if there is none within reach.
	chain []uint16
}

func (q *HashChain) Reset() {
	q.head = [256]uint32{}
	q.chain = q.chain[:0]
}

func (q *HashChain) window() int {
	return min(windowSize(q.WindowSize), maxWindowSize)
}

// index adds the positions before end to the chains.
func (q *HashChain) index(src []byte, end int) {
	chain := q.chain
	for i := len(chain); i < end; i++ {
		b := src[i]
		candidate := int(q.head[b]) - 1
		if candidate < 0 || i-candidate > maxWindowSize {
			chain = append(chain, 0)
		} else {
			chain = append(chain, uint16(i-candidate))
		}
		q.head[b] = uint32(i + 1)
	}
	q.chain = chain
}

func (q *HashChain) Search(src []byte, pos int) Backref {
	if pos < len(q.chain) {
		// A new src, or the caller went backwards.
		q.Reset()
	}
	q.index(src, pos)

	var best Backref
	lookahead := src[pos:]
	if len(lookahead) == 0 {
		return best
	}
	limit := min(q.window(), pos)

	candidate := int(q.head[lookahead[0]]) - 1
	for candidate >= 0 && pos-candidate <= limit {
		if length := matchLen(src[candidate:pos], lookahead); length > best.Length {
			best = Backref{Offset: pos - candidate, Length: length}
			if length == len(lookahead) {
				break
			}
		}
		d := q.chain[candidate]
		if d == 0 {
			break
		}
		candidate -= int(d)
	}
	return best
}

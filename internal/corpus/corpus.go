// Package corpus generates deterministic test inputs.
package corpus

import "math/rand"

var words = []string{
	"the", "light", "of", "and", "rays", "which", "in", "is", "colours",
	"prism", "refraction", "glass", "that", "be", "are", "by", "it",
	"with", "as", "experiment", "reflected", "white", "red", "violet",
	"same", "those", "image", "sun", "lens", "paper", "were", "more",
	"less", "than", "this", "they", "from", "at", "or", "also",
}

// Text returns about n bytes of English-like text built from a small
// vocabulary, so that it has plenty of short and medium repeats.
func Text(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	out := make([]byte, 0, n+16)
	for len(out) < n {
		out = append(out, words[rng.Intn(len(words))]...)
		switch rng.Intn(12) {
		case 0:
			out = append(out, ", "...)
		case 1:
			out = append(out, ".\n"...)
		default:
			out = append(out, ' ')
		}
	}
	return out[:n]
}

// Random returns n bytes of incompressible data.
func Random(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	out := make([]byte, n)
	rng.Read(out)
	return out
}

package internal

import (
	"iter"
)

// Seq2Concat concatenates multiple key/value iterators into a single
// iterator. Later sequences may repeat keys of earlier ones.
func Seq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			if seq == nil {
				continue
			}
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// Package internal holds iterator helpers shared by the cpu32 packages.
package internal

import (
	"iter"
)

// Concat2 yields every pair of the first sequence, then the second, and so on.
// Iteration stops as soon as the consumer stops.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

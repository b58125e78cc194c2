package diskquery

import "golang.org/x/exp/constraints"

// gib converts a byte count to whole gibibytes, truncating.
func gib[T constraints.Unsigned](b T) T {
	return T(uint64(b) / (1 << 30))
}

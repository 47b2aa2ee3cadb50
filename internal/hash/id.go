package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given fully qualified name.
func ID(fqn string) uint64 {
	return xxhash.Sum64String(fqn)
}

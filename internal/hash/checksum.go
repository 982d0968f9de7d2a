package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given payload bytes.
//
// The buffer writer checksums the uncompressed payload so readers can
// detect corruption regardless of the compression codec in use.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

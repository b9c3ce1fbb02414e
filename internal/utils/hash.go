package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable SHA-256 hash instances.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Hash computes a SHA-256 digest over the given byte slice using a hasher
// pulled from the global hasher pool.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
//
// Example usage:
//
//	digest := utils.Hash([]byte("some data"))
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// Fingerprint returns the hex-encoded SHA-256 digest of the canonical JSON
// encoding of v. Structurally equal configuration trees have equal
// fingerprints regardless of map iteration order.
//
// Example usage:
//
//	if utils.Fingerprint(before) != utils.Fingerprint(after) {
//	    // configuration changed
//	}
func Fingerprint(v any) string {
	return hex.EncodeToString(Hash(EncodeJSON(v)))
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey derives a cache key "prefix:sha256(parts)" from the JSON encoding
// of the components. The full 256-bit digest is kept; truncating would trade
// collision safety for nothing here.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return prefix + ":" + hex.EncodeToString(sum[:])
}

// Hash returns the SHA-256 digest of data as a 64-character hex string.
// Dataset and layout hashes throughout the pipeline use this function, so
// keys stay comparable across backends.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"hash"
	"sync"
)

// Hasher provides keyed HMAC-SHA256 hashing over a pool of reusable hash
// instances that all share one key.
//
// Purpose:
//   - Avoid repeated allocations of new hash.Hash instances
//   - Keep the key in one place instead of passing it to every call
//
// A Hasher is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with key. The key is copied.
//
// Example usage:
//
//	h := utils.NewHasher(decodedSharedAccessKey)
//	sig := h.SumBase64([]byte(stringToSign))
func NewHasher(key []byte) *Hasher {
	k := append([]byte(nil), key...)

	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, k)
			},
		},
	}
}

// Sum computes an HMAC-SHA256 digest over data.
//
// Behavior:
//   - Retrieves a hash.Hash instance from the pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
func (h *Hasher) Sum(data []byte) []byte {
	hs := h.pool.Get().(hash.Hash)
	hs.Reset()

	hs.Write(data)
	sum := hs.Sum(nil)

	hs.Reset()
	h.pool.Put(hs)

	return sum
}

// SumBase64 computes an HMAC-SHA256 digest over data and returns it encoded
// with standard padded base64, the form expected in shared access signatures.
func (h *Hasher) SumBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(h.Sum(data))
}

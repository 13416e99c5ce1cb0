package storage

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// HashText computes a 64-bit BLAKE2b content hash of the given text.
// Identical text always produces the same hash, which is what makes cache
// entries self-invalidating when item content changes.
func HashText(text string) uint64 {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}

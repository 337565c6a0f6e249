package sync

import (
	"crypto/sha1"
	"crypto/sha512"

	"github.com/tie/packsync/mrpack"
)

// Valid reports whether data matches the expected digests. Both SHA-1
// and SHA-512 must match; a single-algorithm match is not enough.
func Valid(data []byte, h mrpack.Hashes) bool {
	return sha1.Sum(data) == h.SHA1 && sha512.Sum512(data) == h.SHA512
}

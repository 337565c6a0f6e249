package sync_test

import (
	"crypto/sha1"
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tie/packsync/mrpack"
	"github.com/tie/packsync/sync"
)

func hashesOf(data []byte) mrpack.Hashes {
	return mrpack.Hashes{
		SHA1:   sha1.Sum(data),
		SHA512: sha512.Sum512(data),
	}
}

func TestValid(t *testing.T) {
	data := []byte("hello")
	assert.True(t, sync.Valid(data, hashesOf(data)))
	assert.False(t, sync.Valid([]byte("other bytes"), hashesOf(data)))
	assert.False(t, sync.Valid(nil, hashesOf(data)))
}

func TestValidNeedsBothDigests(t *testing.T) {
	data := []byte("hello")

	sha1Only := hashesOf(data)
	sha1Only.SHA512 = [sha512.Size]byte{}
	assert.False(t, sync.Valid(data, sha1Only))

	sha512Only := hashesOf(data)
	sha512Only.SHA1 = [sha1.Size]byte{}
	assert.False(t, sync.Valid(data, sha512Only))
}

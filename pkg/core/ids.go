package core

import (
	"crypto/rand"
	"encoding/binary"
)

// NewID returns a random 32-bit identifier drawn from crypto/rand.
// Collisions are possible in principle but negligible for lists of a few dozen rows.
func NewID() ID {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand.Read never returns an error on supported platforms.
		panic(err)
	}
	return ID(binary.LittleEndian.Uint32(b[:]))
}

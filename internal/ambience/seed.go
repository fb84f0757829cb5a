package ambience

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// NewSeed returns a fresh random seed for a session.
func NewSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// Fallback -- should never happen.
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

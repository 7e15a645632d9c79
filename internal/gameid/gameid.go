// Package gameid generates sortable game identifiers: a UUIDv7 encoded as 26
// characters of Crockford base32, as used by TypeID.
package gameid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/coder/quartz"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded ID.
const Length = 26

// RandSource supplies the random bits of an ID. *rand.Rand from math/rand/v2
// satisfies it, which makes IDs reproducible in tests and seeded batches.
type RandSource interface {
	Uint64() uint64
}

// Generator handles game ID generation with configurable randomness and time
type Generator struct {
	randSource RandSource
	clock      quartz.Clock
}

// NewGenerator creates a generator. A nil randSource uses crypto/rand and a nil
// clock uses the real clock.
func NewGenerator(randSource RandSource, clock quartz.Clock) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{randSource: randSource, clock: clock}
}

// Generate creates a new game ID from crypto/rand and the current time
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate creates a new game ID
func (g *Generator) Generate() string {
	return encodeBase32(g.generateUUIDv7())
}

// generateUUIDv7 creates a 128-bit UUIDv7:
// 48-bit unix millisecond timestamp, 4-bit version, 12 random bits,
// 2-bit variant, 62 random bits.
func (g *Generator) generateUUIDv7() [16]byte {
	var uuid [16]byte

	now := uint64(g.clock.Now().UnixMilli())
	uuid[0] = byte(now >> 40)
	uuid[1] = byte(now >> 32)
	uuid[2] = byte(now >> 24)
	uuid[3] = byte(now >> 16)
	uuid[4] = byte(now >> 8)
	uuid[5] = byte(now)

	if g.randSource != nil {
		var buf [16]byte
		binary.BigEndian.PutUint64(buf[:8], g.randSource.Uint64())
		binary.BigEndian.PutUint64(buf[8:], g.randSource.Uint64())
		copy(uuid[6:], buf[:10])
	} else if _, err := rand.Read(uuid[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80
	return uuid
}

// encodeBase32 encodes 128 bits as 26 characters. The value is treated as 130
// bits with two leading zero bits, so the first character is always 0-7.
func encodeBase32(data [16]byte) string {
	hi := binary.BigEndian.Uint64(data[:8])
	lo := binary.BigEndian.Uint64(data[8:])

	result := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		result[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(result)
}

func decodeBase32(id string) ([16]byte, error) {
	var out [16]byte
	if err := Validate(id); err != nil {
		return out, err
	}
	var hi, lo uint64
	for i := 0; i < Length; i++ {
		v := uint64(strings.IndexByte(alphabet, id[i]))
		hi = hi<<5 | lo>>59
		lo = lo<<5 | v
	}
	binary.BigEndian.PutUint64(out[:8], hi)
	binary.BigEndian.PutUint64(out[8:], lo)
	return out, nil
}

// Timestamp returns the creation time embedded in id, to millisecond precision.
func Timestamp(id string) (time.Time, error) {
	uuid, err := decodeBase32(id)
	if err != nil {
		return time.Time{}, err
	}
	var ms uint64
	for _, b := range uuid[:6] {
		ms = ms<<8 | uint64(b)
	}
	return time.UnixMilli(int64(ms)), nil
}

// Validate checks if a game ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}

	// The first character carries only 3 bits.
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}

	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}

// Package gameid generates sortable identifiers for played games.
package gameid

import (
	"encoding/base32"
	"encoding/binary"
	"fmt"
	rand "math/rand/v2"
	"strings"
	"time"
)

// Crockford's base32, as used by TypeID
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of every generated ID.
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generate returns a UUIDv7 for now, with its random bits drawn from rng,
// encoded as 26 base32 characters. IDs sort by creation time.
func Generate(now time.Time, rng *rand.Rand) string {
	var uuid [16]byte

	// 48-bit millisecond timestamp, then 80 random bits
	binary.BigEndian.PutUint64(uuid[0:8], uint64(now.UnixMilli())<<16)
	binary.BigEndian.PutUint16(uuid[6:8], uint16(rng.Uint32()))
	binary.BigEndian.PutUint64(uuid[8:16], rng.Uint64())

	uuid[6] = (uuid[6] & 0x0f) | 0x70 // version 7
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // variant 10

	return encode(uuid)
}

// encode shifts the ID right by two bits so its 128 bits fill 26
// characters exactly, with the first character in 0-7.
func encode(uuid [16]byte) string {
	var shifted [17]byte
	shifted[0] = uuid[0] >> 2
	for i := 1; i < 16; i++ {
		shifted[i] = uuid[i-1]<<6 | uuid[i]>>2
	}
	shifted[16] = uuid[15] << 6
	return encoding.EncodeToString(shifted[:])[:Length]
}

// Validate checks id is 26 base32 characters that fit in 128 bits.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}

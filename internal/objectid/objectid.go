// Package objectid generates and validates the 24-character hex identifiers
// used as primary keys: 4 bytes of unix timestamp, 5 random bytes per
// process, and a 3-byte counter.
package objectid

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"
	"time"
)

var (
	processUnique [5]byte
	counter       uint32
)

func init() {
	if _, err := rand.Read(processUnique[:]); err != nil {
		panic(err)
	}
	var seed [4]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic(err)
	}
	counter = binary.BigEndian.Uint32(seed[:])
}

func New() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[0:4], uint32(time.Now().Unix()))
	copy(b[4:9], processUnique[:])

	n := atomic.AddUint32(&counter, 1)
	b[9] = byte(n >> 16)
	b[10] = byte(n >> 8)
	b[11] = byte(n)

	return hex.EncodeToString(b[:])
}

func IsValid(s string) bool {
	if len(s) != 24 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

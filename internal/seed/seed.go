package seed

// Package seed derives deterministic PRNG keys with SHAKE-128 and wraps
// the keyed PRNG used by the randomized searches (nullspace shuffles,
// Pollard-rho restarts). Everything downstream of a key is reproducible.

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

// Derive absorbs a domain label and the given integers into SHAKE-128
// and squeezes a 32-byte PRNG key.
func Derive(label string, parts ...*big.Int) []byte {
	h := sha3.NewShake128()
	h.Write([]byte(label))
	for _, p := range parts {
		// length-prefix each operand so adjacent values cannot alias
		b := p.Bytes()
		var n [8]byte
		binary.LittleEndian.PutUint64(n[:], uint64(len(b)))
		h.Write(n[:])
		h.Write(b)
		if p.Sign() < 0 {
			h.Write([]byte{0xff})
		} else {
			h.Write([]byte{0x00})
		}
	}
	out := make([]byte, 32)
	h.Read(out)
	return out
}

// NewPRNG returns the keyed PRNG for a derived key.
func NewPRNG(key []byte) io.Reader {
	prng, _ := utils.NewKeyedPRNG(key)
	return prng
}

// Uint64 reads the next 8 bytes from r as an unsigned integer.
func Uint64(r io.Reader) uint64 {
	var b [8]byte
	io.ReadFull(r, b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Int63n returns a uniform value in [0, n). n must be positive.
func Int63n(r io.Reader, n int64) int64 {
	max := uint64(1<<63 - 1)
	bound := max - max%uint64(n)
	for {
		v := Uint64(r) &^ (1 << 63)
		if v < bound {
			return int64(v % uint64(n))
		}
	}
}

// BigBelow returns a uniform value in [0, n). n must be positive.
func BigBelow(r io.Reader, n *big.Int) *big.Int {
	bits := n.BitLen()
	bytes := (bits + 7) / 8
	buf := make([]byte, bytes)
	mask := byte(0xff >> (uint(8*bytes - bits)))
	for {
		io.ReadFull(r, buf)
		buf[0] &= mask
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(n) < 0 {
			return v
		}
	}
}

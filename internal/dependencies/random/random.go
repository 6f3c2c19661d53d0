package random

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
)

// SessionIDAlphabet is the character set used for session identifiers
const SessionIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Random is the source of randomness for word selection and session IDs
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String returns a random string of the given length drawn from alphabet
	String(length int, alphabet string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(result.Int64())
}

// String returns a random string of the given length drawn from alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	return pick(r, length, alphabet)
}

// SeededRandom is a deterministic Random backed by a PCG generator
type SeededRandom struct {
	rng *mathrand.Rand
}

// NewSeeded creates a SeededRandom; the same seed yields the same sequence
func NewSeeded(seed uint64) *SeededRandom {
	return &SeededRandom{rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a pseudo-random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// String returns a pseudo-random string of the given length drawn from alphabet
func (r *SeededRandom) String(length int, alphabet string) string {
	return pick(r, length, alphabet)
}

func pick(r Random, length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}

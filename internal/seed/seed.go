// Package seed provides the deterministic hashing and PRNG primitives shared
// by every generative component. Given the same inputs, every function here
// reproduces the exact same output stream; snapshot tests depend on it.
package seed

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
)

// Hash32 is FNV-1a over the UTF-8 bytes of the input. The offset basis and
// prime are frozen constants; trait routing depends on these exact values.
func Hash32(input string) uint32 {
	h := uint32(0x811c9dc5)
	for i := 0; i < len(input); i++ {
		h ^= uint32(input[i])
		h *= 0x01000193
	}
	return h
}

// ShortHash returns a hex prefix of sha256(input), used for stable opaque ids.
func ShortHash(input string, length int) string {
	sum := sha256.Sum256([]byte(input))
	hexed := hex.EncodeToString(sum[:])
	if length > len(hexed) {
		length = len(hexed)
	}
	return hexed[:length]
}

// Stream produces floats in [0,1). It is a plain func type so alternate
// generators can be swapped in, as long as a given seed always reproduces the
// same sequence.
type Stream func() float64

// Mulberry32 returns a seeded stream using 32-bit state mixing. The sequence
// for a given seed is frozen; tests snapshot it.
func Mulberry32(s uint32) Stream {
	t := s
	return func() float64 {
		t += 0x6d2b79f5
		r := (t ^ (t >> 15)) * (t | 1)
		r ^= r + (r^(r>>7))*(r|61)
		return float64(r^(r>>14)) / 4294967296
	}
}

// FromString seeds a stream from an arbitrary string key.
func FromString(key string) Stream {
	return Mulberry32(Hash32(key))
}

// RandRange maps the next stream value into [min, max).
func RandRange(rng Stream, min, max float64) float64 {
	return min + (max-min)*rng()
}

// PickOne selects a list element with one stream draw.
func PickOne[T any](rng Stream, list []T) T {
	idx := int(math.Min(rng(), 0.999999) * float64(len(list)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(list) {
		idx = len(list) - 1
	}
	return list[idx]
}

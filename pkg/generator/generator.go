// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package generator creates random passwords from letters, digits and the
// hyphen, optionally extended with ASCII punctuation.
//
// The randomness source is math/rand, it is NOT cryptographically secure and
// the passwords should not be used where that matters.
package generator

import (
	"math/rand/v2"
	"sync"
)

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	// ASCII punctuation in code point order. It contains the hyphen, which is
	// also part of the base pool, so with symbols enabled the hyphen is twice
	// as likely as any other punctuation character.
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	basePool   = letters + digits + "-"
	symbolPool = basePool + punctuation
)

// Config selects length and pool of a generated password.
type Config struct {
	Length         int  `json:"length"`
	IncludeSymbols bool `json:"include_symbols"`
}

// Pool returns the characters eligible for sampling.
func Pool(includeSymbols bool) string {
	if includeSymbols {
		return symbolPool
	}
	return basePool
}

// Generator draws passwords from its own PRNG. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Generator seeded with the given values, the same seeds give
// the same sequence of passwords.
func New(seed1, seed2 uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed1, seed2))}
}

// NewRandom returns a Generator with a random seed.
func NewRandom() *Generator {
	return New(rand.Uint64(), rand.Uint64())
}

// Generate returns a password of max(cfg.Length, 1) characters, each drawn
// uniformly and independently from Pool(cfg.IncludeSymbols).
func (g *Generator) Generate(cfg Config) string {
	length := cfg.Length
	if length < 1 {
		length = 1
	}

	pool := Pool(cfg.IncludeSymbols)
	buf := make([]byte, length)

	g.mu.Lock()
	for i := range buf {
		buf[i] = pool[g.rnd.IntN(len(pool))]
	}
	g.mu.Unlock()

	return string(buf)
}

var defaultGenerator = NewRandom()

// Generate uses the package default Generator.
func Generate(length int, includeSymbols bool) string {
	return defaultGenerator.Generate(Config{Length: length, IncludeSymbols: includeSymbols})
}

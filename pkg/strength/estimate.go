// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"fmt"
	"github.com/dgraph-io/ristretto"
	"github.com/nbutton23/zxcvbn-go"
	"github.com/rs/zerolog/log"
)

// MaxEstimateRunes bounds the zxcvbn input. Its matching cost grows much
// faster than linearly, longer passwords are estimated on this prefix.
const MaxEstimateRunes = 100

// Estimate is the zxcvbn view of a password. It is reported next to the
// heuristic label and does not change it.
type Estimate struct {
	Score            int     `json:"score"`
	Entropy          float64 `json:"entropy"`
	CrackTime        float64 `json:"crack_time"`
	CrackTimeDisplay string  `json:"crack_time_display"`
}

// Estimator runs zxcvbn, which is far slower than Evaluate, and keeps the
// results in a bounded cache. Ristretto stores only key hashes, the
// passwords themselves are never retained.
type Estimator struct {
	cache *ristretto.Cache
}

// NewEstimator creates an Estimator caching up to maxItems estimates. A
// maxItems of 0 disables the cache.
func NewEstimator(maxItems int64) (*Estimator, error) {
	if maxItems < 0 {
		return nil, fmt.Errorf("invalid estimator cache size %d", maxItems)
	}

	e := &Estimator{}
	if maxItems == 0 {
		return e, nil
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		// ristretto recommends 10x the number of items for the counters
		NumCounters: maxItems * 10,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating estimate cache: %w", err)
	}
	e.cache = cache

	return e, nil
}

// Estimate returns the zxcvbn estimate of the first MaxEstimateRunes
// characters of the password. The empty password gets the zero Estimate.
func (e *Estimator) Estimate(password string) Estimate {
	if password == "" {
		return Estimate{}
	}
	password = truncateRunes(password, MaxEstimateRunes)

	if e.cache != nil {
		if v, ok := e.cache.Get(password); ok {
			return v.(Estimate)
		}
	}

	m := zxcvbn.PasswordStrength(password, nil)
	est := Estimate{
		Score:            m.Score,
		Entropy:          m.Entropy,
		CrackTime:        m.CrackTime,
		CrackTimeDisplay: m.CrackTimeDisplay,
	}

	if e.cache != nil {
		if !e.cache.Set(password, est, 1) {
			log.Debug().Msg("estimate dropped by cache")
		}
	}

	return est
}

// Wait blocks until pending cache writes are applied.
func (e *Estimator) Wait() {
	if e.cache != nil {
		e.cache.Wait()
	}
}

func (e *Estimator) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

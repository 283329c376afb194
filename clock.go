//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package ulid

import (
	"math/rand/v2"
	"os"
	"strconv"
	"sync"
	"time"
)

// Clock is global default instance of clock
//
// If the application needs own default clock e.g. deterministic one, it
// declares own clock and uses New instead of Make.
var Clock Chronos = NewClock()

// Clock Type, the default one
type clock struct {
	// Wall-clock ⟨𝒕⟩ in milliseconds
	ticker func() uint64
	// Random ⟨𝒓⟩ symbols generator
	random func() uint8
}

func (clock clock) T() uint64 { return clock.ticker() }
func (clock clock) R() uint8  { return clock.random() }

// Creates instance of clock
func NewClock(opts ...Config) Chronos {
	clock := &clock{}
	defopt := []Config{WithClockUnix(), WithRandom()}
	for _, opt := range append(defopt, opts...) {
		opt(clock)
	}
	return clock
}

// Create mock instance of clock, it returns 0 for both time and entropy
func NewClockMock(opts ...Config) Chronos {
	clock := &clock{
		ticker: func() uint64 { return 0 },
		random: func() uint8 { return 0 },
	}
	for _, opt := range opts {
		opt(clock)
	}
	return clock
}

// WithClock configures a custom timestamp generator function.
// The function returns milliseconds since Unix epoch.
func WithClock(ticker func() uint64) Config {
	return func(clock *clock) {
		clock.ticker = ticker
	}
}

// WithClockUnix configures time.Now().UnixMilli() as generator function
func WithClockUnix() Config {
	return func(clock *clock) {
		clock.ticker = unixtime
	}
}

func unixtime() uint64 {
	return uint64(time.Now().UnixMilli())
}

// WithRandom configures process-wide pseudo random generator as entropy.
// It is safe for concurrent use and it is not a cryptographic source.
func WithRandom() Config {
	return func(clock *clock) {
		clock.random = random
	}
}

func random() uint8 {
	return uint8(rand.IntN(len(Alphabet)))
}

// WithSeed configures deterministic entropy, the sequence of random
// symbols is defined by the seed.
func WithSeed(seed uint64) Config {
	return func(clock *clock) {
		var mu sync.Mutex
		rnd := rand.New(rand.NewPCG(seed, ^seed))

		clock.random = func() uint8 {
			mu.Lock()
			defer mu.Unlock()
			return uint8(rnd.IntN(len(Alphabet)))
		}
	}
}

// WithSeedFromEnv configures deterministic entropy using env variable.
// Process-wide random generator is used if variable is not defined.
//
// CONFIG_ULID_SEED - defines seed as unsigned integer
func WithSeedFromEnv() Config {
	return func(clock *clock) {
		seed, err := strconv.ParseUint(os.Getenv("CONFIG_ULID_SEED"), 10, 64)
		if err != nil {
			WithRandom()(clock)
			return
		}
		WithSeed(seed)(clock)
	}
}

// WithEntropy configures a custom generator of random symbols.
// The function must return values within [0, 32), higher bits are dropped.
func WithEntropy(random func() uint8) Config {
	return func(clock *clock) {
		clock.random = random
	}
}

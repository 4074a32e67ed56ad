// Copyright (c) 2024, The OTNS Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

// Package prng provides the counter-based deterministic RNG split used
// by the synthesizer's worker pool. A single root Seed together with
// the (frame, channel, pulse) coordinates of a unit of work always
// derives the same *rand.Rand stream, regardless of which goroutine
// asks for it or in what order — this is what makes the baseband cube
// bit-reproducible independent of worker-pool scheduling.
package prng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Seed is the root seed of one synthesis run. A Seed of 0 is not a
// valid explicit seed; NewSeed draws one from OS entropy instead.
type Seed int64

// NewSeed draws a fresh, OS-entropy-derived seed for an unseeded run.
// The caller should record the returned value if the run needs to be
// reproduced later. If the OS entropy source fails, the current time in
// nanoseconds is used instead.
func NewSeed() Seed {
	var b [8]byte
	for {
		if _, err := cryptorand.Read(b[:]); err != nil {
			return Seed(time.Now().UnixNano())
		}
		if s := Seed(binary.LittleEndian.Uint64(b[:])); s != 0 {
			return s
		}
	}
}

// Stream is one named, independent RNG stream derived from a root seed.
// Distinct streams (e.g. "thermal" and "phasenoise") never share state,
// matching the spec's requirement that thermal noise is drawn strictly
// after all phase-noise draws.
type Stream struct {
	root Seed
	tag  int64
}

// NewStream creates a named stream from the root seed. tag distinguishes
// otherwise-identical callers (e.g. separate streams for thermal noise
// vs. phase noise) so their derived (frame, channel, pulse) sub-streams
// never collide.
func NewStream(root Seed, tag int64) Stream {
	return Stream{root: root, tag: tag}
}

// Split derives the deterministic *rand.Rand for one independent unit of
// work. The same (frame, channel, pulse) always yields bit-identical
// output from the returned generator, no matter which goroutine calls
// Split or in what order — the hard reproducibility contract of the
// concurrency model.
func (s Stream) Split(frame, channel, pulse int) *rand.Rand {
	h := splitmix64(uint64(s.root))
	h = mix(h, uint64(s.tag))
	h = mix(h, uint64(uint32(frame)))
	h = mix(h, uint64(uint32(channel)))
	h = mix(h, uint64(uint32(pulse)))
	return rand.New(rand.NewSource(int64(h)))
}

// splitmix64 and mix implement a fixed-output-size integer hash so that
// nearby (root, tag, frame, channel, pulse) tuples do not produce
// correlated seeds for the per-unit *rand.Rand sources.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

func mix(h, v uint64) uint64 {
	h ^= splitmix64(v)
	h *= 0x2545F4914F6CDD1D
	return splitmix64(h)
}

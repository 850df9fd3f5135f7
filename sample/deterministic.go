/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/salsa20"
)

// Deterministic samples random-looking values from the interval
// [0, max) using a salsa20 keystream seeded by a fixed key, instead of
// crypto/rand. Two Deterministic samplers constructed with the same
// key and max produce the same sequence of values.
//
// This exists so that randomized algorithms (Pollard rho's walk,
// index calculus's relation collection) can be driven reproducibly in
// tests without threading a *rand.Rand through the whole call chain.
type Deterministic struct {
	key     *[32]byte
	max     *big.Int
	maxBits int
	counter uint64
}

// NewDeterministic returns a Deterministic sampler over [0, max),
// seeded by key.
func NewDeterministic(max *big.Int, key *[32]byte) *Deterministic {
	maxBits := new(big.Int).Sub(max, big.NewInt(1)).BitLen()
	return &Deterministic{
		key:     key,
		max:     max,
		maxBits: maxBits,
	}
}

// Sample returns the next value in the deterministic sequence,
// rejecting keystream draws that fall outside [0, max) and retrying
// with the next counter value.
func (d *Deterministic) Sample() (*big.Int, error) {
	maxBytes := d.maxBits/8 + 1
	over := uint(8 - d.maxBits%8)
	if over == 8 {
		maxBytes--
		over = 0
	}

	for {
		nonce := make([]byte, 8)
		binary.LittleEndian.PutUint64(nonce, d.counter)
		d.counter++

		in := make([]byte, maxBytes)
		out := make([]byte, maxBytes)
		salsa20.XORKeyStream(out, in, nonce, d.key)
		out[0] >>= over

		ret := new(big.Int).SetBytes(out)
		if ret.Cmp(d.max) < 0 {
			return ret, nil
		}
	}
}

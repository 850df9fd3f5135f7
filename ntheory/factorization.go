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

package ntheory

import (
	"math/big"
	"sort"
)

// Factorization is an unordered mapping from a prime to its exponent
// in the product it represents. big.Int cannot be a map key, so
// primes are keyed by their big-endian byte encoding, matching the
// string(x.Bytes()) idiom used for the baby-step tables in dlog.
type Factorization map[string]int

func newFactorization() Factorization {
	return make(Factorization)
}

// add records one more occurrence of prime p in the factorization.
func (f Factorization) add(p *big.Int) {
	f[string(p.Bytes())] += 1
}

// Exponent returns the exponent of prime p in the factorization (0 if
// p does not divide the represented number).
func (f Factorization) Exponent(p *big.Int) int {
	return f[string(p.Bytes())]
}

// Primes returns the distinct prime factors in ascending order.
func (f Factorization) Primes() []*big.Int {
	primes := make([]*big.Int, 0, len(f))
	for key := range f {
		primes = append(primes, new(big.Int).SetBytes([]byte(key)))
	}
	sort.Slice(primes, func(i, j int) bool { return primes[i].Cmp(primes[j]) < 0 })
	return primes
}

// Value reconstructs the integer the factorization represents, i.e.
// the product of p^e over all (p, e) pairs.
func (f Factorization) Value() *big.Int {
	v := big.NewInt(1)
	for _, p := range f.Primes() {
		v.Mul(v, new(big.Int).Exp(p, big.NewInt(int64(f.Exponent(p))), nil))
	}
	return v
}

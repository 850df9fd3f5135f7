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

// Package keygen builds multiplicative-group test fixtures: a safe
// prime modulus with a generator of known prime order, so dlog and
// ntheory tests can exercise Shanks, Pollard rho, and Pohlig-Hellman
// against a real (Z/pZ)* rather than small hand-picked numbers.
//
// Adapted from the ElGamal parameter generation this package
// originally supported; only the group construction survives since
// there is no encryption scheme in this module to generate keys for.
package keygen

import (
	"math/big"

	"github.com/go-dlog/dlog/sample"
)

// Group holds a safe prime modulus P and a generator G of the order-Q
// subgroup of quadratic residues mod P, where Q = (P-1)/2.
type Group struct {
	P *big.Int
	Q *big.Int
	G *big.Int
}

// NewGroup generates a fresh Group whose modulus P is a safe prime of
// the given bit length. Implementation is adapted from
// https://github.com/dlitz/pycrypto/blob/master/lib/Crypto/PublicKey/ElGamal.py,
// the same source the teacher's original ElGamal parameter generation
// credited.
func NewGroup(modulusLength int) (*Group, error) {
	p, err := GetSafePrime(modulusLength)
	if err != nil {
		return nil, err
	}

	zero := big.NewInt(0)
	one := big.NewInt(1)
	two := big.NewInt(2)
	three := big.NewInt(3)

	// q = (p - 1) / 2
	q := new(big.Int).Sub(p, one)
	q.Div(q, two)

	sampler := sample.NewUniformRange(three, p)
	g := new(big.Int)
	for {
		g, err = sampler.Sample()
		if err != nil {
			return nil, err
		}

		// make g an element of the subgroup of quadratic residues
		g.Exp(g, two, p)

		// additional checks to avoid some known attacks
		if new(big.Int).Mod(new(big.Int).Sub(p, one), g).Cmp(zero) == 0 {
			continue
		}
		gInv := new(big.Int).ModInverse(g, p)
		if new(big.Int).Mod(new(big.Int).Sub(p, one), gInv).Cmp(zero) == 0 {
			continue
		}

		break
	}

	return &Group{P: p, Q: q, G: g}, nil
}

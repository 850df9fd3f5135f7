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

// Package bigutil collects the handful of arbitrary-precision integer
// operations that the dlog and ntheory packages need but math/big
// doesn't provide directly (e.g. modular exponentiation by a negative
// exponent) or that benefit from a single, consistently-checked
// implementation (modular inverse, gcd, primality). Every algorithmic
// package goes through these functions rather than inlining the
// special-cased math/big calls themselves.
package bigutil

import (
	"math/big"

	"github.com/pkg/errors"
)

// MillerRabinRounds is the number of Miller-Rabin witnesses used by
// IsProbablyPrime. The error probability is at most 4^-MillerRabinRounds.
var MillerRabinRounds = 20

// ModExp computes g^x mod m, even when x is negative (interpreting a
// negative exponent as the modular inverse raised to the positive
// exponent). Fails if g is not invertible mod m and x < 0.
func ModExp(g, x, m *big.Int) (*big.Int, error) {
	if x.Sign() >= 0 {
		return new(big.Int).Exp(g, x, m), nil
	}

	xNeg := new(big.Int).Neg(x)
	base, err := Invert(g, m)
	if err != nil {
		return nil, errors.Wrap(err, "cannot raise to a negative exponent")
	}
	return new(big.Int).Exp(base, xNeg, m), nil
}

// Invert returns a^-1 mod m, failing if gcd(a, m) != 1.
func Invert(a, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, errors.Errorf("%s has no inverse mod %s", a.String(), m.String())
	}
	return inv, nil
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// ISqrt returns the integer square root of n, floor(sqrt(n)).
func ISqrt(n *big.Int) *big.Int {
	return new(big.Int).Sqrt(n)
}

// CeilSqrt returns ceil(sqrt(n)).
func CeilSqrt(n *big.Int) *big.Int {
	root := new(big.Int).Sqrt(n)
	sq := new(big.Int).Mul(root, root)
	if sq.Cmp(n) != 0 {
		root.Add(root, big.NewInt(1))
	}
	return root
}

// ILog2 returns floor(log2(n)) for n > 0.
func ILog2(n *big.Int) int {
	return n.BitLen() - 1
}

// IsProbablyPrime reports whether n is prime with negligible error
// probability, using MillerRabinRounds witnesses.
func IsProbablyPrime(n *big.Int) bool {
	return n.ProbablyPrime(MillerRabinRounds)
}

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

	"github.com/go-dlog/dlog/internal/bigutil"
	"github.com/pkg/errors"
)

// Totient returns Euler's totient phi(n), the count of integers in
// [1, n] coprime to n, computed from n's prime factorization:
// phi(n) = product over p^e || n of p^(e-1)*(p-1).
func Totient(n *big.Int) (*big.Int, error) {
	if n.Cmp(one) == 0 {
		return big.NewInt(1), nil
	}

	f, err := Factor(n)
	if err != nil {
		return nil, err
	}

	phi := big.NewInt(1)
	for _, p := range f.Primes() {
		e := f.Exponent(p)
		pExp := new(big.Int).Exp(p, big.NewInt(int64(e-1)), nil)
		phi.Mul(phi, pExp)
		phi.Mul(phi, new(big.Int).Sub(p, one))
	}
	return phi, nil
}

// Order computes n_order(b, n), the multiplicative order of b mod n:
// the smallest positive k with b^k ≡ 1 (mod n). Requires gcd(b, n) = 1.
//
// Algorithm: compute phi(n) and its factorization, start with k =
// phi(n), and for each prime p | k repeatedly divide k by p as long as
// b^(k/p) ≡ 1 (mod n).
func Order(b, n *big.Int) (*big.Int, error) {
	bMod := new(big.Int).Mod(b, n)
	if n.Cmp(one) == 0 {
		return big.NewInt(1), nil
	}
	if bigutil.GCD(bMod, n).Cmp(one) != 0 {
		return nil, errors.Errorf("%s is not invertible mod %s", b.String(), n.String())
	}

	phi, err := Totient(n)
	if err != nil {
		return nil, err
	}
	phiFactors, err := Factor(phi)
	if err != nil {
		return nil, err
	}

	k := new(big.Int).Set(phi)
	for _, p := range phiFactors.Primes() {
		for {
			kOverP, rem := new(big.Int).QuoRem(k, p, new(big.Int))
			if rem.Sign() != 0 {
				break
			}
			if new(big.Int).Exp(bMod, kOverP, n).Cmp(one) == 0 {
				k = kOverP
			} else {
				break
			}
		}
	}
	return k, nil
}

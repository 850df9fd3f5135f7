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

package dlog

import (
	"math/big"

	"github.com/go-dlog/dlog/internal/bigutil"
	"github.com/go-dlog/dlog/ntheory"
)

// PohligHellman solves b^x ≡ a (mod n) by reducing to the prime-power
// factors of order and combining the results with the Chinese
// Remainder Theorem. Effective whenever order's prime factors are all
// individually tractable, even though order itself is large and
// composite.
func PohligHellman(a, b, n, order *big.Int) (*big.Int, error) {
	factorization, err := ntheory.Factor(order)
	if err != nil {
		return nil, wrapErr(InvalidInput, err, "failed to factor order %s", order.String())
	}

	primes := factorization.Primes()
	residues := make([]*big.Int, len(primes))
	moduli := make([]*big.Int, len(primes))

	for i, p := range primes {
		e := factorization.Exponent(p)
		q := new(big.Int).Exp(p, big.NewInt(int64(e)), nil)

		cofactor := new(big.Int).Div(order, q)
		bi := new(big.Int).Exp(b, cofactor, n)
		ai := new(big.Int).Exp(a, cofactor, n)

		xi, err := pohligHellmanPrimePower(ai, bi, n, p, e, q)
		if err != nil {
			return nil, err
		}

		residues[i] = xi
		moduli[i] = q
	}

	x, err := ntheory.CRT(residues, moduli)
	if err != nil {
		return nil, wrapErr(AlgorithmFailed, err, "failed to combine prime-power components")
	}
	return x, nil
}

// pohligHellmanPrimePower solves bi^x ≡ ai (mod n) given that bi has
// order p^e, by recovering x one base-p digit at a time. At step k it
// isolates digit d_k from (ai * bi^-x)^(p^(e-1-k)), which lands in the
// order-p subgroup generated by gamma = bi^(p^(e-1)), and solves that
// small discrete log with the dispatcher.
func pohligHellmanPrimePower(ai, bi, n, p *big.Int, e int, q *big.Int) (*big.Int, error) {
	biInv, err := bigutil.Invert(bi, n)
	if err != nil {
		return nil, wrapErr(InvalidInput, err, "component generator not invertible mod n")
	}

	pExp := func(k int) *big.Int {
		return new(big.Int).Exp(p, big.NewInt(int64(k)), nil)
	}

	gamma := new(big.Int).Exp(bi, pExp(e-1), n)

	x := big.NewInt(0)
	for k := 0; k < e; k++ {
		// axInv = ai * bi^-x (mod n)
		axInv := new(big.Int).Exp(biInv, x, n)
		axInv.Mul(axInv, ai)
		axInv.Mod(axInv, n)

		t := new(big.Int).Exp(axInv, pExp(e-1-k), n)

		d, err := DiscreteLogWithOrder(t, gamma, n, p)
		if err != nil {
			kind := AlgorithmFailed
			if IsNoSolution(err) {
				kind = NoSolution
			}
			return nil, wrapErr(kind, err, "failed to recover digit %d of prime-power component p=%s", k, p.String())
		}

		x.Add(x, new(big.Int).Mul(d, pExp(k)))
		x.Mod(x, q)
	}

	return x, nil
}

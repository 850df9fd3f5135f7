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

// Package dlog computes discrete logarithms over (Z/nZ)*: given a, b,
// n, it finds the smallest x >= 0 with b^x ≡ a (mod n).
//
// DiscreteLog and DiscreteLogWithOrder dispatch to whichever of the
// five underlying algorithms (TrialMul, Shanks, PollardRho,
// IndexCalculus, PohligHellman) fits the order of b, but every
// algorithm is also exported directly for callers who already know
// which one they want.
package dlog

import (
	"math"
	"math/big"

	"github.com/go-dlog/dlog/internal/bigutil"
	"github.com/go-dlog/dlog/ntheory"
)

// TrialMulBound is the order below which the dispatcher just counts
// through the cyclic group directly.
var TrialMulBound = big.NewInt(1000)

// ShanksBound is the order below which, for prime order, the
// dispatcher prefers baby-step giant-step over Pollard's rho.
var ShanksBound = new(big.Int).Exp(big.NewInt(10), big.NewInt(12), nil)

// IndexCalculusThresholdOffset and IndexCalculusThresholdScale tune
// the crossover point at which index calculus is believed to beat
// Pollard's rho for prime order in a prime field:
// IndexCalculusThresholdScale * sqrt(ln(n) * ln(ln(n))) < ln(order) - IndexCalculusThresholdOffset.
var IndexCalculusThresholdOffset = 10.0
var IndexCalculusThresholdScale = 4.0

// NOrder returns the multiplicative order of b modulo n: the smallest
// positive k with b^k ≡ 1 (mod n). b must be a unit mod n.
func NOrder(b, n *big.Int) (*big.Int, error) {
	order, err := ntheory.Order(b, n)
	if err != nil {
		return nil, wrapErr(InvalidInput, err, "failed to compute order of %s mod %s", b.String(), n.String())
	}
	return order, nil
}

// DiscreteLog solves b^x ≡ a (mod n) for the smallest x >= 0,
// computing the order of b internally.
func DiscreteLog(a, b, n *big.Int) (*big.Int, error) {
	return discreteLog(a, b, n, nil)
}

// DiscreteLogWithOrder is DiscreteLog for a caller who already knows
// (or believes they know) the order of b mod n. The order is verified
// before use; a wrong value fails fast with OrderMismatch instead of
// silently producing a wrong or missing answer.
func DiscreteLogWithOrder(a, b, n, order *big.Int) (*big.Int, error) {
	return discreteLog(a, b, n, order)
}

func discreteLog(a, b, n, givenOrder *big.Int) (*big.Int, error) {
	if n.Cmp(big.NewInt(2)) < 0 {
		return nil, newErr(InvalidInput, "modulus n=%s must be at least 2", n.String())
	}

	a = new(big.Int).Mod(a, n)
	b = new(big.Int).Mod(b, n)

	if bigutil.GCD(b, n).Cmp(big.NewInt(1)) != 0 {
		return nil, newErr(InvalidInput, "b=%s is not a unit mod n=%s", b.String(), n.String())
	}

	order := givenOrder
	if order == nil {
		o, err := NOrder(b, n)
		if err != nil {
			return nil, err
		}
		order = o
	} else {
		check := new(big.Int).Exp(b, order, n)
		if check.Cmp(big.NewInt(1)) != 0 {
			return nil, newErr(OrderMismatch, "b^order != 1 mod n: order=%s does not annihilate b=%s mod n=%s", order.String(), b.String(), n.String())
		}
	}

	one := big.NewInt(1)
	if a.Cmp(one) == 0 {
		return big.NewInt(0), nil
	}
	if a.Cmp(b) == 0 {
		return big.NewInt(1), nil
	}

	return dispatch(a, b, n, order)
}

// dispatch picks an algorithm by the selection rules: small order is
// handled by direct search; prime order in a prime field that is
// large enough for index calculus to pay off uses it; prime order
// below the Shanks bound uses baby-step giant-step; any other prime
// order falls back to Pollard's rho; composite order is reduced via
// Pohlig-Hellman.
func dispatch(a, b, n, order *big.Int) (*big.Int, error) {
	if order.Cmp(TrialMulBound) < 0 {
		return TrialMul(a, b, n, order)
	}

	orderIsPrime := ntheory.IsPrime(order)

	if orderIsPrime && ntheory.IsPrime(n) && indexCalculusFavored(n, order) {
		x, err := IndexCalculus(a, b, n, order)
		if err == nil {
			return x, nil
		}
		// subexponential relation collection can fail to converge
		// within its trial bound; fall back to a method with a hard
		// iteration guarantee instead of surfacing a spurious failure.
	}

	if orderIsPrime && order.Cmp(ShanksBound) < 0 {
		return Shanks(a, b, n, order)
	}

	if orderIsPrime {
		return PollardRho(a, b, n, order)
	}

	return PohligHellman(a, b, n, order)
}

func indexCalculusFavored(n, order *big.Int) bool {
	lnN := approxLn(n)
	if lnN <= 0 {
		return false
	}
	lnLnN := math.Log(lnN)
	if lnLnN <= 0 {
		return false
	}
	lnOrder := approxLn(order)
	return IndexCalculusThresholdScale*math.Sqrt(lnN*lnLnN) < lnOrder-IndexCalculusThresholdOffset
}

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
	"github.com/go-dlog/dlog/sample"
	"github.com/pkg/errors"
)

var one = big.NewInt(1)
var two = big.NewInt(2)

// pollardRhoAttempts bounds how many differently-seeded Pollard rho
// runs factorRemainder tries before giving up on a composite cofactor.
var pollardRhoAttempts = 50

// TrialDivide divides n by the primes in the smallPrimes table,
// returning the partial factorization and whatever cofactor remains
// (1 exactly when n is smallPrimes-smooth). Factor uses it as its
// cheap first phase.
func TrialDivide(n *big.Int) (Factorization, *big.Int) {
	f := newFactorization()
	rem := new(big.Int).Set(n)
	for _, pi := range smallPrimes {
		p := big.NewInt(pi)
		if new(big.Int).Mul(p, p).Cmp(rem) > 0 {
			// rem has no factor below p and rem < p^2, so it is 1 or a
			// prime; a prime within the table is taken as well.
			if rem.Cmp(one) > 0 && rem.Cmp(big.NewInt(smallPrimes[len(smallPrimes)-1])) <= 0 {
				f.add(rem)
				rem = big.NewInt(1)
			}
			break
		}
		for new(big.Int).Mod(rem, p).Sign() == 0 {
			f.add(p)
			rem.Div(rem, p)
		}
	}
	return f, rem
}

// Factor returns the complete prime factorization of n. n must be > 1.
//
// Trial division against smallPrimes handles the common case cheaply;
// whatever cofactor survives is split with Pollard's rho, recursing
// until every factor is verified prime.
func Factor(n *big.Int) (Factorization, error) {
	if n.Cmp(one) <= 0 {
		return nil, errors.Errorf("%s has no prime factorization", n.String())
	}

	result, rem := TrialDivide(n)
	if err := factorRemainder(rem, result); err != nil {
		return nil, err
	}
	return result, nil
}

// factorRemainder recursively splits n (which may itself be 1, prime,
// or composite) via Pollard rho, merging every prime factor found
// into out.
func factorRemainder(n *big.Int, out Factorization) error {
	if n.Cmp(one) == 0 {
		return nil
	}
	if IsPrime(n) {
		out.add(n)
		return nil
	}

	d, err := pollardRhoSplit(n)
	if err != nil {
		return err
	}
	if err := factorRemainder(d, out); err != nil {
		return err
	}
	return factorRemainder(new(big.Int).Div(n, d), out)
}

// pollardRhoSplit finds one non-trivial divisor of a composite n using
// Floyd's cycle detection over the map f(x) = x^2 + c mod n, retrying
// with a fresh random c on failure or degenerate collision (d == n).
func pollardRhoSplit(n *big.Int) (*big.Int, error) {
	if new(big.Int).Mod(n, two).Sign() == 0 {
		return new(big.Int).Set(two), nil
	}

	cSampler := sample.NewUniformRange(one, n)
	for attempt := 0; attempt < pollardRhoAttempts; attempt++ {
		c, err := cSampler.Sample()
		if err != nil {
			return nil, errors.Wrap(err, "failed to sample pollard rho seed")
		}

		f := func(v *big.Int) *big.Int {
			r := new(big.Int).Mul(v, v)
			r.Add(r, c)
			return r.Mod(r, n)
		}

		x, y := big.NewInt(2), big.NewInt(2)
		d := big.NewInt(1)
		for d.Cmp(one) == 0 {
			x = f(x)
			y = f(f(y))
			diff := new(big.Int).Sub(x, y)
			diff.Abs(diff)
			if diff.Sign() == 0 {
				break
			}
			d = bigutil.GCD(diff, n)
		}

		if d.Cmp(one) > 0 && d.Cmp(n) < 0 {
			return d, nil
		}
	}

	return nil, errors.Errorf("pollard rho factorization exhausted %d attempts on %s", pollardRhoAttempts, n.String())
}

// NthPrimes returns the first k primes, extending past the smallPrimes
// table by further trial-division search if necessary. Used by
// dlog.IndexCalculus to build a factor base of arbitrary size.
func NthPrimes(k int) []*big.Int {
	primes := make([]*big.Int, 0, k)
	for _, p := range smallPrimes {
		if len(primes) >= k {
			return primes
		}
		primes = append(primes, big.NewInt(p))
	}

	candidate := smallPrimes[len(smallPrimes)-1]
	for len(primes) < k {
		candidate += 2
		if isSmallPrime(candidate) {
			primes = append(primes, big.NewInt(candidate))
		}
	}
	return primes
}

func isSmallPrime(c int64) bool {
	if c < 2 {
		return false
	}
	for _, p := range smallPrimes {
		if p*p > c {
			return true
		}
		if c%p == 0 {
			return c == p
		}
	}
	return bigutil.IsProbablyPrime(big.NewInt(c))
}

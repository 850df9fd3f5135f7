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
	"github.com/go-dlog/dlog/sample"
)

// PollardRhoRestarts bounds how many times a degenerate or
// non-colliding walk is re-seeded before PollardRho gives up.
var PollardRhoRestarts = 10

// PollardRhoIterationFactor scales how many steps a single walk takes
// (C * sqrt(order)) before it is declared non-colliding and retried.
var PollardRhoIterationFactor = int64(20)

// PollardRhoWalks is how many independently-seeded walks
// PollardRho runs concurrently per restart round.
var PollardRhoWalks = 4

var three = big.NewInt(3)

type rhoTriple struct {
	x, alpha, beta *big.Int
}

// PollardRho solves b^x ≡ a (mod n) via Pollard's rho algorithm for
// discrete logarithms, using the process-local crypto/rand source to
// seed the walk. See PollardRhoWithSampler to inject a reproducible
// source.
func PollardRho(a, b, n, order *big.Int) (*big.Int, error) {
	return PollardRhoWithSampler(a, b, n, order, nil)
}

// PollardRhoWithSampler is PollardRho with an injectable Sampler for
// the walk's random seed (α₀, β₀), so the algorithm can be driven
// reproducibly in tests.
func PollardRhoWithSampler(a, b, n, order *big.Int, sampler sample.Sampler) (*big.Int, error) {
	if sampler == nil {
		sampler = sample.NewUniform(order)
	}

	var lastErr error
	for attempt := 0; attempt < PollardRhoRestarts; attempt++ {
		x, err := runConcurrentWalks(a, b, n, order, sampler)
		if err == nil {
			return x, nil
		}
		lastErr = err
	}

	return nil, newErr(AlgorithmFailed, "pollard rho exhausted %d restarts: %v", PollardRhoRestarts, lastErr)
}

// runConcurrentWalks launches PollardRhoWalks independently-seeded
// walks and returns the first one to succeed, mirroring the teacher's
// goroutine-pair race in CalcZp.BabyStepGiantStep — generalized here
// from two (positive/negative) walks to N freshly-seeded ones.
//
// Every walk's (alpha0, beta0) seed is drawn from sampler here, in the
// caller's goroutine, strictly before any walk goroutine is started.
// That keeps sampler.Sample() single-threaded (sample.Deterministic's
// counter has no synchronization of its own) and keeps the draw order
// fixed by walk index rather than by goroutine scheduling, so the same
// sampler state always hands out the same seeds to the same walks.
func runConcurrentWalks(a, b, n, order *big.Int, sampler sample.Sampler) (*big.Int, error) {
	type seed struct {
		alpha, beta *big.Int
	}

	seeds := make([]seed, PollardRhoWalks)
	for i := range seeds {
		alpha0, err := sampler.Sample()
		if err != nil {
			return nil, newErr(AlgorithmFailed, "failed to sample walk seed: %v", err)
		}
		beta0, err := sampler.Sample()
		if err != nil {
			return nil, newErr(AlgorithmFailed, "failed to sample walk seed: %v", err)
		}
		seeds[i] = seed{alpha0, beta0}
	}

	type result struct {
		x   *big.Int
		err error
	}

	results := make(chan result, PollardRhoWalks)
	for _, s := range seeds {
		s := s
		go func() {
			x, err := singleWalk(a, b, n, order, s.alpha, s.beta)
			results <- result{x, err}
		}()
	}

	var lastErr error
	for i := 0; i < PollardRhoWalks; i++ {
		r := <-results
		if r.err == nil {
			return r.x, nil
		}
		lastErr = r.err
	}
	return nil, lastErr
}

// singleWalk runs one Floyd's-cycle walk over the invariant
// x ≡ b^alpha * a^beta (mod n), partitioning {0,...,n-1} into three
// classes by x mod 3, per spec. alpha0 and beta0 are this walk's seed,
// already drawn by runConcurrentWalks.
func singleWalk(a, b, n, order, alpha0, beta0 *big.Int) (*big.Int, error) {
	start := &rhoTriple{
		x:     initialX(a, b, n, alpha0, beta0),
		alpha: alpha0,
		beta:  beta0,
	}

	tortoise := start
	hare := start

	bound := new(big.Int).Mul(bigutil.CeilSqrt(order), big.NewInt(PollardRhoIterationFactor))
	steps := big.NewInt(0)
	one := big.NewInt(1)

	for steps.Cmp(bound) < 0 {
		tortoise = step(tortoise, a, b, n, order)
		hare = step(step(hare, a, b, n, order), a, b, n, order)
		steps.Add(steps, one)

		if tortoise.x.Cmp(hare.x) == 0 {
			x, ok := resolveCollision(a, b, n, order, tortoise, hare)
			if ok {
				return x, nil
			}
			// degenerate collision: no valid lift found, the walk
			// must be re-seeded.
			return nil, newErr(AlgorithmFailed, "degenerate pollard rho collision")
		}
	}

	return nil, newErr(AlgorithmFailed, "pollard rho walk exceeded iteration bound without a collision")
}

func initialX(a, b, n, alpha, beta *big.Int) *big.Int {
	x := new(big.Int).Exp(b, alpha, n)
	x.Mul(x, new(big.Int).Exp(a, beta, n))
	return x.Mod(x, n)
}

// step advances one triple by one step of the partitioned walk.
func step(t *rhoTriple, a, b, n, order *big.Int) *rhoTriple {
	switch new(big.Int).Mod(t.x, three).Int64() {
	case 0: // S1: x <- x*b, alpha <- alpha+1
		return &rhoTriple{
			x:     new(big.Int).Mod(new(big.Int).Mul(t.x, b), n),
			alpha: new(big.Int).Mod(new(big.Int).Add(t.alpha, big.NewInt(1)), order),
			beta:  new(big.Int).Set(t.beta),
		}
	case 1: // S2: x <- x^2, alpha <- 2alpha, beta <- 2beta
		return &rhoTriple{
			x:     new(big.Int).Mod(new(big.Int).Mul(t.x, t.x), n),
			alpha: new(big.Int).Mod(new(big.Int).Mul(t.alpha, big.NewInt(2)), order),
			beta:  new(big.Int).Mod(new(big.Int).Mul(t.beta, big.NewInt(2)), order),
		}
	default: // S3: x <- x*a, beta <- beta+1
		return &rhoTriple{
			x:     new(big.Int).Mod(new(big.Int).Mul(t.x, a), n),
			alpha: new(big.Int).Set(t.alpha),
			beta:  new(big.Int).Mod(new(big.Int).Add(t.beta, big.NewInt(1)), order),
		}
	}
}

// resolveCollision implements the gcd branch of spec.md §4.4: given a
// collision between tortoise and hare, either derive x directly (gcd
// == 1), or test each of the g candidate lifts against the equation
// and return the first that verifies.
func resolveCollision(a, b, n, order *big.Int, tortoise, hare *rhoTriple) (*big.Int, bool) {
	r := new(big.Int).Sub(hare.beta, tortoise.beta)
	r.Mod(r, order)
	alphaDiff := new(big.Int).Sub(tortoise.alpha, hare.alpha)
	alphaDiff.Mod(alphaDiff, order)

	if r.Sign() == 0 {
		return nil, false
	}

	g := bigutil.GCD(r, order)
	if g.Cmp(big.NewInt(1)) == 0 {
		rInv, err := bigutil.Invert(r, order)
		if err != nil {
			return nil, false
		}
		x := new(big.Int).Mul(alphaDiff, rInv)
		x.Mod(x, order)
		return x, true
	}

	if new(big.Int).Mod(alphaDiff, g).Sign() != 0 {
		return nil, false
	}

	subOrder := new(big.Int).Div(order, g)
	rOverG := new(big.Int).Div(r, g)
	rOverGInv, err := bigutil.Invert(new(big.Int).Mod(rOverG, subOrder), subOrder)
	if err != nil {
		return nil, false
	}

	x0 := new(big.Int).Div(alphaDiff, g)
	x0.Mul(x0, rOverGInv)
	x0.Mod(x0, subOrder)

	for k := int64(0); k < g.Int64(); k++ {
		candidate := new(big.Int).Add(x0, new(big.Int).Mul(big.NewInt(k), subOrder))
		candidate.Mod(candidate, order)
		check := new(big.Int).Exp(b, candidate, n)
		if check.Cmp(a) == 0 {
			return candidate, true
		}
	}

	return nil, false
}

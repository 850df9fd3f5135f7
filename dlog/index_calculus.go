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
	"math"
	"math/big"

	"github.com/go-dlog/dlog/internal/bigutil"
	"github.com/go-dlog/dlog/ntheory"
	"github.com/go-dlog/dlog/sample"
)

// IndexCalculusRelationMargin is how many more relations than factor
// base primes are collected before the linear solve phase, to make
// the system overdetermined enough to reliably hit full rank.
var IndexCalculusRelationMargin = 5

// IndexCalculusMaxTrials bounds how many random exponents are sampled
// (across the whole relation-collection phase, and again separately
// for the final individual-log phase) before giving up with
// AlgorithmFailed.
var IndexCalculusMaxTrials = 20000

// IndexCalculus solves b^x ≡ a (mod n) with the subexponential index
// calculus method, using the process-local crypto/rand source for its
// relation sampling. See IndexCalculusWithSampler to inject a
// reproducible source.
func IndexCalculus(a, b, n, order *big.Int) (*big.Int, error) {
	return IndexCalculusWithSampler(a, b, n, order, nil)
}

// IndexCalculusWithSampler is IndexCalculus with an injectable Sampler
// for the relation-collection and individual-log exponents, so the
// algorithm can be driven reproducibly in tests. Requires n prime and
// order prime, so b generates a subgroup of (Z/nZ)* of prime order.
//
// Four phases, per spec: build a factor base of the first k primes
// (k sized by the subexponential heuristic), collect smooth relations
// by sampling random exponents, solve the resulting linear system mod
// order for each factor base prime's discrete log, then find a in
// terms of those via one more smooth relation.
func IndexCalculusWithSampler(a, b, n, order *big.Int, sampler sample.Sampler) (*big.Int, error) {
	if !ntheory.IsPrime(n) {
		return nil, newErr(InvalidInput, "index calculus requires a prime modulus")
	}
	if !ntheory.IsPrime(order) {
		return nil, newErr(InvalidInput, "index calculus requires a prime order")
	}
	if sampler == nil {
		sampler = sample.NewUniform(order)
	}

	base := factorBase(n)
	k := len(base)

	relations, err := collectRelations(b, n, sampler, base, k+IndexCalculusRelationMargin)
	if err != nil {
		return nil, err
	}

	baseLogs, err := solveLinearSystem(relations, order, k)
	if err != nil {
		return nil, err
	}

	return individualLog(a, b, n, order, base, baseLogs, sampler)
}

// factorBase picks the first k primes per the subexponential heuristic
// k ≈ ceil(exp(0.5 * sqrt(ln n * ln ln n))).
func factorBase(n *big.Int) []*big.Int {
	lnN := approxLn(n)
	lnLnN := math.Log(lnN)
	k := int(math.Ceil(math.Exp(0.5 * math.Sqrt(lnN*lnLnN))))
	if k < 1 {
		k = 1
	}
	return ntheory.NthPrimes(k)
}

// approxLn approximates the natural log of a (possibly huge) positive
// integer from its bit length: ln(n) ≈ bitlen(n) * ln(2).
func approxLn(n *big.Int) float64 {
	return float64(n.BitLen()) * math.Ln2
}

type relation struct {
	exponents []*big.Int // exponent of each factor base prime
	rhs       *big.Int   // the sampled exponent e
}

// collectRelations samples random exponents e, computes y = b^e mod n,
// and keeps the ones that are smooth over the factor base, until
// `want` relations have been collected.
func collectRelations(b, n *big.Int, sampler sample.Sampler, base []*big.Int, want int) ([]relation, error) {
	relations := make([]relation, 0, want)

	for trial := 0; trial < IndexCalculusMaxTrials && len(relations) < want; trial++ {
		e, err := sampler.Sample()
		if err != nil {
			return nil, wrapErr(AlgorithmFailed, err, "failed to sample relation exponent")
		}

		y := new(big.Int).Exp(b, e, n)
		exponents, ok := smoothOverBase(y, base)
		if !ok {
			continue
		}
		relations = append(relations, relation{exponents: exponents, rhs: e})
	}

	if len(relations) < want {
		return nil, newErr(AlgorithmFailed, "collected only %d/%d smooth relations within %d trials", len(relations), want, IndexCalculusMaxTrials)
	}
	return relations, nil
}

// smoothOverBase reports whether y factors completely over base,
// returning the exponent vector if so.
func smoothOverBase(y *big.Int, base []*big.Int) ([]*big.Int, bool) {
	rem := new(big.Int).Set(y)
	exponents := make([]*big.Int, len(base))
	for i, p := range base {
		e := 0
		for new(big.Int).Mod(rem, p).Sign() == 0 {
			rem.Div(rem, p)
			e++
		}
		exponents[i] = big.NewInt(int64(e))
	}
	return exponents, rem.Cmp(big.NewInt(1)) == 0
}

// solveLinearSystem solves, for each factor base prime p_j, its
// discrete log w.r.t. b modulo order, given a set of relations
// sum_j f_j * log_b(p_j) ≡ e (mod order). Gaussian elimination over
// Z/orderZ; order is prime, so every non-zero pivot is invertible.
func solveLinearSystem(relations []relation, order *big.Int, k int) ([]*big.Int, error) {
	pivots := make([]*relation, k)

	for _, r := range relations {
		row := relation{
			exponents: copyVec(r.exponents),
			rhs:       new(big.Int).Set(r.rhs),
		}
		reduceIntoBasis(&row, pivots, order, k)
	}

	result := make([]*big.Int, k)
	for j := 0; j < k; j++ {
		if pivots[j] == nil {
			return nil, newErr(AlgorithmFailed, "linear system did not reach full rank (column %d unresolved)", j)
		}
		result[j] = new(big.Int).Mod(pivots[j].rhs, order)
	}
	return result, nil
}

// reduceIntoBasis folds row into the Gauss-Jordan basis `pivots`,
// maintaining reduced row-echelon form: each stored pivot row has a 1
// in its own pivot column and a 0 in every other pivot column.
func reduceIntoBasis(row *relation, pivots []*relation, order *big.Int, k int) {
	// clear every existing pivot column from row first, so a new pivot
	// row never carries a non-zero entry in another pivot column
	for col := 0; col < k; col++ {
		coef := new(big.Int).Mod(row.exponents[col], order)
		row.exponents[col] = coef
		if coef.Sign() != 0 && pivots[col] != nil {
			subtractScaled(row, pivots[col], coef, order)
		}
	}

	for col := 0; col < k; col++ {
		coef := row.exponents[col]
		if coef.Sign() == 0 {
			continue
		}

		if pivots[col] == nil {
			inv, err := bigutil.Invert(coef, order)
			if err != nil {
				// order is prime so this can't happen for coef != 0,
				// but guard rather than panic.
				return
			}
			scaleRow(row, inv, order)
			pivots[col] = &relation{exponents: copyVec(row.exponents), rhs: new(big.Int).Set(row.rhs)}

			for c := 0; c < k; c++ {
				if c == col || pivots[c] == nil {
					continue
				}
				factor := pivots[c].exponents[col]
				if factor.Sign() == 0 {
					continue
				}
				subtractScaled(pivots[c], pivots[col], factor, order)
			}
			return
		}
	}
}

func copyVec(v []*big.Int) []*big.Int {
	out := make([]*big.Int, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Set(x)
	}
	return out
}

func scaleRow(row *relation, factor, order *big.Int) {
	for i := range row.exponents {
		row.exponents[i].Mul(row.exponents[i], factor)
		row.exponents[i].Mod(row.exponents[i], order)
	}
	row.rhs.Mul(row.rhs, factor)
	row.rhs.Mod(row.rhs, order)
}

// subtractScaled computes dst -= factor*src (mod order), in place.
func subtractScaled(dst, src *relation, factor, order *big.Int) {
	// factor may be one of dst's own entries, which the loop overwrites
	factor = new(big.Int).Set(factor)
	for i := range dst.exponents {
		term := new(big.Int).Mul(factor, src.exponents[i])
		dst.exponents[i].Sub(dst.exponents[i], term)
		dst.exponents[i].Mod(dst.exponents[i], order)
	}
	term := new(big.Int).Mul(factor, src.rhs)
	dst.rhs.Sub(dst.rhs, term)
	dst.rhs.Mod(dst.rhs, order)
}

// individualLog samples random s, computes z = a * b^s mod n, and
// once z is smooth over the factor base, recovers
// log_b(a) = (sum f_j * log_b(p_j)) - s (mod order).
func individualLog(a, b, n, order *big.Int, base []*big.Int, baseLogs []*big.Int, sampler sample.Sampler) (*big.Int, error) {
	for trial := 0; trial < IndexCalculusMaxTrials; trial++ {
		s, err := sampler.Sample()
		if err != nil {
			return nil, wrapErr(AlgorithmFailed, err, "failed to sample individual-log exponent")
		}

		z := new(big.Int).Exp(b, s, n)
		z.Mul(z, a)
		z.Mod(z, n)

		exponents, ok := smoothOverBase(z, base)
		if !ok {
			continue
		}

		sum := big.NewInt(0)
		for i, f := range exponents {
			sum.Add(sum, new(big.Int).Mul(f, baseLogs[i]))
		}
		sum.Sub(sum, s)
		sum.Mod(sum, order)
		return sum, nil
	}

	return nil, newErr(AlgorithmFailed, "individual log phase exhausted %d trials", IndexCalculusMaxTrials)
}

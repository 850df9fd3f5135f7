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
)

// Shanks solves b^x ≡ a (mod n) with the baby-step giant-step method,
// given the (exact or upper-bound) order of b. Memory use is
// Theta(sqrt(order)).
//
// Grounded on the teacher's CalcZp.runBabyStepGiantStep: build a baby
// step table T[b^i mod n] = i for i in [0, m), m = ceil(sqrt(order)),
// then walk giant steps of size m against c = b^-m mod n looking for a
// collision with T. The table is insertion-only: on a repeated key the
// first (smallest) i already stored wins, which also produces the
// smallest valid x since giant steps are tried in increasing order.
func Shanks(a, b, n, order *big.Int) (*big.Int, error) {
	one := big.NewInt(1)
	m := bigutil.CeilSqrt(order)

	bInv, err := bigutil.Invert(b, n)
	if err != nil {
		return nil, wrapErr(InvalidInput, err, "b must be invertible mod n for shanks")
	}

	// baby steps: T[b^i mod n] = i, first insertion wins
	table := make(map[string]*big.Int)
	x := big.NewInt(1)
	for i := big.NewInt(0); i.Cmp(m) < 0; i.Add(i, one) {
		key := string(x.Bytes())
		if _, exists := table[key]; !exists {
			table[key] = new(big.Int).Set(i)
		}
		x = new(big.Int).Mod(new(big.Int).Mul(x, b), n)
	}

	// c = b^-m mod n
	c := new(big.Int).Exp(bInv, m, n)

	gamma := new(big.Int).Mod(a, n)
	for j := big.NewInt(0); j.Cmp(m) < 0; j.Add(j, one) {
		if i, ok := table[string(gamma.Bytes())]; ok {
			result := new(big.Int).Mul(j, m)
			result.Add(result, i)
			return result, nil
		}
		gamma.Mod(gamma.Mul(gamma, c), n)
	}

	return nil, newErr(NoSolution, "baby-step giant-step exhausted order %s without a match", order.String())
}

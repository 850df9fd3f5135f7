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

import "math/big"

// TrialMul solves b^x ≡ a (mod n) by exhaustive linear search over
// x = 0, 1, ..., order-1. Intended for small order only (see the
// dispatcher's selection rule); correct but O(order) for any input.
func TrialMul(a, b, n, order *big.Int) (*big.Int, error) {
	y := big.NewInt(1)
	one := big.NewInt(1)

	for x := big.NewInt(0); x.Cmp(order) < 0; x.Add(x, one) {
		if y.Cmp(a) == 0 {
			return new(big.Int).Set(x), nil
		}
		y.Mod(y.Mul(y, b), n)
	}

	return nil, newErr(NoSolution, "trial multiplication exhausted order %s without a match", order.String())
}

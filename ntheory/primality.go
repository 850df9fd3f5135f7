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
)

// IsPrime reports whether n is prime with negligible error
// probability (spec's is_prime), matching the teacher's
// p.ProbablyPrime(20) call in CalcZp.InZp.
func IsPrime(n *big.Int) bool {
	if n.Cmp(big.NewInt(2)) < 0 {
		return false
	}
	return bigutil.IsProbablyPrime(n)
}

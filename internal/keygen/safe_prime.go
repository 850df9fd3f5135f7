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

package keygen

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

// GetSafePrime returns a safe prime p = 2q+1 (q itself prime) of the
// given bit length, by repeatedly generating a candidate Sophie
// Germain prime q and testing whether 2q+1 is also prime.
func GetSafePrime(bitLen int) (*big.Int, error) {
	if bitLen < 3 {
		return nil, errors.Errorf("bit length %d too small for a safe prime", bitLen)
	}

	one := big.NewInt(1)
	two := big.NewInt(2)

	for {
		q, err := rand.Prime(rand.Reader, bitLen-1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate candidate prime")
		}

		p := new(big.Int).Mul(q, two)
		p.Add(p, one)

		if p.ProbablyPrime(20) {
			return p, nil
		}
	}
}

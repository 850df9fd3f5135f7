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

package ntheory_test

import (
	"math/big"
	"testing"

	"github.com/go-dlog/dlog/ntheory"
	"github.com/stretchr/testify/assert"
)

func TestTotient_Prime(t *testing.T) {
	phi, err := ntheory.Totient(big.NewInt(17))
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(16), phi)
}

func TestTotient_Composite(t *testing.T) {
	phi, err := ntheory.Totient(big.NewInt(36)) // 36 = 2^2*3^2, phi = 12
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(12), phi)
}

func TestOrder_DividesTotient(t *testing.T) {
	n := big.NewInt(17)
	phi, _ := ntheory.Totient(n)
	for b := int64(2); b < 17; b++ {
		order, err := ntheory.Order(big.NewInt(b), n)
		assert.NoError(t, err)
		mod := new(big.Int).Mod(phi, order)
		assert.Equal(t, 0, mod.Sign(), "order of %d must divide phi(n)", b)

		check := new(big.Int).Exp(big.NewInt(b), order, n)
		assert.Equal(t, big.NewInt(1), check, "b^order must be 1 mod n")

		// no smaller positive exponent should also satisfy this
		for k := int64(1); k < order.Int64(); k++ {
			smaller := new(big.Int).Exp(big.NewInt(b), big.NewInt(k), n)
			assert.NotEqual(t, 0, smaller.Cmp(big.NewInt(1)), "order must be minimal")
		}
	}
}

func TestOrder_NotInvertible(t *testing.T) {
	_, err := ntheory.Order(big.NewInt(4), big.NewInt(8))
	assert.Error(t, err)
}

func TestOrder_KnownValue(t *testing.T) {
	// 2 generates (Z/11Z)*, which has order 10.
	order, err := ntheory.Order(big.NewInt(2), big.NewInt(11))
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(10), order)
}

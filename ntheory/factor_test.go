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

func checkFactorization(t *testing.T, n *big.Int, f ntheory.Factorization) {
	t.Helper()
	for _, p := range f.Primes() {
		assert.True(t, ntheory.IsPrime(p), "%s is not prime", p.String())
	}
	assert.Equal(t, 0, n.Cmp(f.Value()), "product of factors must equal original number")
}

func TestFactor_SmallComposite(t *testing.T) {
	n := big.NewInt(360) // 2^3 * 3^2 * 5
	f, err := ntheory.Factor(n)
	assert.NoError(t, err)
	checkFactorization(t, n, f)
	assert.Equal(t, 3, f.Exponent(big.NewInt(2)))
	assert.Equal(t, 2, f.Exponent(big.NewInt(3)))
	assert.Equal(t, 1, f.Exponent(big.NewInt(5)))
}

func TestFactor_Prime(t *testing.T) {
	n := big.NewInt(104729) // 10000th prime
	f, err := ntheory.Factor(n)
	assert.NoError(t, err)
	checkFactorization(t, n, f)
	assert.Equal(t, 1, len(f))
}

func TestFactor_ProductOfTwoMediumPrimes(t *testing.T) {
	p := big.NewInt(99991)
	q := big.NewInt(99989)
	n := new(big.Int).Mul(p, q)

	f, err := ntheory.Factor(n)
	assert.NoError(t, err)
	checkFactorization(t, n, f)
	assert.Equal(t, 2, len(f))
}

func TestFactor_RejectsNonPositive(t *testing.T) {
	_, err := ntheory.Factor(big.NewInt(1))
	assert.Error(t, err)
	_, err = ntheory.Factor(big.NewInt(0))
	assert.Error(t, err)
}

func TestTrialDivide_Smooth(t *testing.T) {
	n := big.NewInt(2 * 3 * 3 * 5 * 7 * 11)
	f, rem := ntheory.TrialDivide(n)
	assert.Equal(t, big.NewInt(1), rem)
	assert.Equal(t, 0, n.Cmp(f.Value()))
}

func TestNthPrimes(t *testing.T) {
	primes := ntheory.NthPrimes(5)
	expect := []int64{2, 3, 5, 7, 11}
	for i, p := range primes {
		assert.Equal(t, big.NewInt(expect[i]), p)
	}

	more := ntheory.NthPrimes(500)
	assert.Equal(t, 500, len(more))
	for _, p := range more {
		assert.True(t, ntheory.IsPrime(p))
	}
}

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

package dlog_test

import (
	"math/big"
	"testing"

	"github.com/go-dlog/dlog"
	"github.com/stretchr/testify/assert"
)

func TestDiscreteLog_KnownValues(t *testing.T) {
	cases := []struct {
		a, b, n int64
		x       int64
	}{
		{7, 2, 13, 11},  // 2^11 = 2048 ≡ 7 (mod 13)
		{6, 2, 11, 9},   // 2^9 = 512 ≡ 6 (mod 11)
		{1, 2, 1009, 0}, // trivial
	}

	for _, c := range cases {
		x, err := dlog.DiscreteLog(big.NewInt(c.a), big.NewInt(c.b), big.NewInt(c.n))
		assert.NoError(t, err)
		assert.Equal(t, big.NewInt(c.x), x)
	}
}

func TestDiscreteLog_RoundTrip(t *testing.T) {
	n := big.NewInt(41)
	b := big.NewInt(6) // primitive root mod 41, order 40

	for k := int64(0); k < 40; k++ {
		a := new(big.Int).Exp(b, big.NewInt(k), n)
		x, err := dlog.DiscreteLog(a, b, n)
		assert.NoError(t, err)
		assert.Equal(t, big.NewInt(k), x)
	}
}

func TestDiscreteLog_CompositeOrder(t *testing.T) {
	n := big.NewInt(24)
	b := big.NewInt(5)

	x, err := dlog.DiscreteLog(big.NewInt(1), b, n)
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(0), x)

	x, err = dlog.DiscreteLog(big.NewInt(5), b, n)
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(1), x)

	_, err = dlog.DiscreteLog(big.NewInt(7), b, n)
	assert.Error(t, err)
	assert.True(t, dlog.IsNoSolution(err))
}

func TestDiscreteLog_NInvalid(t *testing.T) {
	_, err := dlog.DiscreteLog(big.NewInt(1), big.NewInt(2), big.NewInt(1))
	assert.Error(t, err)
	assert.True(t, dlog.IsInvalidInput(err))
}

func TestDiscreteLog_BNotUnit(t *testing.T) {
	// gcd(6, 12) = 6, so 6 has no order mod 12.
	_, err := dlog.DiscreteLog(big.NewInt(1), big.NewInt(6), big.NewInt(12))
	assert.Error(t, err)
	assert.True(t, dlog.IsInvalidInput(err))
}

func TestDiscreteLogWithOrder_Mismatch(t *testing.T) {
	_, err := dlog.DiscreteLogWithOrder(big.NewInt(7), big.NewInt(2), big.NewInt(13), big.NewInt(5))
	assert.Error(t, err)
	assert.True(t, dlog.IsOrderMismatch(err))
}

func TestDiscreteLogWithOrder_CorrectOrderAccepted(t *testing.T) {
	n := big.NewInt(13)
	b := big.NewInt(2)
	order, err := dlog.NOrder(b, n)
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(12), order)

	x, err := dlog.DiscreteLogWithOrder(big.NewInt(7), b, n, order)
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(11), x)
}

func TestDiscreteLog_TrialMulRegime(t *testing.T) {
	// order = 16 < dlog.TrialMulBound, exercises the small-order path.
	x, err := dlog.DiscreteLog(big.NewInt(3), big.NewInt(5), big.NewInt(17))
	assert.NoError(t, err)

	check := new(big.Int).Exp(big.NewInt(5), x, big.NewInt(17))
	assert.Equal(t, big.NewInt(3), check)
}

func TestDiscreteLog_TrialMulBoundary(t *testing.T) {
	// n=53 is prime; 16 = 2^4 mod 53 has order 13 (2 is a primitive
	// root mod 53), and 16^5 ≡ 24 (mod 53).
	n := big.NewInt(53)
	b := big.NewInt(16)
	a := big.NewInt(24)
	order := big.NewInt(13)

	origBound := dlog.TrialMulBound
	defer func() { dlog.TrialMulBound = origBound }()

	// order == TrialMulBound: the comparison is strict "<", so this
	// falls through to the next tier instead of using TrialMul.
	dlog.TrialMulBound = order
	x, err := dlog.DiscreteLog(a, b, n)
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(5), x)

	// TrialMulBound == order+1: now order < bound, so TrialMul handles
	// it directly.
	dlog.TrialMulBound = new(big.Int).Add(order, big.NewInt(1))
	x, err = dlog.DiscreteLog(a, b, n)
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(5), x)
}

func TestDiscreteLog_ShanksBoundary(t *testing.T) {
	// Same order-13 subgroup as above, but here we force past the
	// TrialMul tier entirely so the ShanksBound comparison decides
	// between Shanks and PollardRho.
	n := big.NewInt(53)
	b := big.NewInt(16)
	a := big.NewInt(24)
	order := big.NewInt(13)

	origTrialMul := dlog.TrialMulBound
	origShanks := dlog.ShanksBound
	defer func() { dlog.TrialMulBound = origTrialMul }()
	defer func() { dlog.ShanksBound = origShanks }()

	dlog.TrialMulBound = big.NewInt(1)

	// order == ShanksBound: strict "<" falls through to PollardRho.
	dlog.ShanksBound = order
	x, err := dlog.DiscreteLog(a, b, n)
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(5), x)

	// ShanksBound == order+1: order < bound, so Shanks handles it.
	dlog.ShanksBound = new(big.Int).Add(order, big.NewInt(1))
	x, err = dlog.DiscreteLog(a, b, n)
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(5), x)
}

func TestNOrder(t *testing.T) {
	order, err := dlog.NOrder(big.NewInt(2), big.NewInt(13))
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(12), order)
}

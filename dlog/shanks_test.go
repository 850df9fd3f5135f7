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
	"github.com/go-dlog/dlog/ntheory"
	"github.com/stretchr/testify/assert"
)

func TestShanks(t *testing.T) {
	n := big.NewInt(41)
	b := big.NewInt(6) // primitive root mod 41, so 3 is a power of b
	order, err := ntheory.Order(b, n)
	assert.NoError(t, err)

	x, err := dlog.Shanks(big.NewInt(3), b, n, order)
	assert.NoError(t, err)

	check := new(big.Int).Exp(b, x, n)
	assert.Equal(t, big.NewInt(3), check)
}

func TestShanks_MatchesTrialMul(t *testing.T) {
	n := big.NewInt(1009)
	b := big.NewInt(11)
	order, err := ntheory.Order(b, n)
	assert.NoError(t, err)

	for _, k := range []int64{0, 1, 2, 17, 100} {
		a := new(big.Int).Exp(b, big.NewInt(k), n)

		want, err := dlog.TrialMul(a, b, n, order)
		assert.NoError(t, err)

		got, err := dlog.Shanks(a, b, n, order)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestShanks_NoSolution(t *testing.T) {
	n := big.NewInt(7)
	b := big.NewInt(2)
	order, err := ntheory.Order(b, n)
	assert.NoError(t, err)

	_, err = dlog.Shanks(big.NewInt(3), b, n, order)
	assert.Error(t, err)
	assert.True(t, dlog.IsNoSolution(err))
}

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

package keygen_test

import (
	"math/big"
	"testing"

	"github.com/go-dlog/dlog/internal/keygen"
	"github.com/stretchr/testify/assert"
)

func TestNewGroup(t *testing.T) {
	g, err := keygen.NewGroup(24)
	if err != nil {
		t.Fatalf("failed to generate group: %v", err)
	}

	assert.True(t, g.P.ProbablyPrime(20), "P must be prime")
	assert.True(t, g.Q.ProbablyPrime(20), "Q must be prime")

	one := big.NewInt(1)
	check := new(big.Int).Exp(g.G, g.Q, g.P)
	assert.Equal(t, one, check, "G must have order dividing Q")
}

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
	"github.com/pkg/errors"
)

// CRT combines residues[i] (mod moduli[i]) into a single residue
// modulo the product of moduli, via the Chinese Remainder Theorem.
// The moduli must be pairwise coprime (dlog.PohligHellman calls this
// with the distinct prime-power factors of the group order, which
// always satisfies this).
func CRT(residues, moduli []*big.Int) (*big.Int, error) {
	if len(residues) != len(moduli) {
		return nil, errors.Errorf("CRT: %d residues but %d moduli", len(residues), len(moduli))
	}
	if len(moduli) == 0 {
		return nil, errors.New("CRT: no moduli given")
	}

	x := new(big.Int).Mod(residues[0], moduli[0])
	m := new(big.Int).Set(moduli[0])

	for i := 1; i < len(moduli); i++ {
		mi := moduli[i]
		ri := new(big.Int).Mod(residues[i], mi)

		if bigutil.GCD(m, mi).Cmp(one) != 0 {
			return nil, errors.Errorf("CRT: moduli %s and %s are not coprime", m.String(), mi.String())
		}

		// solve x + m*t ≡ ri (mod mi) for t
		mInv, err := bigutil.Invert(m, mi)
		if err != nil {
			return nil, errors.Wrap(err, "CRT: modulus not invertible")
		}
		diff := new(big.Int).Sub(ri, x)
		t := new(big.Int).Mul(diff, mInv)
		t.Mod(t, mi)

		x.Add(x, new(big.Int).Mul(m, t))
		m.Mul(m, mi)
		x.Mod(x, m)
	}

	return x, nil
}

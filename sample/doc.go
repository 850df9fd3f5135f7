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

// Package sample provides the Sampler interface along with the
// implementations used throughout this module wherever a randomized
// algorithm needs to draw integers from a range: Pollard rho's walk
// seed, index calculus's relation-collection exponents, and
// Pohlig-Hellman's recursive sub-calls all go through a Sampler rather
// than calling crypto/rand directly.
//
// UniformRange (built by NewUniformRange, or NewUniform for [0, max))
// is the crypto/rand-backed production default. Deterministic
// is seeded from a fixed key so randomized algorithms can be exercised
// reproducibly in tests.
package sample

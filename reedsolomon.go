/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

// reedSolomonComputeDivisor builds the Reed-Solomon generator polynomial of
// the given degree: the product (x - a^0)(x - a^1)...(x - a^(degree-1)) over
// GF(256), with the leading x^degree term dropped (it is always 1).
// Coefficients are stored highest power first. Multiplication goes
// through the gf256 log/antilog tables rather than a per-call Russian
// peasant multiply.
func reedSolomonComputeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("degree out of range")
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // Start with the monomial x^0.

	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = gfMul(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = gfMul(root, 0x02)
	}

	return result
}

// reedSolomonComputeRemainder performs polynomial long division of data by
// divisor over GF(256) and returns the remainder, whose coefficients are the
// error-correction codewords for that block.
func reedSolomonComputeRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result[0:], result[1:])
		result[len(result)-1] = 0
		for i := 0; i < len(result); i++ {
			result[i] ^= gfMul(divisor[i], factor)
		}
	}
	return result
}

// reedSolomonDivisor returns the precomputed generator polynomial for
// degree. All divisors used by any (version, ECC) pair are built once in
// tables.go's init, so this is a read-only map lookup — safe to call
// concurrently from independent Encode invocations.
func reedSolomonDivisor(degree int) []byte {
	div, ok := reedSolomonDivisors[degree]
	if !ok {
		panic("no precomputed Reed-Solomon divisor for degree")
	}
	return div
}

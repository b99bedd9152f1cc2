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

// Arithmetic over GF(256) as used by QR Code's Reed-Solomon coding, built on
// the primitive polynomial 0x11D with generator alpha = 2. The teacher's
// reedSolomonMultiply computes products with Russian peasant multiplication
// on every call; this precomputes the log/antilog tables once (like
// other_examples' t73fde-webs reedsolomon package, whose rsGeneratorPoly
// indexes a gfExpTable directly) so multiply and pow are table lookups.

var (
	gfExpTable [255]byte
	gfLogTable [256]byte
)

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gfExpTable[i] = byte(x)
		gfLogTable[x] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= 0x11D
		}
	}
}

// gfAdd returns a + b in GF(256), which is XOR in characteristic 2.
func gfAdd(a, b byte) byte {
	return a ^ b
}

// gfMul returns a * b in GF(256).
func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	sum := int(gfLogTable[a]) + int(gfLogTable[b])
	return gfExpTable[sum%255]
}

// gfPow returns a^n in GF(256) for a != 0.
func gfPow(a byte, n int) byte {
	if a == 0 {
		if n == 0 {
			return 1
		}
		return 0
	}
	e := (int(gfLogTable[a]) * n) % 255
	if e < 0 {
		e += 255
	}
	return gfExpTable[e]
}

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

// ECC is the error correction level of a QR code symbol.
type ECC int8

// ECC levels, in order of increasing recovery capacity.
const (
	Low      ECC = iota // Recovers ~7% of data.
	Medium              // Recovers ~15% of data.
	Quartile            // Recovers ~25% of data.
	High                // Recovers ~30% of data.
)

func (e ECC) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}

// formatBits returns the 2-bit value this ECC level contributes to the
// 15-bit format information word. Note the ISO encoding does not follow
// increasing-ECC order (L=01, M=00, Q=11, H=10).
func (e ECC) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("unknown ECC level")
	}
}

func (e ECC) valid() bool {
	return e >= Low && e <= High
}

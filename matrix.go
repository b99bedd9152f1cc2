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

// Module is a single QR code grid cell. true means dark.
type Module bool

// builder assembles a QR symbol's module grid: function patterns first,
// then the codeword bitstream along the zig-zag path, then (by mask.go)
// masking and the final format info. isFunction tracks cells that payload
// placement and masking must not touch; it is discarded once the final
// mask is chosen.
type builder struct {
	version    Version
	ecc        ECC
	size       int
	modules    []Module
	isFunction []bool
}

func newBuilder(version Version, ecc ECC) *builder {
	size := version.Size()
	return &builder{
		version:    version,
		ecc:        ecc,
		size:       size,
		modules:    make([]Module, size*size),
		isFunction: make([]bool, size*size),
	}
}

func (b *builder) at(x, y int) Module {
	return b.modules[y*b.size+x]
}

func (b *builder) isFunctionAt(x, y int) bool {
	return b.isFunction[y*b.size+x]
}

// setFunctionModule sets a module that is part of the fixed symbol
// structure (finder/timing/alignment/dark module/format/version), marking
// it so payload placement and masking both skip it.
func (b *builder) setFunctionModule(x, y int, dark bool) {
	b.modules[y*b.size+x] = Module(dark)
	b.isFunction[y*b.size+x] = true
}

// setModule sets a non-function (payload) module without marking it as
// function, so it remains eligible for masking.
func (b *builder) setModule(x, y int, dark bool) {
	b.modules[y*b.size+x] = Module(dark)
}

// drawFunctionPatterns lays down every fixed structure: timing patterns,
// the three finder patterns, alignment patterns, the dark module,
// placeholder format bits (for mask 0), and, for version 7 and up, the
// version information.
func (b *builder) drawFunctionPatterns() {
	for i := 0; i < b.size; i++ {
		b.setFunctionModule(6, i, i%2 == 0)
		b.setFunctionModule(i, 6, i%2 == 0)
	}

	b.drawFinderPattern(3, 3)
	b.drawFinderPattern(b.size-4, 3)
	b.drawFinderPattern(3, b.size-4)

	alignPatPos := alignmentPatternPositions[b.version]
	numAlign := len(alignPatPos)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			if !(i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0) {
				b.drawAlignmentPattern(int(alignPatPos[i]), int(alignPatPos[j]))
			}
		}
	}

	// Dark module: fixed dark at (row = 4v+9, col = 8), i.e. (x=8, y=size-8).
	b.setFunctionModule(8, b.size-8, true)

	b.drawFormatBits(b.ecc, 0)
	b.drawVersion()
}

// drawFinderPattern draws a 9x9 finder pattern including its separator,
// centered at (x, y).
func (b *builder) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := max(abs(dx), abs(dy))
			xx, yy := x+dx, y+dy
			if 0 <= xx && xx < b.size && 0 <= yy && yy < b.size {
				b.setFunctionModule(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (x, y).
func (b *builder) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			b.setFunctionModule(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// drawVersion draws two copies of the 18-bit version information (6 data
// bits + 12-bit BCH remainder, generator 0x1F25), only for version >= 7.
func (b *builder) drawVersion() {
	if b.version < 7 {
		return
	}

	rem := int(b.version)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*0x1F25
	}
	bits := int(b.version)<<12 | rem
	if bits>>18 != 0 {
		panic("incorrect version calculation")
	}

	for i := 0; i < 18; i++ {
		bit := getBitAsBool(bits, i)
		a := b.size - 11 + i%3
		c := i / 3
		b.setFunctionModule(a, c, bit)
		b.setFunctionModule(c, a, bit)
	}
}

// drawFormatBits draws two copies of the 15-bit format information (5 data
// bits + 10-bit BCH remainder, generator 0x537, masked by 0x5412) for the
// given ECC level and mask index. Called once with mask 0 while laying out
// function patterns (so the reserved cells exist before payload placement),
// then again by mask.go for each of the 8 mask candidates.
func (b *builder) drawFormatBits(ecc ECC, mask Mask) {
	data := ecc.formatBits()<<3 | int(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*0x537
	}
	bits := data<<10 | rem ^ 0x5412
	if bits>>15 != 0 {
		panic("incorrect format bits calculation")
	}

	for i := 0; i <= 5; i++ {
		b.setFunctionModule(8, i, getBitAsBool(bits, i))
	}
	b.setFunctionModule(8, 7, getBitAsBool(bits, 6))
	b.setFunctionModule(8, 8, getBitAsBool(bits, 7))
	b.setFunctionModule(7, 8, getBitAsBool(bits, 8))
	for i := 9; i < 15; i++ {
		b.setFunctionModule(14-i, 8, getBitAsBool(bits, i))
	}

	for i := 0; i < 8; i++ {
		b.setFunctionModule(b.size-1-i, 8, getBitAsBool(bits, i))
	}
	for i := 8; i < 15; i++ {
		b.setFunctionModule(8, b.size-15+i, getBitAsBool(bits, i))
	}
	b.setFunctionModule(8, b.size-8, true)
}

// drawCodewords places the interleaved codeword stream along the zig-zag
// path: pairs of columns right to left, skipping column 6, alternating
// scan direction, right cell before left cell, and skipping any cell
// already marked as a function module.
func (b *builder) drawCodewords(data []byte) {
	if len(data) != numRawDataModules[b.version]/8 {
		panic("incorrect data length")
	}

	i := 0
	for right := b.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < b.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0

				var y int
				if upward {
					y = b.size - 1 - vert
				} else {
					y = vert
				}

				if !b.isFunctionAt(x, y) && i < len(data)*8 {
					b.setModule(x, y, getBit(int(data[i>>3]), 7-(i&7)) == 1)
					i++
				}
			}
		}
	}

	if i != len(data)*8 {
		panic("incorrect codeword placement count")
	}
}

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

import "sync"

// Mask identifies one of the 8 QR data masks, 0..7.
type Mask int8

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// applyMask XORs every non-function module with the given mask predicate.
// Applying the same mask twice restores the original modules, since XOR is
// its own inverse.
func (b *builder) applyMask(mask Mask) {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.isFunctionAt(x, y) {
				continue
			}
			if maskInvert(mask, x, y) {
				idx := y*b.size + x
				b.modules[idx] = !b.modules[idx]
			}
		}
	}
}

// maskInvert evaluates mask predicate m at (x, y).
func maskInvert(m Mask, x, y int) bool {
	switch m {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("illegal mask value")
	}
}

// clone returns a deep copy of the builder, used so candidate masks can be
// evaluated from independent grids.
func (b *builder) clone() *builder {
	c := &builder{version: b.version, ecc: b.ecc, size: b.size}
	c.modules = append([]Module(nil), b.modules...)
	c.isFunction = append([]bool(nil), b.isFunction...)
	return c
}

// penaltyScore computes N1+N2+N3+N4 over the builder's current module
// state.
func (b *builder) penaltyScore() int {
	result := 0

	for y := 0; y < b.size; y++ {
		result += b.runPenalty(func(i int) Module { return b.at(i, y) })
	}
	for x := 0; x < b.size; x++ {
		result += b.runPenalty(func(i int) Module { return b.at(x, i) })
	}

	for y := 0; y < b.size-1; y++ {
		for x := 0; x < b.size-1; x++ {
			c := b.at(x, y)
			if c == b.at(x+1, y) && c == b.at(x, y+1) && c == b.at(x+1, y+1) {
				result += penaltyN2
			}
		}
	}

	dark := 0
	for _, m := range b.modules {
		if m {
			dark++
		}
	}
	total := b.size * b.size
	k := (abs(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// runPenalty scans one row or column (addressed through at) for N1 runs and
// N3 finder-like patterns.
func (b *builder) runPenalty(at func(int) Module) int {
	result := 0
	runColor := Module(false)
	runLen := 0
	var history [7]int

	for i := 0; i < b.size; i++ {
		if at(i) == runColor {
			runLen++
			if runLen == 5 {
				result += penaltyN1
			} else if runLen > 5 {
				result++
			}
		} else {
			finderPenaltyAddHistory(runLen, b.size, &history)
			if !runColor {
				result += finderPenaltyCountPatterns(&history, b.size) * penaltyN3
			}
			runColor = at(i)
			runLen = 1
		}
	}
	result += finderPenaltyTerminateAndCount(runColor, runLen, b.size, &history) * penaltyN3
	return result
}

// finderPenaltyAddHistory pushes currentRunLength to the front of history,
// dropping the oldest entry. The very first push accounts for the light
// quiet-zone border implicitly assumed outside the symbol.
func finderPenaltyAddHistory(currentRunLength, size int, history *[7]int) {
	if history[0] == 0 {
		currentRunLength += size
	}
	copy(history[1:], history[0:6])
	history[0] = currentRunLength
}

// finderPenaltyCountPatterns reports how many finder-like patterns
// (dark:light:dark:light:dark runs in ratio 1:1:3:1:1, with a light run at
// least 4 units long on one side) are visible in the current run history.
func finderPenaltyCountPatterns(history *[7]int, size int) int {
	n := history[1]
	if n > size*3 {
		panic("bad run history")
	}
	core := n > 0 && history[2] == n && history[3] == n*3 && history[4] == n && history[5] == n
	return bToI(core && history[0] >= n*4 && history[6] >= n) + bToI(core && history[6] >= n*4 && history[0] >= n)
}

// finderPenaltyTerminateAndCount flushes the final run (adding the implicit
// light border) and returns the resulting finder-pattern penalty count.
func finderPenaltyTerminateAndCount(runColor Module, runLength, size int, history *[7]int) int {
	if runColor {
		finderPenaltyAddHistory(runLength, size, history)
		runLength = 0
	}
	runLength += size
	finderPenaltyAddHistory(runLength, size, history)
	return finderPenaltyCountPatterns(history, size)
}

// maskCandidate is the outcome of evaluating one mask: its penalty score
// and the grid it produced (format bits already drawn for that mask).
type maskCandidate struct {
	mask    Mask
	penalty int
	grid    *builder
}

// chooseMask evaluates all 8 masks and returns the grid with the lowest
// penalty, format bits drawn, ties broken toward the lower index. Each
// candidate runs against its own grid copy so the evaluation is a pure
// function of (pre-masked grid, mask index) and can be fanned out across
// goroutines with no shared mutable state.
func chooseMask(pre *builder) (*builder, Mask) {
	results := make([]maskCandidate, 8)
	var wg sync.WaitGroup
	for m := Mask(0); m < 8; m++ {
		wg.Add(1)
		go func(m Mask) {
			defer wg.Done()
			g := pre.clone()
			g.applyMask(m)
			g.drawFormatBits(g.ecc, m)
			results[m] = maskCandidate{mask: m, penalty: g.penaltyScore(), grid: g}
		}(m)
	}
	wg.Wait()

	best := results[0]
	for _, c := range results[1:] {
		if c.penalty < best.penalty {
			best = c
		}
	}
	return best.grid, best.mask
}

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

// addECCAndInterleave splits data (already padded to numDataCodewords[ecc]
// [version] bytes) into its error-correction blocks, computes each block's
// Reed-Solomon remainder, and interleaves data then EC codewords by
// column. The trailing remainder bits (0..7, version-dependent) are not
// appended here: they correspond to grid cells drawCodewords never
// writes, which are left at their zero-value (light), so no explicit
// padding step is needed once this codeword stream is placed.
func addECCAndInterleave(data []byte, version Version, ecc ECC) []byte {
	if len(data) != numDataCodewords[ecc][version] {
		panic("data is not correct length")
	}

	numBlocks := numErrorCorrectionBlocks[ecc][version]
	blockECCLen := eccCodewordsPerBlock[ecc][version]
	rawCodewords := numRawDataModules[version] / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks

	divisor := reedSolomonDivisor(blockECCLen)
	blocks := make([][]byte, numBlocks)
	for i, k := 0, 0; i < numBlocks; i++ {
		n := shortBlockLen - blockECCLen + bToI(i >= numShortBlocks)
		dat := data[k : k+n]
		k += n

		block := make([]byte, shortBlockLen+1)
		copy(block, dat)
		ecBytes := reedSolomonComputeRemainder(dat, divisor)
		copy(block[len(block)-len(ecBytes):], ecBytes)
		blocks[i] = block
	}

	result := make([]byte, rawCodewords)
	for i, k := 0, 0; i < len(blocks[0]); i++ {
		for j := 0; j < len(blocks); j++ {
			if i != shortBlockLen-blockECCLen || j >= numShortBlocks {
				result[k] = blocks[j][i]
				k++
			}
		}
	}

	return result
}

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

// UnknownVersion, UnknownECC, and UnknownMask mark metadata a Matrix
// reconstructed from raw data does not carry: the minimal serialization
// loses version/ECC/mask, and this module surfaces that as "unknown"
// rather than guessing.
const (
	UnknownVersion = Version(0)
	UnknownECC     = ECC(-1)
	UnknownMask    = Mask(-1)
)

// Matrix is the finished, immutable QR code symbol: a square grid of
// modules plus the metadata that produced it. It is the only structure
// that escapes a call to Encode.
type Matrix struct {
	version   Version
	ecc       ECC
	mask      Mask
	quietZone int
	size      int
	modules   []bool // row-major, true = dark.
}

// Size returns the side length of the module grid, 4*version+17 for a
// freshly generated Matrix. Does not include the quiet zone, which is a
// rendering hint rather than stored modules.
func (m *Matrix) Size() int {
	return m.size
}

// Get reports whether the module at (row, col) is dark. Out-of-range
// coordinates return false, mirroring the quiet zone's implicit light
// border.
func (m *Matrix) Get(row, col int) bool {
	if row < 0 || row >= m.size || col < 0 || col >= m.size {
		return false
	}
	return m.modules[row*m.size+col]
}

// Version returns the QR version, or UnknownVersion if this Matrix came
// from FromRawData.
func (m *Matrix) Version() Version {
	return m.version
}

// ECCLevel returns the error-correction level, or UnknownECC if this
// Matrix came from FromRawData.
func (m *Matrix) ECCLevel() ECC {
	return m.ecc
}

// MaskIndex returns the selected mask (0..7), or UnknownMask if this
// Matrix came from FromRawData.
func (m *Matrix) MaskIndex() Mask {
	return m.mask
}

// QuietZone returns the configured quiet-zone module width.
func (m *Matrix) QuietZone() int {
	return m.quietZone
}

// RawData serializes the module grid: one size byte (S, always <= 177)
// followed by ceil(S*S/8) bytes of row-major module bits, MSB first, final
// byte zero-padded. Version, ECC, and mask are not part of this format.
func (m *Matrix) RawData() ([]byte, error) {
	if m.size > 255 {
		return nil, &Error{Kind: InvalidArgument, Msg: "side length does not fit in one byte"}
	}

	bw := newBitWriter(m.size * m.size)
	for _, dark := range m.modules {
		if err := bw.write(bToI(dark), 1); err != nil {
			return nil, err
		}
	}

	out := make([]byte, 0, 1+len(bw.getData()))
	out = append(out, byte(m.size))
	out = append(out, bw.getData()...)
	return out, nil
}

// FromRawData reconstructs a Matrix from the byte form RawData produces,
// given an externally supplied quiet-zone size. Version, ECC, and mask are
// not recoverable from this format and are set to their Unknown sentinels.
func FromRawData(data []byte, quietZone int) (*Matrix, error) {
	if quietZone < 0 {
		return nil, &Error{Kind: InvalidArgument, Msg: "quiet zone must be non-negative"}
	}
	if len(data) < 1 {
		return nil, &Error{Kind: InvalidArgument, Msg: "raw data is empty"}
	}

	size := int(data[0])
	body := data[1:]
	wantBytes := (size*size + 7) / 8
	if len(body) != wantBytes {
		return nil, &Error{Kind: InvalidArgument, Msg: "raw data length does not match declared side length"}
	}

	modules := make([]bool, size*size)
	for i := range modules {
		byteIdx, bitIdx := i/8, 7-i%8
		modules[i] = (body[byteIdx]>>uint(bitIdx))&1 == 1
	}

	return &Matrix{
		version:   UnknownVersion,
		ecc:       UnknownECC,
		mask:      UnknownMask,
		quietZone: quietZone,
		size:      size,
		modules:   modules,
	}, nil
}

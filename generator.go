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

// Encode is the package's entry point: given content and an ECC level, it
// chooses a mode, the smallest version with enough capacity (or a forced
// version supplied via WithVersion), encodes and pads the segments,
// interleaves data with error-correction codewords, places them on the
// module grid, and selects the mask with the lowest penalty score. The
// only structure it returns is the finished Matrix; no partial result is
// ever exposed on error.
func Encode(content string, ecc ECC, opts ...Option) (*Matrix, error) {
	cfg := newConfig()
	for _, o := range opts {
		o(cfg)
	}

	if !ecc.valid() {
		return nil, &Error{Kind: InvalidArgument, Msg: "unknown ECC level"}
	}
	if cfg.quietZone < 0 {
		return nil, &Error{Kind: InvalidArgument, Msg: "quiet zone must be non-negative"}
	}
	if cfg.forceVersion != UnknownVersion && (cfg.forceVersion < MinVersion || cfg.forceVersion > MaxVersion) {
		return nil, &Error{Kind: InvalidArgument, Msg: "version must be in [1, 40]"}
	}

	segs, err := buildSegments(content, cfg)
	if err != nil {
		return nil, err
	}

	version, err := chooseVersion(segs, ecc, cfg.forceVersion)
	if err != nil {
		return nil, err
	}

	data, err := packSegments(segs, version, ecc)
	if err != nil {
		return nil, err
	}

	allCodewords := addECCAndInterleave(data, version, ecc)

	pre := newBuilder(version, ecc)
	pre.drawFunctionPatterns()
	pre.drawCodewords(allCodewords)

	final, mask := chooseMask(pre)

	modules := make([]bool, len(final.modules))
	for i, m := range final.modules {
		modules[i] = bool(m)
	}

	return &Matrix{
		version:   version,
		ecc:       ecc,
		mask:      mask,
		quietZone: cfg.quietZone,
		size:      final.size,
		modules:   modules,
	}, nil
}

// buildSegments turns content into the segment list Encode will pack,
// prepending an ECI header segment when requested.
func buildSegments(content string, cfg *config) ([]*Segment, error) {
	var segs []*Segment

	if cfg.eci >= 0 {
		eciSeg, err := MakeECI(cfg.eci)
		if err != nil {
			return nil, err
		}
		segs = append(segs, eciSeg)
	}

	interp := latin1
	if cfg.eci == 26 {
		interp = utf8Interp
	}

	contentSegs, err := MakeSegments(content, interp)
	if err != nil {
		return nil, err
	}

	return append(segs, contentSegs...), nil
}

// chooseVersion picks the smallest version whose data-codeword budget at
// ecc holds every bit segs needs (mode indicator + character count +
// payload), or validates a caller-forced version instead.
func chooseVersion(segs []*Segment, ecc ECC, forced Version) (Version, error) {
	if forced != UnknownVersion {
		bits := getTotalBits(segs, forced)
		capacity := numDataCodewords[ecc][forced] * 8
		if bits < 0 || bits > capacity {
			return 0, &Error{Kind: CapacityExceeded, Msg: "content does not fit the forced version and ECC level"}
		}
		return forced, nil
	}

	for v := MinVersion; v <= MaxVersion; v++ {
		bits := getTotalBits(segs, v)
		if bits >= 0 && bits <= numDataCodewords[ecc][v]*8 {
			return v, nil
		}
	}
	return 0, &Error{Kind: CapacityExceeded, Msg: "content too long for any version at this ECC level"}
}

// packSegments concatenates mode indicator, character-count indicator, and
// payload for every segment, adds the terminator, aligns to a byte
// boundary, and pads with alternating 0xEC/0x11 codewords up to the
// version's data-codeword budget.
func packSegments(segs []*Segment, version Version, ecc ECC) ([]byte, error) {
	capacityBits := numDataCodewords[ecc][version] * 8

	bw := newBitWriter(capacityBits)
	for _, seg := range segs {
		if err := bw.write(int(seg.modeBits), 4); err != nil {
			return nil, err
		}
		if err := bw.write(seg.NumChars, int(seg.Mode.numCharCountBits(version))); err != nil {
			return nil, err
		}
		bw.bits = append(bw.bits, seg.Data...)
	}

	if bw.length() > capacityBits {
		return nil, &Error{Kind: CapacityExceeded, Msg: "packed segments exceed the version's data capacity"}
	}

	// Terminator: up to 4 zero bits, truncated if capacity is exhausted.
	if err := bw.write(0, min(4, capacityBits-bw.length())); err != nil {
		return nil, err
	}
	// Bit-align to a byte boundary.
	if err := bw.write(0, (8-bw.length()%8)%8); err != nil {
		return nil, err
	}
	if bw.length()%8 != 0 {
		return nil, &Error{Kind: BufferOverflow, Msg: "data stream is not byte-aligned after padding"}
	}

	for padByte := 0xEC; bw.length() < capacityBits; padByte ^= 0xEC ^ 0x11 {
		if err := bw.write(padByte, 8); err != nil {
			return nil, err
		}
	}

	return bw.getData(), nil
}

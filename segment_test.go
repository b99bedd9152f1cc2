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

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bitsFromInts(ints ...int) []bool {
	out := make([]bool, len(ints))
	for i, v := range ints {
		out[i] = v != 0
	}
	return out
}

func TestIsAlphanumeric(t *testing.T) {
	cases := []struct {
		answer bool
		text   string
	}{
		{true, ""},
		{true, "0"},
		{true, "A"},
		{false, "a"},
		{true, " "},
		{true, "."},
		{true, "*"},
		{false, ","},
		{false, "|"},
		{false, "@"},
		{true, "XYZ"},
		{false, "XYZ!"},
		{true, "79068"},
		{true, "+123 ABC$"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestIsAlphanumeric %q", tc.text), func(t *testing.T) {
			assert.Equal(t, tc.answer, alphanumericRegexp.MatchString(tc.text))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		answer bool
		text   string
	}{
		{true, ""},
		{true, "0"},
		{false, "A"},
		{false, " "},
		{true, "79068"},
		{false, "+123 ABC$"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestIsNumeric %q", tc.text), func(t *testing.T) {
			assert.Equal(t, tc.answer, numericRegexp.MatchString(tc.text))
		})
	}
}

func TestMakeBytes(t *testing.T) {
	seg := MakeBytes(nil)
	assert.Equal(t, Byte, seg.Mode)
	assert.Equal(t, 0, seg.NumChars)
	assert.Equal(t, 0, len(seg.Data))

	seg = MakeBytes([]byte{0x00})
	assert.Equal(t, Byte, seg.Mode)
	assert.Equal(t, 1, seg.NumChars)
	assert.Equal(t, bitsFromInts(0, 0, 0, 0, 0, 0, 0, 0), seg.Data)

	seg = MakeBytes([]byte{0xEF, 0xBB, 0xBF})
	assert.Equal(t, Byte, seg.Mode)
	assert.Equal(t, 3, seg.NumChars)
	assert.Equal(t, bitsFromInts(
		1, 1, 1, 0, 1, 1, 1, 1,
		1, 0, 1, 1, 1, 0, 1, 1,
		1, 0, 1, 1, 1, 1, 1, 1), seg.Data)
}

func TestMakeNumeric(t *testing.T) {
	cases := []struct {
		text      string
		length    int
		bitLength int
		bits      []int
	}{
		{"", 0, 0, nil},
		{"9", 1, 4, []int{1, 0, 0, 1}},
		{"81", 2, 7, []int{1, 0, 1, 0, 0, 0, 1}},
		{"673", 3, 10, []int{1, 0, 1, 0, 1, 0, 0, 0, 0, 1}},
		{"3141592653", 10, 34, []int{
			0, 1, 0, 0, 1, 1, 1, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 1,
			1, 1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 1, 1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestMakeNumeric %v", tc.text), func(t *testing.T) {
			seg, err := MakeNumeric(tc.text)
			assert.Nil(t, err)
			assert.Equal(t, Numeric, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bitLength, len(seg.Data))
			assert.Equal(t, bitsFromInts(tc.bits...), seg.Data)
		})
	}
}

func TestMakeNumericRejectsNonDigits(t *testing.T) {
	_, err := MakeNumeric("12a3")
	assert.NotNil(t, err)
	var qerr *Error
	assert.ErrorAs(t, err, &qerr)
	assert.Equal(t, UnsupportedCharacter, qerr.Kind)
}

func TestMakeAlphanumeric(t *testing.T) {
	cases := []struct {
		text      string
		length    int
		bitLength int
		bits      []int
	}{
		{"", 0, 0, nil},
		{"A", 1, 6, []int{0, 0, 1, 0, 1, 0}},
		{"%:", 2, 11, []int{1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0}},
		{"Q R", 3, 17, []int{1, 0, 0, 1, 0, 1, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestMakeAlphanumeric %v", tc.text), func(t *testing.T) {
			seg, err := MakeAlphanumeric(tc.text)
			assert.Nil(t, err)
			assert.Equal(t, Alphanumeric, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bitLength, len(seg.Data))
			assert.Equal(t, bitsFromInts(tc.bits...), seg.Data)
		})
	}
}

func TestMakeAlphanumericRejectsLowercase(t *testing.T) {
	_, err := MakeAlphanumeric("hello")
	assert.NotNil(t, err)
}

func TestMakeECI(t *testing.T) {
	cases := []struct {
		input     int
		bitLength int
		bits      []int
	}{
		{127, 8, []int{0, 1, 1, 1, 1, 1, 1, 1}},
		{10345, 16, []int{1, 0, 1, 0, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0, 0, 1}},
		{999999, 24, []int{1, 1, 0, 0, 1, 1, 1, 1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestMakeECI %v", tc.input), func(t *testing.T) {
			seg, err := MakeECI(tc.input)
			assert.Nil(t, err)
			assert.Equal(t, eci, seg.Mode)
			assert.Equal(t, 0, seg.NumChars)
			assert.Equal(t, tc.bitLength, len(seg.Data))
			assert.Equal(t, bitsFromInts(tc.bits...), seg.Data)
		})
	}
}

func TestMakeECIRejectsNegativeAndOutOfRange(t *testing.T) {
	_, err := MakeECI(-1)
	assert.NotNil(t, err)
	_, err = MakeECI(2_000_000)
	assert.NotNil(t, err)
}

func TestGetTotalBits(t *testing.T) {
	assert.Equal(t, 0, getTotalBits([]*Segment{}, 1))
	assert.Equal(t, 0, getTotalBits([]*Segment{}, 40))

	segs := []*Segment{{Mode: Byte, NumChars: 3, Data: make([]bool, 24)}}
	assert.Equal(t, 36, getTotalBits(segs, 2))
	assert.Equal(t, 44, getTotalBits(segs, 10))
	assert.Equal(t, 44, getTotalBits(segs, 30))

	segs = []*Segment{
		{Mode: eci, NumChars: 0, Data: make([]bool, 8)},
		{Mode: Numeric, NumChars: 7, Data: make([]bool, 24)},
		{Mode: Alphanumeric, NumChars: 1, Data: make([]bool, 6)},
		{Mode: Kanji, NumChars: 4, Data: make([]bool, 52)},
	}
	assert.Equal(t, 133, getTotalBits(segs, 9))
	assert.Equal(t, 139, getTotalBits(segs, 21))
	assert.Equal(t, 145, getTotalBits(segs, 27))

	segs = []*Segment{{Mode: Byte, NumChars: 4093, Data: make([]bool, 32744)}}
	assert.Equal(t, -1, getTotalBits(segs, 1))
	assert.Equal(t, 32764, getTotalBits(segs, 10))
}

func TestMakeKanji(t *testing.T) {
	seg, err := MakeKanji("愛")
	assert.Nil(t, err)
	assert.Equal(t, Kanji, seg.Mode)
	assert.Equal(t, 1, seg.NumChars)
	assert.Equal(t, 13, len(seg.Data))
}

func TestMakeKanjiRejectsNonKanji(t *testing.T) {
	_, err := MakeKanji("hello")
	assert.NotNil(t, err)
	var qerr *Error
	assert.ErrorAs(t, err, &qerr)
	assert.Equal(t, UnsupportedCharacter, qerr.Kind)
}

func TestMakeSegmentsPicksSmallestMode(t *testing.T) {
	segs, err := MakeSegments("12345", latin1)
	assert.Nil(t, err)
	assert.Equal(t, Numeric, segs[0].Mode)

	segs, err = MakeSegments("HELLO WORLD", latin1)
	assert.Nil(t, err)
	assert.Equal(t, Alphanumeric, segs[0].Mode)

	segs, err = MakeSegments("testtesttest", latin1)
	assert.Nil(t, err)
	assert.Equal(t, Byte, segs[0].Mode)

	segs, err = MakeSegments("", latin1)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(segs))
	assert.Equal(t, Byte, segs[0].Mode)
	assert.Equal(t, 0, segs[0].NumChars)
}

func TestMakeSegmentsLatin1RejectsNonLatin1(t *testing.T) {
	_, err := MakeSegments("héllo☃", latin1)
	assert.NotNil(t, err)
	var qerr *Error
	assert.ErrorAs(t, err, &qerr)
	assert.Equal(t, UnsupportedCharacter, qerr.Kind)
}

func TestMakeSegmentsUtf8AllowsAnyCodepoint(t *testing.T) {
	segs, err := MakeSegments("snowman ☃", utf8Interp)
	assert.Nil(t, err)
	assert.Equal(t, Byte, segs[0].Mode)
	assert.Equal(t, len("snowman ☃"), segs[0].NumChars)
}

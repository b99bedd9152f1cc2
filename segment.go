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
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// Segment is one mode-tagged run of a QR code's data stream: a mode, the
// unencoded character count, and the already bit-packed payload (mode
// indicator and character-count indicator are not included; packSegments
// prepends those once the version is known).
type Segment struct {
	Mode
	NumChars int
	Data     []bool
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
)

// getTotalBits returns the total number of bits the given segments occupy
// at the given version, including each segment's mode indicator and
// character-count indicator, or -1 if any segment's count overflows its
// field width or the total overflows an int32.
func getTotalBits(segs []*Segment, version Version) int {
	result := int64(0)
	for _, seg := range segs {
		ccBits := seg.Mode.numCharCountBits(version)
		if seg.NumChars >= 1<<uint(ccBits) {
			return -1
		}

		result += int64(4 + int(ccBits) + len(seg.Data))
		if result > math.MaxInt32 {
			return -1
		}
	}

	return int(result)
}

// MakeNumeric builds a numeric-mode segment from a string of decimal
// digits, packing groups of 3 digits into 10 bits with a final group of 1
// or 2 digits packed into 4 or 7 bits.
func MakeNumeric(digits string) (*Segment, error) {
	if !numericRegexp.MatchString(digits) {
		return nil, &Error{Kind: UnsupportedCharacter, Msg: "numeric segment requires only decimal digits"}
	}
	return makeNumericSegment(digits), nil
}

func makeNumericSegment(digits string) *Segment {
	bb := newBitWriter(len(digits)*3 + (len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := min(len(digits)-i, 3)
		d, _ := strconv.Atoi(digits[i : i+n])
		_ = bb.write(d, n*3+1)
		i += n
	}
	return &Segment{Mode: Numeric, NumChars: len(digits), Data: bb.bits}
}

// MakeAlphanumeric builds an alphanumeric-mode segment, packing pairs of
// characters into 11 bits with a trailing single character packed into 6
// bits. The alphabet is the canonical 45-symbol QR table.
func MakeAlphanumeric(text string) (*Segment, error) {
	if !alphanumericRegexp.MatchString(text) {
		return nil, &Error{Kind: UnsupportedCharacter, Msg: "alphanumeric segment requires characters from the QR alphanumeric alphabet"}
	}
	return makeAlphanumericSegment(text), nil
}

func makeAlphanumericSegment(text string) *Segment {
	bb := newBitWriter(len(text)*5 + (len(text)+1)/2)
	var i int
	for i = 0; i <= len(text)-2; i += 2 {
		v := strings.IndexByte(alphanumericCharset, text[i]) * 45
		v += strings.IndexByte(alphanumericCharset, text[i+1])
		_ = bb.write(v, 11)
	}
	if i < len(text) {
		_ = bb.write(strings.IndexByte(alphanumericCharset, text[i]), 6)
	}
	return &Segment{Mode: Alphanumeric, NumChars: len(text), Data: bb.bits}
}

// MakeBytes builds a byte-mode segment, packing each input byte into 8 bits
// verbatim. Callers choose the byte interpretation (UTF-8 or Latin-1)
// before calling this.
func MakeBytes(data []byte) *Segment {
	bb := newBitWriter(len(data) * 8)
	for _, b := range data {
		_ = bb.write(int(b), 8)
	}
	return &Segment{Mode: Byte, NumChars: len(data), Data: bb.bits}
}

// jisX0208Range reports whether a Shift-JIS code point falls in either of
// the two double-byte kanji ranges QR mode supports, ISO/IEC 18004 §8.4.5.
func jisX0208Range(code int) bool {
	return (0x8140 <= code && code <= 0x9FFC) || (0xE040 <= code && code <= 0xEBBF)
}

// MakeKanji builds a kanji-mode segment from UTF-8 text whose runes all
// transcode to Shift-JIS double-byte code points in the JIS X 0208 ranges
// QR mode supports. Each code point is packed into 13 bits after the
// standard subrange-offset adjustment.
func MakeKanji(text string) (*Segment, error) {
	sjis, err := japanese.ShiftJIS.NewEncoder().String(text)
	if err != nil {
		return nil, &Error{Kind: UnsupportedCharacter, Msg: "content is not representable in Shift-JIS"}
	}
	if len(sjis)%2 != 0 {
		return nil, &Error{Kind: UnsupportedCharacter, Msg: "content is not pure double-byte Shift-JIS kanji"}
	}

	numChars := len(sjis) / 2
	bb := newBitWriter(numChars * 13)
	for i := 0; i < len(sjis); i += 2 {
		code := int(sjis[i])<<8 | int(sjis[i+1])
		if !jisX0208Range(code) {
			return nil, &Error{Kind: UnsupportedCharacter, Msg: fmt.Sprintf("shift-jis code point %#04x outside the kanji-mode subranges", code)}
		}
		if code <= 0x9FFC {
			code -= 0x8140
		} else {
			code -= 0xC140
		}
		packed := (code>>8)*0xC0 + (code & 0xFF)
		_ = bb.write(packed, 13)
	}
	return &Segment{Mode: Kanji, NumChars: numChars, Data: bb.bits}, nil
}

// MakeECI builds an ECI pseudo-segment carrying just the designator header:
// 8 bits for designators below 128, a 2-bit "10" prefix plus 14 bits for
// designators below 16384, or a 3-bit "110" prefix plus 21 bits for
// designators below 1,000,000. Larger designators fail with InvalidArgument.
func MakeECI(designator int) (*Segment, error) {
	if designator < 0 {
		return nil, &Error{Kind: InvalidArgument, Msg: "ECI designator must be non-negative"}
	}

	bb := newBitWriter(24)
	switch {
	case designator < 1<<7:
		_ = bb.write(designator, 8)
	case designator < 1<<14:
		_ = bb.write(2, 2)
		_ = bb.write(designator, 14)
	case designator < 1_000_000:
		_ = bb.write(6, 3)
		_ = bb.write(designator, 21)
	default:
		return nil, &Error{Kind: InvalidArgument, Msg: "ECI designator out of range"}
	}

	return &Segment{Mode: eci, NumChars: 0, Data: bb.bits}, nil
}

// byteInterpretation controls how MakeSegments encodes a byte-mode segment
// when the content isn't numeric or alphanumeric.
type byteInterpretation int8

const (
	latin1 byteInterpretation = iota
	utf8Interp
)

// MakeSegments chooses the most compact mode for text (numeric,
// alphanumeric, or byte) and returns the resulting single segment. Byte mode
// uses the given interpretation to turn text into bytes: UTF-8 passes the
// string through unchanged; Latin-1 requires every rune to fit in a single
// byte and fails with UnsupportedCharacter otherwise.
func MakeSegments(text string, interp byteInterpretation) ([]*Segment, error) {
	if len(text) == 0 {
		// Empty content still carries one zero-length byte segment rather
		// than no segment at all, so the symbol it produces is a normal
		// byte-mode QR code and not a degenerate empty-segment case.
		return []*Segment{MakeBytes(nil)}, nil
	}

	if numericRegexp.MatchString(text) {
		return []*Segment{makeNumericSegment(text)}, nil
	}

	if alphanumericRegexp.MatchString(text) {
		return []*Segment{makeAlphanumericSegment(text)}, nil
	}

	if interp == utf8Interp {
		return []*Segment{MakeBytes([]byte(text))}, nil
	}

	latin1Bytes := make([]byte, 0, len(text))
	for _, r := range text {
		if r > 0xFF || r == utf8.RuneError {
			return nil, &Error{Kind: UnsupportedCharacter, Msg: fmt.Sprintf("character %q has no Latin-1 representation; request ECI=26 for UTF-8 byte mode", r)}
		}
		latin1Bytes = append(latin1Bytes, byte(r))
	}
	return []*Segment{MakeBytes(latin1Bytes)}, nil
}

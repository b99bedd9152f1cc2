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

func TestRawDataRoundTrip(t *testing.T) {
	for _, ecc := range []ECC{Low, Medium, Quartile, High} {
		for v := Version(1); v <= 40; v += 7 {
			t.Run(fmt.Sprintf("TestRawDataRoundTrip ecc=%s v=%d", ecc, v), func(t *testing.T) {
				m, err := Encode("payload", ecc, WithVersion(v))
				assert.Nil(t, err)

				raw, err := m.RawData()
				assert.Nil(t, err)

				back, err := FromRawData(raw, m.QuietZone())
				assert.Nil(t, err)

				assert.Equal(t, m.Size(), back.Size())
				for row := 0; row < m.Size(); row++ {
					for col := 0; col < m.Size(); col++ {
						assert.Equal(t, m.Get(row, col), back.Get(row, col))
					}
				}
			})
		}
	}
}

func TestRawDataLosesMetadata(t *testing.T) {
	m, err := Encode("hello", Low)
	assert.Nil(t, err)

	raw, err := m.RawData()
	assert.Nil(t, err)

	back, err := FromRawData(raw, 4)
	assert.Nil(t, err)
	assert.Equal(t, UnknownVersion, back.Version())
	assert.Equal(t, UnknownECC, back.ECCLevel())
	assert.Equal(t, UnknownMask, back.MaskIndex())
}

func TestRawDataFirstByteIsSize(t *testing.T) {
	m, err := Encode("hello", Low)
	assert.Nil(t, err)
	raw, err := m.RawData()
	assert.Nil(t, err)
	assert.Equal(t, byte(m.Size()), raw[0])
	assert.Equal(t, 1+(m.Size()*m.Size()+7)/8, len(raw))
}

func TestFromRawDataRejectsNegativeQuietZone(t *testing.T) {
	_, err := FromRawData([]byte{21}, -1)
	assert.NotNil(t, err)
}

func TestFromRawDataRejectsEmptyInput(t *testing.T) {
	_, err := FromRawData(nil, 4)
	assert.NotNil(t, err)
}

func TestFromRawDataRejectsLengthMismatch(t *testing.T) {
	_, err := FromRawData([]byte{21, 0x00}, 4)
	assert.NotNil(t, err)
	var qerr *Error
	assert.ErrorAs(t, err, &qerr)
	assert.Equal(t, InvalidArgument, qerr.Kind)
}

func TestGetOutOfRangeIsLight(t *testing.T) {
	m, err := Encode("hello", Low)
	assert.Nil(t, err)
	assert.False(t, m.Get(-1, 0))
	assert.False(t, m.Get(0, -1))
	assert.False(t, m.Get(m.Size(), 0))
	assert.False(t, m.Get(0, m.Size()))
}

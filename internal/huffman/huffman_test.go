// Copyright 2017 Hajime Hoshi
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/mpegkit/layer3/internal/bits"
)

func TestDecodeTableZero(t *testing.T) {
	r := bits.New([]byte{0xff})

	x, y, v, w, err := Decode(r, 0)
	require.NoError(t, err)
	assert.Equal(t, [4]int{0, 0, 0, 0}, [4]int{x, y, v, w})
	assert.Equal(t, 0, r.BitPos())
}

func TestDecodeTableOne(t *testing.T) {
	// Codeword "1" is the (0, 0) pair; no sign bits follow zeros.
	r := bits.New([]byte{0b10000000})

	x, y, _, _, err := Decode(r, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, 1, r.BitPos())

	// Codeword "01" is (1, 0); one sign bit follows for x. Sign bit 1
	// negates.
	r = bits.New([]byte{0b01100000})

	x, y, _, _, err = Decode(r, 1)
	require.NoError(t, err)
	assert.Equal(t, -1, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, 3, r.BitPos())

	// Codeword "001" is (0, 1) with a positive sign bit.
	r = bits.New([]byte{0b00100000})

	x, y, _, _, err = Decode(r, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, y)
	assert.Equal(t, 4, r.BitPos())
}

func TestDecodeQuadTreeZeroEntry(t *testing.T) {
	// The all-zero quadruple is the single-bit codeword "1"; no sign bits
	// are read after it.
	r := bits.New([]byte{0b10000000})

	x, y, v, w, err := Decode(r, 32)
	require.NoError(t, err)
	assert.Equal(t, [4]int{0, 0, 0, 0}, [4]int{v, w, x, y})
	assert.Equal(t, 1, r.BitPos())
}

func TestDecodeQuadLiteral(t *testing.T) {
	// Table 33 complements 4 literal bits: 0000 -> all components set, then
	// four sign bits.
	r := bits.New([]byte{0b00001111})

	x, y, v, w, err := Decode(r, 33)
	require.NoError(t, err)
	assert.Equal(t, [4]int{-1, -1, -1, -1}, [4]int{v, w, x, y})
	assert.Equal(t, 8, r.BitPos())

	r = bits.New([]byte{0b11110000})

	x, y, v, w, err = Decode(r, 33)
	require.NoError(t, err)
	assert.Equal(t, [4]int{0, 0, 0, 0}, [4]int{v, w, x, y})
	assert.Equal(t, 4, r.BitPos())
}

func TestDecodeUnusableTables(t *testing.T) {
	for _, tableNum := range []int{4, 14, 34, -1} {
		r := bits.New([]byte{0xff, 0xff, 0xff, 0xff})

		_, _, _, _, err := Decode(r, tableNum)
		assert.Error(t, err, "table %d", tableNum)
	}
}

func TestDecodeOverrun(t *testing.T) {
	r := bits.New(nil)

	_, _, _, _, err := Decode(r, 13)
	assert.Error(t, err)
}

// Every pair table is a complete prefix code, so any sufficiently long bit
// string decodes without error and within the deepest codeword plus escapes
// and signs.
func TestDecodeAnyBitsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tableNum := rapid.SampledFrom([]int{
			1, 2, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15,
			16, 17, 18, 19, 20, 21, 22, 23,
			24, 25, 26, 27, 28, 29, 30, 31, 32,
		}).Draw(t, "table")
		data := rapid.SliceOfN(rapid.Byte(), 12, 12).Draw(t, "data")

		r := bits.New(data)

		x, y, v, w, err := Decode(r, tableNum)
		if err != nil {
			t.Fatalf("table %d: %v", tableNum, err)
		}

		if tableNum == 32 {
			for _, q := range []int{v, w, x, y} {
				if q < -1 || q > 1 {
					t.Fatalf("quad component %d out of range", q)
				}
			}
		}

		// 19 codeword bits + 2x(13 linbits + sign) at most.
		if r.BitPos() > 19+2*14 {
			t.Fatalf("consumed %d bits", r.BitPos())
		}
	})
}

func TestTreesShareEscapeTables(t *testing.T) {
	assert.Same(t, pairTrees[16], pairTrees[23])
	assert.Same(t, pairTrees[24], pairTrees[31])
	assert.NotSame(t, pairTrees[16], pairTrees[24])
}

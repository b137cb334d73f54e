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

package bits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/mpegkit/layer3/internal/bits"
)

func TestBits(t *testing.T) {
	b := bits.New([]byte{
		85,  // 01010101
		170, // 10101010
		204, // 11001100
		51,  // 00110011
	})

	assert.Equal(t, uint32(0), b.Bits(1))
	assert.Equal(t, uint32(1), b.Bits(1))
	assert.Equal(t, uint32(0), b.Bits(1))
	assert.Equal(t, uint32(1), b.Bits(1))
	assert.Equal(t, uint32(90), b.Bits(8))    // 01011010
	assert.Equal(t, uint32(2764), b.Bits(12)) // 101011001100
	assert.False(t, b.Overrun())
}

func TestBitsThirteenBitReads(t *testing.T) {
	b := bits.New([]byte{0xad, 0x72, 0x26, 0x1b})

	assert.Equal(t, uint32(5550), b.Bits(13)) // 1010110101110
	assert.Equal(t, uint32(2200), b.Bits(13)) // 0100010011000
	assert.Equal(t, 26, b.BitPos())           // byte 3, bit 2
	assert.False(t, b.Overrun())
}

func TestBitsOverrun(t *testing.T) {
	b := bits.New([]byte{0xff})

	assert.Equal(t, uint32(0xff), b.Bits(8))
	require.False(t, b.Overrun())

	assert.Equal(t, uint32(0), b.Bits(1))
	assert.True(t, b.Overrun())

	// SetBitPos clears the latch.
	b.SetBitPos(4)
	assert.False(t, b.Overrun())
	assert.Equal(t, uint32(0xf), b.Bits(4))
}

func TestBitsRejectsWideReads(t *testing.T) {
	b := bits.New(make([]byte, 16))

	assert.Equal(t, uint32(0), b.Bits(33))
	assert.True(t, b.Overrun())
}

func TestPeek32(t *testing.T) {
	b := bits.New([]byte{0xad, 0x72, 0x26, 0x1b})

	assert.Equal(t, uint32(0xad72261b), b.Peek32(0))
	assert.Equal(t, uint32(0xd72261b0), b.Peek32(4))
	assert.Equal(t, 0, b.BitPos())
}

func TestBitsMatchSingleBitReads(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 4, 64).Draw(t, "data")
		n := rapid.IntRange(1, 32).Draw(t, "n")

		wide := bits.New(data)
		narrow := bits.New(data)

		v := wide.Bits(n)

		acc := uint32(0)
		for range n {
			acc = acc<<1 | narrow.Bit()
		}

		if v != acc {
			t.Fatalf("Bits(%d) = %d, bitwise accumulation = %d", n, v, acc)
		}
		if wide.BitPos() != narrow.BitPos() {
			t.Fatalf("cursor mismatch: %d vs %d", wide.BitPos(), narrow.BitPos())
		}
	})
}

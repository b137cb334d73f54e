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

package sideinfo_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpegkit/layer3/internal/consts"
	"github.com/mpegkit/layer3/internal/frameheader"
	"github.com/mpegkit/layer3/internal/sideinfo"
)

var (
	stereoHeader = frameheader.FromBytes([]byte{0xff, 0xfb, 0x90, 0x44})
	monoHeader   = frameheader.FromBytes([]byte{0xff, 0xfb, 0x90, 0xc4})
)

func TestParseAllZero(t *testing.T) {
	si, err := sideinfo.Parse(make([]byte, 32), stereoHeader)
	require.NoError(t, err)

	assert.Equal(t, 0, si.MainDataBegin)
	for gr := range 2 {
		for ch := range 2 {
			assert.Equal(t, 0, si.Part2And3Length[gr][ch])
			assert.Equal(t, 0, si.BigValues[gr][ch])
			assert.Equal(t, 0, si.WinSwitchFlag[gr][ch])
			assert.Equal(t, 0, si.BlockType[gr][ch])
			assert.Equal(t, 0, si.Region0Count[gr][ch])
		}
	}
}

func TestParseNormalWindows(t *testing.T) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	w.TryWriteBits(511, 9) // main_data_begin
	w.TryWriteBits(0, 3)   // private bits
	w.TryWriteBits(0xa, 4) // scfsi ch 0: 1010
	w.TryWriteBits(0x5, 4) // scfsi ch 1: 0101

	for range 2 { // granules
		for range 2 { // channels
			w.TryWriteBits(1234, 12) // part2_3_length
			w.TryWriteBits(120, 9)   // big_values
			w.TryWriteBits(210, 8)   // global_gain
			w.TryWriteBits(5, 4)     // scalefac_compress
			w.TryWriteBits(0, 1)     // window_switching off
			w.TryWriteBits(7, 5)     // table_select[0]
			w.TryWriteBits(13, 5)    // table_select[1]
			w.TryWriteBits(24, 5)    // table_select[2]
			w.TryWriteBits(6, 4)     // region0_count
			w.TryWriteBits(3, 3)     // region1_count
			w.TryWriteBits(1, 1)     // preflag
			w.TryWriteBits(1, 1)     // scalefac_scale
			w.TryWriteBits(0, 1)     // count1table_select
		}
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.TryError)
	require.Len(t, buf.Bytes(), 32)

	si, err := sideinfo.Parse(buf.Bytes(), stereoHeader)
	require.NoError(t, err)

	assert.Equal(t, 511, si.MainDataBegin)
	assert.Equal(t, [2][4]int{{1, 0, 1, 0}, {0, 1, 0, 1}}, si.Scfsi)

	for gr := range 2 {
		for ch := range 2 {
			assert.Equal(t, 1234, si.Part2And3Length[gr][ch])
			assert.Equal(t, 120, si.BigValues[gr][ch])
			assert.Equal(t, 210, si.GlobalGain[gr][ch])
			assert.Equal(t, 5, si.ScalefacCompress[gr][ch])
			assert.Equal(t, 0, si.WinSwitchFlag[gr][ch])
			assert.Equal(t, 0, si.BlockType[gr][ch])
			assert.Equal(t, [3]int{7, 13, 24}, si.TableSelect[gr][ch])
			assert.Equal(t, 6, si.Region0Count[gr][ch])
			assert.Equal(t, 3, si.Region1Count[gr][ch])
			assert.Equal(t, 1, si.Preflag[gr][ch])
			assert.Equal(t, 1, si.ScalefacScale[gr][ch])
			assert.Equal(t, 0, si.Count1TableSelect[gr][ch])
		}
	}
}

func TestParseWindowSwitching(t *testing.T) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	w.TryWriteBits(0, 9) // main_data_begin
	w.TryWriteBits(0, 5) // private bits (mono)
	w.TryWriteBits(0, 4) // scfsi

	for range 2 { // granules, one channel
		w.TryWriteBits(100, 12) // part2_3_length
		w.TryWriteBits(30, 9)   // big_values
		w.TryWriteBits(180, 8)  // global_gain
		w.TryWriteBits(2, 4)    // scalefac_compress
		w.TryWriteBits(1, 1)    // window_switching on
		w.TryWriteBits(2, 2)    // block_type: short
		w.TryWriteBits(0, 1)    // mixed_block_flag
		w.TryWriteBits(9, 5)    // table_select[0]
		w.TryWriteBits(11, 5)   // table_select[1]
		w.TryWriteBits(1, 3)    // subblock_gain[0]
		w.TryWriteBits(2, 3)    // subblock_gain[1]
		w.TryWriteBits(3, 3)    // subblock_gain[2]
		w.TryWriteBits(0, 1)    // preflag
		w.TryWriteBits(0, 1)    // scalefac_scale
		w.TryWriteBits(1, 1)    // count1table_select
	}

	require.NoError(t, w.Close())
	require.Len(t, buf.Bytes(), 17)

	si, err := sideinfo.Parse(buf.Bytes(), monoHeader)
	require.NoError(t, err)

	for gr := range 2 {
		assert.Equal(t, 1, si.WinSwitchFlag[gr][0])
		assert.Equal(t, 2, si.BlockType[gr][0])
		assert.Equal(t, 0, si.MixedBlockFlag[gr][0])
		assert.Equal(t, 9, si.TableSelect[gr][0][0])
		assert.Equal(t, 11, si.TableSelect[gr][0][1])
		assert.Equal(t, [3]int{1, 2, 3}, si.SubblockGain[gr][0])

		// Implicit region counts for pure short blocks.
		assert.Equal(t, 8, si.Region0Count[gr][0])
		assert.Equal(t, 12, si.Region1Count[gr][0])

		assert.Equal(t, 1, si.Count1TableSelect[gr][0])
	}
}

func TestParseTruncated(t *testing.T) {
	_, err := sideinfo.Parse(make([]byte, 16), stereoHeader)
	require.Error(t, err)

	var trunc *consts.TruncatedInputError
	assert.True(t, errors.As(err, &trunc))
	assert.Equal(t, consts.CodeTruncatedInput, trunc.Code())
}

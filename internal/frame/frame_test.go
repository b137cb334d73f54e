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

package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpegkit/layer3/internal/consts"
	"github.com/mpegkit/layer3/internal/frameheader"
	"github.com/mpegkit/layer3/internal/maindata"
	"github.com/mpegkit/layer3/internal/sideinfo"
)

var (
	stereoHeader    = frameheader.FromBytes([]byte{0xff, 0xfb, 0x90, 0x44})
	msStereoHeader  = frameheader.FromBytes([]byte{0xff, 0xfb, 0x90, 0x64})
	intensityHeader = frameheader.FromBytes([]byte{0xff, 0xfb, 0x90, 0x54})
	monoHeader      = frameheader.FromBytes([]byte{0xff, 0xfb, 0x90, 0xc4})
)

func newTestFrame(h frameheader.FrameHeader) *Frame {
	return New(h, &sideinfo.SideInfo{}, &maindata.MainData{})
}

func TestClampPCM(t *testing.T) {
	assert.Equal(t, int16(32767), clampPCM(32766.5))
	assert.Equal(t, int16(32767), clampPCM(40000))
	assert.Equal(t, int16(-32768), clampPCM(-32767.5))
	assert.Equal(t, int16(-32768), clampPCM(-40000))
	assert.Equal(t, int16(0), clampPCM(0))
	assert.Equal(t, int16(0), clampPCM(0.4))
	assert.Equal(t, int16(1), clampPCM(0.6))
	assert.Equal(t, int16(0), clampPCM(-0.4))
	assert.Equal(t, int16(-1), clampPCM(-0.6))
	assert.Equal(t, int16(2), clampPCM(1.6))
	assert.Equal(t, int16(100), clampPCM(99.7))
}

func TestFrequencyInversion(t *testing.T) {
	f := newTestFrame(monoHeader)

	for i := range f.mainData.Is[0][0] {
		f.mainData.Is[0][0][i] = 1
	}

	f.frequencyInversion(0, 0)

	for sb := range 32 {
		for i := range 18 {
			want := float32(1)
			if sb%2 == 1 && i%2 == 1 {
				want = -1
			}

			require.Equal(t, want, f.mainData.Is[0][0][sb*18+i], "subband %d sample %d", sb, i)
		}
	}
}

func TestMidSideStereo(t *testing.T) {
	f := newTestFrame(msStereoHeader)
	f.sideInfo.Count1[0][0] = 2
	f.sideInfo.Count1[0][1] = 2

	f.mainData.Is[0][0][0] = 1 // mid
	f.mainData.Is[0][1][0] = 0 // side
	f.mainData.Is[0][0][1] = 1
	f.mainData.Is[0][1][1] = 1

	f.stereo(0)

	invSqrt2 := float32(math.Sqrt2 / 2)

	assert.InDelta(t, float64(invSqrt2), float64(f.mainData.Is[0][0][0]), 1e-6)
	assert.InDelta(t, float64(invSqrt2), float64(f.mainData.Is[0][1][0]), 1e-6)
	assert.InDelta(t, float64(2*invSqrt2), float64(f.mainData.Is[0][0][1]), 1e-6)
	assert.InDelta(t, float64(0), float64(f.mainData.Is[0][1][1]), 1e-6)
}

func TestIntensityStereoLong(t *testing.T) {
	f := newTestFrame(intensityHeader)

	// Right channel coded out from the start; band 0 carries is_pos 6,
	// which steers the whole image left.
	f.sideInfo.Count1[0][0] = 576
	f.sideInfo.Count1[0][1] = 0
	f.mainData.ScalefacL[0][0][0] = 6

	// Band 1 carries is_pos 3 (45 degrees, equal weights).
	f.mainData.ScalefacL[0][0][1] = 3

	// Band 2 is disabled by is_pos 7: channel values stay as they are.
	f.mainData.ScalefacL[0][0][2] = 7

	for i := range 12 {
		f.mainData.Is[0][0][i] = 2
		f.mainData.Is[0][1][i] = 9 // zero-coded in real streams; must be overwritten
	}

	f.stereo(0)

	long := &consts.SfBandIndexLong[0]

	for i := long[0]; i < long[1]; i++ {
		assert.Equal(t, float32(2), f.mainData.Is[0][0][i])
		assert.Equal(t, float32(0), f.mainData.Is[0][1][i])
	}
	for i := long[1]; i < long[2]; i++ {
		assert.InDelta(t, 1.0, float64(f.mainData.Is[0][0][i]), 1e-6)
		assert.InDelta(t, 1.0, float64(f.mainData.Is[0][1][i]), 1e-6)
	}
	for i := long[2]; i < long[3]; i++ {
		assert.Equal(t, float32(2), f.mainData.Is[0][0][i])
		assert.Equal(t, float32(9), f.mainData.Is[0][1][i])
	}
}

func TestAntialiasSkipsPureShortBlocks(t *testing.T) {
	f := newTestFrame(monoHeader)
	f.sideInfo.WinSwitchFlag[0][0] = 1
	f.sideInfo.BlockType[0][0] = 2

	for i := range f.mainData.Is[0][0] {
		f.mainData.Is[0][0][i] = float32(i)
	}

	before := f.mainData.Is[0][0]

	f.antialias(0, 0)

	assert.Equal(t, before, f.mainData.Is[0][0])
}

func TestAntialiasButterfly(t *testing.T) {
	f := newTestFrame(monoHeader)

	f.mainData.Is[0][0][17] = 1 // lower edge of subband boundary 1
	f.mainData.Is[0][0][18] = 1 // upper edge

	f.antialias(0, 0)

	lb := antialiasCS[0] - antialiasCA[0]
	ub := antialiasCS[0] + antialiasCA[0]

	assert.InDelta(t, float64(lb), float64(f.mainData.Is[0][0][17]), 1e-6)
	assert.InDelta(t, float64(ub), float64(f.mainData.Is[0][0][18]), 1e-6)
}

func TestRequantizeUnityPoint(t *testing.T) {
	// global_gain 210 with zero scale factors leaves a unit coefficient
	// untouched: 1^(4/3) * 2^0 * 2^0 = 1.
	f := newTestFrame(monoHeader)
	f.sideInfo.GlobalGain[0][0] = 210
	f.sideInfo.Count1[0][0] = 4

	f.mainData.Is[0][0][0] = 1
	f.mainData.Is[0][0][1] = -1
	f.mainData.Is[0][0][2] = 8

	f.requantize(0, 0)

	assert.InDelta(t, 1.0, float64(f.mainData.Is[0][0][0]), 1e-6)
	assert.InDelta(t, -1.0, float64(f.mainData.Is[0][0][1]), 1e-6)
	assert.InDelta(t, math.Pow(8, 4.0/3.0), float64(f.mainData.Is[0][0][2]), 1e-4)
}

func TestRequantizeGlobalGainStep(t *testing.T) {
	// Four gain steps halve or double the output.
	for _, tc := range []struct {
		gain  int
		wantX float64
	}{
		{206, 0.5},
		{210, 1.0},
		{214, 2.0},
	} {
		f := newTestFrame(monoHeader)
		f.sideInfo.GlobalGain[0][0] = tc.gain
		f.sideInfo.Count1[0][0] = 1
		f.mainData.Is[0][0][0] = 1

		f.requantize(0, 0)

		assert.InDelta(t, tc.wantX, float64(f.mainData.Is[0][0][0]), 1e-6, "gain %d", tc.gain)
	}
}

func TestDecodeSilence(t *testing.T) {
	var st State

	f := newTestFrame(stereoHeader)

	pcm := f.Decode(&st)

	require.Len(t, pcm, consts.SamplesPerFrame*2)
	for i, v := range pcm {
		require.Equal(t, int16(0), v, "sample %d", i)
	}
}

func TestDecodeMonoLength(t *testing.T) {
	var st State

	f := newTestFrame(monoHeader)

	pcm := f.Decode(&st)
	assert.Len(t, pcm, consts.SamplesPerFrame)
}

func TestDecodeDeterminism(t *testing.T) {
	var st1, st2 State

	mk := func() *Frame {
		f := newTestFrame(stereoHeader)
		f.sideInfo.GlobalGain[0][0] = 150
		f.sideInfo.Count1[0][0] = 32
		for i := range 32 {
			f.mainData.Is[0][0][i] = float32(i%7) - 3
		}

		return f
	}

	pcm1 := mk().Decode(&st1)
	pcm2 := mk().Decode(&st2)

	assert.Equal(t, pcm1, pcm2)
}

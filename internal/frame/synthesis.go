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

	"github.com/mpegkit/layer3/internal/consts"
	"github.com/mpegkit/layer3/internal/imdct"
)

// hybridSynthesis runs the windowed IMDCT over the 32 subbands of one
// granule and channel and overlap-adds the half stored by the previous
// granule's transform. Mixed blocks use the long window for the bottom two
// subbands.
func (f *Frame) hybridSynthesis(st *State, gr, ch int) {
	for sb := range 32 {
		blockType := f.sideInfo.BlockType[gr][ch]
		if f.sideInfo.WinSwitchFlag[gr][ch] == 1 && f.sideInfo.MixedBlockFlag[gr][ch] == 1 && sb < 2 {
			blockType = 0
		}

		var in [18]float32
		for i := range in {
			in[i] = f.mainData.Is[gr][ch][sb*18+i]
		}

		raw := imdct.Win(&in, blockType)

		for i := range 18 {
			f.mainData.Is[gr][ch][sb*18+i] = raw[i] + st.overlap[ch][sb][i]
			st.overlap[ch][sb][i] = raw[i+18]
		}
	}
}

// frequencyInversion negates every odd sample of every odd subband, undoing
// the spectrum inversion the analysis filterbank applies there.
func (f *Frame) frequencyInversion(gr, ch int) {
	for sb := 1; sb < 32; sb += 2 {
		for i := 1; i < 18; i += 2 {
			f.mainData.Is[gr][ch][sb*18+i] = -f.mainData.Is[gr][ch][sb*18+i]
		}
	}
}

// synthNWin is the polyphase matrixing table, cos((16+i)(2j+1)pi/64).
var synthNWin = [64][32]float32{}

func init() {
	for i := range 64 {
		for j := range 32 {
			synthNWin[i][j] = float32(math.Cos(float64((16+i)*(2*j+1)) * (math.Pi / 64.0)))
		}
	}
}

// subbandSynthesis runs the polyphase synthesis filterbank over one granule
// and channel and writes its 576 PCM samples into out, interleaved by
// channel.
func (f *Frame) subbandSynthesis(st *State, gr, ch int, out []int16) {
	nch := f.header.NumberOfChannels()

	var uVec [512]float32
	var sVec [32]float32

	fifo := &st.fifo[ch]

	for ss := range 18 {
		// Age the FIFO by one 64-sample slot.
		copy(fifo[64:], fifo[:1024-64])

		d := &f.mainData.Is[gr][ch]
		for i := range 32 {
			sVec[i] = d[i*18+ss]
		}

		for i := range 64 {
			sum := float32(0)
			for j := range 32 {
				sum += synthNWin[i][j] * sVec[j]
			}

			fifo[i] = sum
		}

		for i := 0; i < 512; i += 64 {
			copy(uVec[i:i+32], fifo[i*2:i*2+32])
			copy(uVec[i+32:i+64], fifo[i*2+96:i*2+128])
		}

		for i := range uVec {
			uVec[i] *= synthDtbl[i]
		}

		for i := range 32 {
			sum := float32(0)
			for j := 0; j < 512; j += 32 {
				sum += uVec[j+i]
			}

			idx := (consts.SamplesPerGranule*gr + 32*ss + i) * nch
			out[idx+ch] = clampPCM(sum * 32767)
		}
	}
}

// clampPCM saturates a scaled sample to int16, rounding half away from zero.
func clampPCM(v float32) int16 {
	switch {
	case v >= 32766.5:
		return 32767
	case v <= -32767.5:
		return -32768
	case v >= 0:
		return int16(v + 0.5)
	default:
		return int16(v - 0.5)
	}
}

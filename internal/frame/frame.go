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

// Package frame turns the decoded main data of one frame into PCM: it
// requantizes the coefficients, applies stereo processing, reordering and
// anti-aliasing, and runs the hybrid and polyphase synthesis filterbanks.
package frame

import (
	"github.com/mpegkit/layer3/internal/consts"
	"github.com/mpegkit/layer3/internal/frameheader"
	"github.com/mpegkit/layer3/internal/maindata"
	"github.com/mpegkit/layer3/internal/sideinfo"
)

// State is the DSP state that persists across frames: the overlap-add store
// of the hybrid filterbank and the polyphase synthesis FIFO, per channel.
// The zero value is the reset state.
type State struct {
	overlap [2][32][18]float32
	fifo    [2][1024]float32
}

// Reset clears overlap and FIFO, as after a seek.
func (s *State) Reset() {
	*s = State{}
}

// Frame is one parsed frame ready for synthesis.
type Frame struct {
	header   frameheader.FrameHeader
	sideInfo *sideinfo.SideInfo
	mainData *maindata.MainData
}

func New(header frameheader.FrameHeader, si *sideinfo.SideInfo, md *maindata.MainData) *Frame {
	return &Frame{header: header, sideInfo: si, mainData: md}
}

// Header returns the frame's header.
func (f *Frame) Header() frameheader.FrameHeader {
	return f.header
}

// Decode runs the synthesis pipeline over both granules and returns the
// frame's PCM, interleaved by channel, NumberOfChannels values per sample.
// st is advanced as a side effect.
func (f *Frame) Decode(st *State) []int16 {
	nch := f.header.NumberOfChannels()
	out := make([]int16, consts.SamplesPerFrame*nch)

	for gr := range f.header.Granules() {
		for ch := range nch {
			f.requantize(gr, ch)
			f.reorder(gr, ch)
		}

		f.stereo(gr)

		for ch := range nch {
			f.antialias(gr, ch)
			f.hybridSynthesis(st, gr, ch)
			f.frequencyInversion(gr, ch)
			f.subbandSynthesis(st, gr, ch, out)
		}
	}

	return out
}

func (f *Frame) bandIndices() (long *[23]int, short *[14]int) {
	sfreq := f.header.SamplingFrequency()

	return &consts.SfBandIndexLong[sfreq], &consts.SfBandIndexShort[sfreq]
}

func (f *Frame) shortBlocks(gr, ch int) bool {
	return f.sideInfo.WinSwitchFlag[gr][ch] == 1 && f.sideInfo.BlockType[gr][ch] == 2
}

// reorder interleaves the three windows of each short-block band so the
// coefficients of one time slot sit together, the layout the antialias and
// hybrid stages expect. Long blocks pass through untouched.
func (f *Frame) reorder(gr, ch int) {
	if !f.shortBlocks(gr, ch) {
		return
	}

	_, short := f.bandIndices()

	var re [consts.SamplesPerGranule]float32

	sfb := 0
	if f.sideInfo.MixedBlockFlag[gr][ch] != 0 {
		// The first two subbands hold long blocks; short bands start at 3.
		sfb = 3
	}

	nextSfb := short[sfb+1] * 3
	winLen := short[sfb+1] - short[sfb]

	i := 36
	if sfb == 0 {
		i = 0
	}

	for i < consts.SamplesPerGranule {
		if i == nextSfb {
			j := 3 * short[sfb]
			copy(f.mainData.Is[gr][ch][j:j+3*winLen], re[:3*winLen])

			// Bands above the rzero region stay zero; nothing to reorder.
			if i >= f.sideInfo.Count1[gr][ch] {
				return
			}

			sfb++
			nextSfb = short[sfb+1] * 3
			winLen = short[sfb+1] - short[sfb]
		}

		for win := range 3 {
			for j := 0; j < winLen; j++ {
				re[j*3+win] = f.mainData.Is[gr][ch][i]
				i++
			}
		}
	}

	j := 3 * short[12]
	copy(f.mainData.Is[gr][ch][j:j+3*winLen], re[:3*winLen])
}

// Butterfly coefficients of the eight anti-alias pairs per subband boundary.
var (
	antialiasCS = [8]float32{0.857493, 0.881742, 0.949629, 0.983315, 0.995518, 0.999161, 0.999899, 0.999993}
	antialiasCA = [8]float32{-0.514496, -0.471732, -0.313377, -0.181913, -0.094574, -0.040966, -0.014199, -0.003700}
)

// antialias runs the butterflies across subband boundaries. Pure short
// blocks skip it; mixed blocks process only the boundary below subband 1.
func (f *Frame) antialias(gr, ch int) {
	if f.shortBlocks(gr, ch) && f.sideInfo.MixedBlockFlag[gr][ch] == 0 {
		return
	}

	sblim := 32
	if f.shortBlocks(gr, ch) && f.sideInfo.MixedBlockFlag[gr][ch] == 1 {
		sblim = 2
	}

	for sb := 1; sb < sblim; sb++ {
		for i := range 8 {
			li := 18*sb - 1 - i
			ui := 18*sb + i

			lb := f.mainData.Is[gr][ch][li]*antialiasCS[i] - f.mainData.Is[gr][ch][ui]*antialiasCA[i]
			ub := f.mainData.Is[gr][ch][ui]*antialiasCS[i] + f.mainData.Is[gr][ch][li]*antialiasCA[i]

			f.mainData.Is[gr][ch][li] = lb
			f.mainData.Is[gr][ch][ui] = ub
		}
	}
}

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
)

// pow43 caches |is|^(4/3) for every magnitude a code table with 13 linbits
// can produce (escape 15 + 2^13 - 1).
var pow43 = [8207]float64{}

func init() {
	for i := range pow43 {
		pow43[i] = math.Pow(float64(i), 4.0/3.0)
	}
}

// requantize maps the integer coefficients of one granule and channel to
// spectral values: sign(is) * |is|^(4/3) * 2^(A/4) * 2^(-B), with A from the
// gains and B from the scale factors of the covering band.
func (f *Frame) requantize(gr, ch int) {
	long, short := f.bandIndices()

	if f.shortBlocks(gr, ch) {
		if f.sideInfo.MixedBlockFlag[gr][ch] != 0 {
			// The two long-block subbands cover the first 8 long bands.
			sfb := 0
			nextSfb := long[sfb+1]

			for i := range 36 {
				if i == nextSfb {
					sfb++
					nextSfb = long[sfb+1]
				}

				f.requantizeLong(gr, ch, i, sfb)
			}

			sfb = 3
			nextSfb = short[sfb+1] * 3
			winLen := short[sfb+1] - short[sfb]

			for i := 36; i < f.sideInfo.Count1[gr][ch]; {
				if i == nextSfb {
					sfb++
					nextSfb = short[sfb+1] * 3
					winLen = short[sfb+1] - short[sfb]
				}

				for win := range 3 {
					for range winLen {
						f.requantizeShort(gr, ch, i, sfb, win)
						i++
					}
				}
			}

			return
		}

		sfb := 0
		nextSfb := short[sfb+1] * 3
		winLen := short[sfb+1] - short[sfb]

		for i := 0; i < f.sideInfo.Count1[gr][ch]; {
			if i == nextSfb {
				sfb++
				nextSfb = short[sfb+1] * 3
				winLen = short[sfb+1] - short[sfb]
			}

			for win := range 3 {
				for range winLen {
					f.requantizeShort(gr, ch, i, sfb, win)
					i++
				}
			}
		}

		return
	}

	sfb := 0
	nextSfb := long[sfb+1]

	for i := range f.sideInfo.Count1[gr][ch] {
		if i == nextSfb {
			sfb++
			nextSfb = long[sfb+1]
		}

		f.requantizeLong(gr, ch, i, sfb)
	}
}

func (f *Frame) scalefacMult(gr, ch int) float64 {
	if f.sideInfo.ScalefacScale[gr][ch] != 0 {
		return 1.0
	}

	return 0.5
}

func (f *Frame) requantizeLong(gr, ch, pos, sfb int) {
	pretab := float64(f.sideInfo.Preflag[gr][ch]) * float64(consts.Pretab[sfb])

	exp := -(f.scalefacMult(gr, ch) * (float64(f.mainData.ScalefacL[gr][ch][sfb]) + pretab)) +
		0.25*(float64(f.sideInfo.GlobalGain[gr][ch])-210)

	f.mainData.Is[gr][ch][pos] = float32(math.Pow(2.0, exp) * f.pow43Signed(gr, ch, pos))
}

func (f *Frame) requantizeShort(gr, ch, pos, sfb, win int) {
	exp := -(f.scalefacMult(gr, ch) * float64(f.mainData.ScalefacS[gr][ch][sfb][win])) +
		0.25*(float64(f.sideInfo.GlobalGain[gr][ch])-210.0-
			8.0*float64(f.sideInfo.SubblockGain[gr][ch][win]))

	f.mainData.Is[gr][ch][pos] = float32(math.Pow(2.0, exp) * f.pow43Signed(gr, ch, pos))
}

func (f *Frame) pow43Signed(gr, ch, pos int) float64 {
	v := f.mainData.Is[gr][ch][pos]
	if v < 0 {
		return -pow43[int(-v)]
	}

	return pow43[int(v)]
}

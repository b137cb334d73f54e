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
)

// intensityRatios is tan(is_pos * pi / 12) for is_pos 0..5; is_pos 6 maps to
// a left-only band and 7 disables intensity processing for the band.
var intensityRatios = [6]float32{0.000000, 0.267949, 0.577350, 1.000000, 1.732051, 3.732051}

// stereo applies mid/side and intensity processing to granule gr, in place.
// The mode extension chooses either, both or none; intensity only touches
// bands above the right channel's rzero start.
func (f *Frame) stereo(gr int) {
	if f.header.UseMSStereo() {
		// Transform up to the higher of the two rzero starts.
		maxPos := f.sideInfo.Count1[gr][0]
		if f.sideInfo.Count1[gr][1] > maxPos {
			maxPos = f.sideInfo.Count1[gr][1]
		}

		const invSqrt2 = math.Sqrt2 / 2

		for i := range maxPos {
			left := (f.mainData.Is[gr][0][i] + f.mainData.Is[gr][1][i]) * invSqrt2
			right := (f.mainData.Is[gr][0][i] - f.mainData.Is[gr][1][i]) * invSqrt2

			f.mainData.Is[gr][0][i] = left
			f.mainData.Is[gr][1][i] = right
		}
	}

	if !f.header.UseIntensityStereo() {
		return
	}

	long, short := f.bandIndices()

	if f.shortBlocks(gr, 0) {
		if f.sideInfo.MixedBlockFlag[gr][0] != 0 {
			for sfb := range 8 {
				if long[sfb] >= f.sideInfo.Count1[gr][1] {
					f.intensityLong(gr, sfb)
				}
			}

			for sfb := 3; sfb < 12; sfb++ {
				if short[sfb]*3 >= f.sideInfo.Count1[gr][1] {
					f.intensityShort(gr, sfb)
				}
			}

			return
		}

		for sfb := range 12 {
			if short[sfb]*3 >= f.sideInfo.Count1[gr][1] {
				f.intensityShort(gr, sfb)
			}
		}

		return
	}

	for sfb := range 21 {
		if long[sfb] >= f.sideInfo.Count1[gr][1] {
			f.intensityLong(gr, sfb)
		}
	}
}

// intensityScale returns the left and right weights for an is_pos value
// below 7. is_pos 6 is the left axis of the position fan.
func intensityScale(isPos int) (left, right float32) {
	if isPos == 6 {
		return 1.0, 0.0
	}

	ratio := intensityRatios[isPos]

	return ratio / (1.0 + ratio), 1.0 / (1.0 + ratio)
}

func (f *Frame) intensityLong(gr, sfb int) {
	isPos := f.mainData.ScalefacL[gr][0][sfb]
	if isPos >= 7 {
		return
	}

	long, _ := f.bandIndices()

	left, right := intensityScale(isPos)

	for i := long[sfb]; i < long[sfb+1]; i++ {
		f.mainData.Is[gr][1][i] = f.mainData.Is[gr][0][i] * right
		f.mainData.Is[gr][0][i] *= left
	}
}

func (f *Frame) intensityShort(gr, sfb int) {
	_, short := f.bandIndices()

	winLen := short[sfb+1] - short[sfb]

	// Each of the three windows in the band carries its own position.
	for win := range 3 {
		isPos := f.mainData.ScalefacS[gr][0][sfb][win]
		if isPos >= 7 {
			continue
		}

		left, right := intensityScale(isPos)

		start := short[sfb]*3 + winLen*win
		for i := start; i < start+winLen; i++ {
			f.mainData.Is[gr][1][i] = f.mainData.Is[gr][0][i] * right
			f.mainData.Is[gr][0][i] *= left
		}
	}
}

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

// Package imdct provides the inverse modified discrete cosine transform of
// the Layer III hybrid filterbank: a 36-point transform for long blocks and
// three overlapped 12-point transforms for short blocks, both windowed.
package imdct

import (
	"math"
)

// windows holds the four block-type windows over 36 samples.
// Type 0 is a full sine window, type 1 starts long and stops short, type 3
// mirrors type 1, and type 2 carries the 12-point short window in its first
// 12 slots.
var windows = [4][36]float32{}

func init() {
	for i := range 36 {
		windows[0][i] = float32(math.Sin(math.Pi / 36 * (float64(i) + 0.5)))
	}

	for i := range 18 {
		windows[1][i] = float32(math.Sin(math.Pi / 36 * (float64(i) + 0.5)))
	}
	for i := 18; i < 24; i++ {
		windows[1][i] = 1.0
	}
	for i := 24; i < 30; i++ {
		windows[1][i] = float32(math.Sin(math.Pi / 12 * (float64(i) + 0.5 - 18.0)))
	}
	for i := 30; i < 36; i++ {
		windows[1][i] = 0.0
	}

	for i := range 12 {
		windows[2][i] = float32(math.Sin(math.Pi / 12 * (float64(i) + 0.5)))
	}
	for i := 12; i < 36; i++ {
		windows[2][i] = 0.0
	}

	for i := range 6 {
		windows[3][i] = 0.0
	}
	for i := 6; i < 12; i++ {
		windows[3][i] = float32(math.Sin(math.Pi / 12 * (float64(i) + 0.5 - 6.0)))
	}
	for i := 12; i < 18; i++ {
		windows[3][i] = 1.0
	}
	for i := 18; i < 36; i++ {
		windows[3][i] = float32(math.Sin(math.Pi / 36 * (float64(i) + 0.5)))
	}
}

// cos12 and cos36 are the precomputed IMDCT cosine matrices,
// cos(pi/2N * (2i + 1 + N/2) * (2k + 1)), indexed [k][i].
var (
	cos12 = [6][12]float32{}
	cos36 = [18][36]float32{}
)

func init() {
	for k := range 6 {
		for i := range 12 {
			cos12[k][i] = float32(math.Cos(math.Pi / 24 * float64(2*i+1+6) * float64(2*k+1)))
		}
	}

	for k := range 18 {
		for i := range 36 {
			cos36[k][i] = float32(math.Cos(math.Pi / 72 * float64(2*i+1+18) * float64(2*k+1)))
		}
	}
}

// Win transforms the 18 spectral lines of one subband into 36 windowed time
// samples. blockType selects the window; type 2 runs three overlapped
// 12-point transforms with zero padding at both ends.
func Win(in *[18]float32, blockType int) [36]float32 {
	var out [36]float32

	if blockType == 2 {
		win := &windows[2]

		for block := range 3 {
			for i := range 12 {
				sum := float32(0.0)
				for k := range 6 {
					sum += in[block+3*k] * cos12[k][i]
				}

				out[6*block+i+6] += sum * win[i]
			}
		}

		return out
	}

	win := &windows[blockType]

	for i := range 36 {
		sum := float32(0.0)
		for k := range 18 {
			sum += in[k] * cos36[k][i]
		}

		out[i] = sum * win[i]
	}

	return out
}

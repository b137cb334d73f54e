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

package imdct_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpegkit/layer3/internal/imdct"
)

func TestWinZeroInput(t *testing.T) {
	var in [18]float32

	for _, blockType := range []int{0, 1, 2, 3} {
		out := imdct.Win(&in, blockType)
		for i, v := range out {
			assert.Zero(t, v, "block type %d sample %d", blockType, i)
		}
	}
}

func TestWinLongMatchesDirectTransform(t *testing.T) {
	var in [18]float32
	for k := range in {
		in[k] = float32(k%5) - 2
	}

	out := imdct.Win(&in, 0)

	for i := range 36 {
		want := 0.0
		for k := range 18 {
			want += float64(in[k]) * math.Cos(math.Pi/72*float64(2*i+1+18)*float64(2*k+1))
		}
		want *= math.Sin(math.Pi / 36 * (float64(i) + 0.5))

		assert.InDelta(t, want, float64(out[i]), 1e-3, "sample %d", i)
	}
}

func TestWinShortZeroPadding(t *testing.T) {
	var in [18]float32
	for k := range in {
		in[k] = 1
	}

	out := imdct.Win(&in, 2)

	for i := range 6 {
		assert.Zero(t, out[i], "leading pad sample %d", i)
	}
	for i := 30; i < 36; i++ {
		assert.Zero(t, out[i], "trailing pad sample %d", i)
	}
}

func TestWinStopWindowTail(t *testing.T) {
	var in [18]float32
	in[0] = 1

	// Block type 1 is flat through 18..23 and zero from 30 on.
	out := imdct.Win(&in, 1)

	for i := 30; i < 36; i++ {
		assert.Zero(t, out[i], "sample %d", i)
	}
}

func TestWinLinearity(t *testing.T) {
	var a, b, sum [18]float32
	for k := range a {
		a[k] = float32(k)
		b[k] = float32(17 - k)
		sum[k] = a[k] + b[k]
	}

	for _, blockType := range []int{0, 1, 2, 3} {
		outA := imdct.Win(&a, blockType)
		outB := imdct.Win(&b, blockType)
		outSum := imdct.Win(&sum, blockType)

		for i := range 36 {
			assert.InDelta(t, float64(outA[i])+float64(outB[i]), float64(outSum[i]), 5e-3,
				"block type %d sample %d", blockType, i)
		}
	}
}

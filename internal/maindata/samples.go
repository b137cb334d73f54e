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

package maindata

import (
	"github.com/mpegkit/layer3/internal/bits"
	"github.com/mpegkit/layer3/internal/consts"
	"github.com/mpegkit/layer3/internal/frameheader"
	"github.com/mpegkit/layer3/internal/huffman"
	"github.com/mpegkit/layer3/internal/sideinfo"
)

// readSamples decodes the 576 quantized coefficients of one granule and
// channel: the big-value region pairwise through the selected code tables,
// the count-1 region as quadruples until part2_3_length is spent, and an
// implicit zero region after that. It leaves the cursor on the first bit
// past part2_3_length.
func readSamples(
	m *bits.Reader,
	header frameheader.FrameHeader,
	si *sideinfo.SideInfo,
	md *MainData,
	part2Start, gr, ch int,
) error {
	if si.Part2And3Length[gr][ch] == 0 {
		si.Count1[gr][ch] = 0

		return nil
	}

	bitPosEnd := part2Start + si.Part2And3Length[gr][ch] - 1

	region1Start := 36
	region2Start := consts.SamplesPerGranule

	if si.WinSwitchFlag[gr][ch] != 1 || si.BlockType[gr][ch] != 2 {
		long := &consts.SfBandIndexLong[header.SamplingFrequency()]

		i := si.Region0Count[gr][ch] + 1
		j := si.Region0Count[gr][ch] + si.Region1Count[gr][ch] + 2
		// Clamp like mpg123 and ffmpeg do; region counts can overflow the
		// band table on crafted streams.
		if j > len(long)-1 {
			j = len(long) - 1
		}

		region1Start = long[i]
		region2Start = long[j]
	}

	for isPos := 0; isPos < si.BigValues[gr][ch]*2; isPos += 2 {
		if isPos+1 >= consts.SamplesPerGranule {
			return &consts.HuffmanDataError{Table: si.TableSelect[gr][ch][2]}
		}

		var tableNum int
		switch {
		case isPos < region1Start:
			tableNum = si.TableSelect[gr][ch][0]
		case isPos < region2Start:
			tableNum = si.TableSelect[gr][ch][1]
		default:
			tableNum = si.TableSelect[gr][ch][2]
		}

		x, y, _, _, err := huffman.Decode(m, tableNum)
		if err != nil {
			return err
		}

		md.Is[gr][ch][isPos] = float32(x)
		md.Is[gr][ch][isPos+1] = float32(y)
	}

	tableNum := si.Count1TableSelect[gr][ch] + 32

	isPos := si.BigValues[gr][ch] * 2
	for isPos <= 572 && m.BitPos() <= bitPosEnd {
		x, y, v, w, err := huffman.Decode(m, tableNum)
		if err != nil {
			return err
		}

		for _, value := range [4]int{v, w, x, y} {
			md.Is[gr][ch][isPos] = float32(value)

			isPos++
			if isPos >= consts.SamplesPerGranule {
				break
			}
		}
	}

	// The last quadruple may straddle the end of this part; drop it.
	if m.BitPos() > bitPosEnd+1 {
		isPos -= 4
	}
	if isPos < 0 {
		isPos = 0
	}

	si.Count1[gr][ch] = isPos

	// Remaining positions belong to the zero region; skip stuffing bits.
	m.SetBitPos(bitPosEnd + 1)

	return nil
}

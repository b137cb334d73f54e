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

// Package sideinfo parses the MPEG-1 Layer III side information block.
package sideinfo

import (
	"bytes"

	"github.com/icza/bitio"

	"github.com/mpegkit/layer3/internal/consts"
	"github.com/mpegkit/layer3/internal/frameheader"
)

// SideInfo is the MPEG-1 Layer III side information of one frame.
// [2][2] indices mean [granule][channel].
type SideInfo struct {
	MainDataBegin int       // 9 bits
	PrivateBits   int       // 5 bits in mono, 3 in stereo
	Scfsi         [2][4]int // 1 bit, [channel][band group]

	Part2And3Length  [2][2]int // 12 bits
	BigValues        [2][2]int // 9 bits
	GlobalGain       [2][2]int // 8 bits
	ScalefacCompress [2][2]int // 4 bits
	WinSwitchFlag    [2][2]int // 1 bit

	BlockType      [2][2]int    // 2 bits
	MixedBlockFlag [2][2]int    // 1 bit
	TableSelect    [2][2][3]int // 5 bits
	SubblockGain   [2][2][3]int // 3 bits

	Region0Count [2][2]int // 4 bits
	Region1Count [2][2]int // 3 bits

	Preflag           [2][2]int // 1 bit
	ScalefacScale     [2][2]int // 1 bit
	Count1TableSelect [2][2]int // 1 bit

	// Count1 is the first coefficient index of the rzero region. It is not a
	// stream field; the sample decoder fills it in.
	Count1 [2][2]int
}

// Parse decodes the side information block from buf, which must start right
// after the header and optional CRC. buf must hold SideInfoSize bytes.
func Parse(buf []byte, header frameheader.FrameHeader) (*SideInfo, error) {
	nch := header.NumberOfChannels()

	size := header.SideInfoSize()
	if len(buf) < size {
		return nil, &consts.TruncatedInputError{At: "side info", Want: size, Have: len(buf)}
	}

	r := bitio.NewReader(bytes.NewReader(buf[:size]))

	read := func(n uint8) int {
		return int(r.TryReadBits(n))
	}

	si := &SideInfo{}
	si.MainDataBegin = read(9)

	if header.Mode() == consts.ModeSingleChannel {
		si.PrivateBits = read(5)
	} else {
		si.PrivateBits = read(3)
	}

	for ch := range nch {
		for band := range 4 {
			si.Scfsi[ch][band] = read(1)
		}
	}

	for gr := range header.Granules() {
		for ch := range nch {
			si.Part2And3Length[gr][ch] = read(12)
			si.BigValues[gr][ch] = read(9)
			si.GlobalGain[gr][ch] = read(8)
			si.ScalefacCompress[gr][ch] = read(4)
			si.WinSwitchFlag[gr][ch] = read(1)

			if si.WinSwitchFlag[gr][ch] == 1 {
				si.BlockType[gr][ch] = read(2)
				si.MixedBlockFlag[gr][ch] = read(1)

				for region := range 2 {
					si.TableSelect[gr][ch][region] = read(5)
				}
				for window := range 3 {
					si.SubblockGain[gr][ch][window] = read(3)
				}

				// Not in the stream when window switching is on.
				if si.BlockType[gr][ch] == 2 && si.MixedBlockFlag[gr][ch] == 0 {
					si.Region0Count[gr][ch] = 8
				} else {
					si.Region0Count[gr][ch] = 7
				}
				si.Region1Count[gr][ch] = 20 - si.Region0Count[gr][ch]
			} else {
				for region := range 3 {
					si.TableSelect[gr][ch][region] = read(5)
				}

				si.Region0Count[gr][ch] = read(4)
				si.Region1Count[gr][ch] = read(3)
				si.BlockType[gr][ch] = 0
			}

			si.Preflag[gr][ch] = read(1)
			si.ScalefacScale[gr][ch] = read(1)
			si.Count1TableSelect[gr][ch] = read(1)
		}
	}

	if r.TryError != nil {
		return nil, &consts.TruncatedInputError{At: "side info", Want: size, Have: len(buf)}
	}

	return si, nil
}

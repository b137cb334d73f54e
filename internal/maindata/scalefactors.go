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
	"github.com/mpegkit/layer3/internal/sideinfo"
)

// scfsiGroups are the long-window band groups governed by one scfsi bit each.
var scfsiGroups = [5]int{0, 6, 11, 16, 21}

// readScaleFactors unpacks the scale factors of one granule and channel.
// For long blocks of granule 1, groups whose scfsi bit is set reuse the
// values of granule 0 instead of reading the stream.
func readScaleFactors(m *bits.Reader, si *sideinfo.SideInfo, md *MainData, gr, ch int) {
	slen1 := consts.ScalefacSizes[si.ScalefacCompress[gr][ch]][0]
	slen2 := consts.ScalefacSizes[si.ScalefacCompress[gr][ch]][1]

	if si.WinSwitchFlag[gr][ch] == 1 && si.BlockType[gr][ch] == 2 {
		if si.MixedBlockFlag[gr][ch] != 0 {
			// Two long-block subbands first, then the short bands from 3 up.
			for sfb := range 8 {
				md.ScalefacL[gr][ch][sfb] = int(m.Bits(slen1))
			}

			for sfb := 3; sfb < 12; sfb++ {
				nbits := slen2
				if sfb < 6 {
					nbits = slen1
				}

				for win := range 3 {
					md.ScalefacS[gr][ch][sfb][win] = int(m.Bits(nbits))
				}
			}
		} else {
			for sfb := range 12 {
				nbits := slen2
				if sfb < 6 {
					nbits = slen1
				}

				for win := range 3 {
					md.ScalefacS[gr][ch][sfb][win] = int(m.Bits(nbits))
				}
			}
		}

		for win := range 3 {
			md.ScalefacS[gr][ch][12][win] = 0
		}

		return
	}

	// Long blocks. scfsi can only carry values from granule 0 to granule 1.
	for group := range 4 {
		nbits := slen1
		if group >= 2 {
			nbits = slen2
		}

		if gr == 1 && si.Scfsi[ch][group] == 1 {
			for sfb := scfsiGroups[group]; sfb < scfsiGroups[group+1]; sfb++ {
				md.ScalefacL[1][ch][sfb] = md.ScalefacL[0][ch][sfb]
			}

			continue
		}

		for sfb := scfsiGroups[group]; sfb < scfsiGroups[group+1]; sfb++ {
			md.ScalefacL[gr][ch][sfb] = int(m.Bits(nbits))
		}
	}

	md.ScalefacL[gr][ch][21] = 0
}

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

// Package maindata assembles a frame's main data stream from the bit
// reservoir and decodes its scale factors and Huffman coded samples.
package maindata

import (
	"github.com/mpegkit/layer3/internal/bits"
	"github.com/mpegkit/layer3/internal/consts"
	"github.com/mpegkit/layer3/internal/frameheader"
	"github.com/mpegkit/layer3/internal/sideinfo"
)

// MainData is the decoded main data of one frame. [2][2] indices mean
// [granule][channel]. The last scale factor slot of each window kind is a
// sentinel fixed at zero.
type MainData struct {
	ScalefacL [2][2][22]int    // 0-4 bits each, long windows
	ScalefacS [2][2][13][3]int // 0-4 bits each, short windows, [sfb][window]
	Is        [2][2][576]float32
}

// Reservoir is the rolling store of recent frames' main data regions that
// serves main_data_begin back-references.
type Reservoir struct {
	buf    []byte
	max    int
	frames int
}

// NewReservoir returns a reservoir bounded to max bytes of history. Values
// outside 1..511 fall back to the 9-bit field's full range.
func NewReservoir(max int) *Reservoir {
	if max <= 0 || max > consts.MaxReservoirBytes {
		max = consts.MaxReservoirBytes
	}

	return &Reservoir{max: max}
}

// Reset drops all history, as after a seek.
func (r *Reservoir) Reset() {
	r.buf = r.buf[:0]
	r.frames = 0
}

// FrameCount returns how many frames have fed the reservoir since the last
// reset.
func (r *Reservoir) FrameCount() int {
	return r.frames
}

// Assemble builds the main data bit stream of the current frame: begin bytes
// from the tail of the history, older bytes first, followed by the frame's
// own region. The region enters the history either way, so a later frame can
// back-reference across one that underflowed.
func (r *Reservoir) Assemble(region []byte, begin int) (*bits.Reader, error) {
	if begin > len(r.buf) {
		have := len(r.buf)
		r.push(region)

		return nil, &consts.ReservoirUnderflowError{Want: begin, Have: have}
	}

	assembled := make([]byte, 0, begin+len(region))
	assembled = append(assembled, r.buf[len(r.buf)-begin:]...)
	assembled = append(assembled, region...)

	r.push(region)

	return bits.New(assembled), nil
}

func (r *Reservoir) push(region []byte) {
	r.buf = append(r.buf, region...)
	if len(r.buf) > r.max {
		r.buf = append(r.buf[:0], r.buf[len(r.buf)-r.max:]...)
	}

	r.frames++
}

// Read assembles and decodes the main data of one frame. Huffman damage in a
// granule zero-fills that granule and lands in warnings; the frame still
// decodes. A reservoir underflow fails the whole frame instead, since no
// granule of it can start.
func Read(
	res *Reservoir,
	header frameheader.FrameHeader,
	si *sideinfo.SideInfo,
	region []byte,
) (*MainData, []error, error) {
	m, err := res.Assemble(region, si.MainDataBegin)
	if err != nil {
		return nil, nil, err
	}

	nch := header.NumberOfChannels()
	md := &MainData{}

	var warnings []error

	for gr := range header.Granules() {
		for ch := range nch {
			part2Start := m.BitPos()

			readScaleFactors(m, si, md, gr, ch)

			if err := readSamples(m, header, si, md, part2Start, gr, ch); err != nil {
				for i := range md.Is[gr][ch] {
					md.Is[gr][ch][i] = 0
				}
				si.Count1[gr][ch] = 0

				// Realign so the following granules still decode.
				m.SetBitPos(part2Start + si.Part2And3Length[gr][ch])

				warnings = append(warnings, err)
			}
		}
	}

	return md, warnings, nil
}

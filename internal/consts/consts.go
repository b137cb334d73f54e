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

// Package consts carries the static MPEG-1 Layer III tables and the decoder
// error taxonomy shared by the codec packages.
package consts

type Version int

const (
	Version2_5      Version = 0
	VersionReserved Version = 1
	Version2        Version = 2
	Version1        Version = 3
)

type Layer int

const (
	LayerReserved Layer = 0
	Layer3        Layer = 1
	Layer2        Layer = 2
	Layer1        Layer = 3
)

type Mode int

const (
	ModeStereo        Mode = 0
	ModeJointStereo   Mode = 1
	ModeDualChannel   Mode = 2
	ModeSingleChannel Mode = 3
)

type SamplingFrequency int

const (
	SamplingFrequency44100    SamplingFrequency = 0
	SamplingFrequency48000    SamplingFrequency = 1
	SamplingFrequency32000    SamplingFrequency = 2
	SamplingFrequencyReserved SamplingFrequency = 3
)

func (s SamplingFrequency) Int() int {
	switch s {
	case SamplingFrequency44100:
		return 44100
	case SamplingFrequency48000:
		return 48000
	case SamplingFrequency32000:
		return 32000
	}

	panic("not reached")
}

const (
	// SamplesPerGranule is the coefficient count of one granule per channel.
	SamplesPerGranule = 576

	// GranulesPerFrame for MPEG-1.
	GranulesPerFrame = 2

	// SamplesPerFrame is the PCM sample count per frame and channel.
	SamplesPerFrame = GranulesPerFrame * SamplesPerGranule

	// MaxReservoirBytes bounds the main_data_begin back-reference (9 bits).
	MaxReservoirBytes = 511

	// MaxFrameSize bounds the frame length derivable from a valid header.
	MaxFrameSize = 2000
)

// SfBandIndexLong holds the long-window scale factor band boundaries,
// indexed by SamplingFrequency. 22 bands plus the 576 terminator.
var SfBandIndexLong = [3][23]int{
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 52, 62, 74, 90, 110, 134, 162, 196, 238, 288, 342, 418, 576},
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 42, 50, 60, 72, 88, 106, 128, 156, 190, 230, 276, 330, 384, 576},
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 54, 66, 82, 102, 126, 156, 194, 240, 296, 364, 448, 550, 576},
}

// SfBandIndexShort holds the short-window scale factor band boundaries,
// indexed by SamplingFrequency. 12 bands plus the 192 terminator; widths are
// differences of neighbours, each window carries three interleaved copies.
var SfBandIndexShort = [3][14]int{
	{0, 4, 8, 12, 16, 22, 30, 40, 52, 66, 84, 106, 136, 192},
	{0, 4, 8, 12, 16, 22, 28, 38, 50, 64, 80, 100, 126, 192},
	{0, 4, 8, 12, 16, 22, 30, 42, 58, 78, 104, 138, 180, 192},
}

// Pretab is the preflag scale factor addend per long band (ISO 11172-3 2.4.3.4).
var Pretab = [22]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 3, 3, 3, 2, 0}

// ScalefacSizes maps scalefac_compress to (slen1, slen2).
var ScalefacSizes = [16][2]int{
	{0, 0}, {0, 1}, {0, 2}, {0, 3}, {3, 0}, {1, 1}, {1, 2}, {1, 3},
	{2, 1}, {2, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}, {4, 2}, {4, 3},
}

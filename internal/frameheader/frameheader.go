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

// Package frameheader parses the 32-bit MPEG audio frame header.
package frameheader

import (
	"github.com/mpegkit/layer3/internal/consts"
)

// FrameHeader is a 32-bit MPEG-1 frame header, stored with the sync word in
// the most significant bits. Fields are extracted in the standard's order:
// 11 sync bits, 2 version, 2 layer, 1 protection, 4 bitrate, 2 sampling
// frequency, 1 padding, 1 private, 2 mode, 2 mode extension, 1 copyright,
// 1 original, 2 emphasis.
type FrameHeader uint32

// FromBytes assembles a header from the first 4 bytes of buf. buf must hold
// at least 4 bytes.
func FromBytes(buf []byte) FrameHeader {
	return FrameHeader(uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]))
}

// ID returns the MPEG version stored in bits 20,19.
func (h FrameHeader) ID() consts.Version {
	return consts.Version((h & 0x00180000) >> 19)
}

// Layer returns the MPEG layer stored in bits 18,17.
func (h FrameHeader) Layer() consts.Layer {
	return consts.Layer((h & 0x00060000) >> 17)
}

// ProtectionBit returns bit 16; 0 means a 16-bit CRC follows the header.
func (h FrameHeader) ProtectionBit() int {
	return int(h&0x00010000) >> 16
}

// BitrateIndex returns the bitrate index stored in bits 15..12.
func (h FrameHeader) BitrateIndex() int {
	return int(h&0x0000f000) >> 12
}

// SamplingFrequency returns the sampling frequency index stored in bits 11,10.
func (h FrameHeader) SamplingFrequency() consts.SamplingFrequency {
	return consts.SamplingFrequency(int(h&0x00000c00) >> 10)
}

// PaddingBit returns bit 9; a set bit lengthens the frame by one byte.
func (h FrameHeader) PaddingBit() int {
	return int(h&0x00000200) >> 9
}

// PrivateBit returns bit 8. Free for application use, ignored here.
func (h FrameHeader) PrivateBit() int {
	return int(h&0x00000100) >> 8
}

// Mode returns the channel mode stored in bits 7,6.
func (h FrameHeader) Mode() consts.Mode {
	return consts.Mode((h & 0x000000c0) >> 6)
}

// ModeExtension returns the joint-stereo mode extension stored in bits 5,4.
func (h FrameHeader) ModeExtension() int {
	return int(h&0x00000030) >> 4
}

// UseMSStereo reports whether mid/side stereo is enabled for this frame.
func (h FrameHeader) UseMSStereo() bool {
	return h.Mode() == consts.ModeJointStereo && h.ModeExtension()&0x2 != 0
}

// UseIntensityStereo reports whether intensity stereo is enabled for this frame.
func (h FrameHeader) UseIntensityStereo() bool {
	return h.Mode() == consts.ModeJointStereo && h.ModeExtension()&0x1 != 0
}

// Copyright returns bit 3.
func (h FrameHeader) Copyright() int {
	return int(h&0x00000008) >> 3
}

// OriginalOrCopy returns bit 2.
func (h FrameHeader) OriginalOrCopy() int {
	return int(h&0x00000004) >> 2
}

// Emphasis returns bits 1,0.
func (h FrameHeader) Emphasis() int {
	return int(h & 0x00000003)
}

// HasSync reports whether the 11 sync bits are all set.
func (h FrameHeader) HasSync() bool {
	const sync = 0xffe00000

	return h&sync == sync
}

// IsValid reports whether the header can start a decodable MPEG-1 Layer III
// frame: sync present, no reserved field values, a stated bitrate.
func (h FrameHeader) IsValid() bool {
	return h.Validate() == nil
}

// Validate classifies the header. It returns nil for a decodable MPEG-1
// Layer III header and a *consts.FormatError naming the defect otherwise.
func (h FrameHeader) Validate() error {
	if !h.HasSync() {
		return &consts.FormatError{FailureCode: consts.CodeSyncLost, Reason: "frame sync not found"}
	}
	if h.ID() != consts.Version1 {
		return &consts.FormatError{FailureCode: consts.CodeWrongLayer, Reason: "only MPEG version 1 is supported"}
	}
	if h.Layer() != consts.Layer3 {
		return &consts.FormatError{FailureCode: consts.CodeWrongLayer, Reason: "only layer III is supported"}
	}
	if h.BitrateIndex() == 15 {
		return &consts.FormatError{FailureCode: consts.CodeReservedField, Reason: "reserved bitrate index 15"}
	}
	if h.BitrateIndex() == 0 {
		return &consts.FormatError{FailureCode: consts.CodeReservedField, Reason: "free-format bitrate is not supported"}
	}
	if h.SamplingFrequency() == consts.SamplingFrequencyReserved {
		return &consts.FormatError{FailureCode: consts.CodeReservedField, Reason: "reserved sampling frequency index 3"}
	}
	if h.Emphasis() == 2 {
		return &consts.FormatError{FailureCode: consts.CodeReservedField, Reason: "reserved emphasis value 2"}
	}

	return nil
}

var bitratesLayer3 = [15]int{
	0, 32000, 40000, 48000, 56000, 64000, 80000, 96000,
	112000, 128000, 160000, 192000, 224000, 256000, 320000,
}

// Bitrate returns the frame bitrate in bits per second.
func (h FrameHeader) Bitrate() int {
	return bitratesLayer3[h.BitrateIndex()]
}

// SamplingFrequencyValue returns the sampling rate in Hz.
func (h FrameHeader) SamplingFrequencyValue() int {
	return h.SamplingFrequency().Int()
}

// FrameSize returns the whole frame length in bytes, header included.
func (h FrameHeader) FrameSize() int {
	return 144*h.Bitrate()/h.SamplingFrequencyValue() + h.PaddingBit()
}

// NumberOfChannels returns 1 for single-channel mode and 2 otherwise.
func (h FrameHeader) NumberOfChannels() int {
	if h.Mode() == consts.ModeSingleChannel {
		return 1
	}

	return 2
}

// Granules returns the granule count per frame.
func (h FrameHeader) Granules() int {
	return consts.GranulesPerFrame
}

// SideInfoSize returns the side information length in bytes.
func (h FrameHeader) SideInfoSize() int {
	if h.NumberOfChannels() == 1 {
		return 17
	}

	return 32
}

// CRCSize returns the CRC word length following the header, in bytes.
func (h FrameHeader) CRCSize() int {
	if h.ProtectionBit() == 0 {
		return 2
	}

	return 0
}

// MainDataOffset returns the byte offset of the main data region within the
// frame: header plus optional CRC plus side info.
func (h FrameHeader) MainDataOffset() int {
	return 4 + h.CRCSize() + h.SideInfoSize()
}

// MainDataSize returns the main data region length in bytes, ancillary data
// included.
func (h FrameHeader) MainDataSize() int {
	return h.FrameSize() - h.MainDataOffset()
}

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

package frameheader_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpegkit/layer3/internal/consts"
	"github.com/mpegkit/layer3/internal/frameheader"
)

func TestJointStereo128kHeader(t *testing.T) {
	h := frameheader.FromBytes([]byte{0xff, 0xfb, 0x90, 0x44})

	require.NoError(t, h.Validate())
	assert.Equal(t, consts.Version1, h.ID())
	assert.Equal(t, consts.Layer3, h.Layer())
	assert.Equal(t, 1, h.ProtectionBit())
	assert.Equal(t, 0, h.CRCSize())
	assert.Equal(t, 128000, h.Bitrate())
	assert.Equal(t, 44100, h.SamplingFrequencyValue())
	assert.Equal(t, 0, h.PaddingBit())
	assert.Equal(t, consts.ModeJointStereo, h.Mode())
	assert.Equal(t, 2, h.NumberOfChannels())
	assert.Equal(t, 417, h.FrameSize())
	assert.Equal(t, 32, h.SideInfoSize())
	assert.Equal(t, 36, h.MainDataOffset())
	assert.Equal(t, 381, h.MainDataSize())
}

func TestPaddedHeader(t *testing.T) {
	h := frameheader.FromBytes([]byte{0xff, 0xfb, 0x92, 0x64})

	require.NoError(t, h.Validate())
	assert.Equal(t, 128000, h.Bitrate())
	assert.Equal(t, 44100, h.SamplingFrequencyValue())
	assert.Equal(t, 1, h.PaddingBit())
	assert.Equal(t, 418, h.FrameSize())
}

func TestMonoHeader(t *testing.T) {
	h := frameheader.FromBytes([]byte{0xff, 0xfb, 0x90, 0xc4})

	require.NoError(t, h.Validate())
	assert.Equal(t, consts.ModeSingleChannel, h.Mode())
	assert.Equal(t, 1, h.NumberOfChannels())
	assert.Equal(t, 17, h.SideInfoSize())
	assert.Equal(t, 21, h.MainDataOffset())
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name  string
		bytes []byte
		code  consts.Code
	}{
		{"no sync", []byte{0x00, 0x00, 0x90, 0x44}, consts.CodeSyncLost},
		{"partial sync", []byte{0xff, 0x1b, 0x90, 0x44}, consts.CodeSyncLost},
		{"layer II", []byte{0xff, 0xfd, 0x90, 0x44}, consts.CodeWrongLayer},
		{"layer reserved", []byte{0xff, 0xf9, 0x90, 0x44}, consts.CodeWrongLayer},
		{"MPEG2", []byte{0xff, 0xf3, 0x90, 0x44}, consts.CodeWrongLayer},
		{"bitrate reserved", []byte{0xff, 0xfb, 0xf0, 0x44}, consts.CodeReservedField},
		{"free format", []byte{0xff, 0xfb, 0x00, 0x44}, consts.CodeReservedField},
		{"sampling reserved", []byte{0xff, 0xfb, 0x9c, 0x44}, consts.CodeReservedField},
		{"emphasis reserved", []byte{0xff, 0xfb, 0x90, 0x46}, consts.CodeReservedField},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := frameheader.FromBytes(tc.bytes)

			err := h.Validate()
			require.Error(t, err)
			assert.False(t, h.IsValid())

			var ferr *consts.FormatError
			require.True(t, errors.As(err, &ferr))
			assert.Equal(t, tc.code, ferr.Code())
		})
	}
}

func TestFrameSizeAcrossRates(t *testing.T) {
	// 160 kbps at 32 kHz: 144*160000/32000 = 720.
	h := frameheader.FromBytes([]byte{0xff, 0xfb, 0xa8, 0x44})

	require.NoError(t, h.Validate())
	assert.Equal(t, 160000, h.Bitrate())
	assert.Equal(t, 32000, h.SamplingFrequencyValue())
	assert.Equal(t, 720, h.FrameSize())
}

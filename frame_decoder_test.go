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

package layer3

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpegkit/layer3/internal/consts"
)

// silentFrame returns a well-formed 417-byte joint-stereo frame at 128 kbps,
// 44.1 kHz whose granules carry no data: every sample decodes to zero.
func silentFrame() []byte {
	frame := make([]byte, 417)
	copy(frame, []byte{0xff, 0xfb, 0x90, 0x44})

	return frame
}

// silentStream concatenates n silent frames.
func silentStream(n int) []byte {
	var buf bytes.Buffer
	for range n {
		buf.Write(silentFrame())
	}

	return buf.Bytes()
}

func TestDecodeFrameSilence(t *testing.T) {
	d := NewFrameDecoder()

	res, err := d.DecodeFrame(silentFrame())
	require.NoError(t, err)

	assert.Equal(t, 417, res.BytesConsumed)
	assert.Equal(t, 44100, res.SampleRate)
	assert.Equal(t, 2, res.Channels)
	assert.Empty(t, res.Warnings)

	require.Len(t, res.PCM, 1152*2)
	for i, v := range res.PCM {
		require.Equal(t, int16(0), v, "sample %d", i)
	}
}

func TestDecodeFrameConsumesExactFrameLength(t *testing.T) {
	d := NewFrameDecoder()

	stream := silentStream(12)

	off := 0
	for off < len(stream) {
		res, err := d.DecodeFrame(stream[off:])
		require.NoError(t, err)
		require.Equal(t, 417, res.BytesConsumed)

		off += res.BytesConsumed
	}

	assert.Equal(t, len(stream), off)
}

func TestDecodeFrameDeterminism(t *testing.T) {
	stream := silentStream(4)

	decodeAll := func() [][]int16 {
		d := NewFrameDecoder()

		var frames [][]int16

		off := 0
		for off < len(stream) {
			res, err := d.DecodeFrame(stream[off:])
			require.NoError(t, err)

			frames = append(frames, res.PCM)
			off += res.BytesConsumed
		}

		return frames
	}

	assert.Equal(t, decodeAll(), decodeAll())
}

func TestDecodeFrameTruncated(t *testing.T) {
	d := NewFrameDecoder()

	for _, n := range []int{0, 3, 4, 100, 416} {
		_, err := d.DecodeFrame(silentFrame()[:n])
		require.Error(t, err, "length %d", n)

		var trunc *consts.TruncatedInputError
		require.True(t, errors.As(err, &trunc), "length %d", n)
		assert.Equal(t, consts.CodeTruncatedInput, trunc.Code())
	}
}

func TestDecodeFrameResync(t *testing.T) {
	garbage := []byte("ID3 and other leading junk")
	buf := append(append([]byte{}, garbage...), silentStream(1)...)

	d := NewFrameDecoder()

	res, err := d.DecodeFrame(buf)
	require.NoError(t, err)
	assert.Equal(t, len(garbage)+417, res.BytesConsumed)
}

func TestDecodeFrameResyncStateMachine(t *testing.T) {
	d := NewFrameDecoder()

	buf := append([]byte{0x00, 0x01, 0x02}, silentStream(4)...)

	res, err := d.DecodeFrame(buf)
	require.NoError(t, err)
	require.Equal(t, stateAwaitResync, d.fsm)

	off := res.BytesConsumed
	for range 2 {
		res, err = d.DecodeFrame(buf[off:])
		require.NoError(t, err)

		off += res.BytesConsumed
	}

	// Three consecutive clean frames end resynchronisation.
	assert.Equal(t, stateDecoding, d.fsm)
}

func TestDecodeFrameStrictSync(t *testing.T) {
	d := NewFrameDecoder(WithStrictSync(true))

	buf := append([]byte{0x00}, silentFrame()...)

	_, err := d.DecodeFrame(buf)
	require.Error(t, err)

	var ferr *consts.FormatError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, consts.CodeSyncLost, ferr.Code())
}

func TestDecodeFrameSyncLostWithoutAnyHeader(t *testing.T) {
	d := NewFrameDecoder()

	_, err := d.DecodeFrame(make([]byte, 64))
	require.Error(t, err)

	var ferr *consts.FormatError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, consts.CodeSyncLost, ferr.Code())
}

func TestDecodeFrameWrongLayer(t *testing.T) {
	frame := silentFrame()
	frame[1] = 0xfd // layer II

	d := NewFrameDecoder()

	_, err := d.DecodeFrame(frame)
	require.Error(t, err)

	var ferr *consts.FormatError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, consts.CodeWrongLayer, ferr.Code())
}

func TestDecodeFrameReservedBitrate(t *testing.T) {
	frame := silentFrame()
	frame[2] = 0xf0

	d := NewFrameDecoder()

	_, err := d.DecodeFrame(frame)
	require.Error(t, err)

	var ferr *consts.FormatError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, consts.CodeReservedField, ferr.Code())
}

func TestDecodeFrameReservoirUnderflowWarmup(t *testing.T) {
	frame := silentFrame()
	// main_data_begin = 1: the first side info byte holds the top 8 bits,
	// the next byte's leading bit the 9th.
	frame[4] = 0x00
	frame[5] = 0x80

	d := NewFrameDecoder()

	res, err := d.DecodeFrame(frame)
	require.NoError(t, err)

	require.Len(t, res.Warnings, 1)

	var underflow *consts.ReservoirUnderflowError
	require.True(t, errors.As(res.Warnings[0], &underflow))
	assert.Equal(t, consts.CodeReservoirUnderflow, underflow.Code())

	assert.Equal(t, 417, res.BytesConsumed)
	for i, v := range res.PCM {
		require.Equal(t, int16(0), v, "sample %d", i)
	}
}

func TestDecodeFrameReservoirUnderflowAfterWarmup(t *testing.T) {
	d := NewFrameDecoder()

	stream := silentStream(reservoirWarmupFrames)

	off := 0
	for range reservoirWarmupFrames {
		res, err := d.DecodeFrame(stream[off:])
		require.NoError(t, err)

		off += res.BytesConsumed
	}

	// With plenty of history banked, a short back-reference succeeds.
	frame := silentFrame()
	frame[4] = 0x00
	frame[5] = 0x80 // main_data_begin = 1

	res, err := d.DecodeFrame(frame)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	// A reservoir capped below the reference length underflows hard once
	// the warm-up window has passed.
	d2 := NewFrameDecoder(WithMaxReservoirBytes(100))

	off = 0
	for range reservoirWarmupFrames {
		res, err := d2.DecodeFrame(stream[off:])
		require.NoError(t, err)

		off += res.BytesConsumed
	}

	frameFar := silentFrame()
	frameFar[4] = 0x64
	frameFar[5] = 0x00 // main_data_begin = 200

	_, err = d2.DecodeFrame(frameFar)
	require.Error(t, err)

	var uferr *consts.ReservoirUnderflowError
	assert.True(t, errors.As(err, &uferr))
}

func TestDecodeFrameMaxBackReference(t *testing.T) {
	// After nine frames the reservoir serves the full 511-byte range.
	d := NewFrameDecoder()

	stream := silentStream(9)

	off := 0
	for range 9 {
		res, err := d.DecodeFrame(stream[off:])
		require.NoError(t, err)

		off += res.BytesConsumed
	}

	frame := silentFrame()
	frame[4] = 0xff
	frame[5] = 0x80 // main_data_begin = 511

	res, err := d.DecodeFrame(frame)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Len(t, res.PCM, 1152*2)
}

func TestFrameDecoderReset(t *testing.T) {
	stream := silentStream(3)

	d := NewFrameDecoder()

	decodeAll := func() [][]int16 {
		var frames [][]int16

		off := 0
		for off < len(stream) {
			res, err := d.DecodeFrame(stream[off:])
			require.NoError(t, err)

			frames = append(frames, res.PCM)
			off += res.BytesConsumed
		}

		return frames
	}

	first := decodeAll()

	d.Reset()
	assert.Equal(t, stateIdle, d.fsm)

	second := decodeAll()

	assert.Equal(t, first, second)
}

func TestDecodeFrameMono(t *testing.T) {
	frame := make([]byte, 417)
	copy(frame, []byte{0xff, 0xfb, 0x90, 0xc4})

	d := NewFrameDecoder()

	res, err := d.DecodeFrame(frame)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Channels)
	assert.Len(t, res.PCM, 1152)
}

func TestDecodeFrameDoesNotPanicOnGarbage(t *testing.T) {
	inputs := [][]byte{
		bytes.Repeat([]byte{0xff}, 600),
		bytes.Repeat([]byte{0xff, 0xfb}, 300),
		append([]byte{0xff, 0xfb, 0x90, 0x44}, bytes.Repeat([]byte{0xa5}, 500)...),
		append([]byte{0xff, 0xfb, 0x92, 0x64}, bytes.Repeat([]byte{0x0f}, 500)...),
	}

	for _, input := range inputs {
		d := NewFrameDecoder()

		// Errors are fine; panics are not. Warnings may report damaged
		// granules.
		res, err := d.DecodeFrame(input)
		if err == nil {
			assert.NotNil(t, res)
			assert.Positive(t, res.BytesConsumed)
		}
	}
}

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
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bytesReadCloser struct {
	*bytes.Reader
}

func (b *bytesReadCloser) Close() error {
	return nil
}

func newStreamReader(data []byte) *bytesReadCloser {
	return &bytesReadCloser{bytes.NewReader(data)}
}

func TestDecoderSilentStream(t *testing.T) {
	const frames = 6

	d, err := NewDecoder(newStreamReader(silentStream(frames)))
	require.NoError(t, err)

	assert.Equal(t, 44100, d.SampleRate())
	assert.Equal(t, int64(frames*bytesPerFrame), d.Length())

	pcm, err := io.ReadAll(d)
	require.NoError(t, err)
	require.Len(t, pcm, frames*bytesPerFrame)

	for i, b := range pcm {
		require.Zero(t, b, "byte %d", i)
	}
}

func TestDecoderSkipsID3v2Tag(t *testing.T) {
	tagBody := bytes.Repeat([]byte{0x00}, 100)

	var buf bytes.Buffer
	buf.WriteString("ID3")
	buf.Write([]byte{0x03, 0x00, 0x00})       // version + flags
	buf.Write([]byte{0x00, 0x00, 0x00, 0x64}) // synchsafe size 100
	buf.Write(tagBody)
	buf.Write(silentStream(3))

	d, err := NewDecoder(newStreamReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, int64(3*bytesPerFrame), d.Length())
}

func TestDecoderSkipsID3v1Tag(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("TAG")
	buf.Write(bytes.Repeat([]byte{0x20}, 125))
	buf.Write(silentStream(2))

	d, err := NewDecoder(newStreamReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, int64(2*bytesPerFrame), d.Length())
}

func TestDecoderResyncsOverGarbage(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte("leading garbage without sync"))
	buf.Write(silentStream(2))

	d, err := NewDecoder(newStreamReader(buf.Bytes()))
	require.NoError(t, err)

	pcm, err := io.ReadAll(d)
	require.NoError(t, err)
	assert.Len(t, pcm, 2*bytesPerFrame)
}

func TestDecoderMonoDuplicatesChannels(t *testing.T) {
	frame := make([]byte, 417)
	copy(frame, []byte{0xff, 0xfb, 0x90, 0xc4})

	d, err := NewDecoder(newStreamReader(frame))
	require.NoError(t, err)

	pcm, err := io.ReadAll(d)
	require.NoError(t, err)

	// Mono still renders as 2 interleaved channels on this surface.
	require.Len(t, pcm, bytesPerFrame)
	for i := 0; i < len(pcm); i += 4 {
		assert.Equal(t, pcm[i], pcm[i+2])
		assert.Equal(t, pcm[i+1], pcm[i+3])
	}
}

func TestDecoderSeekToStart(t *testing.T) {
	d, err := NewDecoder(newStreamReader(silentStream(5)))
	require.NoError(t, err)

	first, err := io.ReadAll(d)
	require.NoError(t, err)

	n, err := d.Seek(0, io.SeekStart)
	require.NoError(t, err)
	require.Equal(t, int64(0), n)

	second, err := io.ReadAll(d)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecoderSeekMidStream(t *testing.T) {
	d, err := NewDecoder(newStreamReader(silentStream(6)))
	require.NoError(t, err)

	target := int64(2*bytesPerFrame + 44)

	n, err := d.Seek(target, io.SeekStart)
	require.NoError(t, err)
	require.Equal(t, target, n)

	rest, err := io.ReadAll(d)
	require.NoError(t, err)
	assert.Len(t, rest, int(d.Length()-target))
}

func TestDecoderDuration(t *testing.T) {
	d, err := NewDecoder(newStreamReader(silentStream(50)))
	require.NoError(t, err)

	// 50 frames of 1152 samples at 44.1 kHz is about 1.3 seconds.
	got := d.Duration().Seconds()
	assert.InDelta(t, 50*1152.0/44100.0, got, 0.01)
}

func TestDecoderEmptyInput(t *testing.T) {
	_, err := NewDecoder(newStreamReader(nil))
	assert.Error(t, err)
}

func TestDecoderSurvivesFuzzedInputs(t *testing.T) {
	inputs := []string{
		"\xff\xfa500000000000\xff\xff0000" +
			"00000000000000000000" +
			"00000000000000000000" +
			"0000",
		"\xff\xfb\x100004000094\xff000000" +
			"00000000000000000000" +
			"000\xff\xee\xff\xee\xff\xff\xff\xff\xee\xff\xff0" +
			"\xff\xff00\xff\xee\xff000000\xff00\xee0" +
			"000\xff000\xff\xff\xee0\xff0000\xff0" +
			"00\xff0",
		"\xff\xfa\x1000000000000000000" +
			"00000000000000000000" +
			"000000000000000000\xff\xff" +
			"0\xff\xff\xff\xff\xff\xff\xfc0\xff\xef\xbf0\xef\xbf00" +
			"0\xff\xee\xff\xff\xff\xff\xee\xff\xff\xff\xff\xff00" +
			"\xff\xff00",
		"\xff\xfb%S000000v000\x00\x010000" +
			"00000000000000000000" +
			"0000\xf4000000000000000" +
			"00000000000000000000",
	}

	for _, input := range inputs {
		_, _ = NewDecoder(newStreamReader([]byte(input)))
	}
}

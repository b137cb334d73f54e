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

// Package layer3 decodes MPEG-1 Audio Layer III (MP3) streams to 16-bit
// signed PCM.
//
// FrameDecoder is the frame-level core: it consumes byte slices positioned
// at a frame header and emits one frame's PCM at a time. Decoder wraps it in
// an io.Reader that handles tag skipping, buffering and seeking.
package layer3

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mpegkit/layer3/internal/consts"
)

// bytesPerFrame is the size of one decoded frame on the streaming surface,
// which always carries 2 channels of 16-bit samples.
const bytesPerFrame = consts.SamplesPerFrame * 4

// A Decoder is an MP3-decoded stream.
//
// Decoder decodes its underlying source on the fly.
type Decoder struct {
	source      *source
	fdec        *FrameDecoder
	sampleRate  int
	length      int64
	frameStarts []int64
	buf         []byte
	pos         int64
}

func (d *Decoder) readFrame() error {
	for {
		raw, _, err := d.source.nextFrame()
		if err != nil {
			if err == io.EOF {
				return io.EOF
			}

			var trunc *consts.TruncatedInputError
			if errors.As(err, &trunc) {
				// A cut-off last frame is common; treat it as the end.
				return io.EOF
			}

			return err
		}

		res, err := d.fdec.DecodeFrame(raw)
		if err != nil {
			var underflow *consts.ReservoirUnderflowError
			if errors.As(err, &underflow) {
				// Keep going; the reservoir refills from this frame on.
				continue
			}

			var format *consts.FormatError
			if errors.As(err, &format) {
				continue
			}

			return err
		}

		d.buf = append(d.buf, interleaveStereo(res)...)

		return nil
	}
}

// interleaveStereo renders a frame as the fixed streaming sample layout:
// little-endian 16-bit, 2 channels, mono duplicated into both.
func interleaveStereo(res *DecodeResult) []byte {
	out := make([]byte, bytesPerFrame)

	for i := range consts.SamplesPerFrame {
		var left, right int16
		if res.Channels == 1 {
			left = res.PCM[i]
			right = left
		} else {
			left = res.PCM[2*i]
			right = res.PCM[2*i+1]
		}

		out[4*i] = byte(left)
		out[4*i+1] = byte(left >> 8)
		out[4*i+2] = byte(right)
		out[4*i+3] = byte(right >> 8)
	}

	return out
}

// Read is io.Reader's Read.
func (d *Decoder) Read(buf []byte) (int, error) {
	for len(d.buf) == 0 {
		if err := d.readFrame(); err != nil {
			return 0, err
		}
	}

	n := copy(buf, d.buf)
	d.buf = d.buf[n:]
	d.pos += int64(n)

	return n, nil
}

// Seek is io.Seeker's Seek.
//
// Seek panics when the underlying source is not io.Seeker.
func (d *Decoder) Seek(offset int64, whence int) (int64, error) {
	npos := int64(0)
	switch whence {
	case io.SeekStart:
		npos = offset
	case io.SeekCurrent:
		npos = d.pos + offset
	case io.SeekEnd:
		npos = d.length + offset
	default:
		panic(fmt.Sprintf("mp3: invalid whence: %v", whence))
	}

	d.pos = npos
	d.buf = nil

	if d.fdec.cfg.clearOnSeek {
		d.fdec.Reset()
	} else {
		d.fdec.reservoir.Reset()
	}

	f := d.pos / bytesPerFrame
	// Warm up on the frame before the target; its main data and overlap
	// feed into the target frame.
	if f > 0 {
		f--
		if _, err := d.source.Seek(d.frameStarts[f], 0); err != nil {
			return 0, err
		}
		if err := d.readFrame(); err != nil {
			return 0, err
		}
		if err := d.readFrame(); err != nil {
			return 0, err
		}

		d.buf = d.buf[bytesPerFrame+(d.pos%bytesPerFrame):]
	} else {
		if _, err := d.source.Seek(d.frameStarts[f], 0); err != nil {
			return 0, err
		}
		if err := d.readFrame(); err != nil {
			return 0, err
		}

		d.buf = d.buf[d.pos:]
	}

	return npos, nil
}

// Close is io.Closer's Close.
func (d *Decoder) Close() error {
	return d.source.Close()
}

// SampleRate returns the sample rate like 44100.
//
// Note that the sample rate is retrieved from the first frame.
func (d *Decoder) SampleRate() int {
	return d.sampleRate
}

// Length returns the total size in bytes.
//
// Length returns -1 when the total size is not available
// e.g. when the given source is not io.Seeker.
func (d *Decoder) Length() int64 {
	return d.length
}

// Duration returns the playing time of the whole stream, or 0 when the
// total size is not available.
func (d *Decoder) Duration() time.Duration {
	if d.length < 0 {
		return 0
	}

	return time.Duration(d.length/4) * time.Second / time.Duration(d.sampleRate)
}

// ElapsedTime returns the playing time at the current read position.
func (d *Decoder) ElapsedTime() time.Duration {
	return time.Duration(d.pos/4) * time.Second / time.Duration(d.sampleRate)
}

// NewDecoder decodes the given io.ReadCloser and returns a decoded stream.
//
// The stream is always formatted as 16bit (little endian) 2 channels
// even if the source is single channel MP3.
// Thus, a sample always consists of 4 bytes.
//
// If r is io.Seeker, a decoded stream checks its length and Length returns a
// valid value.
func NewDecoder(r io.ReadCloser, opts ...Option) (*Decoder, error) {
	s := &source{
		reader: r,
	}
	d := &Decoder{
		source: s,
		fdec:   NewFrameDecoder(opts...),
		length: -1,
	}

	if _, ok := r.(io.Seeker); ok {
		if err := s.skipTags(); err != nil {
			return nil, err
		}

		// Walk the frames once, without decoding, to learn their offsets.
		l := int64(0)
		for {
			_, pos, err := s.nextFrame()
			if err != nil {
				if err == io.EOF {
					break
				}

				var trunc *consts.TruncatedInputError
				if errors.As(err, &trunc) {
					break
				}

				return nil, err
			}

			d.frameStarts = append(d.frameStarts, pos)
			l += bytesPerFrame
		}

		if err := s.rewind(); err != nil {
			return nil, err
		}

		d.length = l
	}

	if err := s.skipTags(); err != nil {
		return nil, err
	}

	if err := d.readFrame(); err != nil {
		return nil, err
	}

	d.sampleRate = d.fdec.lastSampleRate

	return d, nil
}

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
	"github.com/mpegkit/layer3/internal/consts"
	"github.com/mpegkit/layer3/internal/frame"
	"github.com/mpegkit/layer3/internal/frameheader"
	"github.com/mpegkit/layer3/internal/maindata"
	"github.com/mpegkit/layer3/internal/sideinfo"
)

// Code is the numeric failure class carried by decode errors.
type Code = consts.Code

const (
	CodeOK                 = consts.CodeOK
	CodeSyncLost           = consts.CodeSyncLost
	CodeReservedField      = consts.CodeReservedField
	CodeWrongLayer         = consts.CodeWrongLayer
	CodeTruncatedInput     = consts.CodeTruncatedInput
	CodeReservoirUnderflow = consts.CodeReservoirUnderflow
	CodeHuffmanData        = consts.CodeHuffmanData
)

// Option configures a FrameDecoder or Decoder at construction.
type Option func(*config)

type config struct {
	strictSync        bool
	maxReservoirBytes int
	clearOnSeek       bool
}

func defaultConfig() config {
	return config{
		maxReservoirBytes: consts.MaxReservoirBytes,
		clearOnSeek:       true,
	}
}

// WithStrictSync makes any sync loss a hard error instead of scanning for
// the next frame.
func WithStrictSync(strict bool) Option {
	return func(c *config) { c.strictSync = strict }
}

// WithMaxReservoirBytes bounds the bit reservoir back-reference. Values
// outside 1..511 select the full 9-bit range.
func WithMaxReservoirBytes(n int) Option {
	return func(c *config) { c.maxReservoirBytes = n }
}

// WithClearOnSeek controls whether Decoder.Seek clears the overlap and FIFO
// state along with the reservoir. On by default.
func WithClearOnSeek(clear bool) Option {
	return func(c *config) { c.clearOnSeek = clear }
}

type decoderState int

const (
	stateIdle decoderState = iota
	stateDecoding
	stateAwaitResync
)

func (s decoderState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateDecoding:
		return "decoding"
	case stateAwaitResync:
		return "await-resync"
	}

	return "unknown"
}

const (
	// resyncGoodFrames is the consecutive valid-frame streak that ends
	// resynchronisation.
	resyncGoodFrames = 3

	// reservoirWarmupFrames is how many leading frames may underflow the
	// reservoir softly, yielding silence instead of an error.
	reservoirWarmupFrames = 9
)

// DecodeResult is the outcome of one successfully decoded frame.
type DecodeResult struct {
	// PCM holds SamplesPerFrame*Channels values, interleaved by channel.
	PCM []int16

	// BytesConsumed is how far the input cursor moved: the frame length,
	// plus any bytes skipped while resynchronising.
	BytesConsumed int

	SampleRate int
	Channels   int

	// Warnings carries soft defects of the frame: reservoir underflow
	// during warm-up and zero-filled granules with damaged Huffman data.
	Warnings []error
}

// FrameDecoder decodes MPEG-1 Layer III frames from byte slices. It owns the
// cross-frame state: the bit reservoir, the overlap-add store and the
// synthesis FIFO. It is not safe for concurrent use; one stream needs one
// instance.
type FrameDecoder struct {
	cfg       config
	reservoir *maindata.Reservoir
	state     frame.State
	fsm       decoderState
	streak    int

	lastSampleRate int
}

// NewFrameDecoder returns a decoder in the idle state.
func NewFrameDecoder(opts ...Option) *FrameDecoder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &FrameDecoder{
		cfg:       cfg,
		reservoir: maindata.NewReservoir(cfg.maxReservoirBytes),
	}
}

// Reset clears the reservoir, the overlap store and the synthesis FIFO, as
// after a seek. The next frame decodes like the first of a stream.
func (d *FrameDecoder) Reset() {
	d.reservoir.Reset()
	d.state.Reset()
	d.fsm = stateIdle
	d.streak = 0
}

// DecodeFrame decodes one frame starting at buf[0] and reports how many
// bytes it consumed. On sync loss it scans forward byte by byte unless
// strict sync is configured. Frame failures leave the persistent DSP state
// untouched, so retrying from a later offset is safe.
func (d *FrameDecoder) DecodeFrame(buf []byte) (*DecodeResult, error) {
	if len(buf) < 4 {
		return nil, &consts.TruncatedInputError{At: "frame header", Want: 4, Have: len(buf)}
	}

	header := frameheader.FromBytes(buf)
	skipped := 0

	if err := header.Validate(); err != nil {
		if d.cfg.strictSync {
			d.fsm = stateAwaitResync
			d.streak = 0

			return nil, err
		}

		// A well-synced header with reserved fields is a stream defect the
		// caller should see; plain garbage starts a scan.
		if header.HasSync() && d.fsm != stateAwaitResync {
			d.fsm = stateAwaitResync
			d.streak = 0

			return nil, err
		}

		d.fsm = stateAwaitResync
		d.streak = 0

		off, h, ok := scanValidHeader(buf)
		if !ok {
			return nil, &consts.FormatError{FailureCode: consts.CodeSyncLost, Reason: "no frame sync in buffer"}
		}

		header = h
		skipped = off
	}

	res, err := d.decodeValidFrame(header, buf[skipped:])
	if err != nil {
		d.streak = 0

		return nil, err
	}

	res.BytesConsumed += skipped
	d.lastSampleRate = res.SampleRate

	switch d.fsm {
	case stateAwaitResync:
		d.streak++
		if d.streak >= resyncGoodFrames {
			d.fsm = stateDecoding
			d.streak = 0
		}
	default:
		d.fsm = stateDecoding
	}

	return res, nil
}

func (d *FrameDecoder) decodeValidFrame(header frameheader.FrameHeader, buf []byte) (*DecodeResult, error) {
	frameSize := header.FrameSize()
	if frameSize > consts.MaxFrameSize {
		return nil, &consts.FormatError{FailureCode: consts.CodeReservedField, Reason: "implausible frame size"}
	}
	if len(buf) < frameSize {
		return nil, &consts.TruncatedInputError{At: "frame body", Want: frameSize, Have: len(buf)}
	}

	warmup := d.reservoir.FrameCount() < reservoirWarmupFrames

	si, err := sideinfo.Parse(buf[4+header.CRCSize():], header)
	if err != nil {
		return nil, err
	}

	region := buf[header.MainDataOffset():frameSize]

	md, warnings, err := maindata.Read(d.reservoir, header, si, region)
	if err != nil {
		underflow, ok := err.(*consts.ReservoirUnderflowError)
		if !ok || !warmup {
			return nil, err
		}

		// Not enough history yet: the frame's bytes are banked for later
		// back-references and the frame itself plays as silence.
		return &DecodeResult{
			PCM:           make([]int16, consts.SamplesPerFrame*header.NumberOfChannels()),
			BytesConsumed: frameSize,
			SampleRate:    header.SamplingFrequencyValue(),
			Channels:      header.NumberOfChannels(),
			Warnings:      []error{underflow},
		}, nil
	}

	pcm := frame.New(header, si, md).Decode(&d.state)

	return &DecodeResult{
		PCM:           pcm,
		BytesConsumed: frameSize,
		SampleRate:    header.SamplingFrequencyValue(),
		Channels:      header.NumberOfChannels(),
		Warnings:      warnings,
	}, nil
}

// scanValidHeader finds the first decodable header at offset >= 1.
func scanValidHeader(buf []byte) (int, frameheader.FrameHeader, bool) {
	for off := 1; off+4 <= len(buf); off++ {
		h := frameheader.FromBytes(buf[off:])
		if h.IsValid() {
			return off, h, true
		}
	}

	return 0, 0, false
}

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
	"fmt"
	"io"

	"github.com/mpegkit/layer3/internal/consts"
	"github.com/mpegkit/layer3/internal/frameheader"
)

// source buffers an io.Reader byte stream and slices whole frames out of it:
// it skips ID3v1/ID3v2 tags, scans for frame sync and reads exactly one
// frame at a time.
type source struct {
	reader io.ReadCloser
	unread []byte
	pos    int64
}

func (s *source) Seek(position int64, whence int) (int64, error) {
	seeker, ok := s.reader.(io.Seeker)
	if !ok {
		panic("mp3: source must be io.Seeker")
	}

	s.unread = nil

	n, err := seeker.Seek(position, whence)
	if err != nil {
		return 0, err
	}

	s.pos = n

	return n, nil
}

func (s *source) Close() error {
	s.unread = nil

	return s.reader.Close()
}

func (s *source) rewind() error {
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return err
	}

	s.pos = 0
	s.unread = nil

	return nil
}

func (s *source) Unread(buf []byte) {
	s.unread = append(s.unread, buf...)
	s.pos -= int64(len(buf))
}

func (s *source) ReadFull(buf []byte) (int, error) {
	read := 0
	if s.unread != nil {
		read = copy(buf, s.unread)
		if len(s.unread) > read {
			s.unread = s.unread[read:]
		} else {
			s.unread = nil
		}

		if len(buf) == read {
			return read, nil
		}
	}

	n, err := io.ReadFull(s.reader, buf[read:])
	if err != nil {
		// Short tails are common; the caller checks the count.
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
	}

	s.pos += int64(n)

	return n + read, err
}

// skipTags consumes an ID3v1 "TAG" block or an ID3v2 header with its
// synchsafe-sized body at the current position, if either is present.
func (s *source) skipTags() error {
	buf := make([]byte, 3)
	if _, err := s.ReadFull(buf); err != nil {
		return err
	}

	switch string(buf) {
	case "TAG":
		buf := make([]byte, 125)
		if _, err := s.ReadFull(buf); err != nil {
			return err
		}

	case "ID3":
		// Skip version (2 bytes) and flags (1 byte).
		buf := make([]byte, 3)
		if _, err := s.ReadFull(buf); err != nil {
			return err
		}

		buf = make([]byte, 4)

		n, err := s.ReadFull(buf)
		if err != nil {
			return err
		}
		if n != 4 {
			return nil
		}

		size := (uint32(buf[0]) << 21) | (uint32(buf[1]) << 14) |
			(uint32(buf[2]) << 7) | uint32(buf[3])

		buf = make([]byte, size)
		if _, err := s.ReadFull(buf); err != nil {
			return err
		}

	default:
		s.Unread(buf)
	}

	return nil
}

// nextFrame returns the bytes of the next whole frame and its start
// position, scanning byte by byte for sync when needed. io.EOF means a clean
// end of the stream.
func (s *source) nextFrame() ([]byte, int64, error) {
	pos := s.pos

	buf := make([]byte, 4)
	if n, err := s.ReadFull(buf); n < 4 {
		if err == io.EOF {
			if n == 0 {
				return nil, 0, io.EOF
			}

			return nil, 0, &consts.TruncatedInputError{At: "frame header", Want: 4, Have: n}
		}

		return nil, 0, err
	}

	header := frameheader.FromBytes(buf)
	for !header.IsValid() {
		one := make([]byte, 1)
		if _, err := s.ReadFull(one); err != nil {
			if err == io.EOF {
				return nil, 0, io.EOF
			}

			return nil, 0, err
		}

		copy(buf, buf[1:])
		buf[3] = one[0]
		header = frameheader.FromBytes(buf)
		pos++
	}

	frameSize := header.FrameSize()
	if frameSize > consts.MaxFrameSize {
		return nil, 0, fmt.Errorf("mp3: framesize = %d", frameSize)
	}

	whole := make([]byte, frameSize)
	copy(whole, buf)

	if n, err := s.ReadFull(whole[4:]); n < frameSize-4 {
		if err == io.EOF {
			return nil, 0, &consts.TruncatedInputError{At: "frame body", Want: frameSize, Have: n + 4}
		}

		return nil, 0, err
	}

	return whole, pos, nil
}

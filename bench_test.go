// Copyright 2017 The go-mp3 Authors
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
	"io"
	"testing"
)

func BenchmarkDecodeFrame(b *testing.B) {
	stream := silentStream(64)
	d := NewFrameDecoder()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		off := 0
		for off < len(stream) {
			res, err := d.DecodeFrame(stream[off:])
			if err != nil {
				b.Fatal(err)
			}

			off += res.BytesConsumed
		}
	}
}

func BenchmarkDecoderRead(b *testing.B) {
	stream := silentStream(64)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		d, err := NewDecoder(newStreamReader(stream))
		if err != nil {
			b.Fatal(err)
		}
		if _, err := io.ReadAll(d); err != nil {
			b.Fatal(err)
		}
	}
}

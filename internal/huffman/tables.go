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

package huffman

// codeword is one table entry: the codeword value hcod of hlen bits, and the
// coefficient pair it codes. Quadruple table entries carry the 4-bit value
// index in x.
type codeword struct {
	hlen uint8
	hcod uint32
	x, y uint8
}

var codes1 = []codeword{
	{hlen: 1, hcod: 0x0001, x: 0, y: 0},
	{hlen: 3, hcod: 0x0001, x: 0, y: 1},
	{hlen: 2, hcod: 0x0001, x: 1, y: 0},
	{hlen: 3, hcod: 0x0000, x: 1, y: 1},
}

var codes2 = []codeword{
	{hlen: 1, hcod: 0x0001, x: 0, y: 0},
	{hlen: 3, hcod: 0x0002, x: 0, y: 1},
	{hlen: 6, hcod: 0x0001, x: 0, y: 2},
	{hlen: 3, hcod: 0x0003, x: 1, y: 0},
	{hlen: 3, hcod: 0x0001, x: 1, y: 1},
	{hlen: 5, hcod: 0x0001, x: 1, y: 2},
	{hlen: 5, hcod: 0x0003, x: 2, y: 0},
	{hlen: 5, hcod: 0x0002, x: 2, y: 1},
	{hlen: 6, hcod: 0x0000, x: 2, y: 2},
}

var codes3 = []codeword{
	{hlen: 2, hcod: 0x0003, x: 0, y: 0},
	{hlen: 2, hcod: 0x0002, x: 0, y: 1},
	{hlen: 6, hcod: 0x0001, x: 0, y: 2},
	{hlen: 3, hcod: 0x0001, x: 1, y: 0},
	{hlen: 2, hcod: 0x0001, x: 1, y: 1},
	{hlen: 5, hcod: 0x0001, x: 1, y: 2},
	{hlen: 5, hcod: 0x0003, x: 2, y: 0},
	{hlen: 5, hcod: 0x0002, x: 2, y: 1},
	{hlen: 6, hcod: 0x0000, x: 2, y: 2},
}

var codes5 = []codeword{
	{hlen: 1, hcod: 0x0001, x: 0, y: 0},
	{hlen: 3, hcod: 0x0002, x: 0, y: 1},
	{hlen: 6, hcod: 0x0006, x: 0, y: 2},
	{hlen: 7, hcod: 0x0005, x: 0, y: 3},
	{hlen: 3, hcod: 0x0003, x: 1, y: 0},
	{hlen: 3, hcod: 0x0001, x: 1, y: 1},
	{hlen: 6, hcod: 0x0004, x: 1, y: 2},
	{hlen: 7, hcod: 0x0004, x: 1, y: 3},
	{hlen: 6, hcod: 0x0007, x: 2, y: 0},
	{hlen: 6, hcod: 0x0005, x: 2, y: 1},
	{hlen: 7, hcod: 0x0007, x: 2, y: 2},
	{hlen: 8, hcod: 0x0001, x: 2, y: 3},
	{hlen: 7, hcod: 0x0006, x: 3, y: 0},
	{hlen: 6, hcod: 0x0001, x: 3, y: 1},
	{hlen: 7, hcod: 0x0001, x: 3, y: 2},
	{hlen: 8, hcod: 0x0000, x: 3, y: 3},
}

var codes6 = []codeword{
	{hlen: 3, hcod: 0x0007, x: 0, y: 0},
	{hlen: 3, hcod: 0x0003, x: 0, y: 1},
	{hlen: 5, hcod: 0x0005, x: 0, y: 2},
	{hlen: 7, hcod: 0x0001, x: 0, y: 3},
	{hlen: 3, hcod: 0x0006, x: 1, y: 0},
	{hlen: 2, hcod: 0x0002, x: 1, y: 1},
	{hlen: 4, hcod: 0x0003, x: 1, y: 2},
	{hlen: 5, hcod: 0x0002, x: 1, y: 3},
	{hlen: 4, hcod: 0x0005, x: 2, y: 0},
	{hlen: 4, hcod: 0x0004, x: 2, y: 1},
	{hlen: 5, hcod: 0x0004, x: 2, y: 2},
	{hlen: 6, hcod: 0x0001, x: 2, y: 3},
	{hlen: 6, hcod: 0x0003, x: 3, y: 0},
	{hlen: 5, hcod: 0x0003, x: 3, y: 1},
	{hlen: 6, hcod: 0x0002, x: 3, y: 2},
	{hlen: 7, hcod: 0x0000, x: 3, y: 3},
}

var codes7 = []codeword{
	{hlen: 1, hcod: 0x0001, x: 0, y: 0},
	{hlen: 3, hcod: 0x0002, x: 0, y: 1},
	{hlen: 6, hcod: 0x000a, x: 0, y: 2},
	{hlen: 8, hcod: 0x0013, x: 0, y: 3},
	{hlen: 8, hcod: 0x0010, x: 0, y: 4},
	{hlen: 9, hcod: 0x000a, x: 0, y: 5},
	{hlen: 3, hcod: 0x0003, x: 1, y: 0},
	{hlen: 4, hcod: 0x0003, x: 1, y: 1},
	{hlen: 6, hcod: 0x0007, x: 1, y: 2},
	{hlen: 7, hcod: 0x000a, x: 1, y: 3},
	{hlen: 7, hcod: 0x0005, x: 1, y: 4},
	{hlen: 8, hcod: 0x0003, x: 1, y: 5},
	{hlen: 6, hcod: 0x000b, x: 2, y: 0},
	{hlen: 5, hcod: 0x0004, x: 2, y: 1},
	{hlen: 7, hcod: 0x000d, x: 2, y: 2},
	{hlen: 8, hcod: 0x0011, x: 2, y: 3},
	{hlen: 8, hcod: 0x0008, x: 2, y: 4},
	{hlen: 9, hcod: 0x0004, x: 2, y: 5},
	{hlen: 7, hcod: 0x000c, x: 3, y: 0},
	{hlen: 7, hcod: 0x000b, x: 3, y: 1},
	{hlen: 8, hcod: 0x0012, x: 3, y: 2},
	{hlen: 9, hcod: 0x000f, x: 3, y: 3},
	{hlen: 9, hcod: 0x000b, x: 3, y: 4},
	{hlen: 9, hcod: 0x0002, x: 3, y: 5},
	{hlen: 7, hcod: 0x0007, x: 4, y: 0},
	{hlen: 7, hcod: 0x0006, x: 4, y: 1},
	{hlen: 8, hcod: 0x0009, x: 4, y: 2},
	{hlen: 9, hcod: 0x000e, x: 4, y: 3},
	{hlen: 9, hcod: 0x0003, x: 4, y: 4},
	{hlen: 10, hcod: 0x0001, x: 4, y: 5},
	{hlen: 8, hcod: 0x0006, x: 5, y: 0},
	{hlen: 8, hcod: 0x0004, x: 5, y: 1},
	{hlen: 9, hcod: 0x0005, x: 5, y: 2},
	{hlen: 10, hcod: 0x0003, x: 5, y: 3},
	{hlen: 10, hcod: 0x0002, x: 5, y: 4},
	{hlen: 10, hcod: 0x0000, x: 5, y: 5},
}

var codes8 = []codeword{
	{hlen: 2, hcod: 0x0000, x: 0, y: 0},
	{hlen: 3, hcod: 0x0004, x: 0, y: 1},
	{hlen: 6, hcod: 0x0038, x: 0, y: 2},
	{hlen: 8, hcod: 0x00ee, x: 0, y: 3},
	{hlen: 8, hcod: 0x00ef, x: 0, y: 4},
	{hlen: 8, hcod: 0x00f0, x: 0, y: 5},
	{hlen: 3, hcod: 0x0005, x: 1, y: 0},
	{hlen: 2, hcod: 0x0001, x: 1, y: 1},
	{hlen: 4, hcod: 0x000c, x: 1, y: 2},
	{hlen: 8, hcod: 0x00f1, x: 1, y: 3},
	{hlen: 8, hcod: 0x00f2, x: 1, y: 4},
	{hlen: 8, hcod: 0x00f3, x: 1, y: 5},
	{hlen: 6, hcod: 0x0039, x: 2, y: 0},
	{hlen: 4, hcod: 0x000d, x: 2, y: 1},
	{hlen: 6, hcod: 0x003a, x: 2, y: 2},
	{hlen: 8, hcod: 0x00f4, x: 2, y: 3},
	{hlen: 8, hcod: 0x00f5, x: 2, y: 4},
	{hlen: 9, hcod: 0x01f8, x: 2, y: 5},
	{hlen: 8, hcod: 0x00f6, x: 3, y: 0},
	{hlen: 8, hcod: 0x00f7, x: 3, y: 1},
	{hlen: 8, hcod: 0x00f8, x: 3, y: 2},
	{hlen: 9, hcod: 0x01f9, x: 3, y: 3},
	{hlen: 9, hcod: 0x01fa, x: 3, y: 4},
	{hlen: 9, hcod: 0x01fb, x: 3, y: 5},
	{hlen: 8, hcod: 0x00f9, x: 4, y: 0},
	{hlen: 7, hcod: 0x0076, x: 4, y: 1},
	{hlen: 8, hcod: 0x00fa, x: 4, y: 2},
	{hlen: 10, hcod: 0x03fc, x: 4, y: 3},
	{hlen: 10, hcod: 0x03fd, x: 4, y: 4},
	{hlen: 10, hcod: 0x03fe, x: 4, y: 5},
	{hlen: 9, hcod: 0x01fc, x: 5, y: 0},
	{hlen: 8, hcod: 0x00fb, x: 5, y: 1},
	{hlen: 9, hcod: 0x01fd, x: 5, y: 2},
	{hlen: 11, hcod: 0x07fe, x: 5, y: 3},
	{hlen: 12, hcod: 0x0ffe, x: 5, y: 4},
	{hlen: 12, hcod: 0x0fff, x: 5, y: 5},
}

var codes9 = []codeword{
	{hlen: 3, hcod: 0x0007, x: 0, y: 0},
	{hlen: 3, hcod: 0x0005, x: 0, y: 1},
	{hlen: 5, hcod: 0x0009, x: 0, y: 2},
	{hlen: 6, hcod: 0x000e, x: 0, y: 3},
	{hlen: 8, hcod: 0x000f, x: 0, y: 4},
	{hlen: 9, hcod: 0x0007, x: 0, y: 5},
	{hlen: 3, hcod: 0x0006, x: 1, y: 0},
	{hlen: 3, hcod: 0x0004, x: 1, y: 1},
	{hlen: 4, hcod: 0x0005, x: 1, y: 2},
	{hlen: 5, hcod: 0x0005, x: 1, y: 3},
	{hlen: 6, hcod: 0x0006, x: 1, y: 4},
	{hlen: 8, hcod: 0x0007, x: 1, y: 5},
	{hlen: 4, hcod: 0x0007, x: 2, y: 0},
	{hlen: 4, hcod: 0x0006, x: 2, y: 1},
	{hlen: 5, hcod: 0x0008, x: 2, y: 2},
	{hlen: 6, hcod: 0x0008, x: 2, y: 3},
	{hlen: 7, hcod: 0x0008, x: 2, y: 4},
	{hlen: 8, hcod: 0x0005, x: 2, y: 5},
	{hlen: 6, hcod: 0x000f, x: 3, y: 0},
	{hlen: 5, hcod: 0x0006, x: 3, y: 1},
	{hlen: 6, hcod: 0x0009, x: 3, y: 2},
	{hlen: 7, hcod: 0x000a, x: 3, y: 3},
	{hlen: 7, hcod: 0x0005, x: 3, y: 4},
	{hlen: 8, hcod: 0x0001, x: 3, y: 5},
	{hlen: 7, hcod: 0x000b, x: 4, y: 0},
	{hlen: 6, hcod: 0x0007, x: 4, y: 1},
	{hlen: 7, hcod: 0x0009, x: 4, y: 2},
	{hlen: 7, hcod: 0x0006, x: 4, y: 3},
	{hlen: 8, hcod: 0x0004, x: 4, y: 4},
	{hlen: 9, hcod: 0x0001, x: 4, y: 5},
	{hlen: 8, hcod: 0x000e, x: 5, y: 0},
	{hlen: 7, hcod: 0x0004, x: 5, y: 1},
	{hlen: 8, hcod: 0x0006, x: 5, y: 2},
	{hlen: 8, hcod: 0x0002, x: 5, y: 3},
	{hlen: 9, hcod: 0x0006, x: 5, y: 4},
	{hlen: 9, hcod: 0x0000, x: 5, y: 5},
}

var codes10 = []codeword{
	{hlen: 1, hcod: 0x0001, x: 0, y: 0},
	{hlen: 3, hcod: 0x0002, x: 0, y: 1},
	{hlen: 6, hcod: 0x000a, x: 0, y: 2},
	{hlen: 8, hcod: 0x0017, x: 0, y: 3},
	{hlen: 9, hcod: 0x0023, x: 0, y: 4},
	{hlen: 9, hcod: 0x001e, x: 0, y: 5},
	{hlen: 9, hcod: 0x000c, x: 0, y: 6},
	{hlen: 10, hcod: 0x0011, x: 0, y: 7},
	{hlen: 3, hcod: 0x0003, x: 1, y: 0},
	{hlen: 4, hcod: 0x0003, x: 1, y: 1},
	{hlen: 6, hcod: 0x0008, x: 1, y: 2},
	{hlen: 7, hcod: 0x000c, x: 1, y: 3},
	{hlen: 8, hcod: 0x0012, x: 1, y: 4},
	{hlen: 9, hcod: 0x0015, x: 1, y: 5},
	{hlen: 8, hcod: 0x000c, x: 1, y: 6},
	{hlen: 8, hcod: 0x0007, x: 1, y: 7},
	{hlen: 6, hcod: 0x000b, x: 2, y: 0},
	{hlen: 6, hcod: 0x0009, x: 2, y: 1},
	{hlen: 7, hcod: 0x000f, x: 2, y: 2},
	{hlen: 8, hcod: 0x0015, x: 2, y: 3},
	{hlen: 9, hcod: 0x0020, x: 2, y: 4},
	{hlen: 10, hcod: 0x0028, x: 2, y: 5},
	{hlen: 9, hcod: 0x0013, x: 2, y: 6},
	{hlen: 9, hcod: 0x0006, x: 2, y: 7},
	{hlen: 7, hcod: 0x000e, x: 3, y: 0},
	{hlen: 7, hcod: 0x000d, x: 3, y: 1},
	{hlen: 8, hcod: 0x0016, x: 3, y: 2},
	{hlen: 9, hcod: 0x0022, x: 3, y: 3},
	{hlen: 10, hcod: 0x002e, x: 3, y: 4},
	{hlen: 10, hcod: 0x0017, x: 3, y: 5},
	{hlen: 9, hcod: 0x0012, x: 3, y: 6},
	{hlen: 10, hcod: 0x0007, x: 3, y: 7},
	{hlen: 8, hcod: 0x0014, x: 4, y: 0},
	{hlen: 8, hcod: 0x0013, x: 4, y: 1},
	{hlen: 9, hcod: 0x0021, x: 4, y: 2},
	{hlen: 10, hcod: 0x002f, x: 4, y: 3},
	{hlen: 10, hcod: 0x001b, x: 4, y: 4},
	{hlen: 10, hcod: 0x0016, x: 4, y: 5},
	{hlen: 10, hcod: 0x0009, x: 4, y: 6},
	{hlen: 10, hcod: 0x0003, x: 4, y: 7},
	{hlen: 9, hcod: 0x001f, x: 5, y: 0},
	{hlen: 9, hcod: 0x0016, x: 5, y: 1},
	{hlen: 10, hcod: 0x0029, x: 5, y: 2},
	{hlen: 10, hcod: 0x001a, x: 5, y: 3},
	{hlen: 11, hcod: 0x0015, x: 5, y: 4},
	{hlen: 11, hcod: 0x0014, x: 5, y: 5},
	{hlen: 10, hcod: 0x0005, x: 5, y: 6},
	{hlen: 11, hcod: 0x0003, x: 5, y: 7},
	{hlen: 8, hcod: 0x000e, x: 6, y: 0},
	{hlen: 8, hcod: 0x000d, x: 6, y: 1},
	{hlen: 9, hcod: 0x000a, x: 6, y: 2},
	{hlen: 10, hcod: 0x000b, x: 6, y: 3},
	{hlen: 10, hcod: 0x0010, x: 6, y: 4},
	{hlen: 10, hcod: 0x0006, x: 6, y: 5},
	{hlen: 11, hcod: 0x0005, x: 6, y: 6},
	{hlen: 11, hcod: 0x0001, x: 6, y: 7},
	{hlen: 9, hcod: 0x0009, x: 7, y: 0},
	{hlen: 8, hcod: 0x0008, x: 7, y: 1},
	{hlen: 9, hcod: 0x0007, x: 7, y: 2},
	{hlen: 10, hcod: 0x0008, x: 7, y: 3},
	{hlen: 10, hcod: 0x0004, x: 7, y: 4},
	{hlen: 11, hcod: 0x0004, x: 7, y: 5},
	{hlen: 11, hcod: 0x0002, x: 7, y: 6},
	{hlen: 11, hcod: 0x0000, x: 7, y: 7},
}

var codes11 = []codeword{
	{hlen: 2, hcod: 0x0000, x: 0, y: 0},
	{hlen: 3, hcod: 0x0002, x: 0, y: 1},
	{hlen: 5, hcod: 0x0016, x: 0, y: 2},
	{hlen: 7, hcod: 0x006a, x: 0, y: 3},
	{hlen: 8, hcod: 0x00e4, x: 0, y: 4},
	{hlen: 10, hcod: 0x03f2, x: 0, y: 5},
	{hlen: 8, hcod: 0x00e5, x: 0, y: 6},
	{hlen: 9, hcod: 0x01ee, x: 0, y: 7},
	{hlen: 3, hcod: 0x0003, x: 1, y: 0},
	{hlen: 3, hcod: 0x0004, x: 1, y: 1},
	{hlen: 4, hcod: 0x000a, x: 1, y: 2},
	{hlen: 6, hcod: 0x0032, x: 1, y: 3},
	{hlen: 8, hcod: 0x00e6, x: 1, y: 4},
	{hlen: 8, hcod: 0x00e7, x: 1, y: 5},
	{hlen: 7, hcod: 0x006b, x: 1, y: 6},
	{hlen: 8, hcod: 0x00e8, x: 1, y: 7},
	{hlen: 5, hcod: 0x0017, x: 2, y: 0},
	{hlen: 5, hcod: 0x0018, x: 2, y: 1},
	{hlen: 6, hcod: 0x0033, x: 2, y: 2},
	{hlen: 7, hcod: 0x006c, x: 2, y: 3},
	{hlen: 8, hcod: 0x00e9, x: 2, y: 4},
	{hlen: 9, hcod: 0x01ef, x: 2, y: 5},
	{hlen: 8, hcod: 0x00ea, x: 2, y: 6},
	{hlen: 8, hcod: 0x00eb, x: 2, y: 7},
	{hlen: 7, hcod: 0x006d, x: 3, y: 0},
	{hlen: 6, hcod: 0x0034, x: 3, y: 1},
	{hlen: 7, hcod: 0x006e, x: 3, y: 2},
	{hlen: 9, hcod: 0x01f0, x: 3, y: 3},
	{hlen: 8, hcod: 0x00ec, x: 3, y: 4},
	{hlen: 10, hcod: 0x03f3, x: 3, y: 5},
	{hlen: 8, hcod: 0x00ed, x: 3, y: 6},
	{hlen: 9, hcod: 0x01f1, x: 3, y: 7},
	{hlen: 8, hcod: 0x00ee, x: 4, y: 0},
	{hlen: 8, hcod: 0x00ef, x: 4, y: 1},
	{hlen: 8, hcod: 0x00f0, x: 4, y: 2},
	{hlen: 9, hcod: 0x01f2, x: 4, y: 3},
	{hlen: 9, hcod: 0x01f3, x: 4, y: 4},
	{hlen: 10, hcod: 0x03f4, x: 4, y: 5},
	{hlen: 9, hcod: 0x01f4, x: 4, y: 6},
	{hlen: 9, hcod: 0x01f5, x: 4, y: 7},
	{hlen: 8, hcod: 0x00f1, x: 5, y: 0},
	{hlen: 8, hcod: 0x00f2, x: 5, y: 1},
	{hlen: 9, hcod: 0x01f6, x: 5, y: 2},
	{hlen: 10, hcod: 0x03f5, x: 5, y: 3},
	{hlen: 10, hcod: 0x03f6, x: 5, y: 4},
	{hlen: 11, hcod: 0x07fe, x: 5, y: 5},
	{hlen: 10, hcod: 0x03f7, x: 5, y: 6},
	{hlen: 11, hcod: 0x07ff, x: 5, y: 7},
	{hlen: 8, hcod: 0x00f3, x: 6, y: 0},
	{hlen: 7, hcod: 0x006f, x: 6, y: 1},
	{hlen: 7, hcod: 0x0070, x: 6, y: 2},
	{hlen: 8, hcod: 0x00f4, x: 6, y: 3},
	{hlen: 9, hcod: 0x01f7, x: 6, y: 4},
	{hlen: 10, hcod: 0x03f8, x: 6, y: 5},
	{hlen: 10, hcod: 0x03f9, x: 6, y: 6},
	{hlen: 10, hcod: 0x03fa, x: 6, y: 7},
	{hlen: 8, hcod: 0x00f5, x: 7, y: 0},
	{hlen: 7, hcod: 0x0071, x: 7, y: 1},
	{hlen: 8, hcod: 0x00f6, x: 7, y: 2},
	{hlen: 9, hcod: 0x01f8, x: 7, y: 3},
	{hlen: 10, hcod: 0x03fb, x: 7, y: 4},
	{hlen: 10, hcod: 0x03fc, x: 7, y: 5},
	{hlen: 10, hcod: 0x03fd, x: 7, y: 6},
	{hlen: 10, hcod: 0x03fe, x: 7, y: 7},
}

var codes12 = []codeword{
	{hlen: 4, hcod: 0x0006, x: 0, y: 0},
	{hlen: 3, hcod: 0x0000, x: 0, y: 1},
	{hlen: 5, hcod: 0x0012, x: 0, y: 2},
	{hlen: 7, hcod: 0x0066, x: 0, y: 3},
	{hlen: 8, hcod: 0x00e4, x: 0, y: 4},
	{hlen: 10, hcod: 0x03fe, x: 0, y: 5},
	{hlen: 9, hcod: 0x01f2, x: 0, y: 6},
	{hlen: 9, hcod: 0x01f3, x: 0, y: 7},
	{hlen: 3, hcod: 0x0001, x: 1, y: 0},
	{hlen: 3, hcod: 0x0002, x: 1, y: 1},
	{hlen: 4, hcod: 0x0007, x: 1, y: 2},
	{hlen: 5, hcod: 0x0013, x: 1, y: 3},
	{hlen: 7, hcod: 0x0067, x: 1, y: 4},
	{hlen: 7, hcod: 0x0068, x: 1, y: 5},
	{hlen: 8, hcod: 0x00e5, x: 1, y: 6},
	{hlen: 8, hcod: 0x00e6, x: 1, y: 7},
	{hlen: 5, hcod: 0x0014, x: 2, y: 0},
	{hlen: 4, hcod: 0x0008, x: 2, y: 1},
	{hlen: 5, hcod: 0x0015, x: 2, y: 2},
	{hlen: 6, hcod: 0x002e, x: 2, y: 3},
	{hlen: 7, hcod: 0x0069, x: 2, y: 4},
	{hlen: 8, hcod: 0x00e7, x: 2, y: 5},
	{hlen: 7, hcod: 0x006a, x: 2, y: 6},
	{hlen: 8, hcod: 0x00e8, x: 2, y: 7},
	{hlen: 6, hcod: 0x002f, x: 3, y: 0},
	{hlen: 5, hcod: 0x0016, x: 3, y: 1},
	{hlen: 6, hcod: 0x0030, x: 3, y: 2},
	{hlen: 6, hcod: 0x0031, x: 3, y: 3},
	{hlen: 7, hcod: 0x006b, x: 3, y: 4},
	{hlen: 8, hcod: 0x00e9, x: 3, y: 5},
	{hlen: 8, hcod: 0x00ea, x: 3, y: 6},
	{hlen: 8, hcod: 0x00eb, x: 3, y: 7},
	{hlen: 7, hcod: 0x006c, x: 4, y: 0},
	{hlen: 6, hcod: 0x0032, x: 4, y: 1},
	{hlen: 7, hcod: 0x006d, x: 4, y: 2},
	{hlen: 7, hcod: 0x006e, x: 4, y: 3},
	{hlen: 8, hcod: 0x00ec, x: 4, y: 4},
	{hlen: 8, hcod: 0x00ed, x: 4, y: 5},
	{hlen: 8, hcod: 0x00ee, x: 4, y: 6},
	{hlen: 9, hcod: 0x01f4, x: 4, y: 7},
	{hlen: 8, hcod: 0x00ef, x: 5, y: 0},
	{hlen: 7, hcod: 0x006f, x: 5, y: 1},
	{hlen: 8, hcod: 0x00f0, x: 5, y: 2},
	{hlen: 8, hcod: 0x00f1, x: 5, y: 3},
	{hlen: 8, hcod: 0x00f2, x: 5, y: 4},
	{hlen: 9, hcod: 0x01f5, x: 5, y: 5},
	{hlen: 8, hcod: 0x00f3, x: 5, y: 6},
	{hlen: 9, hcod: 0x01f6, x: 5, y: 7},
	{hlen: 8, hcod: 0x00f4, x: 6, y: 0},
	{hlen: 7, hcod: 0x0070, x: 6, y: 1},
	{hlen: 7, hcod: 0x0071, x: 6, y: 2},
	{hlen: 8, hcod: 0x00f5, x: 6, y: 3},
	{hlen: 8, hcod: 0x00f6, x: 6, y: 4},
	{hlen: 9, hcod: 0x01f7, x: 6, y: 5},
	{hlen: 9, hcod: 0x01f8, x: 6, y: 6},
	{hlen: 9, hcod: 0x01f9, x: 6, y: 7},
	{hlen: 9, hcod: 0x01fa, x: 7, y: 0},
	{hlen: 8, hcod: 0x00f7, x: 7, y: 1},
	{hlen: 8, hcod: 0x00f8, x: 7, y: 2},
	{hlen: 9, hcod: 0x01fb, x: 7, y: 3},
	{hlen: 9, hcod: 0x01fc, x: 7, y: 4},
	{hlen: 9, hcod: 0x01fd, x: 7, y: 5},
	{hlen: 9, hcod: 0x01fe, x: 7, y: 6},
	{hlen: 10, hcod: 0x03ff, x: 7, y: 7},
}

var codes13 = []codeword{
	{hlen: 1, hcod: 0x0000, x: 0, y: 0},
	{hlen: 4, hcod: 0x000a, x: 0, y: 1},
	{hlen: 6, hcod: 0x0030, x: 0, y: 2},
	{hlen: 7, hcod: 0x0068, x: 0, y: 3},
	{hlen: 8, hcod: 0x00dc, x: 0, y: 4},
	{hlen: 9, hcod: 0x01c8, x: 0, y: 5},
	{hlen: 9, hcod: 0x01c9, x: 0, y: 6},
	{hlen: 10, hcod: 0x03bc, x: 0, y: 7},
	{hlen: 9, hcod: 0x01ca, x: 0, y: 8},
	{hlen: 10, hcod: 0x03bd, x: 0, y: 9},
	{hlen: 11, hcod: 0x07b8, x: 0, y: 10},
	{hlen: 11, hcod: 0x07b9, x: 0, y: 11},
	{hlen: 11, hcod: 0x07ba, x: 0, y: 12},
	{hlen: 12, hcod: 0x0fc0, x: 0, y: 13},
	{hlen: 12, hcod: 0x0fc1, x: 0, y: 14},
	{hlen: 13, hcod: 0x1fcc, x: 0, y: 15},
	{hlen: 3, hcod: 0x0004, x: 1, y: 0},
	{hlen: 4, hcod: 0x000b, x: 1, y: 1},
	{hlen: 6, hcod: 0x0031, x: 1, y: 2},
	{hlen: 7, hcod: 0x0069, x: 1, y: 3},
	{hlen: 8, hcod: 0x00dd, x: 1, y: 4},
	{hlen: 8, hcod: 0x00de, x: 1, y: 5},
	{hlen: 9, hcod: 0x01cb, x: 1, y: 6},
	{hlen: 9, hcod: 0x01cc, x: 1, y: 7},
	{hlen: 9, hcod: 0x01cd, x: 1, y: 8},
	{hlen: 9, hcod: 0x01ce, x: 1, y: 9},
	{hlen: 10, hcod: 0x03be, x: 1, y: 10},
	{hlen: 10, hcod: 0x03bf, x: 1, y: 11},
	{hlen: 10, hcod: 0x03c0, x: 1, y: 12},
	{hlen: 12, hcod: 0x0fc2, x: 1, y: 13},
	{hlen: 11, hcod: 0x07bb, x: 1, y: 14},
	{hlen: 12, hcod: 0x0fc3, x: 1, y: 15},
	{hlen: 6, hcod: 0x0032, x: 2, y: 0},
	{hlen: 6, hcod: 0x0033, x: 2, y: 1},
	{hlen: 7, hcod: 0x006a, x: 2, y: 2},
	{hlen: 8, hcod: 0x00df, x: 2, y: 3},
	{hlen: 9, hcod: 0x01cf, x: 2, y: 4},
	{hlen: 9, hcod: 0x01d0, x: 2, y: 5},
	{hlen: 10, hcod: 0x03c1, x: 2, y: 6},
	{hlen: 10, hcod: 0x03c2, x: 2, y: 7},
	{hlen: 9, hcod: 0x01d1, x: 2, y: 8},
	{hlen: 10, hcod: 0x03c3, x: 2, y: 9},
	{hlen: 10, hcod: 0x03c4, x: 2, y: 10},
	{hlen: 11, hcod: 0x07bc, x: 2, y: 11},
	{hlen: 11, hcod: 0x07bd, x: 2, y: 12},
	{hlen: 12, hcod: 0x0fc4, x: 2, y: 13},
	{hlen: 13, hcod: 0x1fcd, x: 2, y: 14},
	{hlen: 13, hcod: 0x1fce, x: 2, y: 15},
	{hlen: 7, hcod: 0x006b, x: 3, y: 0},
	{hlen: 7, hcod: 0x006c, x: 3, y: 1},
	{hlen: 8, hcod: 0x00e0, x: 3, y: 2},
	{hlen: 9, hcod: 0x01d2, x: 3, y: 3},
	{hlen: 9, hcod: 0x01d3, x: 3, y: 4},
	{hlen: 10, hcod: 0x03c5, x: 3, y: 5},
	{hlen: 10, hcod: 0x03c6, x: 3, y: 6},
	{hlen: 10, hcod: 0x03c7, x: 3, y: 7},
	{hlen: 10, hcod: 0x03c8, x: 3, y: 8},
	{hlen: 11, hcod: 0x07be, x: 3, y: 9},
	{hlen: 11, hcod: 0x07bf, x: 3, y: 10},
	{hlen: 11, hcod: 0x07c0, x: 3, y: 11},
	{hlen: 11, hcod: 0x07c1, x: 3, y: 12},
	{hlen: 12, hcod: 0x0fc5, x: 3, y: 13},
	{hlen: 13, hcod: 0x1fcf, x: 3, y: 14},
	{hlen: 13, hcod: 0x1fd0, x: 3, y: 15},
	{hlen: 8, hcod: 0x00e1, x: 4, y: 0},
	{hlen: 7, hcod: 0x006d, x: 4, y: 1},
	{hlen: 9, hcod: 0x01d4, x: 4, y: 2},
	{hlen: 9, hcod: 0x01d5, x: 4, y: 3},
	{hlen: 10, hcod: 0x03c9, x: 4, y: 4},
	{hlen: 10, hcod: 0x03ca, x: 4, y: 5},
	{hlen: 11, hcod: 0x07c2, x: 4, y: 6},
	{hlen: 11, hcod: 0x07c3, x: 4, y: 7},
	{hlen: 10, hcod: 0x03cb, x: 4, y: 8},
	{hlen: 11, hcod: 0x07c4, x: 4, y: 9},
	{hlen: 11, hcod: 0x07c5, x: 4, y: 10},
	{hlen: 12, hcod: 0x0fc6, x: 4, y: 11},
	{hlen: 12, hcod: 0x0fc7, x: 4, y: 12},
	{hlen: 13, hcod: 0x1fd1, x: 4, y: 13},
	{hlen: 13, hcod: 0x1fd2, x: 4, y: 14},
	{hlen: 14, hcod: 0x3fdc, x: 4, y: 15},
	{hlen: 9, hcod: 0x01d6, x: 5, y: 0},
	{hlen: 8, hcod: 0x00e2, x: 5, y: 1},
	{hlen: 9, hcod: 0x01d7, x: 5, y: 2},
	{hlen: 10, hcod: 0x03cc, x: 5, y: 3},
	{hlen: 10, hcod: 0x03cd, x: 5, y: 4},
	{hlen: 11, hcod: 0x07c6, x: 5, y: 5},
	{hlen: 11, hcod: 0x07c7, x: 5, y: 6},
	{hlen: 11, hcod: 0x07c8, x: 5, y: 7},
	{hlen: 11, hcod: 0x07c9, x: 5, y: 8},
	{hlen: 11, hcod: 0x07ca, x: 5, y: 9},
	{hlen: 12, hcod: 0x0fc8, x: 5, y: 10},
	{hlen: 12, hcod: 0x0fc9, x: 5, y: 11},
	{hlen: 12, hcod: 0x0fca, x: 5, y: 12},
	{hlen: 13, hcod: 0x1fd3, x: 5, y: 13},
	{hlen: 13, hcod: 0x1fd4, x: 5, y: 14},
	{hlen: 14, hcod: 0x3fdd, x: 5, y: 15},
	{hlen: 9, hcod: 0x01d8, x: 6, y: 0},
	{hlen: 9, hcod: 0x01d9, x: 6, y: 1},
	{hlen: 10, hcod: 0x03ce, x: 6, y: 2},
	{hlen: 10, hcod: 0x03cf, x: 6, y: 3},
	{hlen: 11, hcod: 0x07cb, x: 6, y: 4},
	{hlen: 11, hcod: 0x07cc, x: 6, y: 5},
	{hlen: 11, hcod: 0x07cd, x: 6, y: 6},
	{hlen: 11, hcod: 0x07ce, x: 6, y: 7},
	{hlen: 11, hcod: 0x07cf, x: 6, y: 8},
	{hlen: 12, hcod: 0x0fcb, x: 6, y: 9},
	{hlen: 12, hcod: 0x0fcc, x: 6, y: 10},
	{hlen: 12, hcod: 0x0fcd, x: 6, y: 11},
	{hlen: 13, hcod: 0x1fd5, x: 6, y: 12},
	{hlen: 13, hcod: 0x1fd6, x: 6, y: 13},
	{hlen: 14, hcod: 0x3fde, x: 6, y: 14},
	{hlen: 14, hcod: 0x3fdf, x: 6, y: 15},
	{hlen: 10, hcod: 0x03d0, x: 7, y: 0},
	{hlen: 9, hcod: 0x01da, x: 7, y: 1},
	{hlen: 10, hcod: 0x03d1, x: 7, y: 2},
	{hlen: 11, hcod: 0x07d0, x: 7, y: 3},
	{hlen: 11, hcod: 0x07d1, x: 7, y: 4},
	{hlen: 11, hcod: 0x07d2, x: 7, y: 5},
	{hlen: 12, hcod: 0x0fce, x: 7, y: 6},
	{hlen: 12, hcod: 0x0fcf, x: 7, y: 7},
	{hlen: 12, hcod: 0x0fd0, x: 7, y: 8},
	{hlen: 12, hcod: 0x0fd1, x: 7, y: 9},
	{hlen: 13, hcod: 0x1fd7, x: 7, y: 10},
	{hlen: 13, hcod: 0x1fd8, x: 7, y: 11},
	{hlen: 13, hcod: 0x1fd9, x: 7, y: 12},
	{hlen: 14, hcod: 0x3fe0, x: 7, y: 13},
	{hlen: 16, hcod: 0xffec, x: 7, y: 14},
	{hlen: 16, hcod: 0xffed, x: 7, y: 15},
	{hlen: 9, hcod: 0x01db, x: 8, y: 0},
	{hlen: 8, hcod: 0x00e3, x: 8, y: 1},
	{hlen: 9, hcod: 0x01dc, x: 8, y: 2},
	{hlen: 10, hcod: 0x03d2, x: 8, y: 3},
	{hlen: 10, hcod: 0x03d3, x: 8, y: 4},
	{hlen: 11, hcod: 0x07d3, x: 8, y: 5},
	{hlen: 11, hcod: 0x07d4, x: 8, y: 6},
	{hlen: 12, hcod: 0x0fd2, x: 8, y: 7},
	{hlen: 12, hcod: 0x0fd3, x: 8, y: 8},
	{hlen: 12, hcod: 0x0fd4, x: 8, y: 9},
	{hlen: 12, hcod: 0x0fd5, x: 8, y: 10},
	{hlen: 13, hcod: 0x1fda, x: 8, y: 11},
	{hlen: 13, hcod: 0x1fdb, x: 8, y: 12},
	{hlen: 14, hcod: 0x3fe1, x: 8, y: 13},
	{hlen: 15, hcod: 0x7fe6, x: 8, y: 14},
	{hlen: 15, hcod: 0x7fe7, x: 8, y: 15},
	{hlen: 10, hcod: 0x03d4, x: 9, y: 0},
	{hlen: 9, hcod: 0x01dd, x: 9, y: 1},
	{hlen: 10, hcod: 0x03d5, x: 9, y: 2},
	{hlen: 10, hcod: 0x03d6, x: 9, y: 3},
	{hlen: 11, hcod: 0x07d5, x: 9, y: 4},
	{hlen: 11, hcod: 0x07d6, x: 9, y: 5},
	{hlen: 11, hcod: 0x07d7, x: 9, y: 6},
	{hlen: 13, hcod: 0x1fdc, x: 9, y: 7},
	{hlen: 12, hcod: 0x0fd6, x: 9, y: 8},
	{hlen: 13, hcod: 0x1fdd, x: 9, y: 9},
	{hlen: 13, hcod: 0x1fde, x: 9, y: 10},
	{hlen: 14, hcod: 0x3fe2, x: 9, y: 11},
	{hlen: 14, hcod: 0x3fe3, x: 9, y: 12},
	{hlen: 14, hcod: 0x3fe4, x: 9, y: 13},
	{hlen: 16, hcod: 0xffee, x: 9, y: 14},
	{hlen: 15, hcod: 0x7fe8, x: 9, y: 15},
	{hlen: 10, hcod: 0x03d7, x: 10, y: 0},
	{hlen: 10, hcod: 0x03d8, x: 10, y: 1},
	{hlen: 10, hcod: 0x03d9, x: 10, y: 2},
	{hlen: 11, hcod: 0x07d8, x: 10, y: 3},
	{hlen: 11, hcod: 0x07d9, x: 10, y: 4},
	{hlen: 12, hcod: 0x0fd7, x: 10, y: 5},
	{hlen: 12, hcod: 0x0fd8, x: 10, y: 6},
	{hlen: 13, hcod: 0x1fdf, x: 10, y: 7},
	{hlen: 12, hcod: 0x0fd9, x: 10, y: 8},
	{hlen: 13, hcod: 0x1fe0, x: 10, y: 9},
	{hlen: 14, hcod: 0x3fe5, x: 10, y: 10},
	{hlen: 13, hcod: 0x1fe1, x: 10, y: 11},
	{hlen: 14, hcod: 0x3fe6, x: 10, y: 12},
	{hlen: 15, hcod: 0x7fe9, x: 10, y: 13},
	{hlen: 16, hcod: 0xffef, x: 10, y: 14},
	{hlen: 17, hcod: 0x1fff6, x: 10, y: 15},
	{hlen: 11, hcod: 0x07da, x: 11, y: 0},
	{hlen: 10, hcod: 0x03da, x: 11, y: 1},
	{hlen: 10, hcod: 0x03db, x: 11, y: 2},
	{hlen: 11, hcod: 0x07db, x: 11, y: 3},
	{hlen: 12, hcod: 0x0fda, x: 11, y: 4},
	{hlen: 12, hcod: 0x0fdb, x: 11, y: 5},
	{hlen: 12, hcod: 0x0fdc, x: 11, y: 6},
	{hlen: 12, hcod: 0x0fdd, x: 11, y: 7},
	{hlen: 13, hcod: 0x1fe2, x: 11, y: 8},
	{hlen: 13, hcod: 0x1fe3, x: 11, y: 9},
	{hlen: 13, hcod: 0x1fe4, x: 11, y: 10},
	{hlen: 14, hcod: 0x3fe7, x: 11, y: 11},
	{hlen: 15, hcod: 0x7fea, x: 11, y: 12},
	{hlen: 14, hcod: 0x3fe8, x: 11, y: 13},
	{hlen: 15, hcod: 0x7feb, x: 11, y: 14},
	{hlen: 16, hcod: 0xfff0, x: 11, y: 15},
	{hlen: 11, hcod: 0x07dc, x: 12, y: 0},
	{hlen: 11, hcod: 0x07dd, x: 12, y: 1},
	{hlen: 11, hcod: 0x07de, x: 12, y: 2},
	{hlen: 12, hcod: 0x0fde, x: 12, y: 3},
	{hlen: 12, hcod: 0x0fdf, x: 12, y: 4},
	{hlen: 13, hcod: 0x1fe5, x: 12, y: 5},
	{hlen: 12, hcod: 0x0fe0, x: 12, y: 6},
	{hlen: 13, hcod: 0x1fe6, x: 12, y: 7},
	{hlen: 14, hcod: 0x3fe9, x: 12, y: 8},
	{hlen: 14, hcod: 0x3fea, x: 12, y: 9},
	{hlen: 15, hcod: 0x7fec, x: 12, y: 10},
	{hlen: 15, hcod: 0x7fed, x: 12, y: 11},
	{hlen: 15, hcod: 0x7fee, x: 12, y: 12},
	{hlen: 16, hcod: 0xfff1, x: 12, y: 13},
	{hlen: 16, hcod: 0xfff2, x: 12, y: 14},
	{hlen: 16, hcod: 0xfff3, x: 12, y: 15},
	{hlen: 12, hcod: 0x0fe1, x: 13, y: 0},
	{hlen: 11, hcod: 0x07df, x: 13, y: 1},
	{hlen: 12, hcod: 0x0fe2, x: 13, y: 2},
	{hlen: 13, hcod: 0x1fe7, x: 13, y: 3},
	{hlen: 13, hcod: 0x1fe8, x: 13, y: 4},
	{hlen: 13, hcod: 0x1fe9, x: 13, y: 5},
	{hlen: 14, hcod: 0x3feb, x: 13, y: 6},
	{hlen: 14, hcod: 0x3fec, x: 13, y: 7},
	{hlen: 14, hcod: 0x3fed, x: 13, y: 8},
	{hlen: 15, hcod: 0x7fef, x: 13, y: 9},
	{hlen: 15, hcod: 0x7ff0, x: 13, y: 10},
	{hlen: 16, hcod: 0xfff4, x: 13, y: 11},
	{hlen: 16, hcod: 0xfff5, x: 13, y: 12},
	{hlen: 17, hcod: 0x1fff7, x: 13, y: 13},
	{hlen: 17, hcod: 0x1fff8, x: 13, y: 14},
	{hlen: 17, hcod: 0x1fff9, x: 13, y: 15},
	{hlen: 13, hcod: 0x1fea, x: 14, y: 0},
	{hlen: 12, hcod: 0x0fe3, x: 14, y: 1},
	{hlen: 13, hcod: 0x1feb, x: 14, y: 2},
	{hlen: 13, hcod: 0x1fec, x: 14, y: 3},
	{hlen: 14, hcod: 0x3fee, x: 14, y: 4},
	{hlen: 14, hcod: 0x3fef, x: 14, y: 5},
	{hlen: 15, hcod: 0x7ff1, x: 14, y: 6},
	{hlen: 15, hcod: 0x7ff2, x: 14, y: 7},
	{hlen: 15, hcod: 0x7ff3, x: 14, y: 8},
	{hlen: 16, hcod: 0xfff6, x: 14, y: 9},
	{hlen: 16, hcod: 0xfff7, x: 14, y: 10},
	{hlen: 16, hcod: 0xfff8, x: 14, y: 11},
	{hlen: 17, hcod: 0x1fffa, x: 14, y: 12},
	{hlen: 18, hcod: 0x3fffa, x: 14, y: 13},
	{hlen: 18, hcod: 0x3fffb, x: 14, y: 14},
	{hlen: 18, hcod: 0x3fffc, x: 14, y: 15},
	{hlen: 12, hcod: 0x0fe4, x: 15, y: 0},
	{hlen: 12, hcod: 0x0fe5, x: 15, y: 1},
	{hlen: 13, hcod: 0x1fed, x: 15, y: 2},
	{hlen: 14, hcod: 0x3ff0, x: 15, y: 3},
	{hlen: 14, hcod: 0x3ff1, x: 15, y: 4},
	{hlen: 14, hcod: 0x3ff2, x: 15, y: 5},
	{hlen: 15, hcod: 0x7ff4, x: 15, y: 6},
	{hlen: 15, hcod: 0x7ff5, x: 15, y: 7},
	{hlen: 16, hcod: 0xfff9, x: 15, y: 8},
	{hlen: 16, hcod: 0xfffa, x: 15, y: 9},
	{hlen: 17, hcod: 0x1fffb, x: 15, y: 10},
	{hlen: 17, hcod: 0x1fffc, x: 15, y: 11},
	{hlen: 18, hcod: 0x3fffd, x: 15, y: 12},
	{hlen: 18, hcod: 0x3fffe, x: 15, y: 13},
	{hlen: 19, hcod: 0x7fffe, x: 15, y: 14},
	{hlen: 19, hcod: 0x7ffff, x: 15, y: 15},
}

var codes15 = []codeword{
	{hlen: 3, hcod: 0x0000, x: 0, y: 0},
	{hlen: 4, hcod: 0x0004, x: 0, y: 1},
	{hlen: 5, hcod: 0x000c, x: 0, y: 2},
	{hlen: 7, hcod: 0x0050, x: 0, y: 3},
	{hlen: 7, hcod: 0x0051, x: 0, y: 4},
	{hlen: 8, hcod: 0x00bc, x: 0, y: 5},
	{hlen: 8, hcod: 0x00bd, x: 0, y: 6},
	{hlen: 9, hcod: 0x01a8, x: 0, y: 7},
	{hlen: 9, hcod: 0x01a9, x: 0, y: 8},
	{hlen: 10, hcod: 0x03a8, x: 0, y: 9},
	{hlen: 10, hcod: 0x03a9, x: 0, y: 10},
	{hlen: 10, hcod: 0x03aa, x: 0, y: 11},
	{hlen: 11, hcod: 0x07b4, x: 0, y: 12},
	{hlen: 11, hcod: 0x07b5, x: 0, y: 13},
	{hlen: 12, hcod: 0x0fd0, x: 0, y: 14},
	{hlen: 13, hcod: 0x1fee, x: 0, y: 15},
	{hlen: 4, hcod: 0x0005, x: 1, y: 0},
	{hlen: 3, hcod: 0x0001, x: 1, y: 1},
	{hlen: 5, hcod: 0x000d, x: 1, y: 2},
	{hlen: 6, hcod: 0x0022, x: 1, y: 3},
	{hlen: 7, hcod: 0x0052, x: 1, y: 4},
	{hlen: 7, hcod: 0x0053, x: 1, y: 5},
	{hlen: 8, hcod: 0x00be, x: 1, y: 6},
	{hlen: 8, hcod: 0x00bf, x: 1, y: 7},
	{hlen: 8, hcod: 0x00c0, x: 1, y: 8},
	{hlen: 9, hcod: 0x01aa, x: 1, y: 9},
	{hlen: 9, hcod: 0x01ab, x: 1, y: 10},
	{hlen: 10, hcod: 0x03ab, x: 1, y: 11},
	{hlen: 10, hcod: 0x03ac, x: 1, y: 12},
	{hlen: 10, hcod: 0x03ad, x: 1, y: 13},
	{hlen: 11, hcod: 0x07b6, x: 1, y: 14},
	{hlen: 11, hcod: 0x07b7, x: 1, y: 15},
	{hlen: 5, hcod: 0x000e, x: 2, y: 0},
	{hlen: 5, hcod: 0x000f, x: 2, y: 1},
	{hlen: 5, hcod: 0x0010, x: 2, y: 2},
	{hlen: 6, hcod: 0x0023, x: 2, y: 3},
	{hlen: 7, hcod: 0x0054, x: 2, y: 4},
	{hlen: 7, hcod: 0x0055, x: 2, y: 5},
	{hlen: 8, hcod: 0x00c1, x: 2, y: 6},
	{hlen: 8, hcod: 0x00c2, x: 2, y: 7},
	{hlen: 8, hcod: 0x00c3, x: 2, y: 8},
	{hlen: 9, hcod: 0x01ac, x: 2, y: 9},
	{hlen: 9, hcod: 0x01ad, x: 2, y: 10},
	{hlen: 10, hcod: 0x03ae, x: 2, y: 11},
	{hlen: 10, hcod: 0x03af, x: 2, y: 12},
	{hlen: 11, hcod: 0x07b8, x: 2, y: 13},
	{hlen: 11, hcod: 0x07b9, x: 2, y: 14},
	{hlen: 11, hcod: 0x07ba, x: 2, y: 15},
	{hlen: 6, hcod: 0x0024, x: 3, y: 0},
	{hlen: 6, hcod: 0x0025, x: 3, y: 1},
	{hlen: 6, hcod: 0x0026, x: 3, y: 2},
	{hlen: 7, hcod: 0x0056, x: 3, y: 3},
	{hlen: 7, hcod: 0x0057, x: 3, y: 4},
	{hlen: 8, hcod: 0x00c4, x: 3, y: 5},
	{hlen: 8, hcod: 0x00c5, x: 3, y: 6},
	{hlen: 9, hcod: 0x01ae, x: 3, y: 7},
	{hlen: 9, hcod: 0x01af, x: 3, y: 8},
	{hlen: 9, hcod: 0x01b0, x: 3, y: 9},
	{hlen: 10, hcod: 0x03b0, x: 3, y: 10},
	{hlen: 10, hcod: 0x03b1, x: 3, y: 11},
	{hlen: 10, hcod: 0x03b2, x: 3, y: 12},
	{hlen: 11, hcod: 0x07bb, x: 3, y: 13},
	{hlen: 11, hcod: 0x07bc, x: 3, y: 14},
	{hlen: 11, hcod: 0x07bd, x: 3, y: 15},
	{hlen: 7, hcod: 0x0058, x: 4, y: 0},
	{hlen: 6, hcod: 0x0027, x: 4, y: 1},
	{hlen: 7, hcod: 0x0059, x: 4, y: 2},
	{hlen: 7, hcod: 0x005a, x: 4, y: 3},
	{hlen: 8, hcod: 0x00c6, x: 4, y: 4},
	{hlen: 8, hcod: 0x00c7, x: 4, y: 5},
	{hlen: 9, hcod: 0x01b1, x: 4, y: 6},
	{hlen: 9, hcod: 0x01b2, x: 4, y: 7},
	{hlen: 9, hcod: 0x01b3, x: 4, y: 8},
	{hlen: 9, hcod: 0x01b4, x: 4, y: 9},
	{hlen: 10, hcod: 0x03b3, x: 4, y: 10},
	{hlen: 10, hcod: 0x03b4, x: 4, y: 11},
	{hlen: 10, hcod: 0x03b5, x: 4, y: 12},
	{hlen: 11, hcod: 0x07be, x: 4, y: 13},
	{hlen: 11, hcod: 0x07bf, x: 4, y: 14},
	{hlen: 11, hcod: 0x07c0, x: 4, y: 15},
	{hlen: 8, hcod: 0x00c8, x: 5, y: 0},
	{hlen: 7, hcod: 0x005b, x: 5, y: 1},
	{hlen: 7, hcod: 0x005c, x: 5, y: 2},
	{hlen: 8, hcod: 0x00c9, x: 5, y: 3},
	{hlen: 8, hcod: 0x00ca, x: 5, y: 4},
	{hlen: 8, hcod: 0x00cb, x: 5, y: 5},
	{hlen: 9, hcod: 0x01b5, x: 5, y: 6},
	{hlen: 9, hcod: 0x01b6, x: 5, y: 7},
	{hlen: 9, hcod: 0x01b7, x: 5, y: 8},
	{hlen: 9, hcod: 0x01b8, x: 5, y: 9},
	{hlen: 10, hcod: 0x03b6, x: 5, y: 10},
	{hlen: 10, hcod: 0x03b7, x: 5, y: 11},
	{hlen: 11, hcod: 0x07c1, x: 5, y: 12},
	{hlen: 11, hcod: 0x07c2, x: 5, y: 13},
	{hlen: 11, hcod: 0x07c3, x: 5, y: 14},
	{hlen: 12, hcod: 0x0fd1, x: 5, y: 15},
	{hlen: 9, hcod: 0x01b9, x: 6, y: 0},
	{hlen: 7, hcod: 0x005d, x: 6, y: 1},
	{hlen: 8, hcod: 0x00cc, x: 6, y: 2},
	{hlen: 8, hcod: 0x00cd, x: 6, y: 3},
	{hlen: 8, hcod: 0x00ce, x: 6, y: 4},
	{hlen: 9, hcod: 0x01ba, x: 6, y: 5},
	{hlen: 9, hcod: 0x01bb, x: 6, y: 6},
	{hlen: 9, hcod: 0x01bc, x: 6, y: 7},
	{hlen: 9, hcod: 0x01bd, x: 6, y: 8},
	{hlen: 10, hcod: 0x03b8, x: 6, y: 9},
	{hlen: 10, hcod: 0x03b9, x: 6, y: 10},
	{hlen: 10, hcod: 0x03ba, x: 6, y: 11},
	{hlen: 11, hcod: 0x07c4, x: 6, y: 12},
	{hlen: 11, hcod: 0x07c5, x: 6, y: 13},
	{hlen: 12, hcod: 0x0fd2, x: 6, y: 14},
	{hlen: 12, hcod: 0x0fd3, x: 6, y: 15},
	{hlen: 9, hcod: 0x01be, x: 7, y: 0},
	{hlen: 8, hcod: 0x00cf, x: 7, y: 1},
	{hlen: 8, hcod: 0x00d0, x: 7, y: 2},
	{hlen: 9, hcod: 0x01bf, x: 7, y: 3},
	{hlen: 9, hcod: 0x01c0, x: 7, y: 4},
	{hlen: 9, hcod: 0x01c1, x: 7, y: 5},
	{hlen: 9, hcod: 0x01c2, x: 7, y: 6},
	{hlen: 10, hcod: 0x03bb, x: 7, y: 7},
	{hlen: 10, hcod: 0x03bc, x: 7, y: 8},
	{hlen: 10, hcod: 0x03bd, x: 7, y: 9},
	{hlen: 10, hcod: 0x03be, x: 7, y: 10},
	{hlen: 10, hcod: 0x03bf, x: 7, y: 11},
	{hlen: 11, hcod: 0x07c6, x: 7, y: 12},
	{hlen: 11, hcod: 0x07c7, x: 7, y: 13},
	{hlen: 11, hcod: 0x07c8, x: 7, y: 14},
	{hlen: 12, hcod: 0x0fd4, x: 7, y: 15},
	{hlen: 9, hcod: 0x01c3, x: 8, y: 0},
	{hlen: 8, hcod: 0x00d1, x: 8, y: 1},
	{hlen: 8, hcod: 0x00d2, x: 8, y: 2},
	{hlen: 9, hcod: 0x01c4, x: 8, y: 3},
	{hlen: 9, hcod: 0x01c5, x: 8, y: 4},
	{hlen: 9, hcod: 0x01c6, x: 8, y: 5},
	{hlen: 9, hcod: 0x01c7, x: 8, y: 6},
	{hlen: 10, hcod: 0x03c0, x: 8, y: 7},
	{hlen: 10, hcod: 0x03c1, x: 8, y: 8},
	{hlen: 10, hcod: 0x03c2, x: 8, y: 9},
	{hlen: 10, hcod: 0x03c3, x: 8, y: 10},
	{hlen: 11, hcod: 0x07c9, x: 8, y: 11},
	{hlen: 11, hcod: 0x07ca, x: 8, y: 12},
	{hlen: 12, hcod: 0x0fd5, x: 8, y: 13},
	{hlen: 12, hcod: 0x0fd6, x: 8, y: 14},
	{hlen: 12, hcod: 0x0fd7, x: 8, y: 15},
	{hlen: 9, hcod: 0x01c8, x: 9, y: 0},
	{hlen: 8, hcod: 0x00d3, x: 9, y: 1},
	{hlen: 9, hcod: 0x01c9, x: 9, y: 2},
	{hlen: 9, hcod: 0x01ca, x: 9, y: 3},
	{hlen: 9, hcod: 0x01cb, x: 9, y: 4},
	{hlen: 9, hcod: 0x01cc, x: 9, y: 5},
	{hlen: 10, hcod: 0x03c4, x: 9, y: 6},
	{hlen: 10, hcod: 0x03c5, x: 9, y: 7},
	{hlen: 10, hcod: 0x03c6, x: 9, y: 8},
	{hlen: 11, hcod: 0x07cb, x: 9, y: 9},
	{hlen: 11, hcod: 0x07cc, x: 9, y: 10},
	{hlen: 11, hcod: 0x07cd, x: 9, y: 11},
	{hlen: 11, hcod: 0x07ce, x: 9, y: 12},
	{hlen: 12, hcod: 0x0fd8, x: 9, y: 13},
	{hlen: 12, hcod: 0x0fd9, x: 9, y: 14},
	{hlen: 12, hcod: 0x0fda, x: 9, y: 15},
	{hlen: 10, hcod: 0x03c7, x: 10, y: 0},
	{hlen: 9, hcod: 0x01cd, x: 10, y: 1},
	{hlen: 9, hcod: 0x01ce, x: 10, y: 2},
	{hlen: 9, hcod: 0x01cf, x: 10, y: 3},
	{hlen: 10, hcod: 0x03c8, x: 10, y: 4},
	{hlen: 10, hcod: 0x03c9, x: 10, y: 5},
	{hlen: 10, hcod: 0x03ca, x: 10, y: 6},
	{hlen: 10, hcod: 0x03cb, x: 10, y: 7},
	{hlen: 10, hcod: 0x03cc, x: 10, y: 8},
	{hlen: 11, hcod: 0x07cf, x: 10, y: 9},
	{hlen: 11, hcod: 0x07d0, x: 10, y: 10},
	{hlen: 11, hcod: 0x07d1, x: 10, y: 11},
	{hlen: 11, hcod: 0x07d2, x: 10, y: 12},
	{hlen: 12, hcod: 0x0fdb, x: 10, y: 13},
	{hlen: 13, hcod: 0x1fef, x: 10, y: 14},
	{hlen: 12, hcod: 0x0fdc, x: 10, y: 15},
	{hlen: 10, hcod: 0x03cd, x: 11, y: 0},
	{hlen: 9, hcod: 0x01d0, x: 11, y: 1},
	{hlen: 9, hcod: 0x01d1, x: 11, y: 2},
	{hlen: 9, hcod: 0x01d2, x: 11, y: 3},
	{hlen: 10, hcod: 0x03ce, x: 11, y: 4},
	{hlen: 10, hcod: 0x03cf, x: 11, y: 5},
	{hlen: 10, hcod: 0x03d0, x: 11, y: 6},
	{hlen: 10, hcod: 0x03d1, x: 11, y: 7},
	{hlen: 11, hcod: 0x07d3, x: 11, y: 8},
	{hlen: 11, hcod: 0x07d4, x: 11, y: 9},
	{hlen: 11, hcod: 0x07d5, x: 11, y: 10},
	{hlen: 11, hcod: 0x07d6, x: 11, y: 11},
	{hlen: 12, hcod: 0x0fdd, x: 11, y: 12},
	{hlen: 12, hcod: 0x0fde, x: 11, y: 13},
	{hlen: 12, hcod: 0x0fdf, x: 11, y: 14},
	{hlen: 13, hcod: 0x1ff0, x: 11, y: 15},
	{hlen: 11, hcod: 0x07d7, x: 12, y: 0},
	{hlen: 10, hcod: 0x03d2, x: 12, y: 1},
	{hlen: 9, hcod: 0x01d3, x: 12, y: 2},
	{hlen: 10, hcod: 0x03d3, x: 12, y: 3},
	{hlen: 10, hcod: 0x03d4, x: 12, y: 4},
	{hlen: 10, hcod: 0x03d5, x: 12, y: 5},
	{hlen: 11, hcod: 0x07d8, x: 12, y: 6},
	{hlen: 11, hcod: 0x07d9, x: 12, y: 7},
	{hlen: 11, hcod: 0x07da, x: 12, y: 8},
	{hlen: 11, hcod: 0x07db, x: 12, y: 9},
	{hlen: 12, hcod: 0x0fe0, x: 12, y: 10},
	{hlen: 12, hcod: 0x0fe1, x: 12, y: 11},
	{hlen: 12, hcod: 0x0fe2, x: 12, y: 12},
	{hlen: 12, hcod: 0x0fe3, x: 12, y: 13},
	{hlen: 12, hcod: 0x0fe4, x: 12, y: 14},
	{hlen: 13, hcod: 0x1ff1, x: 12, y: 15},
	{hlen: 11, hcod: 0x07dc, x: 13, y: 0},
	{hlen: 10, hcod: 0x03d6, x: 13, y: 1},
	{hlen: 10, hcod: 0x03d7, x: 13, y: 2},
	{hlen: 10, hcod: 0x03d8, x: 13, y: 3},
	{hlen: 10, hcod: 0x03d9, x: 13, y: 4},
	{hlen: 11, hcod: 0x07dd, x: 13, y: 5},
	{hlen: 11, hcod: 0x07de, x: 13, y: 6},
	{hlen: 11, hcod: 0x07df, x: 13, y: 7},
	{hlen: 11, hcod: 0x07e0, x: 13, y: 8},
	{hlen: 12, hcod: 0x0fe5, x: 13, y: 9},
	{hlen: 12, hcod: 0x0fe6, x: 13, y: 10},
	{hlen: 12, hcod: 0x0fe7, x: 13, y: 11},
	{hlen: 12, hcod: 0x0fe8, x: 13, y: 12},
	{hlen: 13, hcod: 0x1ff2, x: 13, y: 13},
	{hlen: 13, hcod: 0x1ff3, x: 13, y: 14},
	{hlen: 13, hcod: 0x1ff4, x: 13, y: 15},
	{hlen: 12, hcod: 0x0fe9, x: 14, y: 0},
	{hlen: 11, hcod: 0x07e1, x: 14, y: 1},
	{hlen: 11, hcod: 0x07e2, x: 14, y: 2},
	{hlen: 11, hcod: 0x07e3, x: 14, y: 3},
	{hlen: 11, hcod: 0x07e4, x: 14, y: 4},
	{hlen: 11, hcod: 0x07e5, x: 14, y: 5},
	{hlen: 11, hcod: 0x07e6, x: 14, y: 6},
	{hlen: 12, hcod: 0x0fea, x: 14, y: 7},
	{hlen: 12, hcod: 0x0feb, x: 14, y: 8},
	{hlen: 12, hcod: 0x0fec, x: 14, y: 9},
	{hlen: 12, hcod: 0x0fed, x: 14, y: 10},
	{hlen: 12, hcod: 0x0fee, x: 14, y: 11},
	{hlen: 13, hcod: 0x1ff5, x: 14, y: 12},
	{hlen: 13, hcod: 0x1ff6, x: 14, y: 13},
	{hlen: 13, hcod: 0x1ff7, x: 14, y: 14},
	{hlen: 13, hcod: 0x1ff8, x: 14, y: 15},
	{hlen: 13, hcod: 0x1ff9, x: 15, y: 0},
	{hlen: 11, hcod: 0x07e7, x: 15, y: 1},
	{hlen: 12, hcod: 0x0fef, x: 15, y: 2},
	{hlen: 12, hcod: 0x0ff0, x: 15, y: 3},
	{hlen: 12, hcod: 0x0ff1, x: 15, y: 4},
	{hlen: 12, hcod: 0x0ff2, x: 15, y: 5},
	{hlen: 12, hcod: 0x0ff3, x: 15, y: 6},
	{hlen: 12, hcod: 0x0ff4, x: 15, y: 7},
	{hlen: 12, hcod: 0x0ff5, x: 15, y: 8},
	{hlen: 12, hcod: 0x0ff6, x: 15, y: 9},
	{hlen: 13, hcod: 0x1ffa, x: 15, y: 10},
	{hlen: 13, hcod: 0x1ffb, x: 15, y: 11},
	{hlen: 13, hcod: 0x1ffc, x: 15, y: 12},
	{hlen: 13, hcod: 0x1ffd, x: 15, y: 13},
	{hlen: 13, hcod: 0x1ffe, x: 15, y: 14},
	{hlen: 13, hcod: 0x1fff, x: 15, y: 15},
}

var codes16 = []codeword{
	{hlen: 1, hcod: 0x0000, x: 0, y: 0},
	{hlen: 4, hcod: 0x000a, x: 0, y: 1},
	{hlen: 6, hcod: 0x0030, x: 0, y: 2},
	{hlen: 7, hcod: 0x006a, x: 0, y: 3},
	{hlen: 9, hcod: 0x01c6, x: 0, y: 4},
	{hlen: 9, hcod: 0x01c7, x: 0, y: 5},
	{hlen: 9, hcod: 0x01c8, x: 0, y: 6},
	{hlen: 10, hcod: 0x03b8, x: 0, y: 7},
	{hlen: 11, hcod: 0x07a6, x: 0, y: 8},
	{hlen: 11, hcod: 0x07a7, x: 0, y: 9},
	{hlen: 11, hcod: 0x07a8, x: 0, y: 10},
	{hlen: 12, hcod: 0x0fa8, x: 0, y: 11},
	{hlen: 12, hcod: 0x0fa9, x: 0, y: 12},
	{hlen: 12, hcod: 0x0faa, x: 0, y: 13},
	{hlen: 12, hcod: 0x0fab, x: 0, y: 14},
	{hlen: 9, hcod: 0x01c9, x: 0, y: 15},
	{hlen: 3, hcod: 0x0004, x: 1, y: 0},
	{hlen: 4, hcod: 0x000b, x: 1, y: 1},
	{hlen: 6, hcod: 0x0031, x: 1, y: 2},
	{hlen: 6, hcod: 0x0032, x: 1, y: 3},
	{hlen: 8, hcod: 0x00da, x: 1, y: 4},
	{hlen: 9, hcod: 0x01ca, x: 1, y: 5},
	{hlen: 9, hcod: 0x01cb, x: 1, y: 6},
	{hlen: 9, hcod: 0x01cc, x: 1, y: 7},
	{hlen: 10, hcod: 0x03b9, x: 1, y: 8},
	{hlen: 10, hcod: 0x03ba, x: 1, y: 9},
	{hlen: 10, hcod: 0x03bb, x: 1, y: 10},
	{hlen: 11, hcod: 0x07a9, x: 1, y: 11},
	{hlen: 12, hcod: 0x0fac, x: 1, y: 12},
	{hlen: 11, hcod: 0x07aa, x: 1, y: 13},
	{hlen: 12, hcod: 0x0fad, x: 1, y: 14},
	{hlen: 8, hcod: 0x00db, x: 1, y: 15},
	{hlen: 6, hcod: 0x0033, x: 2, y: 0},
	{hlen: 6, hcod: 0x0034, x: 2, y: 1},
	{hlen: 7, hcod: 0x006b, x: 2, y: 2},
	{hlen: 8, hcod: 0x00dc, x: 2, y: 3},
	{hlen: 9, hcod: 0x01cd, x: 2, y: 4},
	{hlen: 9, hcod: 0x01ce, x: 2, y: 5},
	{hlen: 10, hcod: 0x03bc, x: 2, y: 6},
	{hlen: 10, hcod: 0x03bd, x: 2, y: 7},
	{hlen: 11, hcod: 0x07ab, x: 2, y: 8},
	{hlen: 10, hcod: 0x03be, x: 2, y: 9},
	{hlen: 11, hcod: 0x07ac, x: 2, y: 10},
	{hlen: 11, hcod: 0x07ad, x: 2, y: 11},
	{hlen: 11, hcod: 0x07ae, x: 2, y: 12},
	{hlen: 12, hcod: 0x0fae, x: 2, y: 13},
	{hlen: 12, hcod: 0x0faf, x: 2, y: 14},
	{hlen: 9, hcod: 0x01cf, x: 2, y: 15},
	{hlen: 8, hcod: 0x00dd, x: 3, y: 0},
	{hlen: 7, hcod: 0x006c, x: 3, y: 1},
	{hlen: 8, hcod: 0x00de, x: 3, y: 2},
	{hlen: 9, hcod: 0x01d0, x: 3, y: 3},
	{hlen: 9, hcod: 0x01d1, x: 3, y: 4},
	{hlen: 10, hcod: 0x03bf, x: 3, y: 5},
	{hlen: 10, hcod: 0x03c0, x: 3, y: 6},
	{hlen: 11, hcod: 0x07af, x: 3, y: 7},
	{hlen: 11, hcod: 0x07b0, x: 3, y: 8},
	{hlen: 11, hcod: 0x07b1, x: 3, y: 9},
	{hlen: 12, hcod: 0x0fb0, x: 3, y: 10},
	{hlen: 12, hcod: 0x0fb1, x: 3, y: 11},
	{hlen: 12, hcod: 0x0fb2, x: 3, y: 12},
	{hlen: 13, hcod: 0x1fc0, x: 3, y: 13},
	{hlen: 13, hcod: 0x1fc1, x: 3, y: 14},
	{hlen: 10, hcod: 0x03c1, x: 3, y: 15},
	{hlen: 9, hcod: 0x01d2, x: 4, y: 0},
	{hlen: 8, hcod: 0x00df, x: 4, y: 1},
	{hlen: 9, hcod: 0x01d3, x: 4, y: 2},
	{hlen: 9, hcod: 0x01d4, x: 4, y: 3},
	{hlen: 10, hcod: 0x03c2, x: 4, y: 4},
	{hlen: 10, hcod: 0x03c3, x: 4, y: 5},
	{hlen: 11, hcod: 0x07b2, x: 4, y: 6},
	{hlen: 11, hcod: 0x07b3, x: 4, y: 7},
	{hlen: 11, hcod: 0x07b4, x: 4, y: 8},
	{hlen: 11, hcod: 0x07b5, x: 4, y: 9},
	{hlen: 12, hcod: 0x0fb3, x: 4, y: 10},
	{hlen: 12, hcod: 0x0fb4, x: 4, y: 11},
	{hlen: 12, hcod: 0x0fb5, x: 4, y: 12},
	{hlen: 13, hcod: 0x1fc2, x: 4, y: 13},
	{hlen: 13, hcod: 0x1fc3, x: 4, y: 14},
	{hlen: 10, hcod: 0x03c4, x: 4, y: 15},
	{hlen: 9, hcod: 0x01d5, x: 5, y: 0},
	{hlen: 9, hcod: 0x01d6, x: 5, y: 1},
	{hlen: 9, hcod: 0x01d7, x: 5, y: 2},
	{hlen: 10, hcod: 0x03c5, x: 5, y: 3},
	{hlen: 10, hcod: 0x03c6, x: 5, y: 4},
	{hlen: 10, hcod: 0x03c7, x: 5, y: 5},
	{hlen: 11, hcod: 0x07b6, x: 5, y: 6},
	{hlen: 11, hcod: 0x07b7, x: 5, y: 7},
	{hlen: 11, hcod: 0x07b8, x: 5, y: 8},
	{hlen: 12, hcod: 0x0fb6, x: 5, y: 9},
	{hlen: 12, hcod: 0x0fb7, x: 5, y: 10},
	{hlen: 12, hcod: 0x0fb8, x: 5, y: 11},
	{hlen: 13, hcod: 0x1fc4, x: 5, y: 12},
	{hlen: 13, hcod: 0x1fc5, x: 5, y: 13},
	{hlen: 13, hcod: 0x1fc6, x: 5, y: 14},
	{hlen: 10, hcod: 0x03c8, x: 5, y: 15},
	{hlen: 10, hcod: 0x03c9, x: 6, y: 0},
	{hlen: 9, hcod: 0x01d8, x: 6, y: 1},
	{hlen: 10, hcod: 0x03ca, x: 6, y: 2},
	{hlen: 10, hcod: 0x03cb, x: 6, y: 3},
	{hlen: 11, hcod: 0x07b9, x: 6, y: 4},
	{hlen: 11, hcod: 0x07ba, x: 6, y: 5},
	{hlen: 11, hcod: 0x07bb, x: 6, y: 6},
	{hlen: 12, hcod: 0x0fb9, x: 6, y: 7},
	{hlen: 12, hcod: 0x0fba, x: 6, y: 8},
	{hlen: 12, hcod: 0x0fbb, x: 6, y: 9},
	{hlen: 12, hcod: 0x0fbc, x: 6, y: 10},
	{hlen: 12, hcod: 0x0fbd, x: 6, y: 11},
	{hlen: 13, hcod: 0x1fc7, x: 6, y: 12},
	{hlen: 13, hcod: 0x1fc8, x: 6, y: 13},
	{hlen: 13, hcod: 0x1fc9, x: 6, y: 14},
	{hlen: 11, hcod: 0x07bc, x: 6, y: 15},
	{hlen: 10, hcod: 0x03cc, x: 7, y: 0},
	{hlen: 10, hcod: 0x03cd, x: 7, y: 1},
	{hlen: 10, hcod: 0x03ce, x: 7, y: 2},
	{hlen: 11, hcod: 0x07bd, x: 7, y: 3},
	{hlen: 11, hcod: 0x07be, x: 7, y: 4},
	{hlen: 11, hcod: 0x07bf, x: 7, y: 5},
	{hlen: 12, hcod: 0x0fbe, x: 7, y: 6},
	{hlen: 12, hcod: 0x0fbf, x: 7, y: 7},
	{hlen: 13, hcod: 0x1fca, x: 7, y: 8},
	{hlen: 13, hcod: 0x1fcb, x: 7, y: 9},
	{hlen: 13, hcod: 0x1fcc, x: 7, y: 10},
	{hlen: 13, hcod: 0x1fcd, x: 7, y: 11},
	{hlen: 13, hcod: 0x1fce, x: 7, y: 12},
	{hlen: 13, hcod: 0x1fcf, x: 7, y: 13},
	{hlen: 14, hcod: 0x3fe2, x: 7, y: 14},
	{hlen: 11, hcod: 0x07c0, x: 7, y: 15},
	{hlen: 11, hcod: 0x07c1, x: 8, y: 0},
	{hlen: 10, hcod: 0x03cf, x: 8, y: 1},
	{hlen: 11, hcod: 0x07c2, x: 8, y: 2},
	{hlen: 11, hcod: 0x07c3, x: 8, y: 3},
	{hlen: 11, hcod: 0x07c4, x: 8, y: 4},
	{hlen: 12, hcod: 0x0fc0, x: 8, y: 5},
	{hlen: 12, hcod: 0x0fc1, x: 8, y: 6},
	{hlen: 12, hcod: 0x0fc2, x: 8, y: 7},
	{hlen: 12, hcod: 0x0fc3, x: 8, y: 8},
	{hlen: 13, hcod: 0x1fd0, x: 8, y: 9},
	{hlen: 13, hcod: 0x1fd1, x: 8, y: 10},
	{hlen: 13, hcod: 0x1fd2, x: 8, y: 11},
	{hlen: 13, hcod: 0x1fd3, x: 8, y: 12},
	{hlen: 14, hcod: 0x3fe3, x: 8, y: 13},
	{hlen: 14, hcod: 0x3fe4, x: 8, y: 14},
	{hlen: 11, hcod: 0x07c5, x: 8, y: 15},
	{hlen: 11, hcod: 0x07c6, x: 9, y: 0},
	{hlen: 11, hcod: 0x07c7, x: 9, y: 1},
	{hlen: 11, hcod: 0x07c8, x: 9, y: 2},
	{hlen: 11, hcod: 0x07c9, x: 9, y: 3},
	{hlen: 12, hcod: 0x0fc4, x: 9, y: 4},
	{hlen: 12, hcod: 0x0fc5, x: 9, y: 5},
	{hlen: 12, hcod: 0x0fc6, x: 9, y: 6},
	{hlen: 12, hcod: 0x0fc7, x: 9, y: 7},
	{hlen: 13, hcod: 0x1fd4, x: 9, y: 8},
	{hlen: 13, hcod: 0x1fd5, x: 9, y: 9},
	{hlen: 13, hcod: 0x1fd6, x: 9, y: 10},
	{hlen: 13, hcod: 0x1fd7, x: 9, y: 11},
	{hlen: 14, hcod: 0x3fe5, x: 9, y: 12},
	{hlen: 14, hcod: 0x3fe6, x: 9, y: 13},
	{hlen: 14, hcod: 0x3fe7, x: 9, y: 14},
	{hlen: 12, hcod: 0x0fc8, x: 9, y: 15},
	{hlen: 11, hcod: 0x07ca, x: 10, y: 0},
	{hlen: 11, hcod: 0x07cb, x: 10, y: 1},
	{hlen: 11, hcod: 0x07cc, x: 10, y: 2},
	{hlen: 11, hcod: 0x07cd, x: 10, y: 3},
	{hlen: 12, hcod: 0x0fc9, x: 10, y: 4},
	{hlen: 12, hcod: 0x0fca, x: 10, y: 5},
	{hlen: 12, hcod: 0x0fcb, x: 10, y: 6},
	{hlen: 13, hcod: 0x1fd8, x: 10, y: 7},
	{hlen: 13, hcod: 0x1fd9, x: 10, y: 8},
	{hlen: 13, hcod: 0x1fda, x: 10, y: 9},
	{hlen: 13, hcod: 0x1fdb, x: 10, y: 10},
	{hlen: 13, hcod: 0x1fdc, x: 10, y: 11},
	{hlen: 14, hcod: 0x3fe8, x: 10, y: 12},
	{hlen: 14, hcod: 0x3fe9, x: 10, y: 13},
	{hlen: 14, hcod: 0x3fea, x: 10, y: 14},
	{hlen: 12, hcod: 0x0fcc, x: 10, y: 15},
	{hlen: 12, hcod: 0x0fcd, x: 11, y: 0},
	{hlen: 11, hcod: 0x07ce, x: 11, y: 1},
	{hlen: 11, hcod: 0x07cf, x: 11, y: 2},
	{hlen: 12, hcod: 0x0fce, x: 11, y: 3},
	{hlen: 12, hcod: 0x0fcf, x: 11, y: 4},
	{hlen: 12, hcod: 0x0fd0, x: 11, y: 5},
	{hlen: 13, hcod: 0x1fdd, x: 11, y: 6},
	{hlen: 13, hcod: 0x1fde, x: 11, y: 7},
	{hlen: 13, hcod: 0x1fdf, x: 11, y: 8},
	{hlen: 13, hcod: 0x1fe0, x: 11, y: 9},
	{hlen: 13, hcod: 0x1fe1, x: 11, y: 10},
	{hlen: 14, hcod: 0x3feb, x: 11, y: 11},
	{hlen: 14, hcod: 0x3fec, x: 11, y: 12},
	{hlen: 14, hcod: 0x3fed, x: 11, y: 13},
	{hlen: 15, hcod: 0x7ff6, x: 11, y: 14},
	{hlen: 12, hcod: 0x0fd1, x: 11, y: 15},
	{hlen: 12, hcod: 0x0fd2, x: 12, y: 0},
	{hlen: 12, hcod: 0x0fd3, x: 12, y: 1},
	{hlen: 12, hcod: 0x0fd4, x: 12, y: 2},
	{hlen: 12, hcod: 0x0fd5, x: 12, y: 3},
	{hlen: 12, hcod: 0x0fd6, x: 12, y: 4},
	{hlen: 13, hcod: 0x1fe2, x: 12, y: 5},
	{hlen: 13, hcod: 0x1fe3, x: 12, y: 6},
	{hlen: 13, hcod: 0x1fe4, x: 12, y: 7},
	{hlen: 13, hcod: 0x1fe5, x: 12, y: 8},
	{hlen: 14, hcod: 0x3fee, x: 12, y: 9},
	{hlen: 14, hcod: 0x3fef, x: 12, y: 10},
	{hlen: 14, hcod: 0x3ff0, x: 12, y: 11},
	{hlen: 15, hcod: 0x7ff7, x: 12, y: 12},
	{hlen: 14, hcod: 0x3ff1, x: 12, y: 13},
	{hlen: 15, hcod: 0x7ff8, x: 12, y: 14},
	{hlen: 13, hcod: 0x1fe6, x: 12, y: 15},
	{hlen: 12, hcod: 0x0fd7, x: 13, y: 0},
	{hlen: 12, hcod: 0x0fd8, x: 13, y: 1},
	{hlen: 12, hcod: 0x0fd9, x: 13, y: 2},
	{hlen: 12, hcod: 0x0fda, x: 13, y: 3},
	{hlen: 13, hcod: 0x1fe7, x: 13, y: 4},
	{hlen: 13, hcod: 0x1fe8, x: 13, y: 5},
	{hlen: 13, hcod: 0x1fe9, x: 13, y: 6},
	{hlen: 13, hcod: 0x1fea, x: 13, y: 7},
	{hlen: 14, hcod: 0x3ff2, x: 13, y: 8},
	{hlen: 14, hcod: 0x3ff3, x: 13, y: 9},
	{hlen: 14, hcod: 0x3ff4, x: 13, y: 10},
	{hlen: 14, hcod: 0x3ff5, x: 13, y: 11},
	{hlen: 15, hcod: 0x7ff9, x: 13, y: 12},
	{hlen: 15, hcod: 0x7ffa, x: 13, y: 13},
	{hlen: 15, hcod: 0x7ffb, x: 13, y: 14},
	{hlen: 13, hcod: 0x1feb, x: 13, y: 15},
	{hlen: 13, hcod: 0x1fec, x: 14, y: 0},
	{hlen: 12, hcod: 0x0fdb, x: 14, y: 1},
	{hlen: 12, hcod: 0x0fdc, x: 14, y: 2},
	{hlen: 13, hcod: 0x1fed, x: 14, y: 3},
	{hlen: 13, hcod: 0x1fee, x: 14, y: 4},
	{hlen: 13, hcod: 0x1fef, x: 14, y: 5},
	{hlen: 14, hcod: 0x3ff6, x: 14, y: 6},
	{hlen: 14, hcod: 0x3ff7, x: 14, y: 7},
	{hlen: 14, hcod: 0x3ff8, x: 14, y: 8},
	{hlen: 14, hcod: 0x3ff9, x: 14, y: 9},
	{hlen: 14, hcod: 0x3ffa, x: 14, y: 10},
	{hlen: 15, hcod: 0x7ffc, x: 14, y: 11},
	{hlen: 15, hcod: 0x7ffd, x: 14, y: 12},
	{hlen: 15, hcod: 0x7ffe, x: 14, y: 13},
	{hlen: 15, hcod: 0x7fff, x: 14, y: 14},
	{hlen: 13, hcod: 0x1ff0, x: 14, y: 15},
	{hlen: 9, hcod: 0x01d9, x: 15, y: 0},
	{hlen: 8, hcod: 0x00e0, x: 15, y: 1},
	{hlen: 8, hcod: 0x00e1, x: 15, y: 2},
	{hlen: 9, hcod: 0x01da, x: 15, y: 3},
	{hlen: 9, hcod: 0x01db, x: 15, y: 4},
	{hlen: 10, hcod: 0x03d0, x: 15, y: 5},
	{hlen: 10, hcod: 0x03d1, x: 15, y: 6},
	{hlen: 10, hcod: 0x03d2, x: 15, y: 7},
	{hlen: 11, hcod: 0x07d0, x: 15, y: 8},
	{hlen: 11, hcod: 0x07d1, x: 15, y: 9},
	{hlen: 11, hcod: 0x07d2, x: 15, y: 10},
	{hlen: 11, hcod: 0x07d3, x: 15, y: 11},
	{hlen: 12, hcod: 0x0fdd, x: 15, y: 12},
	{hlen: 12, hcod: 0x0fde, x: 15, y: 13},
	{hlen: 12, hcod: 0x0fdf, x: 15, y: 14},
	{hlen: 8, hcod: 0x00e2, x: 15, y: 15},
}

var codes24 = []codeword{
	{hlen: 4, hcod: 0x0000, x: 0, y: 0},
	{hlen: 4, hcod: 0x0001, x: 0, y: 1},
	{hlen: 5, hcod: 0x000c, x: 0, y: 2},
	{hlen: 7, hcod: 0x0040, x: 0, y: 3},
	{hlen: 8, hcod: 0x00a8, x: 0, y: 4},
	{hlen: 8, hcod: 0x00a9, x: 0, y: 5},
	{hlen: 9, hcod: 0x019a, x: 0, y: 6},
	{hlen: 9, hcod: 0x019b, x: 0, y: 7},
	{hlen: 10, hcod: 0x03a4, x: 0, y: 8},
	{hlen: 11, hcod: 0x07c8, x: 0, y: 9},
	{hlen: 11, hcod: 0x07c9, x: 0, y: 10},
	{hlen: 11, hcod: 0x07ca, x: 0, y: 11},
	{hlen: 11, hcod: 0x07cb, x: 0, y: 12},
	{hlen: 11, hcod: 0x07cc, x: 0, y: 13},
	{hlen: 12, hcod: 0x0fee, x: 0, y: 14},
	{hlen: 9, hcod: 0x019c, x: 0, y: 15},
	{hlen: 4, hcod: 0x0002, x: 1, y: 0},
	{hlen: 4, hcod: 0x0003, x: 1, y: 1},
	{hlen: 4, hcod: 0x0004, x: 1, y: 2},
	{hlen: 6, hcod: 0x001c, x: 1, y: 3},
	{hlen: 7, hcod: 0x0041, x: 1, y: 4},
	{hlen: 8, hcod: 0x00aa, x: 1, y: 5},
	{hlen: 8, hcod: 0x00ab, x: 1, y: 6},
	{hlen: 9, hcod: 0x019d, x: 1, y: 7},
	{hlen: 9, hcod: 0x019e, x: 1, y: 8},
	{hlen: 9, hcod: 0x019f, x: 1, y: 9},
	{hlen: 10, hcod: 0x03a5, x: 1, y: 10},
	{hlen: 10, hcod: 0x03a6, x: 1, y: 11},
	{hlen: 10, hcod: 0x03a7, x: 1, y: 12},
	{hlen: 10, hcod: 0x03a8, x: 1, y: 13},
	{hlen: 10, hcod: 0x03a9, x: 1, y: 14},
	{hlen: 8, hcod: 0x00ac, x: 1, y: 15},
	{hlen: 6, hcod: 0x001d, x: 2, y: 0},
	{hlen: 5, hcod: 0x000d, x: 2, y: 1},
	{hlen: 6, hcod: 0x001e, x: 2, y: 2},
	{hlen: 7, hcod: 0x0042, x: 2, y: 3},
	{hlen: 7, hcod: 0x0043, x: 2, y: 4},
	{hlen: 8, hcod: 0x00ad, x: 2, y: 5},
	{hlen: 8, hcod: 0x00ae, x: 2, y: 6},
	{hlen: 9, hcod: 0x01a0, x: 2, y: 7},
	{hlen: 9, hcod: 0x01a1, x: 2, y: 8},
	{hlen: 9, hcod: 0x01a2, x: 2, y: 9},
	{hlen: 9, hcod: 0x01a3, x: 2, y: 10},
	{hlen: 10, hcod: 0x03aa, x: 2, y: 11},
	{hlen: 10, hcod: 0x03ab, x: 2, y: 12},
	{hlen: 10, hcod: 0x03ac, x: 2, y: 13},
	{hlen: 11, hcod: 0x07cd, x: 2, y: 14},
	{hlen: 7, hcod: 0x0044, x: 2, y: 15},
	{hlen: 7, hcod: 0x0045, x: 3, y: 0},
	{hlen: 6, hcod: 0x001f, x: 3, y: 1},
	{hlen: 7, hcod: 0x0046, x: 3, y: 2},
	{hlen: 7, hcod: 0x0047, x: 3, y: 3},
	{hlen: 8, hcod: 0x00af, x: 3, y: 4},
	{hlen: 8, hcod: 0x00b0, x: 3, y: 5},
	{hlen: 8, hcod: 0x00b1, x: 3, y: 6},
	{hlen: 9, hcod: 0x01a4, x: 3, y: 7},
	{hlen: 9, hcod: 0x01a5, x: 3, y: 8},
	{hlen: 9, hcod: 0x01a6, x: 3, y: 9},
	{hlen: 9, hcod: 0x01a7, x: 3, y: 10},
	{hlen: 10, hcod: 0x03ad, x: 3, y: 11},
	{hlen: 10, hcod: 0x03ae, x: 3, y: 12},
	{hlen: 10, hcod: 0x03af, x: 3, y: 13},
	{hlen: 10, hcod: 0x03b0, x: 3, y: 14},
	{hlen: 7, hcod: 0x0048, x: 3, y: 15},
	{hlen: 8, hcod: 0x00b2, x: 4, y: 0},
	{hlen: 7, hcod: 0x0049, x: 4, y: 1},
	{hlen: 7, hcod: 0x004a, x: 4, y: 2},
	{hlen: 8, hcod: 0x00b3, x: 4, y: 3},
	{hlen: 8, hcod: 0x00b4, x: 4, y: 4},
	{hlen: 8, hcod: 0x00b5, x: 4, y: 5},
	{hlen: 8, hcod: 0x00b6, x: 4, y: 6},
	{hlen: 9, hcod: 0x01a8, x: 4, y: 7},
	{hlen: 9, hcod: 0x01a9, x: 4, y: 8},
	{hlen: 9, hcod: 0x01aa, x: 4, y: 9},
	{hlen: 9, hcod: 0x01ab, x: 4, y: 10},
	{hlen: 10, hcod: 0x03b1, x: 4, y: 11},
	{hlen: 10, hcod: 0x03b2, x: 4, y: 12},
	{hlen: 10, hcod: 0x03b3, x: 4, y: 13},
	{hlen: 11, hcod: 0x07ce, x: 4, y: 14},
	{hlen: 7, hcod: 0x004b, x: 4, y: 15},
	{hlen: 9, hcod: 0x01ac, x: 5, y: 0},
	{hlen: 7, hcod: 0x004c, x: 5, y: 1},
	{hlen: 8, hcod: 0x00b7, x: 5, y: 2},
	{hlen: 8, hcod: 0x00b8, x: 5, y: 3},
	{hlen: 8, hcod: 0x00b9, x: 5, y: 4},
	{hlen: 8, hcod: 0x00ba, x: 5, y: 5},
	{hlen: 9, hcod: 0x01ad, x: 5, y: 6},
	{hlen: 9, hcod: 0x01ae, x: 5, y: 7},
	{hlen: 9, hcod: 0x01af, x: 5, y: 8},
	{hlen: 9, hcod: 0x01b0, x: 5, y: 9},
	{hlen: 10, hcod: 0x03b4, x: 5, y: 10},
	{hlen: 10, hcod: 0x03b5, x: 5, y: 11},
	{hlen: 10, hcod: 0x03b6, x: 5, y: 12},
	{hlen: 10, hcod: 0x03b7, x: 5, y: 13},
	{hlen: 11, hcod: 0x07cf, x: 5, y: 14},
	{hlen: 7, hcod: 0x004d, x: 5, y: 15},
	{hlen: 9, hcod: 0x01b1, x: 6, y: 0},
	{hlen: 8, hcod: 0x00bb, x: 6, y: 1},
	{hlen: 8, hcod: 0x00bc, x: 6, y: 2},
	{hlen: 9, hcod: 0x01b2, x: 6, y: 3},
	{hlen: 9, hcod: 0x01b3, x: 6, y: 4},
	{hlen: 9, hcod: 0x01b4, x: 6, y: 5},
	{hlen: 9, hcod: 0x01b5, x: 6, y: 6},
	{hlen: 9, hcod: 0x01b6, x: 6, y: 7},
	{hlen: 9, hcod: 0x01b7, x: 6, y: 8},
	{hlen: 9, hcod: 0x01b8, x: 6, y: 9},
	{hlen: 10, hcod: 0x03b8, x: 6, y: 10},
	{hlen: 10, hcod: 0x03b9, x: 6, y: 11},
	{hlen: 10, hcod: 0x03ba, x: 6, y: 12},
	{hlen: 10, hcod: 0x03bb, x: 6, y: 13},
	{hlen: 11, hcod: 0x07d0, x: 6, y: 14},
	{hlen: 8, hcod: 0x00bd, x: 6, y: 15},
	{hlen: 10, hcod: 0x03bc, x: 7, y: 0},
	{hlen: 8, hcod: 0x00be, x: 7, y: 1},
	{hlen: 9, hcod: 0x01b9, x: 7, y: 2},
	{hlen: 9, hcod: 0x01ba, x: 7, y: 3},
	{hlen: 9, hcod: 0x01bb, x: 7, y: 4},
	{hlen: 9, hcod: 0x01bc, x: 7, y: 5},
	{hlen: 9, hcod: 0x01bd, x: 7, y: 6},
	{hlen: 9, hcod: 0x01be, x: 7, y: 7},
	{hlen: 9, hcod: 0x01bf, x: 7, y: 8},
	{hlen: 10, hcod: 0x03bd, x: 7, y: 9},
	{hlen: 10, hcod: 0x03be, x: 7, y: 10},
	{hlen: 10, hcod: 0x03bf, x: 7, y: 11},
	{hlen: 10, hcod: 0x03c0, x: 7, y: 12},
	{hlen: 10, hcod: 0x03c1, x: 7, y: 13},
	{hlen: 11, hcod: 0x07d1, x: 7, y: 14},
	{hlen: 8, hcod: 0x00bf, x: 7, y: 15},
	{hlen: 10, hcod: 0x03c2, x: 8, y: 0},
	{hlen: 9, hcod: 0x01c0, x: 8, y: 1},
	{hlen: 9, hcod: 0x01c1, x: 8, y: 2},
	{hlen: 9, hcod: 0x01c2, x: 8, y: 3},
	{hlen: 9, hcod: 0x01c3, x: 8, y: 4},
	{hlen: 9, hcod: 0x01c4, x: 8, y: 5},
	{hlen: 9, hcod: 0x01c5, x: 8, y: 6},
	{hlen: 10, hcod: 0x03c3, x: 8, y: 7},
	{hlen: 10, hcod: 0x03c4, x: 8, y: 8},
	{hlen: 10, hcod: 0x03c5, x: 8, y: 9},
	{hlen: 10, hcod: 0x03c6, x: 8, y: 10},
	{hlen: 10, hcod: 0x03c7, x: 8, y: 11},
	{hlen: 11, hcod: 0x07d2, x: 8, y: 12},
	{hlen: 11, hcod: 0x07d3, x: 8, y: 13},
	{hlen: 11, hcod: 0x07d4, x: 8, y: 14},
	{hlen: 8, hcod: 0x00c0, x: 8, y: 15},
	{hlen: 10, hcod: 0x03c8, x: 9, y: 0},
	{hlen: 9, hcod: 0x01c6, x: 9, y: 1},
	{hlen: 9, hcod: 0x01c7, x: 9, y: 2},
	{hlen: 9, hcod: 0x01c8, x: 9, y: 3},
	{hlen: 9, hcod: 0x01c9, x: 9, y: 4},
	{hlen: 9, hcod: 0x01ca, x: 9, y: 5},
	{hlen: 10, hcod: 0x03c9, x: 9, y: 6},
	{hlen: 10, hcod: 0x03ca, x: 9, y: 7},
	{hlen: 10, hcod: 0x03cb, x: 9, y: 8},
	{hlen: 10, hcod: 0x03cc, x: 9, y: 9},
	{hlen: 10, hcod: 0x03cd, x: 9, y: 10},
	{hlen: 11, hcod: 0x07d5, x: 9, y: 11},
	{hlen: 11, hcod: 0x07d6, x: 9, y: 12},
	{hlen: 11, hcod: 0x07d7, x: 9, y: 13},
	{hlen: 11, hcod: 0x07d8, x: 9, y: 14},
	{hlen: 8, hcod: 0x00c1, x: 9, y: 15},
	{hlen: 11, hcod: 0x07d9, x: 10, y: 0},
	{hlen: 9, hcod: 0x01cb, x: 10, y: 1},
	{hlen: 9, hcod: 0x01cc, x: 10, y: 2},
	{hlen: 9, hcod: 0x01cd, x: 10, y: 3},
	{hlen: 10, hcod: 0x03ce, x: 10, y: 4},
	{hlen: 10, hcod: 0x03cf, x: 10, y: 5},
	{hlen: 10, hcod: 0x03d0, x: 10, y: 6},
	{hlen: 10, hcod: 0x03d1, x: 10, y: 7},
	{hlen: 10, hcod: 0x03d2, x: 10, y: 8},
	{hlen: 10, hcod: 0x03d3, x: 10, y: 9},
	{hlen: 11, hcod: 0x07da, x: 10, y: 10},
	{hlen: 11, hcod: 0x07db, x: 10, y: 11},
	{hlen: 11, hcod: 0x07dc, x: 10, y: 12},
	{hlen: 11, hcod: 0x07dd, x: 10, y: 13},
	{hlen: 12, hcod: 0x0fef, x: 10, y: 14},
	{hlen: 8, hcod: 0x00c2, x: 10, y: 15},
	{hlen: 11, hcod: 0x07de, x: 11, y: 0},
	{hlen: 10, hcod: 0x03d4, x: 11, y: 1},
	{hlen: 9, hcod: 0x01ce, x: 11, y: 2},
	{hlen: 10, hcod: 0x03d5, x: 11, y: 3},
	{hlen: 10, hcod: 0x03d6, x: 11, y: 4},
	{hlen: 10, hcod: 0x03d7, x: 11, y: 5},
	{hlen: 10, hcod: 0x03d8, x: 11, y: 6},
	{hlen: 10, hcod: 0x03d9, x: 11, y: 7},
	{hlen: 11, hcod: 0x07df, x: 11, y: 8},
	{hlen: 11, hcod: 0x07e0, x: 11, y: 9},
	{hlen: 11, hcod: 0x07e1, x: 11, y: 10},
	{hlen: 11, hcod: 0x07e2, x: 11, y: 11},
	{hlen: 11, hcod: 0x07e3, x: 11, y: 12},
	{hlen: 12, hcod: 0x0ff0, x: 11, y: 13},
	{hlen: 12, hcod: 0x0ff1, x: 11, y: 14},
	{hlen: 8, hcod: 0x00c3, x: 11, y: 15},
	{hlen: 11, hcod: 0x07e4, x: 12, y: 0},
	{hlen: 10, hcod: 0x03da, x: 12, y: 1},
	{hlen: 10, hcod: 0x03db, x: 12, y: 2},
	{hlen: 10, hcod: 0x03dc, x: 12, y: 3},
	{hlen: 10, hcod: 0x03dd, x: 12, y: 4},
	{hlen: 10, hcod: 0x03de, x: 12, y: 5},
	{hlen: 10, hcod: 0x03df, x: 12, y: 6},
	{hlen: 11, hcod: 0x07e5, x: 12, y: 7},
	{hlen: 11, hcod: 0x07e6, x: 12, y: 8},
	{hlen: 11, hcod: 0x07e7, x: 12, y: 9},
	{hlen: 11, hcod: 0x07e8, x: 12, y: 10},
	{hlen: 11, hcod: 0x07e9, x: 12, y: 11},
	{hlen: 12, hcod: 0x0ff2, x: 12, y: 12},
	{hlen: 12, hcod: 0x0ff3, x: 12, y: 13},
	{hlen: 12, hcod: 0x0ff4, x: 12, y: 14},
	{hlen: 8, hcod: 0x00c4, x: 12, y: 15},
	{hlen: 11, hcod: 0x07ea, x: 13, y: 0},
	{hlen: 10, hcod: 0x03e0, x: 13, y: 1},
	{hlen: 10, hcod: 0x03e1, x: 13, y: 2},
	{hlen: 10, hcod: 0x03e2, x: 13, y: 3},
	{hlen: 10, hcod: 0x03e3, x: 13, y: 4},
	{hlen: 11, hcod: 0x07eb, x: 13, y: 5},
	{hlen: 11, hcod: 0x07ec, x: 13, y: 6},
	{hlen: 11, hcod: 0x07ed, x: 13, y: 7},
	{hlen: 11, hcod: 0x07ee, x: 13, y: 8},
	{hlen: 11, hcod: 0x07ef, x: 13, y: 9},
	{hlen: 12, hcod: 0x0ff5, x: 13, y: 10},
	{hlen: 12, hcod: 0x0ff6, x: 13, y: 11},
	{hlen: 12, hcod: 0x0ff7, x: 13, y: 12},
	{hlen: 12, hcod: 0x0ff8, x: 13, y: 13},
	{hlen: 13, hcod: 0x1ffc, x: 13, y: 14},
	{hlen: 8, hcod: 0x00c5, x: 13, y: 15},
	{hlen: 12, hcod: 0x0ff9, x: 14, y: 0},
	{hlen: 11, hcod: 0x07f0, x: 14, y: 1},
	{hlen: 11, hcod: 0x07f1, x: 14, y: 2},
	{hlen: 11, hcod: 0x07f2, x: 14, y: 3},
	{hlen: 11, hcod: 0x07f3, x: 14, y: 4},
	{hlen: 11, hcod: 0x07f4, x: 14, y: 5},
	{hlen: 11, hcod: 0x07f5, x: 14, y: 6},
	{hlen: 11, hcod: 0x07f6, x: 14, y: 7},
	{hlen: 12, hcod: 0x0ffa, x: 14, y: 8},
	{hlen: 12, hcod: 0x0ffb, x: 14, y: 9},
	{hlen: 12, hcod: 0x0ffc, x: 14, y: 10},
	{hlen: 12, hcod: 0x0ffd, x: 14, y: 11},
	{hlen: 13, hcod: 0x1ffd, x: 14, y: 12},
	{hlen: 13, hcod: 0x1ffe, x: 14, y: 13},
	{hlen: 13, hcod: 0x1fff, x: 14, y: 14},
	{hlen: 8, hcod: 0x00c6, x: 14, y: 15},
	{hlen: 8, hcod: 0x00c7, x: 15, y: 0},
	{hlen: 7, hcod: 0x004e, x: 15, y: 1},
	{hlen: 7, hcod: 0x004f, x: 15, y: 2},
	{hlen: 7, hcod: 0x0050, x: 15, y: 3},
	{hlen: 7, hcod: 0x0051, x: 15, y: 4},
	{hlen: 7, hcod: 0x0052, x: 15, y: 5},
	{hlen: 7, hcod: 0x0053, x: 15, y: 6},
	{hlen: 8, hcod: 0x00c8, x: 15, y: 7},
	{hlen: 8, hcod: 0x00c9, x: 15, y: 8},
	{hlen: 8, hcod: 0x00ca, x: 15, y: 9},
	{hlen: 8, hcod: 0x00cb, x: 15, y: 10},
	{hlen: 8, hcod: 0x00cc, x: 15, y: 11},
	{hlen: 9, hcod: 0x01cf, x: 15, y: 12},
	{hlen: 9, hcod: 0x01d0, x: 15, y: 13},
	{hlen: 9, hcod: 0x01d1, x: 15, y: 14},
	{hlen: 4, hcod: 0x0005, x: 15, y: 15},
}
var quadACodes = []codeword{
	{hlen: 1, hcod: 0x1, x: 0},
	{hlen: 4, hcod: 0x5, x: 1},
	{hlen: 4, hcod: 0x4, x: 2},
	{hlen: 5, hcod: 0x5, x: 3},
	{hlen: 4, hcod: 0x6, x: 4},
	{hlen: 6, hcod: 0x5, x: 5},
	{hlen: 5, hcod: 0x4, x: 6},
	{hlen: 6, hcod: 0x4, x: 7},
	{hlen: 4, hcod: 0x7, x: 8},
	{hlen: 5, hcod: 0x3, x: 9},
	{hlen: 5, hcod: 0x6, x: 10},
	{hlen: 6, hcod: 0x0, x: 11},
	{hlen: 5, hcod: 0x7, x: 12},
	{hlen: 6, hcod: 0x2, x: 13},
	{hlen: 6, hcod: 0x3, x: 14},
	{hlen: 6, hcod: 0x1, x: 15},
}

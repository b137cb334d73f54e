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

// Package huffman decodes the variable-length coded frequency lines of
// MPEG-1 Layer III main data.
//
// The 32 big-value table slots share 15 distinct code tables; slots 17..23
// reuse table 16 and slots 25..31 reuse table 24, differing only in their
// linbits width. Slot 32 is the variable-length count-1 quadruple table and
// slot 33 its fixed 4-bit complement form. Code tables are built once, at
// package init, into contiguous node arenas walked by integer index.
package huffman

import (
	"github.com/mpegkit/layer3/internal/bits"
	"github.com/mpegkit/layer3/internal/consts"
)

// escapeValue is the largest codable magnitude of the 16x16 tables; decoded
// values equal to it are extended by linbits extra bits.
const escapeValue = 15

// maxCodeBits bounds a tree walk; no table carries codewords this long, so
// exceeding it means the bit pattern matches nothing.
const maxCodeBits = 32

type node struct {
	children [2]int32
	leaf     bool
	x, y     uint8
}

// tree is a binary code tree flattened into a node arena. Node 0 is the
// root; a zero child index means the branch is absent.
type tree struct {
	nodes []node
}

func newTree(codes []codeword) *tree {
	t := &tree{nodes: make([]node, 1, 2*len(codes))}

	for _, c := range codes {
		idx := int32(0)
		for b := int(c.hlen) - 1; b >= 0; b-- {
			dir := (c.hcod >> uint(b)) & 1

			next := t.nodes[idx].children[dir]
			if next == 0 {
				t.nodes = append(t.nodes, node{})
				next = int32(len(t.nodes) - 1)
				t.nodes[idx].children[dir] = next
			}

			idx = next
		}

		t.nodes[idx] = node{leaf: true, x: c.x, y: c.y}
	}

	return t
}

// walk follows bits from r until it reaches a leaf.
func (t *tree) walk(r *bits.Reader) (x, y int, ok bool) {
	idx := int32(0)
	for range maxCodeBits {
		n := &t.nodes[idx]
		if n.leaf {
			return int(n.x), int(n.y), true
		}

		idx = n.children[r.Bit()]
		if idx == 0 || r.Overrun() {
			return 0, 0, false
		}
	}

	return 0, 0, false
}

// pairTables maps the 32 big-value table slots to their code table and
// linbits width. A nil codes slice with zero linbits marks slot 0 (no data);
// slots 4 and 14 are unusable.
var pairTables = [32]struct {
	codes   []codeword
	linbits int
}{
	1:  {codes: codes1},
	2:  {codes: codes2},
	3:  {codes: codes3},
	5:  {codes: codes5},
	6:  {codes: codes6},
	7:  {codes: codes7},
	8:  {codes: codes8},
	9:  {codes: codes9},
	10: {codes: codes10},
	11: {codes: codes11},
	12: {codes: codes12},
	13: {codes: codes13},
	15: {codes: codes15},
	16: {codes: codes16, linbits: 1},
	17: {codes: codes16, linbits: 2},
	18: {codes: codes16, linbits: 3},
	19: {codes: codes16, linbits: 4},
	20: {codes: codes16, linbits: 6},
	21: {codes: codes16, linbits: 8},
	22: {codes: codes16, linbits: 10},
	23: {codes: codes16, linbits: 13},
	24: {codes: codes24, linbits: 4},
	25: {codes: codes24, linbits: 5},
	26: {codes: codes24, linbits: 6},
	27: {codes: codes24, linbits: 7},
	28: {codes: codes24, linbits: 8},
	29: {codes: codes24, linbits: 9},
	30: {codes: codes24, linbits: 11},
	31: {codes: codes24, linbits: 13},
}

var (
	pairTrees [32]*tree
	quadTree  *tree
)

func init() {
	shared := map[*codeword]*tree{}

	for i := range pairTables {
		c := pairTables[i].codes
		if c == nil {
			continue
		}

		t, ok := shared[&c[0]]
		if !ok {
			t = newTree(c)
			shared[&c[0]] = t
		}

		pairTrees[i] = t
	}

	quadTree = newTree(quadACodes)
}

// Decode reads one Huffman codeword from r.
//
// For big-value tables (0..31) it returns the signed pair (x, y) with any
// linbits escape applied; v and w are zero. Table 0 codes the all-zero pair
// in zero bits. For the count-1 tables (32, 33) it returns the signed
// quadruple (v, w, x, y), each in {-1, 0, 1}.
func Decode(r *bits.Reader, tableNum int) (x, y, v, w int, err error) {
	switch {
	case tableNum == 0:
		return 0, 0, 0, 0, nil
	case tableNum > 0 && tableNum < 32:
		return decodePair(r, tableNum)
	case tableNum == 32 || tableNum == 33:
		return decodeQuad(r, tableNum)
	}

	return 0, 0, 0, 0, &consts.HuffmanDataError{Table: tableNum}
}

func decodePair(r *bits.Reader, tableNum int) (x, y, v, w int, err error) {
	t := pairTrees[tableNum]
	if t == nil {
		return 0, 0, 0, 0, &consts.HuffmanDataError{Table: tableNum}
	}

	x, y, ok := t.walk(r)
	if !ok {
		return 0, 0, 0, 0, &consts.HuffmanDataError{Table: tableNum}
	}

	linbits := pairTables[tableNum].linbits

	if linbits > 0 && x == escapeValue {
		x += int(r.Bits(linbits))
	}
	if x != 0 && r.Bit() == 1 {
		x = -x
	}

	if linbits > 0 && y == escapeValue {
		y += int(r.Bits(linbits))
	}
	if y != 0 && r.Bit() == 1 {
		y = -y
	}

	if r.Overrun() {
		return 0, 0, 0, 0, &consts.HuffmanDataError{Table: tableNum}
	}

	return x, y, 0, 0, nil
}

func decodeQuad(r *bits.Reader, tableNum int) (x, y, v, w int, err error) {
	var value int
	if tableNum == 32 {
		idx, _, ok := quadTree.walk(r)
		if !ok {
			return 0, 0, 0, 0, &consts.HuffmanDataError{Table: tableNum}
		}
		value = idx
	} else {
		value = int(^r.Bits(4) & 0xf)
	}

	v = (value >> 3) & 1
	w = (value >> 2) & 1
	x = (value >> 1) & 1
	y = value & 1

	if v != 0 && r.Bit() == 1 {
		v = -v
	}
	if w != 0 && r.Bit() == 1 {
		w = -w
	}
	if x != 0 && r.Bit() == 1 {
		x = -x
	}
	if y != 0 && r.Bit() == 1 {
		y = -y
	}

	if r.Overrun() {
		return 0, 0, 0, 0, &consts.HuffmanDataError{Table: tableNum}
	}

	return x, y, v, w, nil
}

package bitutil

import (
	"math/bits"
	"unsafe"
)

// WordBits is the number of bits in a plane word.
const WordBits = int(8 * unsafe.Sizeof(uint64(0)))

// MaxRangeLen is the longest field RangeMask knows about.
const MaxRangeLen = 32

var (
	rangeMaskTable = [...]uint64{ // up to 32 bits
		0x00000000,
		0x00000001, 0x00000003, 0x00000007, 0x0000000f,
		0x0000001f, 0x0000003f, 0x0000007f, 0x000000ff,
		0x000001ff, 0x000003ff, 0x000007ff, 0x00000fff,
		0x00001fff, 0x00003fff, 0x00007fff, 0x0000ffff,
		0x0001ffff, 0x0003ffff, 0x0007ffff, 0x000fffff,
		0x001fffff, 0x003fffff, 0x007fffff, 0x00ffffff,
		0x01ffffff, 0x03ffffff, 0x07ffffff, 0x0fffffff,
		0x1fffffff, 0x3fffffff, 0x7fffffff, 0xffffffff,
	}
)

// RangeMask returns a mask of 'length' low ones.
// Lengths the table does not cover, including 0, give an empty mask.
func RangeMask(length int) uint64 {
	if length < 0 || length >= len(rangeMaskTable) {
		return 0
	}
	return rangeMaskTable[length]
}

// Field extracts 'length' bits of w starting at 'offset', right-aligned.
func Field(w uint64, offset, length int) uint64 {
	if offset < 0 || offset >= WordBits {
		return 0
	}
	return (w >> uint(offset)) & RangeMask(length)
}

// WidthMask returns a mask covering the low 'width' bits.
// width is clamped to [0, WordBits].
func WidthMask(width int) uint64 {
	switch {
	case width <= 0:
		return 0
	case width >= WordBits:
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

// SetBit returns w with bit 'pos' set to the lowest bit of v.
func SetBit(w uint64, pos int, v uint8) uint64 {
	mask := uint64(1) << uint(pos)
	if v&1 != 0 {
		return w | mask
	}
	return w &^ mask
}

// GetBit returns bit 'pos' of w.
func GetBit(w uint64, pos int) uint8 {
	return uint8(w >> uint(pos) & 1)
}

// BinaryDigits returns the number of significant bits in value.
func BinaryDigits(value uint64) int {
	return WordBits - bits.LeadingZeros64(value)
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package tristate

import (
	"fmt"

	"github.com/avdva/tristate/internal/bitutil"
)

const (
	// MinWidth is the narrowest Word.
	MinWidth = 1
	// MaxWidth is the widest Word.
	MaxWidth = bitutil.WordBits
)

var (
	stateLow   = State{Logic: 0, Unknown: 0}
	stateHigh  = State{Logic: ^uint64(0), Unknown: 0}
	stateFloat = State{Logic: 0, Unknown: ^uint64(0)}
)

var _ Value = (*Word)(nil)

// Word is a tri-state value of 1 to 64 bits.
// It keeps the logic plane and the unknown plane in two separate words:
//
//	  63                                                             0
//	  _______________________________________________________________
//	l llllllllllllllllllllllllllllllllllllllllllllllllllllllllllllllll
//	u uuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuu
//
// Only the low Width() bits of each plane are meaningful. Whole-plane operations,
// like DriveHigh or Not, may leave the bits above the width set.
//
// A Word is not safe for concurrent mutation.
type Word struct {
	width int
	s     State
}

// NewWord returns a floating word of the given width.
// Returns ErrWidth if width is not in [1, 64].
func NewWord(width int) (*Word, error) {
	if width < MinWidth || width > MaxWidth {
		return nil, fmt.Errorf("%w: %d", ErrWidth, width)
	}
	return &Word{width: width, s: stateFloat}, nil
}

// MustNewWord is like NewWord, but panics on a bad width.
func MustNewWord(width int) *Word {
	w, err := NewWord(width)
	if err != nil {
		panic(err)
	}
	return w
}

// FromUint64 returns a fully driven word holding v.
// Returns an error if v does not fit into width bits.
func FromUint64(v uint64, width int) (*Word, error) {
	w, err := NewWord(width)
	if err != nil {
		return nil, err
	}
	if bitutil.BinaryDigits(v) > width {
		return nil, fmt.Errorf("value %#x does not fit into %d bits", v, width)
	}
	w.s = State{Logic: v}
	return w, nil
}

// Width returns the number of bits in w.
func (w *Word) Width() int {
	return w.width
}

// Kind returns KindFixed.
func (w *Word) Kind() Kind {
	return KindFixed
}

func (w *Word) checkPos(pos int) {
	if pos < 0 || pos >= w.width {
		panic(fmt.Sprintf("bit position %d out of range [0, %d)", pos, w.width))
	}
}

// Bit returns the packed bit at pos.
func (w *Word) Bit(pos int) Bit {
	w.checkPos(pos)
	return NewBit(bitutil.GetBit(w.s.Logic, pos), bitutil.GetBit(w.s.Unknown, pos))
}

// SetBit sets both planes at pos from a packed bit.
func (w *Word) SetBit(pos int, b Bit) {
	w.checkPos(pos)
	w.s.Logic = bitutil.SetBit(w.s.Logic, pos, b.Logic())
	w.s.Unknown = bitutil.SetBit(w.s.Unknown, pos, b.Unknown())
}

// BitLogic returns the logic level at pos.
func (w *Word) BitLogic(pos int) uint8 {
	w.checkPos(pos)
	return bitutil.GetBit(w.s.Logic, pos)
}

// SetBitLogic sets the logic level at pos to the lowest bit of v.
func (w *Word) SetBitLogic(pos int, v uint8) {
	w.checkPos(pos)
	w.s.Logic = bitutil.SetBit(w.s.Logic, pos, v)
}

// BitUnknown returns the unknown flag at pos.
func (w *Word) BitUnknown(pos int) uint8 {
	w.checkPos(pos)
	return bitutil.GetBit(w.s.Unknown, pos)
}

// SetBitUnknown sets the unknown flag at pos to the lowest bit of v.
func (w *Word) SetBitUnknown(pos int, v uint8) {
	w.checkPos(pos)
	w.s.Unknown = bitutil.SetBit(w.s.Unknown, pos, v)
}

// RangeLogic returns 'length' logic bits starting at offset, right-aligned.
// Lengths outside [1, 32] give 0. Bits at or above the width read as 0.
func (w *Word) RangeLogic(offset, length int) uint64 {
	w.checkPos(offset)
	return bitutil.Field(w.s.Logic, offset, length) & bitutil.WidthMask(w.width-offset)
}

// RangeUnknown returns 'length' unknown flags starting at offset, right-aligned.
// Lengths outside [1, 32] give 0. Bits at or above the width read as 0.
func (w *Word) RangeUnknown(offset, length int) uint64 {
	w.checkPos(offset)
	return bitutil.Field(w.s.Unknown, offset, length) & bitutil.WidthMask(w.width-offset)
}

// State returns both planes.
func (w *Word) State() State {
	return w.s
}

// SetState replaces both planes.
func (w *Word) SetState(s State) {
	w.s = s
}

// Logic returns the whole logic plane.
func (w *Word) Logic() uint64 {
	return w.s.Logic
}

// SetLogic replaces the whole logic plane.
func (w *Word) SetLogic(bits uint64) {
	w.s.Logic = bits
}

// Unknown returns the whole unknown plane.
func (w *Word) Unknown() uint64 {
	return w.s.Unknown
}

// SetUnknown replaces the whole unknown plane.
func (w *Word) SetUnknown(bits uint64) {
	w.s.Unknown = bits
}

// AssignFrom copies other's planes into w. w keeps its width.
// Returns an error wrapping ErrUnsupportedKind if other is not a KindFixed value,
// in which case w is not modified.
func (w *Word) AssignFrom(other Value) error {
	switch k := other.Kind(); k {
	case KindFixed:
		w.s = other.State()
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedKind, k)
	}
}

// DriveLow drives all bits to 0.
func (w *Word) DriveLow() {
	w.s = stateLow
}

// DriveHigh drives all bits to 1.
func (w *Word) DriveHigh() {
	w.s = stateHigh
}

// Float makes all bits unknown.
func (w *Word) Float() {
	w.s = stateFloat
}

// mustFixed panics if v is not a representation the operators can read.
func mustFixed(v Value) {
	if k := v.Kind(); k != KindFixed {
		panic(fmt.Errorf("%w: %s", ErrUnsupportedKind, k))
	}
}

// The operators below mark a result bit unknown whenever any operand bit is unknown,
// regardless of the logic levels. unknown AND 0 is unknown.
// They panic on operands of a kind other than KindFixed, leaving w unchanged.

// And sets w to a & b.
func (w *Word) And(a, b Value) {
	mustFixed(a)
	mustFixed(b)
	al, bl := a.Logic(), b.Logic()
	w.s = State{Logic: al & bl, Unknown: a.Unknown() | b.Unknown()}
}

// Nand sets w to ^(a & b).
func (w *Word) Nand(a, b Value) {
	mustFixed(a)
	mustFixed(b)
	al, bl := a.Logic(), b.Logic()
	w.s = State{Logic: ^(al & bl), Unknown: a.Unknown() | b.Unknown()}
}

// Or sets w to a | b.
func (w *Word) Or(a, b Value) {
	mustFixed(a)
	mustFixed(b)
	al, bl := a.Logic(), b.Logic()
	w.s = State{Logic: al | bl, Unknown: a.Unknown() | b.Unknown()}
}

// Nor sets w to ^(a | b).
func (w *Word) Nor(a, b Value) {
	mustFixed(a)
	mustFixed(b)
	al, bl := a.Logic(), b.Logic()
	w.s = State{Logic: ^(al | bl), Unknown: a.Unknown() | b.Unknown()}
}

// Xor sets w to a ^ b.
func (w *Word) Xor(a, b Value) {
	mustFixed(a)
	mustFixed(b)
	al, bl := a.Logic(), b.Logic()
	w.s = State{Logic: al ^ bl, Unknown: a.Unknown() | b.Unknown()}
}

// Xnor sets w to ^(a ^ b).
func (w *Word) Xnor(a, b Value) {
	mustFixed(a)
	mustFixed(b)
	al, bl := a.Logic(), b.Logic()
	w.s = State{Logic: ^(al ^ bl), Unknown: a.Unknown() | b.Unknown()}
}

// Not sets w to ^a. Unknown flags are taken from a as is.
func (w *Word) Not(a Value) {
	mustFixed(a)
	w.s = State{Logic: ^a.Logic(), Unknown: a.Unknown()}
}

// Clone returns a copy of w.
func (w *Word) Clone() *Word {
	c := *w
	return &c
}

// Equal returns true if both words have the same width
// and the same planes within that width.
func (w *Word) Equal(other *Word) bool {
	if w.width != other.width {
		return false
	}
	m := bitutil.WidthMask(w.width)
	return (w.s.Logic^other.s.Logic)&m == 0 && (w.s.Unknown^other.s.Unknown)&m == 0
}

// IsDefined returns true if no bit within the width is unknown.
func (w *Word) IsDefined() bool {
	return w.s.Unknown&bitutil.WidthMask(w.width) == 0
}

// Uint64 returns the logic bits within the width.
// The second result is false if any of them is unknown.
func (w *Word) Uint64() (uint64, bool) {
	return w.s.Logic & bitutil.WidthMask(w.width), w.IsDefined()
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

// package tristate implements tri-state signal values for logic simulation.
// Every bit of a value carries a logic level (0 or 1) and an unknown flag,
// which marks the bit as floating or undefined.
package tristate

import (
	"errors"
	"fmt"
)

var (
	// ErrWidth is returned when a value is created with an unsupported width.
	ErrWidth = errors.New("width out of range")
	// ErrUnsupportedKind is returned when an operand's representation is unknown to the receiver.
	ErrUnsupportedKind = errors.New("unsupported value kind")
)

// Kind identifies a concrete value representation.
type Kind uint8

const (
	// KindUnspecified is the zero Kind. No valid value reports it.
	KindUnspecified Kind = iota
	// KindFixed is a value of up to 64 bits stored in two plane words, see Word.
	KindFixed
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindUnspecified:
		return "unspecified"
	case KindFixed:
		return "fixed"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Bit is a single bit in packed form: bit 0 holds the logic level, bit 1 the unknown flag.
type Bit uint8

const (
	// Lo is a bit driven to 0.
	Lo Bit = iota
	// Hi is a bit driven to 1.
	Hi
	// X is an unknown bit with a cleared logic level.
	X
	// XHi is an unknown bit with a set logic level.
	XHi
)

// NewBit packs a logic level and an unknown flag into a Bit.
func NewBit(logic, unknown uint8) Bit {
	return Bit((unknown&1)<<1 | logic&1)
}

// Logic returns the logic level of b.
func (b Bit) Logic() uint8 {
	return uint8(b) & 1
}

// Unknown returns 1 if b is not driven.
func (b Bit) Unknown() uint8 {
	return uint8(b) >> 1 & 1
}

// Rune returns '0', '1' for driven bits and 'x' for unknown ones.
func (b Bit) Rune() rune {
	switch {
	case b.Unknown() != 0:
		return 'x'
	case b.Logic() != 0:
		return '1'
	}
	return '0'
}

// State is the whole encoded state of a value: a logic plane and an unknown plane.
// Bit i of each plane belongs to signal bit i.
type State struct {
	Logic   uint64
	Unknown uint64
}

// Value is the set of operations every signal value representation supports.
//
// Positions and offsets must be in [0, Width()), otherwise the methods panic.
// Boolean operators overwrite the receiver with the result computed from the operands.
// An operand may be the receiver itself. An operand of a kind the receiver
// cannot interpret makes the operator panic with an error wrapping ErrUnsupportedKind,
// before the receiver is modified.
type Value interface {
	// Width returns the number of bits in the value.
	Width() int
	// Kind returns the concrete representation.
	Kind() Kind

	Bit(pos int) Bit
	SetBit(pos int, b Bit)
	BitLogic(pos int) uint8
	SetBitLogic(pos int, v uint8)
	BitUnknown(pos int) uint8
	SetBitUnknown(pos int, v uint8)

	// RangeLogic returns 'length' bits of the logic plane starting at 'offset'.
	// Lengths outside [1, 32] give 0.
	RangeLogic(offset, length int) uint64
	// RangeUnknown is the same as RangeLogic for the unknown plane.
	RangeUnknown(offset, length int) uint64

	State() State
	SetState(s State)
	Logic() uint64
	SetLogic(bits uint64)
	Unknown() uint64
	SetUnknown(bits uint64)

	// AssignFrom copies other's state into the receiver.
	AssignFrom(other Value) error

	DriveLow()
	DriveHigh()
	Float()

	And(a, b Value)
	Nand(a, b Value)
	Or(a, b Value)
	Nor(a, b Value)
	Xor(a, b Value)
	Xnor(a, b Value)
	Not(a Value)
}

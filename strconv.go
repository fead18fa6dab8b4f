// Copyright 2020 Aleksandr Demakin. All rights reserved.

package tristate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/avdva/tristate/internal/bitutil"
)

var (
	// JSONMode defines the way all words are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString marshals words as strings, like `"01x1"`.
	JSONModeString = iota
	// JSONModeState marshals words with width and both planes, like `{"w":4,"l":13,"u":2}`.
	// Plane bits at or above the width are dropped.
	JSONModeState
)

const digitSeparator = '_'

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

type jsonState struct {
	W int    `json:"w"`
	L uint64 `json:"l"`
	U uint64 `json:"u"`
}

// String returns w's bits, most significant first.
// Driven bits are '0' or '1', unknown bits are 'x'.
func (w *Word) String() string {
	var builder strings.Builder
	w.toStringsBuilder(&builder)
	return builder.String()
}

// WriteToStringsBuilder writes w's string representation into a strings.Builder.
func (w *Word) WriteToStringsBuilder(builder *strings.Builder) {
	w.toStringsBuilder(builder)
}

func (w *Word) toStringsBuilder(builder *strings.Builder) {
	builder.Grow(w.width)
	for pos := w.width - 1; pos >= 0; pos-- {
		builder.WriteRune(w.Bit(pos).Rune())
	}
}

// Parse parses a string of '0', '1', 'x' and 'z' symbols, most significant bit first.
// 'x' and 'z' (in any case) both give an unknown bit with a cleared logic level.
// '_' may be used as a separator. The width of the result is the number of bits.
func Parse(s string) (*Word, error) {
	s, offset, err := prepareString(s)
	if err != nil {
		return nil, err
	}
	w, err := parseString(s)
	if err != nil {
		var pe *posError
		if errors.As(err, &pe) {
			pe.pos += offset + 1 // +1 to start indices from 1.
			err = pe
		}
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	return w, nil
}

// MustParse is like Parse, but panics on error.
func MustParse(s string) *Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

func prepareString(s string) (prepared string, offset int, err error) {
	if len(s) == 0 {
		return "", 0, fmt.Errorf("empty input")
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, fmt.Errorf("empty input")
	}
	return s, offset, nil
}

func parseString(s string) (*Word, error) {
	bits := make([]Bit, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			bits = append(bits, Lo)
		case '1':
			bits = append(bits, Hi)
		case 'x', 'X', 'z', 'Z':
			bits = append(bits, X)
		case digitSeparator:
			if i == 0 || i == len(s)-1 || s[i-1] == digitSeparator {
				return nil, newPosError("unexpected separator", i)
			}
		default:
			return nil, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
		if len(bits) > MaxWidth {
			return nil, newPosError("too many bits", i)
		}
	}
	w, err := NewWord(len(bits))
	if err != nil {
		return nil, err
	}
	var st State
	for i, b := range bits {
		pos := len(bits) - 1 - i
		st.Logic |= uint64(b.Logic()) << uint(pos)
		st.Unknown |= uint64(b.Unknown()) << uint(pos)
	}
	w.s = st
	return w, nil
}

// MarshalJSON marshals w according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (w *Word) MarshalJSON() ([]byte, error) {
	return w.toJSON(JSONMode)
}

func (w *Word) toJSON(mode int) ([]byte, error) {
	switch mode {
	case JSONModeState:
		m := bitutil.WidthMask(w.width)
		return json.Marshal(jsonState{W: w.width, L: w.s.Logic & m, U: w.s.Unknown & m})
	default: // marshal as a string
		return []byte(strconv.Quote(w.String())), nil
	}
}

// UnmarshalJSON unmarshals a string or an object into a word.
// null leaves the word unchanged.
func (w *Word) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	if string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '{':
		var d jsonState
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		parsed, err := NewWord(d.W)
		if err != nil {
			return err
		}
		parsed.s = State{Logic: d.L, Unknown: d.U}
		*w = *parsed
	default:
		parsed, err := Parse(string(data))
		if err != nil {
			return err
		}
		*w = *parsed
	}
	return nil
}

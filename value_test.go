// Copyright 2020 Aleksandr Demakin. All rights reserved.

package tristate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	a := assert.New(t)
	a.Equal("unspecified", KindUnspecified.String())
	a.Equal("fixed", KindFixed.String())
	a.Equal("kind(7)", Kind(7).String())
}

func TestBit(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		logic, unknown uint8
		b              Bit
		r              rune
	}{
		{0, 0, Lo, '0'},
		{1, 0, Hi, '1'},
		{0, 1, X, 'x'},
		{1, 1, XHi, 'x'},
		{3, 2, Hi, '1'},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			b := NewBit(test.logic, test.unknown)
			a.Equal(test.b, b)
			a.Equal(test.logic&1, b.Logic())
			a.Equal(test.unknown&1, b.Unknown())
			a.Equal(test.r, b.Rune())
		})
	}
}

package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/avdva/tristate"
	"github.com/stretchr/testify/assert"
)

func TestRunEval(t *testing.T) {
	a := assert.New(t)
	defer func() { tristate.JSONMode = tristate.JSONModeString }()
	tests := []struct {
		op       string
		operands []string
		json     bool
		out      string
		e        string
	}{
		{"xor", []string{"00001111", "11110000"}, false, "11111111\n", ""},
		{"AND", []string{"1x", "0x"}, false, "0x\n", ""},
		{"or", []string{"x0", "01"}, false, "x1\n", ""},
		{"nand", []string{"11", "10"}, false, "01\n", ""},
		{"nor", []string{"00", "z0"}, false, "x1\n", ""},
		{"xnor", []string{"10", "11"}, false, "10\n", ""},
		{"not", []string{"1x0"}, false, "0x1\n", ""},
		{"and", []string{"1x01", "1101"}, true, `{"w":4,"l":9,"u":4}` + "\n", ""},

		{"not", []string{"1", "0"}, false, "", "not takes one operand, got 2"},
		{"and", []string{"1"}, false, "", "and takes two operands, got 1"},
		{"and", []string{"1", "01"}, false, "", "operand widths differ: 1 and 2"},
		{"mux", []string{"1", "0"}, false, "", `unknown operator "mux", expected one of and, nand, nor, not, or, xnor, xor`},
		{"or", []string{"1", "2"}, false, "", `operand "2": parsing failed: unexpected symbol '2' at pos 1`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var out bytes.Buffer
			err := runEval(&out, test.op, test.operands, test.json)
			if len(test.e) == 0 {
				if a.NoError(err) {
					a.Equal(test.out, out.String())
				}
			} else {
				a.EqualError(err, test.e)
			}
		})
	}
}

func TestEvalCommand(t *testing.T) {
	a := assert.New(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"eval", "or", "x0", "00"})
	a.NoError(rootCmd.Execute())
	a.Equal("x0\n", out.String())

	rootCmd.SetArgs([]string{"eval", "or"})
	a.Error(rootCmd.Execute())
}

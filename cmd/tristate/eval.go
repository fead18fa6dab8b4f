package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/avdva/tristate"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type binaryFunc func(w *tristate.Word, a, b tristate.Value)

var binaryOps = map[string]binaryFunc{
	"and":  (*tristate.Word).And,
	"nand": (*tristate.Word).Nand,
	"or":   (*tristate.Word).Or,
	"nor":  (*tristate.Word).Nor,
	"xor":  (*tristate.Word).Xor,
	"xnor": (*tristate.Word).Xnor,
}

var evalCmd = &cobra.Command{
	Use:   "eval [flags] op a [b]",
	Short: "apply a boolean operator to tri-state values.",
	Long: `Apply one of and, nand, or, nor, xor, xnor, not to one or two values.
	Values are written most significant bit first, using 0, 1, x and z.
	Binary operands must have the same width.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEval(cmd.OutOrStdout(), args[0], args[1:], getFlag(cmd, "json"))
	},
}

func init() {
	evalCmd.Flags().Bool("json", false, "print the result with its width and both planes as json")
}

func opNames() string {
	names := make([]string, 0, len(binaryOps)+1)
	for name := range binaryOps {
		names = append(names, name)
	}
	names = append(names, "not")
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func runEval(out io.Writer, op string, operands []string, asJSON bool) error {
	values := make([]*tristate.Word, 0, len(operands))
	for _, s := range operands {
		w, err := tristate.Parse(s)
		if err != nil {
			return fmt.Errorf("operand %q: %w", s, err)
		}
		log.Debugf("operand %s: width=%d logic=%#x unknown=%#x", w, w.Width(), w.Logic(), w.Unknown())
		values = append(values, w)
	}
	res, err := evaluate(strings.ToLower(op), values)
	if err != nil {
		return err
	}
	log.Debugf("result %s: logic=%#x unknown=%#x", res, res.Logic(), res.Unknown())
	if asJSON {
		tristate.JSONMode = tristate.JSONModeState
		data, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	_, err = fmt.Fprintln(out, res.String())
	return err
}

func evaluate(op string, values []*tristate.Word) (*tristate.Word, error) {
	if op == "not" {
		if len(values) != 1 {
			return nil, fmt.Errorf("not takes one operand, got %d", len(values))
		}
		res := tristate.MustNewWord(values[0].Width())
		res.Not(values[0])
		return res, nil
	}
	f, found := binaryOps[op]
	if !found {
		return nil, fmt.Errorf("unknown operator %q, expected one of %s", op, opNames())
	}
	if len(values) != 2 {
		return nil, fmt.Errorf("%s takes two operands, got %d", op, len(values))
	}
	if values[0].Width() != values[1].Width() {
		return nil, fmt.Errorf("operand widths differ: %d and %d", values[0].Width(), values[1].Width())
	}
	res := tristate.MustNewWord(values[0].Width())
	f(res, values[0], values[1])
	return res, nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-bignum"
)

const evalOps = "+ - * / % divrem gcd pow modpow & | ^ &^ << >> >>> rotl rotr cmp min max neg abs not"

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval A OP [B [C]]",
		Short: "Evaluate an operation",
		Long:  "Evaluate an operation. OP is one of:\n  " + evalOps,
		Args:  cobra.RangeArgs(2, 4),
		RunE:  runEval,
	}
	cmd.Flags().String("format", "", "output format (dec|hex), overrides the config file")
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := configFromCmd(cmd)
	if err != nil {
		return err
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Format = format
	}

	op := args[1]
	operands := make([]bignum.Int, 0, 3)
	for i, arg := range args {
		if i == 1 {
			continue
		}
		v, err := cfg.operand(arg)
		if err != nil {
			return err
		}
		operands = append(operands, v)
	}

	results, err := evaluate(op, operands)
	if err != nil {
		return err
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = cfg.format(r)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
	return nil
}

// evaluate applies op to operands. Arithmetic panics for division by zero
// and oversized results come back as errors.
func evaluate(op string, operands []bignum.Int) (results []bignum.Int, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if !ok || !(errors.Is(rerr, bignum.ErrDivideByZero) || errors.Is(rerr, bignum.ErrOverflow)) {
				panic(r)
			}
			results, err = nil, rerr
		}
	}()

	want := 2
	switch op {
	case "neg", "abs", "not":
		want = 1
	case "modpow":
		want = 3
	}
	if len(operands) != want {
		return nil, fmt.Errorf("%s takes %d operands, found %d", op, want, len(operands))
	}

	a := operands[0]
	var b bignum.Int
	if want > 1 {
		b = operands[1]
	}

	one := func(v bignum.Int) ([]bignum.Int, error) { return []bignum.Int{v}, nil }

	switch op {
	case "neg":
		return one(a.Neg())
	case "abs":
		return one(a.Abs())
	case "not":
		return one(a.Not())
	case "+":
		return one(a.Add(b))
	case "-":
		return one(a.Sub(b))
	case "*":
		return one(a.Mul(b))
	case "/":
		return one(a.Quo(b))
	case "%":
		return one(a.Rem(b))
	case "divrem":
		q, r := a.QuoRem(b)
		return []bignum.Int{q, r}, nil
	case "gcd":
		return one(bignum.GCD(a, b))
	case "pow":
		e, err := b.Int()
		if err != nil {
			return nil, err
		}
		v, err := bignum.Pow(a, e)
		if err != nil {
			return nil, err
		}
		return one(v)
	case "modpow":
		v, err := bignum.ModPow(a, b, operands[2])
		if err != nil {
			return nil, err
		}
		return one(v)
	case "&":
		return one(a.And(b))
	case "|":
		return one(a.Or(b))
	case "^":
		return one(a.Xor(b))
	case "&^":
		return one(a.AndNot(b))
	case "<<", ">>", ">>>", "rotl", "rotr":
		n, err := b.Int()
		if err != nil {
			return nil, err
		}
		switch op {
		case "<<":
			return one(a.Lsh(n))
		case ">>":
			return one(a.Rsh(n))
		case ">>>":
			return one(a.URsh(n))
		case "rotl":
			return one(a.RotateLeft(n))
		default:
			return one(a.RotateRight(n))
		}
	case "cmp":
		return one(bignum.FromInt(a.Cmp(b)))
	case "min":
		return one(bignum.Min(a, b))
	case "max":
		return one(bignum.Max(a, b))
	}
	return nil, fmt.Errorf("unknown op %q, expected one of: %s", op, evalOps)
}

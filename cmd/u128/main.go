// Command u128 is a 128-bit unsigned calculator.
//
//	u128 [flags] <lhs> <op> <rhs>
//	u128 [flags] <value>
//
// Ops are + - * / % & | ^ &^ << >> min max diff and cmp. Operands accept a
// 0x, 0o or 0b prefix. Results wrap modulo 2^128, exactly
// as the num package computes them.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	num "github.com/shabbyrobe/go-num128"
	"github.com/shabbyrobe/go-num128/internal/app"
)

type binaryOp func(lhs, rhs num.U128) (num.U128, error)

func wrap(fn func(lhs, rhs num.U128) num.U128) binaryOp {
	return func(lhs, rhs num.U128) (num.U128, error) { return fn(lhs, rhs), nil }
}

var ops = map[string]binaryOp{
	"+":  wrap(num.U128.Add),
	"-":  wrap(num.U128.Sub),
	"*":  wrap(num.U128.Mul),
	"&":  wrap(num.U128.And),
	"|":  wrap(num.U128.Or),
	"^":  wrap(num.U128.Xor),
	"&^": wrap(num.U128.AndNot),
	"<<": wrap(num.U128.LshU128),
	">>": wrap(num.U128.RshU128),

	"min":  wrap(num.U128.Min),
	"max":  wrap(num.U128.Max),
	"diff": wrap(num.U128.AbsDiff),

	"/": func(lhs, rhs num.U128) (num.U128, error) {
		q, _, err := lhs.DivMod(rhs)
		return q, err
	},
	"%": func(lhs, rhs num.U128) (num.U128, error) {
		_, r, err := lhs.DivMod(rhs)
		return r, err
	},
}

type options struct {
	Base    int
	Width   int
	Bytes   bool
	Comma   bool
	Verbose bool
}

func parseOperand(lg *zap.Logger, name, s string) (num.U128, error) {
	u, err := num.U128FromString(s)
	if err != nil {
		return u, errors.Wrapf(err, "parse %s", name)
	}
	lg.Debug("Parsed operand",
		zap.String("name", name),
		zap.String("input", s),
		zap.Stringer("value", u),
	)
	return u, nil
}

func evaluate(lg *zap.Logger, args []string) (out num.U128, isCmp bool, err error) {
	switch len(args) {
	case 1:
		out, err = parseOperand(lg, "value", args[0])
		return out, false, err
	case 3:
	default:
		return out, false, errors.Errorf("expected <value> or <lhs> <op> <rhs>, got %d args", len(args))
	}

	lhs, err := parseOperand(lg, "lhs", args[0])
	if err != nil {
		return out, false, err
	}
	rhs, err := parseOperand(lg, "rhs", args[2])
	if err != nil {
		return out, false, err
	}

	op := args[1]
	if op == "cmp" {
		return num.U128FromI64(int64(lhs.Cmp(rhs))), true, nil
	}
	fn, ok := ops[op]
	if !ok {
		return out, false, errors.Errorf("unknown op %q", op)
	}
	if out, err = fn(lhs, rhs); err != nil {
		return out, false, errors.Wrap(err, op)
	}
	return out, false, nil
}

func render(opts options, u num.U128) (string, error) {
	if opts.Comma {
		if opts.Base != 10 {
			return "", errors.New("-comma needs -base 10")
		}
		return humanize.BigComma(u.AsBigInt()), nil
	}
	s, err := u.Text(opts.Base, opts.Width)
	if err != nil {
		return "", errors.Wrap(err, "format")
	}
	return s, nil
}

func run(ctx context.Context, lg *zap.Logger, args []string, out io.Writer) error {
	var opts options
	set := flag.NewFlagSet("u128", flag.ContinueOnError)
	set.SetOutput(out)
	set.IntVar(&opts.Base, "base", 10, "output base, between 2 and 16")
	set.IntVar(&opts.Width, "width", 0, "minimum number of output digits")
	set.BoolVar(&opts.Bytes, "bytes", false, "also print the 16 big-endian bytes as hex")
	set.BoolVar(&opts.Comma, "comma", false, "separate thousands in decimal output")
	set.BoolVar(&opts.Verbose, "v", false, "debug logging")
	if err := set.Parse(args); err != nil {
		return errors.Wrap(err, "parse flags")
	}
	if !opts.Verbose {
		lg = lg.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
	}

	result, isCmp, err := evaluate(lg, set.Args())
	if err != nil {
		return errors.Wrap(err, "evaluate")
	}

	if isCmp {
		// -1 is stored wrapped.
		_, err = fmt.Fprintln(out, int64(result.AsUint64()))
		return err
	}

	s, err := render(opts, result)
	if err != nil {
		return err
	}
	lg.Debug("Evaluated",
		zap.Stringer("result", result),
		zap.Int("bit_len", result.BitLen()),
		zap.Uint64("hash", result.Hash64()),
	)
	if _, err := fmt.Fprintln(out, s); err != nil {
		return err
	}

	if opts.Bytes {
		b := result.Bytes()
		if _, err := fmt.Fprintln(out, hex.EncodeToString(b[:])); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	app.Run(run)
}

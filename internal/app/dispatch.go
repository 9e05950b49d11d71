package app

import (
	"fmt"
	"strconv"

	"github.com/agbru/bigcalc/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// execute parses the operands and dispatches to the engine. The returned
// string is already rendered in the configured radix.
func (a *Application) execute(op string, args []string) (string, error) {
	handler, ok := operations[op]
	if !ok {
		return "", apperrors.ValidationError{Field: "operation", Message: fmt.Sprintf("unknown operation %q", op)}
	}
	if len(args) != handler.arity {
		return "", apperrors.ValidationError{
			Field:   "operands",
			Message: fmt.Sprintf("%s takes %d operand(s), got %d", op, handler.arity, len(args)),
		}
	}
	result, err := handler.run(a, args)
	if err != nil {
		return "", apperrors.OperationError{Operation: op, Cause: err}
	}
	return result, nil
}

type operation struct {
	arity int
	run   func(a *Application, args []string) (string, error)
}

// operations is the dispatch table. Every handler receives raw operand
// strings because not all positions are big integers: shift counts and
// target radices are plain machine numbers.
var operations = map[string]operation{
	"add":    {2, binaryOp(func(x, y bigint.Int) (bigint.Int, error) { return x.Add(y), nil })},
	"sub":    {2, binaryOp(func(x, y bigint.Int) (bigint.Int, error) { return x.Sub(y), nil })},
	"mul":    {2, binaryOp(func(x, y bigint.Int) (bigint.Int, error) { return x.Mul(y), nil })},
	"div":    {2, binaryOp(bigint.Int.Div)},
	"mod":    {2, binaryOp(bigint.Int.Mod)},
	"pow":    {2, binaryOp(func(x, y bigint.Int) (bigint.Int, error) { return x.Pow(y), nil })},
	"gcd":    {2, binaryOp(func(x, y bigint.Int) (bigint.Int, error) { return x.GCD(y), nil })},
	"lcm":    {2, binaryOp(func(x, y bigint.Int) (bigint.Int, error) { return x.LCM(y), nil })},
	"and":    {2, binaryOp(func(x, y bigint.Int) (bigint.Int, error) { return x.And(y), nil })},
	"or":     {2, binaryOp(func(x, y bigint.Int) (bigint.Int, error) { return x.Or(y), nil })},
	"xor":    {2, binaryOp(func(x, y bigint.Int) (bigint.Int, error) { return x.Xor(y), nil })},
	"not":    {1, unaryOp(func(x bigint.Int) (bigint.Int, error) { return x.Not(), nil })},
	"divmod": {2, runDivMod},
	"modpow": {3, runModPow},
	"modinv": {2, binaryOp(bigint.Int.ModInv)},
	"cmp":    {2, runCmp},
	"shl":    {2, shiftOp(bigint.Int.ShiftLeft)},
	"shr":    {2, shiftOp(bigint.Int.ShiftRight)},
	"isprime": {1, func(a *Application, args []string) (string, error) {
		v, err := a.parseOperand(args[0])
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v.ProbablyPrime(a.Config.PrimeRounds, a.Source)), nil
	}},
	"rand":    {2, runRand},
	"convert": {2, runConvert},
}

func (a *Application) parseOperand(s string) (bigint.Int, error) {
	return bigint.ParseRadix(s, a.Config.Radix)
}

func (a *Application) render(v bigint.Int) (string, error) {
	return v.ToString(a.Config.Radix)
}

func unaryOp(f func(bigint.Int) (bigint.Int, error)) func(*Application, []string) (string, error) {
	return func(a *Application, args []string) (string, error) {
		x, err := a.parseOperand(args[0])
		if err != nil {
			return "", err
		}
		r, err := f(x)
		if err != nil {
			return "", err
		}
		return a.render(r)
	}
}

func binaryOp(f func(bigint.Int, bigint.Int) (bigint.Int, error)) func(*Application, []string) (string, error) {
	return func(a *Application, args []string) (string, error) {
		x, err := a.parseOperand(args[0])
		if err != nil {
			return "", err
		}
		y, err := a.parseOperand(args[1])
		if err != nil {
			return "", err
		}
		r, err := f(x, y)
		if err != nil {
			return "", err
		}
		return a.render(r)
	}
}

func shiftOp(f func(bigint.Int, int64) (bigint.Int, error)) func(*Application, []string) (string, error) {
	return func(a *Application, args []string) (string, error) {
		x, err := a.parseOperand(args[0])
		if err != nil {
			return "", err
		}
		count, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return "", apperrors.ValidationError{Field: "count", Message: fmt.Sprintf("%q is not a machine integer", args[1])}
		}
		r, err := f(x, count)
		if err != nil {
			return "", err
		}
		return a.render(r)
	}
}

func runDivMod(a *Application, args []string) (string, error) {
	x, err := a.parseOperand(args[0])
	if err != nil {
		return "", err
	}
	y, err := a.parseOperand(args[1])
	if err != nil {
		return "", err
	}
	res, err := x.DivMod(y)
	if err != nil {
		return "", err
	}
	q, err := a.render(res.Quotient)
	if err != nil {
		return "", err
	}
	r, err := a.render(res.Remainder)
	if err != nil {
		return "", err
	}
	return q + " " + r, nil
}

func runModPow(a *Application, args []string) (string, error) {
	base, err := a.parseOperand(args[0])
	if err != nil {
		return "", err
	}
	exp, err := a.parseOperand(args[1])
	if err != nil {
		return "", err
	}
	mod, err := a.parseOperand(args[2])
	if err != nil {
		return "", err
	}
	r, err := base.ModPow(exp, mod)
	if err != nil {
		return "", err
	}
	return a.render(r)
}

func runCmp(a *Application, args []string) (string, error) {
	x, err := a.parseOperand(args[0])
	if err != nil {
		return "", err
	}
	y, err := a.parseOperand(args[1])
	if err != nil {
		return "", err
	}
	return strconv.Itoa(int(x.Cmp(y))), nil
}

func runRand(a *Application, args []string) (string, error) {
	low, err := a.parseOperand(args[0])
	if err != nil {
		return "", err
	}
	high, err := a.parseOperand(args[1])
	if err != nil {
		return "", err
	}
	return a.render(bigint.RandBetween(low, high, a.Source))
}

// runConvert re-renders the first operand in the radix named by the second.
// The target radix is deliberately unrestricted so the bracketed digit form
// beyond base 36 stays reachable.
func runConvert(a *Application, args []string) (string, error) {
	v, err := a.parseOperand(args[0])
	if err != nil {
		return "", err
	}
	radix, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return "", apperrors.ValidationError{Field: "radix", Message: fmt.Sprintf("%q is not a machine integer", args[1])}
	}
	return v.ToString(radix)
}

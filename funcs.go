package mathparse

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// prec is the precision in bits of intermediate results of functions.
const prec = 128

// unaryFunc applies a function to a value.
type unaryFunc func(x Value) (Value, error)

var unaryFuncs = map[string]unaryFunc{
	"sqrt": monadic("sqrt", nonnegative, (*big.Float).Sqrt, math.Sqrt),
	"log":  monadic("log", positive, log10, math.Log10),
	"neg": func(x Value) (Value, error) {
		return neg(x), nil
	},
}

func log10(out, in *big.Float) *big.Float {
	bigfloat.Log(out, in)
	ten := new(big.Float).SetPrec(out.Prec()).SetFloat64(10)
	bigfloat.Log(ten, ten)
	return out.Quo(out, ten)
}

func nonnegative(x *big.Float) bool { return x.Sign() >= 0 }
func positive(x *big.Float) bool    { return x.Sign() > 0 }

// monadic wraps a function of one variable. f must set out to its result and
// is only called on arguments for which domain returns true. approx handles
// infinite arguments.
func monadic(name string, domain func(*big.Float) bool, f func(out, in *big.Float) *big.Float, approx func(float64) float64) unaryFunc {
	return func(x Value) (Value, error) {
		if x.IsUndefined() {
			return Undefined, nil
		}
		in, ok := x.bigFloat()
		if !ok {
			r := approx(x.Float64())
			if math.IsNaN(r) {
				return Value{}, &DomainError{X: x.String(), Arg: 1, Func: name}
			}
			return NewFloat(r), nil
		}
		if !domain(in) {
			return Value{}, &DomainError{X: x.String(), Arg: 1, Func: name}
		}
		out := new(big.Float).SetPrec(prec)
		f(out, in)
		r, _ := out.Float64()
		return NewFloat(r), nil
	}
}

// niladic computes a constant.
func niladic(f func(out *big.Float) *big.Float) float64 {
	r, _ := f(new(big.Float).SetPrec(prec)).Float64()
	return r
}

var constants = map[string]float64{
	"pi": niladic(bigfloat.Pi),
	"e": niladic(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}),
}

// DomainError is an error returned when a function is called on an argument
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X string
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

package mathparse

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/zephyrtronium/bigfloat"
)

// Kind is the representation of a Value.
type Kind uint8

const (
	// KindInt is an exact integer in the range of int64.
	KindInt Kind = iota
	// KindFloat is a binary floating-point approximation.
	KindFloat
	// KindDecimal is an arbitrary-precision decimal.
	KindDecimal
	// KindUndefined is the result of division by zero.
	KindUndefined
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindUndefined:
		return "undefined"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is the result of evaluating an expression. The zero Value is the
// integer 0.
type Value struct {
	kind Kind
	i    int64
	f    float64
	d    decimal.Decimal
}

// Undefined is the value of a division by zero.
var Undefined = Value{kind: KindUndefined}

// NewInt returns an integer value.
func NewInt(n int64) Value {
	return Value{kind: KindInt, i: n}
}

// NewFloat returns a floating-point value.
func NewFloat(x float64) Value {
	return Value{kind: KindFloat, f: x}
}

// NewDecimal returns a decimal value.
func NewDecimal(d decimal.Decimal) Value {
	return Value{kind: KindDecimal, d: d}
}

// Kind returns the representation of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsUndefined returns whether v is the result of a division by zero.
func (v Value) IsUndefined() bool {
	return v.kind == KindUndefined
}

// String formats v. Decimals are formatted exactly, without trailing zeros.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindDecimal:
		return v.d.String()
	default:
		return "undefined"
	}
}

// Float64 returns the nearest float64 to v. An undefined value is NaN.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindFloat:
		return v.f
	case KindDecimal:
		f, _ := v.d.Float64()
		return f
	default:
		return math.NaN()
	}
}

// Int64 returns v as an int64 if v is an integer in range.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindFloat:
		if v.f == math.Trunc(v.f) && math.Abs(v.f) < 1<<63 {
			return int64(v.f), true
		}
	case KindDecimal:
		if v.d.IsInteger() && v.d.Abs().LessThan(maxInt64) {
			return v.d.IntPart(), true
		}
	}
	return 0, false
}

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// Decimal returns v as a decimal. Infinities, NaNs, and undefined values
// have no decimal representation; the result for them is zero.
func (v Value) Decimal() decimal.Decimal {
	switch v.kind {
	case KindInt:
		return decimal.NewFromInt(v.i)
	case KindFloat:
		if v.finite() {
			return decimal.NewFromFloat(v.f)
		}
	case KindDecimal:
		return v.d
	}
	return decimal.Zero
}

// Equal returns whether v and w are numerically equal. Undefined values are
// equal only to each other.
func (v Value) Equal(w Value) bool {
	if v.kind == KindUndefined || w.kind == KindUndefined {
		return v.kind == w.kind
	}
	if !v.finite() || !w.finite() {
		return v.Float64() == w.Float64()
	}
	return v.Decimal().Equal(w.Decimal())
}

func (v Value) finite() bool {
	return v.kind != KindFloat || !math.IsInf(v.f, 0) && !math.IsNaN(v.f)
}

func (v Value) isZero() bool {
	switch v.kind {
	case KindInt:
		return v.i == 0
	case KindFloat:
		return v.f == 0
	case KindDecimal:
		return v.d.IsZero()
	}
	return false
}

func (v Value) negative() bool {
	switch v.kind {
	case KindInt:
		return v.i < 0
	case KindFloat:
		return v.f < 0
	case KindDecimal:
		return v.d.IsNegative()
	}
	return false
}

// bigFloat converts v at the evaluation precision. ok is false for values
// that big.Float cannot hold.
func (v Value) bigFloat() (x *big.Float, ok bool) {
	x = new(big.Float).SetPrec(prec)
	switch v.kind {
	case KindInt:
		return x.SetInt64(v.i), true
	case KindFloat:
		if !v.finite() {
			return nil, false
		}
		return x.SetFloat64(v.f), true
	case KindDecimal:
		_, ok := x.SetString(v.d.String())
		return x, ok
	}
	return nil, false
}

// integral returns v as an exponent if it is a whole number.
func (v Value) integral() (int64, bool) {
	if v.kind == KindFloat && math.Abs(v.f) >= 1<<53 {
		return 0, false
	}
	return v.Int64()
}

// decimals reports whether arithmetic on a and b is done in decimal.
func decimals(a, b Value) bool {
	return (a.kind == KindDecimal || b.kind == KindDecimal) && a.finite() && b.finite()
}

func add(a, b Value) Value {
	switch {
	case a.kind == KindUndefined || b.kind == KindUndefined:
		return Undefined
	case a.kind == KindInt && b.kind == KindInt:
		s := a.i + b.i
		if (a.i >= 0) == (b.i >= 0) && (s >= 0) != (a.i >= 0) {
			return NewDecimal(a.Decimal().Add(b.Decimal()))
		}
		return NewInt(s)
	case decimals(a, b):
		return NewDecimal(a.Decimal().Add(b.Decimal()))
	}
	return NewFloat(a.Float64() + b.Float64())
}

func sub(a, b Value) Value {
	switch {
	case a.kind == KindUndefined || b.kind == KindUndefined:
		return Undefined
	case a.kind == KindInt && b.kind == KindInt:
		d := a.i - b.i
		if (a.i >= 0) != (b.i >= 0) && (d >= 0) != (a.i >= 0) {
			return NewDecimal(a.Decimal().Sub(b.Decimal()))
		}
		return NewInt(d)
	case decimals(a, b):
		return NewDecimal(a.Decimal().Sub(b.Decimal()))
	}
	return NewFloat(a.Float64() - b.Float64())
}

func mul(a, b Value) Value {
	switch {
	case a.kind == KindUndefined || b.kind == KindUndefined:
		return Undefined
	case a.kind == KindInt && b.kind == KindInt:
		hi, lo := bits.Mul64(uabs(a.i), uabs(b.i))
		neg := (a.i < 0) != (b.i < 0)
		if hi != 0 || lo > math.MaxInt64 && !(neg && lo == 1<<63) {
			return NewDecimal(a.Decimal().Mul(b.Decimal()))
		}
		return NewInt(a.i * b.i)
	case decimals(a, b):
		return NewDecimal(a.Decimal().Mul(b.Decimal()))
	}
	return NewFloat(a.Float64() * b.Float64())
}

func uabs(n int64) uint64 {
	if n < 0 {
		return uint64(-n)
	}
	return uint64(n)
}

// quoDigits is the number of significant digits kept by decimal division.
const quoDigits = 28

// minQuoPlaces is the fewest decimal places kept by decimal division.
const minQuoPlaces = 16

// quo divides a by b in decimal. Division by zero is undefined.
func quo(a, b Value) Value {
	switch {
	case a.kind == KindUndefined || b.kind == KindUndefined, b.isZero():
		return Undefined
	case !a.finite() || !b.finite():
		return NewFloat(a.Float64() / b.Float64())
	}
	x, y := a.Decimal(), b.Decimal()
	places := int64(quoDigits) - (magnitude(x) - magnitude(y))
	switch {
	case places < minQuoPlaces:
		places = minQuoPlaces
	case places > maxPowBits:
		places = maxPowBits
	}
	return NewDecimal(x.DivRound(y, int32(places)))
}

// magnitude is the position of the leading digit of d relative to the
// decimal point.
func magnitude(d decimal.Decimal) int64 {
	return int64(d.NumDigits()) + int64(d.Exponent())
}

// maxPowBits bounds the size of exact integer powers. Larger results are
// computed in floating point.
const maxPowBits = 1 << 16

// pow raises a to the power b.
func pow(a, b Value) (Value, error) {
	if a.kind == KindUndefined || b.kind == KindUndefined {
		return Undefined, nil
	}
	if n, ok := b.integral(); ok {
		if n < 0 && a.isZero() {
			return Undefined, nil
		}
		switch a.kind {
		case KindInt:
			if n >= 0 {
				return intPow(a.i, n), nil
			}
		case KindDecimal:
			if n >= -maxPowBits && n <= maxPowBits && int64(a.d.Coefficient().BitLen())*int64(uabs(n)) <= maxPowBits {
				return NewDecimal(a.d.Pow(decimal.NewFromInt(n))), nil
			}
		}
		if a.kind == KindDecimal || b.kind == KindDecimal {
			return bigPow(a, b, n), nil
		}
		return floatResult(a, b, math.Pow(a.Float64(), float64(n))), nil
	}
	if a.negative() {
		return Value{}, &DomainError{X: a.String(), Arg: 1, Func: "^"}
	}
	if a.isZero() {
		return floatResult(a, b, 0), nil
	}
	x, okx := a.bigFloat()
	y, oky := b.bigFloat()
	if !okx || !oky {
		return floatResult(a, b, math.Pow(a.Float64(), b.Float64())), nil
	}
	z := bigfloat.Pow(new(big.Float).SetPrec(prec), x, y)
	return bigResult(a, b, z), nil
}

// bigPow raises a decimal beyond the exact budget to an integer power at
// extended precision.
func bigPow(a, b Value, n int64) Value {
	x, ok := a.bigFloat()
	if !ok || x.Sign() == 0 {
		return floatResult(a, b, math.Pow(a.Float64(), float64(n)))
	}
	odd := x.Sign() < 0 && n%2 != 0
	x.Abs(x)
	z := bigfloat.Pow(new(big.Float).SetPrec(prec), x, new(big.Float).SetInt64(n))
	if odd {
		z.Neg(z)
	}
	return bigResult(a, b, z)
}

// bigResult wraps an extended precision result of an operation on a and b.
// Decimal results outside the range of float64 keep their magnitude.
func bigResult(a, b Value, z *big.Float) Value {
	f, _ := z.Float64()
	lost := math.IsInf(f, 0) || f == 0 && z.Sign() != 0
	if (a.kind == KindDecimal || b.kind == KindDecimal) && lost && !z.IsInf() {
		if d, err := decimal.NewFromString(z.Text('e', quoDigits)); err == nil {
			return NewDecimal(d)
		}
	}
	return floatResult(a, b, f)
}

// floatResult wraps an approximate result of an operation on a and b,
// keeping decimal representation when either operand had it.
func floatResult(a, b Value, f float64) Value {
	if (a.kind == KindDecimal || b.kind == KindDecimal) && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return NewDecimal(decimal.NewFromFloat(f))
	}
	return NewFloat(f)
}

func intPow(a, n int64) Value {
	switch a {
	case 0:
		if n == 0 {
			return NewInt(1)
		}
		return NewInt(0)
	case 1:
		return NewInt(1)
	case -1:
		if n%2 == 0 {
			return NewInt(1)
		}
		return NewInt(-1)
	}
	if n > maxPowBits || int64(bits.Len64(uabs(a)))*n > maxPowBits {
		return NewFloat(math.Pow(float64(a), float64(n)))
	}
	r := new(big.Int).Exp(big.NewInt(a), big.NewInt(n), nil)
	if r.IsInt64() {
		return NewInt(r.Int64())
	}
	return NewDecimal(decimal.NewFromBigInt(r, 0))
}

func neg(a Value) Value {
	switch a.kind {
	case KindInt:
		if a.i == math.MinInt64 {
			return NewDecimal(a.Decimal().Neg())
		}
		return NewInt(-a.i)
	case KindFloat:
		return NewFloat(-a.f)
	case KindDecimal:
		return NewDecimal(a.d.Neg())
	}
	return Undefined
}

// join combines a whole part a and the digits b that followed a decimal
// point. The text of each operand is the token or result it came from, so
// that the sign of "-0" and the leading zeros of "05" survive.
func join(a, b operand) Value {
	switch {
	case a.v.kind == KindUndefined || b.v.kind == KindUndefined:
		return Undefined
	case !a.v.finite() || !b.v.finite():
		return NewFloat(a.v.Float64())
	case b.v.isZero():
		return NewDecimal(a.v.Decimal())
	}
	frac := b.v.Decimal().Shift(-int32(digits(b.text)))
	if len(a.text) > 0 && a.text[0] == '-' {
		return NewDecimal(a.v.Decimal().Sub(frac))
	}
	return NewDecimal(a.v.Decimal().Add(frac))
}

// digits counts the decimal digits in s, at least one.
func digits(s string) int {
	n := 0
	for _, r := range s {
		if '0' <= r && r <= '9' {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

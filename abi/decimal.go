package abi

import (
	"fmt"
	"math/big"
	"strings"
)

// Decimal is an arbitrary-precision fixed-point number: value =
// unscaled * 10^-scale. It carries no fixed coefficient width, since the ABI Fixed
// type family needs up to 256 bits of range and 80 decimal digits of
// precision.
type Decimal struct {
	unscaled *big.Int
	scale    int // number of digits to the right of the decimal point
}

// NewDecimalFromBigInt builds a Decimal equal to unscaled * 10^-scale.
func NewDecimalFromBigInt(unscaled *big.Int, scale int) Decimal {
	return Decimal{unscaled: new(big.Int).Set(unscaled), scale: scale}
}

// NewDecimalFromInt64 builds a whole-number Decimal.
func NewDecimalFromInt64(v int64) Decimal {
	return Decimal{unscaled: big.NewInt(v), scale: 0}
}

// ParseDecimal parses a base-10 literal such as "123.456" or "-0.001"
// into a Decimal whose scale is the number of digits after the point.
func ParseDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}, fmt.Errorf("abi: empty decimal literal")
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	digits := intPart
	scale := 0
	if hasFrac {
		if fracPart == "" {
			return Decimal{}, fmt.Errorf("abi: invalid decimal literal %q", s)
		}
		digits += fracPart
		scale = len(fracPart)
	}
	unscaled, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Decimal{}, fmt.Errorf("abi: invalid decimal literal %q", s)
	}
	if neg {
		unscaled.Neg(unscaled)
	}
	return Decimal{unscaled: unscaled, scale: scale}, nil
}

// ScaledInt returns d's value multiplied by 10^precision as an exact
// integer, or an error if that would discard non-zero fractional digits
// (d has more precision than the target type allows).
func (d Decimal) ScaledInt(precision int) (*big.Int, error) {
	diff := precision - d.scale
	c := new(big.Int).Set(d.unscaled)
	switch {
	case diff == 0:
		return c, nil
	case diff > 0:
		mul := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(diff)), nil)
		return c.Mul(c, mul), nil
	default:
		div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-diff)), nil)
		q, r := new(big.Int), new(big.Int)
		q.QuoRem(c, div, r)
		if r.Sign() != 0 {
			return nil, fmt.Errorf("abi: value has more precision than the target type allows")
		}
		return q, nil
	}
}

// String renders d in plain decimal notation, e.g. "123.450" or "-0.001".
// It never rounds: the scale is always reflected exactly.
func (d Decimal) String() string {
	if d.scale == 0 {
		return d.unscaled.String()
	}
	neg := d.unscaled.Sign() < 0
	digits := new(big.Int).Abs(d.unscaled).String()
	for len(digits) <= d.scale {
		digits = "0" + digits
	}
	cut := len(digits) - d.scale
	out := digits[:cut] + "." + digits[cut:]
	if neg {
		out = "-" + out
	}
	return out
}

// Scale returns the number of digits to the right of the decimal point.
func (d Decimal) Scale() int { return d.scale }

// Unscaled returns the underlying integer coefficient (value * 10^scale).
func (d Decimal) Unscaled() *big.Int { return new(big.Int).Set(d.unscaled) }

// Cmp compares d and other by value, aligning scales first.
func (d Decimal) Cmp(other Decimal) int {
	a, b := new(big.Int).Set(d.unscaled), new(big.Int).Set(other.unscaled)
	switch {
	case d.scale < other.scale:
		mul := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(other.scale-d.scale)), nil)
		a.Mul(a, mul)
	case d.scale > other.scale:
		mul := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.scale-other.scale)), nil)
		b.Mul(b, mul)
	}
	return a.Cmp(b)
}

package abi

import (
	"math/big"
	"reflect"
)

// toSequence normalizes a Go slice or array into []any, for the Array,
// DynamicArray and Tuple value domains. Values are already []any in the
// common case (constructed by hand or by Decode); reflect only comes into
// play for concrete slice/array types a caller passes directly, mirroring
// the indirection go-ethereum's old reflect-based packer used for
// generic container values, without reproducing its named-struct-field
// binding (this codec's Tuple values are plain ordered sequences, not
// structs).
func toSequence(value any) ([]any, bool) {
	if seq, ok := value.([]any); ok {
		return seq, true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}

// toBytesVal normalizes a []byte, [N]byte, or string into a byte slice,
// for the Bytes(m) and DynamicBytes value domains.
func toBytesVal(value any) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Array || rv.Type().Elem().Kind() != reflect.Uint8 {
		return nil, false
	}
	out := make([]byte, rv.Len())
	reflect.Copy(reflect.ValueOf(out), rv)
	return out, true
}

// toBigInt normalizes the common Go integer types and *big.Int into a
// *big.Int, for the Integer value domain. bool is deliberately not
// accepted here: Bool and Integer are distinct ABI types even though Go
// could coerce one to the other.
func toBigInt(value any) (*big.Int, bool) {
	switch v := value.(type) {
	case *big.Int:
		return v, true
	case int:
		return big.NewInt(int64(v)), true
	case int8:
		return big.NewInt(int64(v)), true
	case int16:
		return big.NewInt(int64(v)), true
	case int32:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	case uint:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	default:
		return nil, false
	}
}

// toDecimal normalizes a Decimal, decimal string, or whole-number integer
// into a Decimal, for the Fixed value domain.
func toDecimal(value any) (Decimal, bool) {
	switch v := value.(type) {
	case Decimal:
		return v, true
	case string:
		d, err := ParseDecimal(v)
		if err != nil {
			return Decimal{}, false
		}
		return d, true
	default:
		if bi, ok := toBigInt(value); ok {
			return NewDecimalFromBigInt(bi, 0), true
		}
		return Decimal{}, false
	}
}

// integerBounds returns the inclusive [lo, hi] range representable by an
// Integer(signed, bits) or the scaled integer backing a Fixed(signed,
// bits, _).
func integerBounds(signed bool, bits int) (lo, hi *big.Int) {
	if !signed {
		hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits)), big.NewInt(1))
		return big.NewInt(0), hi
	}
	hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits-1)), big.NewInt(1))
	lo = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(bits-1)))
	return lo, hi
}

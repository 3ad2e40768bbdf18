package abi

import (
	"strconv"
	"unicode/utf8"

	"github.com/indexsupply/ethabi/abi/schema"
)

// Validate checks that value is encodable as t, without producing any
// output bytes. Encode calls this first; the encoding pass that follows
// assumes a validated value and does not repeat the checks.
func Validate(t schema.Type, value any) error {
	return validate(t, value)
}

// IsEncodable reports whether value can be encoded as t.
func IsEncodable(t schema.Type, value any) bool {
	return validate(t, value) == nil
}

func validate(t schema.Type, value any) error {
	switch t.Kind {
	case schema.Address:
		_, err := normalizeAddress(value)
		return err

	case schema.Bool:
		if _, ok := value.(bool); !ok {
			return newEncodeErr(ErrTypeMismatch, "value is not a bool")
		}
		return nil

	case schema.Integer:
		bi, ok := toBigInt(value)
		if !ok {
			return newEncodeErr(ErrTypeMismatch, "value is not an integer")
		}
		lo, hi := integerBounds(t.Signed, t.Bits)
		if bi.Cmp(lo) < 0 || bi.Cmp(hi) > 0 {
			return newEncodeErr(ErrValueOutOfRange, "value "+bi.String()+" out of range for "+t.String())
		}
		return nil

	case schema.Fixed:
		dec, ok := toDecimal(value)
		if !ok {
			return newEncodeErr(ErrTypeMismatch, "value is not a fixed-point decimal")
		}
		scaled, err := dec.ScaledInt(t.Precision)
		if err != nil {
			return newEncodeErr(ErrFractionalLoss, err.Error())
		}
		lo, hi := integerBounds(t.Signed, t.Bits)
		if scaled.Cmp(lo) < 0 || scaled.Cmp(hi) > 0 {
			return newEncodeErr(ErrValueOutOfRange, "scaled value "+scaled.String()+" out of range for "+t.String())
		}
		return nil

	case schema.Bytes:
		b, ok := toBytesVal(value)
		if !ok {
			return newEncodeErr(ErrTypeMismatch, "value is not a byte sequence")
		}
		if len(b) != t.Size {
			return newEncodeErr(ErrLengthMismatch, "bytes"+strconv.Itoa(t.Size)+" requires exactly "+strconv.Itoa(t.Size)+" bytes, got "+strconv.Itoa(len(b)))
		}
		return nil

	case schema.String:
		s, ok := value.(string)
		if !ok {
			return newEncodeErr(ErrTypeMismatch, "value is not a string")
		}
		if !utf8.ValidString(s) {
			return newEncodeErr(ErrInvalidUTF8, "string is not valid utf-8")
		}
		return nil

	case schema.DynamicBytes:
		_, ok := toBytesVal(value)
		if !ok {
			return newEncodeErr(ErrTypeMismatch, "value is not a byte sequence")
		}
		return nil

	case schema.Array:
		seq, ok := toSequence(value)
		if !ok {
			return newEncodeErr(ErrTypeMismatch, "value is not a sequence")
		}
		if len(seq) != t.Length {
			return newEncodeErr(ErrLengthMismatch, "array requires exactly "+strconv.Itoa(t.Length)+" elements, got "+strconv.Itoa(len(seq)))
		}
		for i, e := range seq {
			if err := validate(*t.Elem, e); err != nil {
				return prependPath(err, "array["+strconv.Itoa(i)+"]")
			}
		}
		return nil

	case schema.DynamicArray:
		seq, ok := toSequence(value)
		if !ok {
			return newEncodeErr(ErrTypeMismatch, "value is not a sequence")
		}
		for i, e := range seq {
			if err := validate(*t.Elem, e); err != nil {
				return prependPath(err, "array["+strconv.Itoa(i)+"]")
			}
		}
		return nil

	case schema.Tuple:
		seq, ok := toSequence(value)
		if !ok {
			return newEncodeErr(ErrTypeMismatch, "value is not a sequence")
		}
		if len(seq) != len(t.Components) {
			return newEncodeErr(ErrLengthMismatch, "tuple requires exactly "+strconv.Itoa(len(t.Components))+" components, got "+strconv.Itoa(len(seq)))
		}
		for i, c := range t.Components {
			if err := validate(c, seq[i]); err != nil {
				return prependPath(err, "tuple["+strconv.Itoa(i)+"]")
			}
		}
		return nil

	default:
		return newEncodeErr(ErrUnknownType, "unrecognized type kind")
	}
}

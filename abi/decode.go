package abi

import (
	"math"
	"math/big"
	"strconv"
	"unicode/utf8"

	"github.com/holiman/uint256"

	"github.com/indexsupply/ethabi/abi/schema"
)

// DecodeOption configures Decode.
type DecodeOption func(*decodeOpts)

type decodeOpts struct {
	strict bool
}

// Strict toggles strict decoding (the default): reject non-canonical
// padding bytes, non-0/1 bool words, and non-sign-extended integers
// instead of silently tolerating them.
func Strict(strict bool) DecodeOption {
	return func(o *decodeOpts) { o.strict = strict }
}

// Decode parses data as an ABI-encoded value of the given schema.
// schema may be a canonical type string or an already-parsed schema.Type.
// Decode output types: Address -> string ("0x" + 40 lowercase hex), Bool
// -> bool, Integer -> *big.Int, Fixed -> Decimal, Bytes(m)/bytes ->
// []byte, string -> string, Array/DynamicArray/Tuple -> []any.
func Decode(typ any, data []byte, opts ...DecodeOption) (any, error) {
	o := decodeOpts{strict: true}
	for _, f := range opts {
		f(&o)
	}
	t, err := resolveSchema(typ)
	if err != nil {
		return nil, err
	}
	return decodeValue(t, data, &o)
}

func decodeValue(t schema.Type, data []byte, o *decodeOpts) (any, error) {
	switch t.Kind {
	case schema.Address:
		word, err := take32(data)
		if err != nil {
			return nil, err
		}
		if err := checkPadding(word[:12], 0x00, o.strict); err != nil {
			return nil, err
		}
		var addr [20]byte
		copy(addr[:], word[12:])
		return "0x" + hexLower(addr[:]), nil

	case schema.Bool:
		word, err := take32(data)
		if err != nil {
			return nil, err
		}
		if o.strict {
			for _, b := range word[:31] {
				if b != 0 {
					return nil, newDecodeErr(ErrNonCanonicalPadding, "bool padding bytes must be zero")
				}
			}
			switch word[31] {
			case 0:
				return false, nil
			case 1:
				return true, nil
			default:
				return nil, newDecodeErr(ErrInvalidBool, "bool word must be 0 or 1")
			}
		}
		for _, b := range word {
			if b != 0 {
				return true, nil
			}
		}
		return false, nil

	case schema.Integer:
		word, err := take32(data)
		if err != nil {
			return nil, err
		}
		return decodeInteger(word[:], t.Signed, t.Bits, o.strict)

	case schema.Fixed:
		word, err := take32(data)
		if err != nil {
			return nil, err
		}
		v, err := decodeInteger(word[:], t.Signed, t.Bits, o.strict)
		if err != nil {
			return nil, err
		}
		return NewDecimalFromBigInt(v, t.Precision), nil

	case schema.Bytes:
		word, err := take32(data)
		if err != nil {
			return nil, err
		}
		if err := checkPadding(word[t.Size:], 0x00, o.strict); err != nil {
			return nil, err
		}
		out := make([]byte, t.Size)
		copy(out, word[:t.Size])
		return out, nil

	case schema.String:
		b, err := decodeDynamicBytes(data, o.strict)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(b) {
			return nil, newDecodeErr(ErrInvalidUTF8, "string is not valid utf-8")
		}
		return string(b), nil

	case schema.DynamicBytes:
		return decodeDynamicBytes(data, o.strict)

	case schema.Array:
		return decodeHeadTail(repeatType(*t.Elem, t.Length), data, o)

	case schema.DynamicArray:
		n, body, err := takeLengthPrefixed(data, *t.Elem)
		if err != nil {
			return nil, err
		}
		return decodeHeadTail(repeatType(*t.Elem, n), body, o)

	case schema.Tuple:
		return decodeHeadTail(t.Components, data, o)

	default:
		return nil, newDecodeErr(ErrUnknownType, "unrecognized type kind")
	}
}

// decodeHeadTail is the decoding counterpart of encodeHeadTail.
func decodeHeadTail(types []schema.Type, block []byte, o *decodeOpts) ([]any, error) {
	headLen := 0
	for _, t := range types {
		headLen += t.Width()
	}
	if len(block) < headLen {
		return nil, newDecodeErr(ErrInsufficientData, "head shorter than declared component widths")
	}

	vals := make([]any, len(types))
	pos := 0
	for i, t := range types {
		seg := segmentName(i)
		if t.IsDynamic() {
			offWord, err := take32(block[pos:])
			if err != nil {
				return nil, prependPath(err, seg)
			}
			offset, err := offsetToInt(offWord[:], headLen, len(block))
			if err != nil {
				return nil, prependPath(err, seg)
			}
			v, err := decodeValue(t, block[offset:], o)
			if err != nil {
				return nil, prependPath(err, seg)
			}
			vals[i] = v
			pos += 32
		} else {
			w := t.Width()
			if len(block) < pos+w {
				return nil, prependPath(newDecodeErr(ErrInsufficientData, "not enough data for static component"), seg)
			}
			v, err := decodeValue(t, block[pos:pos+w], o)
			if err != nil {
				return nil, prependPath(err, seg)
			}
			vals[i] = v
			pos += w
		}
	}
	return vals, nil
}

func segmentName(i int) string { return "tuple[" + strconv.Itoa(i) + "]" }

// offsetToInt validates and converts a 32-byte offset word: it must be
// representable as a native int, at least headLen (no pointer into the
// head itself) and strictly inside the buffer.
func offsetToInt(word []byte, headLen, bufLen int) (int, error) {
	off := new(big.Int).SetBytes(word)
	if !off.IsUint64() || off.Uint64() > math.MaxInt64 {
		return 0, newDecodeErr(ErrInvalidOffset, "offset exceeds platform integer range")
	}
	offset := int(off.Uint64())
	if offset < headLen || offset >= bufLen {
		return 0, newDecodeErr(ErrInvalidOffset, "offset out of bounds")
	}
	return offset, nil
}

// takeLengthPrefixed reads a DynamicArray's leading length word and
// returns the element count plus the remaining buffer (the head/tail
// block for its elements), bounding the declared count by what the
// remaining buffer could possibly hold (each element occupies at least
// 32 bytes in the head) so a corrupt huge length fails fast instead of
// driving an enormous allocation.
func takeLengthPrefixed(data []byte, elem schema.Type) (int, []byte, error) {
	word, err := take32(data)
	if err != nil {
		return 0, nil, err
	}
	n := new(big.Int).SetBytes(word[:])
	if !n.IsUint64() || n.Uint64() > math.MaxInt64 {
		return 0, nil, newDecodeErr(ErrInvalidOffset, "declared length exceeds platform integer range")
	}
	count := int(n.Uint64())
	rest := data[32:]
	if count > len(rest)/32 {
		return 0, nil, newDecodeErr(ErrInsufficientData, "declared length exceeds remaining buffer")
	}
	return count, rest, nil
}

func decodeDynamicBytes(data []byte, strict bool) ([]byte, error) {
	word, err := take32(data)
	if err != nil {
		return nil, err
	}
	n := new(big.Int).SetBytes(word[:])
	if !n.IsUint64() || n.Uint64() > math.MaxInt64 {
		return nil, newDecodeErr(ErrInvalidOffset, "declared length exceeds platform integer range")
	}
	length := int(n.Uint64())
	padded := length
	if r := padded % 32; r != 0 {
		padded += 32 - r
	}
	if len(data) < 32+padded {
		return nil, newDecodeErr(ErrInsufficientData, "declared length exceeds remaining buffer")
	}
	payload := data[32 : 32+length]
	if err := checkPadding(data[32+length:32+padded], 0x00, strict); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, payload)
	return out, nil
}

func take32(data []byte) ([32]byte, error) {
	var out [32]byte
	if len(data) < 32 {
		return out, newDecodeErr(ErrInsufficientData, "expected 32 bytes")
	}
	copy(out[:], data[:32])
	return out, nil
}

func checkPadding(b []byte, want byte, strict bool) error {
	if !strict {
		return nil
	}
	for _, c := range b {
		if c != want {
			return newDecodeErr(ErrNonCanonicalPadding, "padding byte is not canonical")
		}
	}
	return nil
}

func hexLower(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = digits[c>>4]
		out[i*2+1] = digits[c&0x0f]
	}
	return string(out)
}

// decodeInteger reads the low bits/8 bytes of a 32-byte word as a
// bits-wide two's-complement integer (sign-extending if signed), and in
// strict mode verifies the remaining high bytes are the canonical sign
// extension. Unsigned values go through uint256.Int, mirroring the
// encode side's fast path.
func decodeInteger(word []byte, signed bool, bits int, strict bool) (*big.Int, error) {
	nbytes := bits / 8
	prefix := word[:32-nbytes]
	natural := word[32-nbytes:]

	if !signed {
		if strict {
			for _, b := range prefix {
				if b != 0x00 {
					return nil, newDecodeErr(ErrNonCanonicalPadding, "integer is not correctly sign-extended")
				}
			}
		}
		var u uint256.Int
		u.SetBytes(natural)
		return u.ToBig(), nil
	}

	v := new(big.Int).SetBytes(natural)
	negative := false
	if bits > 0 && natural[0]&0x80 != 0 {
		negative = true
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	}

	if strict && len(prefix) > 0 {
		want := byte(0x00)
		if negative {
			want = 0xff
		}
		for _, b := range prefix {
			if b != want {
				return nil, newDecodeErr(ErrNonCanonicalPadding, "integer is not correctly sign-extended")
			}
		}
	}
	return v, nil
}

// Package abi implements the Ethereum Contract ABI v2 binary codec: a
// lexer/parser that turns a canonical type string into a schema.Type,
// a validator, and the head/tail encoder and decoder described by the
// Solidity ABI spec.
//
// https://docs.soliditylang.org/en/latest/abi-spec.html
package abi

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/indexsupply/ethabi/abi/schema"
)

var two256 = new(big.Int).Lsh(big.NewInt(1), 256)

// Encode validates value against schema and returns its ABI encoding.
// schema may be a canonical type string or an already-parsed schema.Type.
func Encode(typ any, value any) ([]byte, error) {
	t, err := resolveSchema(typ)
	if err != nil {
		return nil, err
	}
	if err := validate(t, value); err != nil {
		return nil, err
	}
	return encodeValue(t, value), nil
}

func resolveSchema(typ any) (schema.Type, error) {
	switch v := typ.(type) {
	case schema.Type:
		return v, nil
	case string:
		return ParseType(v)
	default:
		return schema.Type{}, newEncodeErr(ErrTypeMismatch, "schema must be a string or schema.Type")
	}
}

// encodeValue assumes value has already been validated against t.
func encodeValue(t schema.Type, value any) []byte {
	switch t.Kind {
	case schema.Address:
		addr, _ := normalizeAddress(value)
		var i uint256.Int
		i.SetBytes20(addr[:])
		word := i.Bytes32()
		return word[:]

	case schema.Bool:
		var word [32]byte
		if value.(bool) {
			word[31] = 1
		}
		return word[:]

	case schema.Integer:
		bi, _ := toBigInt(value)
		if !t.Signed {
			var u uint256.Int
			u.SetFromBig(bi)
			word := u.Bytes32()
			return word[:]
		}
		return encodeTwosComplement(bi)

	case schema.Fixed:
		dec, _ := toDecimal(value)
		scaled, _ := dec.ScaledInt(t.Precision)
		return encodeTwosComplement(scaled)

	case schema.Bytes:
		b, _ := toBytesVal(value)
		return rightPad32(b)

	case schema.String:
		return encodeDynamicBytes([]byte(value.(string)))

	case schema.DynamicBytes:
		b, _ := toBytesVal(value)
		return encodeDynamicBytes(b)

	case schema.Array:
		seq, _ := toSequence(value)
		return encodeHeadTail(repeatType(*t.Elem, t.Length), seq)

	case schema.DynamicArray:
		seq, _ := toSequence(value)
		body := encodeHeadTail(repeatType(*t.Elem, len(seq)), seq)
		length := encodeTwosComplement(big.NewInt(int64(len(seq))))
		return append(length, body...)

	case schema.Tuple:
		seq, _ := toSequence(value)
		return encodeHeadTail(t.Components, seq)

	default:
		panic("abi: encode: unknown type kind")
	}
}

func repeatType(t schema.Type, n int) []schema.Type {
	out := make([]schema.Type, n)
	for i := range out {
		out[i] = t
	}
	return out
}

// encodeHeadTail implements the ABI head/tail layout shared by Array,
// DynamicArray bodies and Tuple: static components are inlined in the
// head, dynamic components leave a 32-byte offset in the head and their
// payload in the tail. When every type is static this degenerates to a
// plain concatenation, which is exactly what a fixed-size array or
// all-static tuple needs.
func encodeHeadTail(types []schema.Type, values []any) []byte {
	payloads := make([][]byte, len(types))
	headLen := 0
	for i, t := range types {
		payloads[i] = encodeValue(t, values[i])
		if t.IsDynamic() {
			headLen += 32
		} else {
			headLen += len(payloads[i])
		}
	}

	var head, tail []byte
	for i, t := range types {
		if !t.IsDynamic() {
			head = append(head, payloads[i]...)
			continue
		}
		offset := encodeTwosComplement(big.NewInt(int64(headLen + len(tail))))
		head = append(head, offset...)
		tail = append(tail, payloads[i]...)
	}
	return append(head, tail...)
}

func encodeDynamicBytes(b []byte) []byte {
	length := encodeTwosComplement(big.NewInt(int64(len(b))))
	return append(length, rightPad32(b)...)
}

func rightPad32(b []byte) []byte {
	n := len(b) % 32
	if n == 0 {
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}
	out := make([]byte, len(b)+32-n)
	copy(out, b)
	return out
}

// encodeTwosComplement renders v as a 32-byte big-endian two's-complement
// word. v must already be range-checked to fit in 256 bits (signed or
// unsigned); Validate guarantees this before encodeValue ever runs.
func encodeTwosComplement(v *big.Int) []byte {
	var word [32]byte
	if v.Sign() >= 0 {
		v.FillBytes(word[:])
		return word[:]
	}
	mod := new(big.Int).Add(two256, v)
	mod.FillBytes(word[:])
	return word[:]
}

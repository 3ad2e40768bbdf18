// Package schema implements the Ethereum Contract ABI v2 type grammar: a
// closed set of type nodes (Type), parsed from and formatted back to the
// canonical type strings defined by the Solidity ABI spec.
//
// https://docs.soliditylang.org/en/latest/abi-spec.html
package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the variant a Type holds. It is a closed set; there is no
// extension point for user-defined kinds.
type Kind byte

const (
	Invalid Kind = iota
	Address
	Bool
	Integer
	Fixed
	Bytes
	String
	DynamicBytes
	Array
	DynamicArray
	Tuple
)

func (k Kind) String() string {
	switch k {
	case Address:
		return "address"
	case Bool:
		return "bool"
	case Integer:
		return "integer"
	case Fixed:
		return "fixed"
	case Bytes:
		return "bytes(m)"
	case String:
		return "string"
	case DynamicBytes:
		return "bytes"
	case Array:
		return "array"
	case DynamicArray:
		return "dynamic array"
	case Tuple:
		return "tuple"
	default:
		return "invalid"
	}
}

// Type is an ABI type AST node. It is a value type: the zero Type is
// Invalid and every constructor below returns one by value. Because of the
// Components slice, Types cannot be compared with ==; compare them
// structurally (e.g. reflect.DeepEqual) instead.
type Type struct {
	Kind Kind

	// Integer, Fixed
	Signed bool
	Bits   int // 8..256, multiple of 8

	// Fixed only
	Precision int // 1..80

	// Bytes(m) only
	Size int // 1..32

	// Array, DynamicArray
	Elem *Type

	// Array only
	Length int // >= 1

	// Tuple only
	Components []Type
}

func NewAddress() Type { return Type{Kind: Address} }
func NewBool() Type    { return Type{Kind: Bool} }
func NewString() Type  { return Type{Kind: String} }
func NewDynamicBytes() Type { return Type{Kind: DynamicBytes} }

func NewInteger(signed bool, bits int) (Type, error) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return Type{}, fmt.Errorf("bit width %d out of range [8,256] or not a multiple of 8", bits)
	}
	return Type{Kind: Integer, Signed: signed, Bits: bits}, nil
}

func NewFixed(signed bool, bits, precision int) (Type, error) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return Type{}, fmt.Errorf("bit width %d out of range [8,256] or not a multiple of 8", bits)
	}
	if precision < 1 || precision > 80 {
		return Type{}, fmt.Errorf("precision %d out of range [1,80]", precision)
	}
	return Type{Kind: Fixed, Signed: signed, Bits: bits, Precision: precision}, nil
}

func NewBytes(size int) (Type, error) {
	if size < 1 || size > 32 {
		return Type{}, fmt.Errorf("bytes size %d out of range [1,32]", size)
	}
	return Type{Kind: Bytes, Size: size}, nil
}

func NewArray(elem Type, length int) (Type, error) {
	if length < 1 {
		return Type{}, fmt.Errorf("array length %d must be >= 1", length)
	}
	e := elem
	return Type{Kind: Array, Elem: &e, Length: length}, nil
}

func NewDynamicArray(elem Type) Type {
	e := elem
	return Type{Kind: DynamicArray, Elem: &e}
}

func NewTuple(components ...Type) Type {
	return Type{Kind: Tuple, Components: components}
}

// IsDynamic reports whether t's encoding has variable length and therefore
// occupies a 32-byte offset slot in an enclosing head, rather than being
// inlined directly.
func (t Type) IsDynamic() bool {
	switch t.Kind {
	case String, DynamicBytes, DynamicArray:
		return true
	case Array:
		return t.Elem.IsDynamic()
	case Tuple:
		for _, c := range t.Components {
			if c.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Width returns the number of bytes t occupies in a head: 32 for any
// dynamic type (an offset pointer), or the full static encoding width
// otherwise.
func (t Type) Width() int {
	if t.IsDynamic() {
		return 32
	}
	switch t.Kind {
	case Array:
		return t.Elem.Width() * t.Length
	case Tuple:
		n := 0
		for _, c := range t.Components {
			n += c.Width()
		}
		return n
	default:
		return 32
	}
}

// String renders the canonical ABI type string for t, the inverse of
// Parse.
func (t Type) String() string {
	switch t.Kind {
	case Address:
		return "address"
	case Bool:
		return "bool"
	case Integer:
		if t.Signed {
			return "int" + strconv.Itoa(t.Bits)
		}
		return "uint" + strconv.Itoa(t.Bits)
	case Fixed:
		prefix := "ufixed"
		if t.Signed {
			prefix = "fixed"
		}
		return prefix + strconv.Itoa(t.Bits) + "x" + strconv.Itoa(t.Precision)
	case Bytes:
		return "bytes" + strconv.Itoa(t.Size)
	case String:
		return "string"
	case DynamicBytes:
		return "bytes"
	case Array:
		return t.Elem.String() + "[" + strconv.Itoa(t.Length) + "]"
	case DynamicArray:
		return t.Elem.String() + "[]"
	case Tuple:
		var b strings.Builder
		b.WriteByte('(')
		for i, c := range t.Components {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(c.String())
		}
		b.WriteByte(')')
		return b.String()
	default:
		return "<invalid>"
	}
}

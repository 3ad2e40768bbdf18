package abi

import (
	"encoding/hex"
	"math/big"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return b
}

func TestEncode(t *testing.T) {
	cases := []struct {
		desc  string
		typ   string
		value any
		want  string
	}{
		{
			desc:  "uint256",
			typ:   "uint256",
			value: big.NewInt(42),
			want:  "000000000000000000000000000000000000000000000000000000000000002a",
		},
		{
			desc:  "uint8",
			typ:   "uint8",
			value: uint8(16),
			want:  "0000000000000000000000000000000000000000000000000000000000000010",
		},
		{
			desc:  "bool true",
			typ:   "bool",
			value: true,
			want:  "0000000000000000000000000000000000000000000000000000000000000001",
		},
		{
			desc:  "static array",
			typ:   "uint256[2]",
			value: []any{big.NewInt(3), big.NewInt(3)},
			want: "0000000000000000000000000000000000000000000000000000000000000003" +
				"0000000000000000000000000000000000000000000000000000000000000003",
		},
		{
			desc:  "string",
			typ:   "string",
			value: "Hello World!",
			want: "000000000000000000000000000000000000000000000000000000000000000c" +
				"48656c6c6f20576f726c64210000000000000000000000000000000000000000",
		},
		{
			desc:  "bytes4",
			typ:   "bytes4",
			value: []byte{0x12, 0x32, 0x34, 0x58},
			want:  "1232345800000000000000000000000000000000000000000000000000000000",
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			got, err := Encode(c.typ, c.value)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			want := mustHex(t, c.want)
			if hex.EncodeToString(got) != hex.EncodeToString(want) {
				t.Errorf("Encode(%q, %v) = %x, want %s", c.typ, c.value, got, c.want)
			}
		})
	}
}

func TestEncodeDynamicTuple(t *testing.T) {
	got, err := Encode("(uint256,string)", []any{big.NewInt(1), "hi"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// head: 32 (static uint256=1) + 32 (offset to tail=0x40)
	// tail: length(2) + "hi" padded to 32
	want := mustHex(t,
		"0000000000000000000000000000000000000000000000000000000000000001"+
			"0000000000000000000000000000000000000000000000000000000000000040"+
			"0000000000000000000000000000000000000000000000000000000000000002"+
			"6869000000000000000000000000000000000000000000000000000000000000")
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Errorf("Encode = %x, want %x", got, want)
	}
}

func TestEncodeNegativeInteger(t *testing.T) {
	got, err := Encode("int8", big.NewInt(-1))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := mustHex(t, "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Errorf("Encode(int8,-1) = %x, want %x", got, want)
	}
}

func TestEncodeRejectsOutOfRange(t *testing.T) {
	_, err := Encode("uint8", big.NewInt(256))
	if err == nil {
		t.Fatal("expected error for out-of-range uint8")
	}
	var ee *EncodeError
	if !asEncodeErr(err, &ee) {
		t.Fatalf("expected *EncodeError, got %T: %v", err, err)
	}
	if ee.Kind != ErrValueOutOfRange {
		t.Errorf("Kind = %v, want ErrValueOutOfRange", ee.Kind)
	}
}

func TestEncodeRejectsBadArity(t *testing.T) {
	_, err := Encode("(uint256,uint256)", []any{big.NewInt(1)})
	if err == nil {
		t.Fatal("expected error for tuple arity mismatch")
	}
}

func asEncodeErr(err error, target **EncodeError) bool {
	if e, ok := err.(*EncodeError); ok {
		*target = e
		return true
	}
	return false
}

package abi

import (
	"math/big"
	"testing"

	"github.com/indexsupply/ethabi/tc"
)

func TestDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		desc  string
		typ   string
		value any
	}{
		{"uint256", "uint256", big.NewInt(42)},
		{"int8 negative", "int8", big.NewInt(-1)},
		{"bool", "bool", true},
		{"address", "address", "0x00000000000000000000000000000000000000ff"},
		{"bytes4", "bytes4", []byte{0x12, 0x32, 0x34, 0x58}},
		{"string", "string", "Hello World!"},
		{"dynamic bytes", "bytes", []byte{1, 2, 3, 4, 5}},
		{"static array", "uint256[2]", []any{big.NewInt(3), big.NewInt(3)}},
		{"dynamic array", "uint256[]", []any{big.NewInt(1), big.NewInt(2), big.NewInt(3)}},
		{"tuple", "(uint256,string)", []any{big.NewInt(7), "seven"}},
		{"nested dynamic tuple array", "(uint256,bytes)[]", []any{
			[]any{big.NewInt(1), []byte("a")},
			[]any{big.NewInt(2), []byte("bb")},
		}},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			enc, err := Encode(c.typ, c.value)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(c.typ, enc)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			tc.WantGot(t, c.value, got)
		})
	}
}

func TestDecodeStrictRejectsNonCanonicalBool(t *testing.T) {
	word := make([]byte, 32)
	word[31] = 2
	_, err := Decode("bool", word)
	if err == nil {
		t.Fatal("expected error for non-canonical bool word")
	}
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	if de.Kind != ErrInvalidBool {
		t.Errorf("Kind = %v, want ErrInvalidBool", de.Kind)
	}
}

func TestDecodeLenientAcceptsNonCanonicalBool(t *testing.T) {
	word := make([]byte, 32)
	word[0] = 1 // non-zero but not in canonical position
	got, err := Decode("bool", word, Strict(false))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != true {
		t.Errorf("got %v, want true", got)
	}
}

func TestDecodeRejectsInsufficientData(t *testing.T) {
	_, err := Decode("uint256", []byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected error")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != ErrInsufficientData {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestDecodeRejectsOffsetBeforeHead(t *testing.T) {
	// tuple(uint256,string) whose offset word points inside the head.
	word := make([]byte, 64)
	got, err := Decode("(uint256,string)", word)
	_ = got
	if err == nil {
		t.Fatal("expected error for offset pointing inside the head")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != ErrInvalidOffset {
		t.Fatalf("expected ErrInvalidOffset, got %v", err)
	}
}

func TestDecodeErrorPath(t *testing.T) {
	// tuple(uint256, string): a well-formed head, but the string's
	// declared length overruns what the tail actually holds, so the
	// failure surfaces from inside the tail decode and must carry the
	// tuple[1] path segment back up.
	good, err := Encode("(uint256,string)", []any{big.NewInt(1), "hi"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	corrupt := append([]byte(nil), good...)
	corrupt[95] = 0xff // length word's low byte, was 0x02
	_, err = Decode("(uint256,string)", corrupt)
	if err == nil {
		t.Fatal("expected error")
	}
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
	if len(de.Path) == 0 || de.Path[0] != "tuple[1]" {
		t.Errorf("Path = %v, want [tuple[1] ...]", de.Path)
	}
}

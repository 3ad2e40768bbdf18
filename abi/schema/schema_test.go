package schema

import (
	"testing"

	"kr.dev/diff"
)

func TestTypeStringRoundTrip(t *testing.T) {
	cases := []string{
		"address",
		"bool",
		"uint256",
		"int8",
		"ufixed128x18",
		"fixed8x1",
		"bytes4",
		"bytes32",
		"string",
		"bytes",
		"uint256[2]",
		"bytes[]",
		"(uint256,address)",
		"(uint256,bytes)[2]",
		"(uint256,address)[]",
	}
	for _, desc := range cases {
		t.Run(desc, func(t *testing.T) {
			ty, err := Parse(desc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ty.String(); got != desc {
				t.Errorf("String() = %q, want %q", got, desc)
			}
		})
	}
}

func TestIsDynamic(t *testing.T) {
	cases := []struct {
		desc string
		want bool
	}{
		{"uint256", false},
		{"address", false},
		{"bytes32", false},
		{"string", true},
		{"bytes", true},
		{"uint256[2]", false},
		{"string[2]", true},
		{"uint256[]", true},
		{"(uint256,address)", false},
		{"(uint256,bytes)", true},
		{"(uint256,bytes)[2]", true},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			ty, err := Parse(c.desc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ty.IsDynamic(); got != c.want {
				t.Errorf("IsDynamic() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		desc string
		want int
	}{
		{"uint256", 32},
		{"uint256[2]", 64},
		{"(uint256,address)", 64},
		{"string", 32},
		{"(uint256,bytes)[2]", 32},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			ty, err := Parse(c.desc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ty.Width(); got != c.want {
				t.Errorf("Width() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestParseTree(t *testing.T) {
	got, err := Parse("(uint256,bytes)[2]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inner, _ := NewInteger(false, 256)
	want, _ := NewArray(NewTuple(inner, NewDynamicBytes()), 2)
	diff.Test(t, t.Errorf, got, want)
}

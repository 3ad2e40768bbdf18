package abi

import (
	"encoding/hex"
	"strings"

	"github.com/indexsupply/ethabi/keccak"
)

// normalizeAddress accepts a 20-byte value, a [20]byte, or a
// "0x"-prefixed 40 hex-digit string and returns its 20 raw bytes.
// Length is checked before the hex alphabet, matching the order spec'd
// for address validation.
func normalizeAddress(value any) ([20]byte, error) {
	switch v := value.(type) {
	case [20]byte:
		return v, nil
	case []byte:
		if len(v) != 20 {
			return [20]byte{}, newEncodeErr(ErrLengthMismatch, "address must be exactly 20 bytes")
		}
		var out [20]byte
		copy(out[:], v)
		return out, nil
	case string:
		if !strings.HasPrefix(v, "0x") && !strings.HasPrefix(v, "0X") {
			return [20]byte{}, newEncodeErr(ErrInvalidAddressFormat, "address string must start with 0x")
		}
		s := v[2:]
		if len(s) != 40 {
			return [20]byte{}, newEncodeErr(ErrLengthMismatch, "address string must have exactly 40 hex digits")
		}
		raw, err := hex.DecodeString(s)
		if err != nil {
			return [20]byte{}, newEncodeErr(ErrInvalidAddressFormat, "address is not valid hexadecimal")
		}
		var out [20]byte
		copy(out[:], raw)
		return out, nil
	default:
		return [20]byte{}, newEncodeErr(ErrTypeMismatch, "value is not an address")
	}
}

// ChecksumAddress renders addr using the EIP-55 mixed-case checksum: each
// hex digit of the lowercase address is upper-cased when the
// corresponding nibble of keccak256(lowercase hex) is >= 8.
//
// Decode always returns plain lowercase addresses; this is an opt-in
// formatter for callers that want the checksummed form, e.g. for display.
func ChecksumAddress(addr [20]byte) string {
	lower := hex.EncodeToString(addr[:])
	hash := keccak.Sum256([]byte(lower))

	out := make([]byte, 40)
	for i := 0; i < 40; i++ {
		c := lower[i]
		if c < 'a' || c > 'f' {
			out[i] = c
			continue
		}
		// nibble i of hash: even i -> high nibble, odd i -> low nibble
		var nibble byte
		if i%2 == 0 {
			nibble = hash[i/2] >> 4
		} else {
			nibble = hash[i/2] & 0x0f
		}
		if nibble >= 8 {
			out[i] = c - 'a' + 'A'
		} else {
			out[i] = c
		}
	}
	return "0x" + string(out)
}

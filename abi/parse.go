package abi

import "github.com/indexsupply/ethabi/abi/schema"

// ParseType parses a canonical ABI type string into a schema.Type.
func ParseType(s string) (schema.Type, error) {
	return schema.Parse(s)
}

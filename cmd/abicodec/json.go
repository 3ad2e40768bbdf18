package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/indexsupply/ethabi/abi"
	"github.com/indexsupply/ethabi/abi/schema"
)

// jsonToValue converts a value produced by json.Unmarshal(..., &any{})
// into the abi package's native value domain for t. Integers and
// fixed-point numbers must be passed as JSON strings (not numbers) so
// CLI input never silently loses precision to float64.
func jsonToValue(t schema.Type, raw any) (any, error) {
	switch t.Kind {
	case schema.Address, schema.String:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("abicodec: %s expects a JSON string", t)
		}
		return s, nil

	case schema.Bool:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("abicodec: bool expects a JSON boolean")
		}
		return b, nil

	case schema.Integer:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("abicodec: %s expects a JSON string, got %T", t, raw)
		}
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("abicodec: %q is not a base-10 integer", s)
		}
		return v, nil

	case schema.Fixed:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("abicodec: %s expects a JSON string", t)
		}
		return abi.ParseDecimal(s)

	case schema.Bytes, schema.DynamicBytes:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("abicodec: %s expects a JSON string", t)
		}
		return hex.DecodeString(strings.TrimPrefix(s, "0x"))

	case schema.Array, schema.DynamicArray:
		items, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("abicodec: %s expects a JSON array", t)
		}
		out := make([]any, len(items))
		for i, it := range items {
			v, err := jsonToValue(*t.Elem, it)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case schema.Tuple:
		items, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("abicodec: %s expects a JSON array", t)
		}
		if len(items) != len(t.Components) {
			return nil, fmt.Errorf("abicodec: %s expects %d components, got %d", t, len(t.Components), len(items))
		}
		out := make([]any, len(items))
		for i, c := range t.Components {
			v, err := jsonToValue(c, items[i])
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	default:
		return nil, fmt.Errorf("abicodec: unsupported type %s", t)
	}
}

// valueToJSON converts a Decode result into a JSON-marshalable shape,
// the inverse of jsonToValue.
func valueToJSON(t schema.Type, value any) any {
	switch t.Kind {
	case schema.Address, schema.String, schema.Bool:
		return value

	case schema.Integer:
		return value.(*big.Int).String()

	case schema.Fixed:
		return value.(abi.Decimal).String()

	case schema.Bytes, schema.DynamicBytes:
		return "0x" + hex.EncodeToString(value.([]byte))

	case schema.Array, schema.DynamicArray:
		items := value.([]any)
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = valueToJSON(*t.Elem, it)
		}
		return out

	case schema.Tuple:
		items := value.([]any)
		out := make([]any, len(items))
		for i, c := range t.Components {
			out[i] = valueToJSON(c, items[i])
		}
		return out

	default:
		return nil
	}
}

// abicodec is a thin CLI wrapper around the abi package: it encodes a
// JSON value against an ABI type string to hex, or decodes hex back to
// JSON, and does nothing else (no RPC, no contract dispatch).
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/indexsupply/ethabi/abi"
	"github.com/indexsupply/ethabi/internal/xerr"
	"github.com/indexsupply/ethabi/wslog"
)

func flagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ExitOnError)
}

var logger = slog.New(wslog.New(os.Stderr, nil))

func check(err error) {
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "encode":
		runEncode(os.Args[2:])
	case "decode":
		runDecode(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: abicodec encode <type> <json-value>")
	fmt.Fprintln(os.Stderr, "       abicodec decode [-lenient] <type> <0x-hex>")
}

func runEncode(args []string) {
	if len(args) < 2 {
		usage()
		os.Exit(1)
	}
	typ, jsonValue := args[0], args[1]

	t, err := abi.ParseType(typ)
	check(err)

	var raw any
	check(xerr.Errorf("abicodec: parsing json value: %w", json.Unmarshal([]byte(jsonValue), &raw)))

	value, err := jsonToValue(t, raw)
	check(err)

	b, err := abi.Encode(t, value)
	check(err)
	fmt.Println("0x" + hex.EncodeToString(b))
}

func runDecode(args []string) {
	fset := flagSet("decode")
	lenient := fset.Bool("lenient", false, "disable strict padding checks")
	check(fset.Parse(args))
	rest := fset.Args()
	if len(rest) < 2 {
		usage()
		os.Exit(1)
	}
	typ, hexValue := rest[0], rest[1]

	t, err := abi.ParseType(typ)
	check(err)

	data, err := hex.DecodeString(strings.TrimPrefix(hexValue, "0x"))
	check(xerr.Errorf("abicodec: decoding hex argument: %w", err))

	value, err := abi.Decode(t, data, abi.Strict(!*lenient))
	check(err)

	out, err := json.Marshal(valueToJSON(t, value))
	check(err)
	fmt.Println(string(out))
}

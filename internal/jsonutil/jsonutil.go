package jsonutil

import (
	"bytes"
	"sort"

	"github.com/fatih/structs"
	"github.com/hokaccha/go-prettyjson"
)

func newFormatter(color bool) *prettyjson.Formatter {
	f := prettyjson.NewFormatter()
	f.Indent = 0
	f.Newline = ""
	f.DisabledColor = !color
	return f
}

var (
	colored = newFormatter(true)
	plain   = newFormatter(false)
)

// MarshalCompactPretty formats the fields of struct v one per line as "Name: value",
// sorted by name, with values in compact JSON and colored for a terminal.
func MarshalCompactPretty(v any) ([]byte, error) {
	return marshal(colored, v)
}

// MarshalCompact is like MarshalCompactPretty without colors.
func MarshalCompact(v any) ([]byte, error) {
	return marshal(plain, v)
}

func marshal(f *prettyjson.Formatter, v any) ([]byte, error) {
	var buf bytes.Buffer
	m := structs.Map(v)
	names := structs.Names(v)
	sort.Strings(names)
	for _, name := range names {
		b, err := f.Marshal(m[name])
		if err != nil {
			return nil, err
		}
		buf.WriteString(name)
		buf.WriteString(": ")
		buf.Write(b)
		buf.WriteRune('\n')
	}
	return buf.Bytes(), nil
}

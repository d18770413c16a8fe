package jval

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Marshal serializes a Value to compact JSON text.
//
// Output uses "," and ":" separators with no padding - consumers of the
// wire format expect minified JSON. HTML escaping is disabled so the bytes
// match what other producers of this format emit.
func Marshal(v Value) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("cannot marshal nil Value")
	case Null:
		return []byte("null"), nil
	case String:
		return marshalString(string(val))
	case Number:
		if len(val) == 0 {
			return nil, fmt.Errorf("empty number literal")
		}
		return []byte(val), nil
	case Bool:
		if val {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case Array:
		return marshalArray(val)
	case *Object:
		return marshalObject(val)
	default:
		return nil, fmt.Errorf("unknown Value type: %T", v)
	}
}

// marshalString encodes a string with HTML escaping disabled.
// json.Marshal escapes < > & which would change the wire bytes.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	// Encoder adds a trailing newline, remove it
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func marshalArray(arr Array) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')

	for i, elem := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		elemBytes, err := Marshal(elem)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}
		buf.Write(elemBytes)
	}

	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func marshalObject(obj *Object) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, k := range obj.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := marshalString(k)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", k, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		val, _ := obj.Get(k)
		valBytes, err := Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("marshal value for key %q: %w", k, err)
		}
		buf.Write(valBytes)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

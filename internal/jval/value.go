package jval

import "strconv"

// Value is a sealed interface representing a JSON value.
// Only Null, String, Number, Bool, Array, and *Object implement it.
type Value interface {
	jsonValue() // Sealed - only these types implement it
}

// Null represents a JSON null value.
// Using an explicit type ensures all Values satisfy the sealed interface.
type Null struct{}

func (Null) jsonValue() {}

// String represents a JSON string value.
type String string

func (String) jsonValue() {}

// Number holds the exact JSON number literal as written in the source.
// Keeping the literal avoids float64 precision loss and makes
// stringification exact.
type Number string

func (Number) jsonValue() {}

// Bool represents a JSON boolean value.
type Bool bool

func (Bool) jsonValue() {}

// Array represents a JSON array of values.
type Array []Value

func (Array) jsonValue() {}

// Object represents a JSON object with insertion-ordered members.
type Object struct {
	keys   []string
	values map[string]Value
}

func (*Object) jsonValue() {}

// NewObject creates an empty ordered object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set adds or replaces a member. A key keeps its first-insertion position
// when replaced.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the member value for key and whether it is present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns member keys in insertion order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.keys)
}

// NumberFromInt creates a Number from an integer.
func NumberFromInt(n int64) Number {
	return Number(strconv.FormatInt(n, 10))
}

// Stringify coerces any JSON value to its string representation:
// strings pass through, numbers keep their literal, booleans and null use
// their JSON spellings, and arrays/objects render as compact JSON text.
//
// The codec applies this uniformly to match values so a numeric "value"
// on the wire still decodes to a string field value.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return ""
	case String:
		return string(val)
	case Number:
		return string(val)
	case Bool:
		return strconv.FormatBool(bool(val))
	case Null:
		return "null"
	default:
		data, err := Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

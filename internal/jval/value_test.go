package jval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Value
	}{
		{"string", `"hello"`, String("hello")},
		{"int", `42`, Number("42")},
		{"negative", `-7`, Number("-7")},
		{"float", `3.14`, Number("3.14")},
		{"exponent", `1e10`, Number("1e10")},
		{"true", `true`, Bool(true)},
		{"false", `false`, Bool(false)},
		{"null", `null`, Null{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.text))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_NumberLiteralPreserved(t *testing.T) {
	// Large integers must not round-trip through float64
	got, err := Parse([]byte(`9007199254740993`))
	require.NoError(t, err)
	assert.Equal(t, Number("9007199254740993"), got)
}

func TestParse_ObjectPreservesOrder(t *testing.T) {
	got, err := Parse([]byte(`{"zebra":1,"apple":2,"mango":3}`))
	require.NoError(t, err)

	obj, ok := got.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"zebra", "apple", "mango"}, obj.Keys())
}

func TestParse_Nested(t *testing.T) {
	got, err := Parse([]byte(`{"items":[{"id":1},{"id":2}],"done":false}`))
	require.NoError(t, err)

	obj := got.(*Object)
	items, ok := obj.Get("items")
	require.True(t, ok)
	arr, ok := items.(Array)
	require.True(t, ok)
	assert.Len(t, arr, 2)
}

func TestParse_Malformed(t *testing.T) {
	tests := []string{
		``,
		`{`,
		`{"a":}`,
		`[1,2`,
		`"unterminated`,
		`{"a":1} trailing`,
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := Parse([]byte(text))
			assert.Error(t, err)
		})
	}
}

func TestMarshal_Compact(t *testing.T) {
	obj := NewObject()
	obj.Set("type", String("ExistsExpression"))
	obj.Set("field", String("uid"))

	data, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"ExistsExpression","field":"uid"}`, string(data))
}

func TestMarshal_KeyOrderIsInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("zebra", NumberFromInt(1))
	obj.Set("apple", NumberFromInt(2))
	obj.Set("zebra", NumberFromInt(3)) // replace keeps position

	data, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"zebra":3,"apple":2}`, string(data))
}

func TestMarshal_NoHTMLEscaping(t *testing.T) {
	data, err := Marshal(String("<a&b>"))
	require.NoError(t, err)
	assert.Equal(t, `"<a&b>"`, string(data))
}

func TestMarshal_RoundTrip(t *testing.T) {
	texts := []string{
		`{"type":"MatchExpression","field":"uid","value":"wsanchez","match":"equals","flags":"{}"}`,
		`[1,"two",true,null,{"nested":[]}]`,
		`{"unicode":"héllo \"quoted\""}`,
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			v, err := Parse([]byte(text))
			require.NoError(t, err)
			data, err := Marshal(v)
			require.NoError(t, err)
			assert.Equal(t, text, string(data))
		})
	}
}

func TestMarshal_NilValue(t *testing.T) {
	_, err := Marshal(nil)
	assert.Error(t, err)
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"string", String("uid"), "uid"},
		{"int", Number("1234"), "1234"},
		{"float", Number("3.5"), "3.5"},
		{"big int exact", Number("9007199254740993"), "9007199254740993"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"null", Null{}, "null"},
		{"array", Array{Number("1"), String("a")}, `[1,"a"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stringify(tt.v))
		})
	}
}

func TestStringify_Object(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Number("1"))
	assert.Equal(t, `{"a":1}`, Stringify(obj))
}

func TestValue_SealedInterface(t *testing.T) {
	values := []Value{
		Null{}, String("s"), Number("1"), Bool(true), Array{}, NewObject(),
	}

	for _, v := range values {
		switch v.(type) {
		case Null, String, Number, Bool, Array, *Object:
			// OK
		default:
			t.Fatal("unexpected value type")
		}
	}
}

package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{name: "nil", in: nil, want: Null()},
		{name: "string", in: "x", want: StringValue("x")},
		{name: "bool", in: true, want: BoolValue(true)},
		{name: "int", in: 7, want: IntValue(7)},
		{name: "int32", in: int32(-3), want: IntValue(-3)},
		{name: "uint8", in: uint8(200), want: IntValue(200)},
		{name: "huge uint64", in: uint64(math.MaxUint64), want: FloatValue(float64(uint64(math.MaxUint64)))},
		{name: "float32", in: float32(1.5), want: FloatValue(1.5)},
		{name: "json integer", in: json.Number("42"), want: IntValue(42)},
		{name: "json float", in: json.Number("4.25"), want: FloatValue(4.25)},
		{name: "value passthrough", in: StringValue("v"), want: StringValue("v")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueOf(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueOf_Unsupported(t *testing.T) {
	for _, in := range []any{[]any{1}, map[string]any{"a": 1}, time.Now()} {
		_, err := ValueOf(in)
		assert.ErrorIs(t, err, ErrUnsupportedValue)
	}
}

func TestValue_Conversions(t *testing.T) {
	i, ok := FloatValue(3.9).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(3), i)

	i, ok = StringValue(" 12 ").AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(12), i)

	_, ok = StringValue("twelve").AsInt()
	assert.False(t, ok)

	_, ok = FloatValue(math.NaN()).AsInt()
	assert.False(t, ok)

	f, ok := IntValue(2).AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 2.0, f)

	b, ok := StringValue("false").AsBool()
	assert.True(t, ok)
	assert.False(t, b)

	b, ok = IntValue(5).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = Null().AsBool()
	assert.False(t, ok)
}

func TestValue_StringAndTypeName(t *testing.T) {
	assert.Equal(t, "", Null().String())
	assert.Equal(t, "0.5", FloatValue(0.5).String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "float", FloatValue(1).TypeName())
	assert.Equal(t, "null", Null().TypeName())
}

func TestValue_JSON(t *testing.T) {
	out, err := json.Marshal([]Value{Null(), IntValue(1), FloatValue(1.5), StringValue("s"), BoolValue(false), FloatValue(math.Inf(1))})
	require.NoError(t, err)
	assert.JSONEq(t, `[null, 1, 1.5, "s", false, "+Inf"]`, string(out))

	var v Value
	require.NoError(t, json.Unmarshal([]byte(`10`), &v))
	assert.Equal(t, KindInt, v.Kind())

	require.NoError(t, json.Unmarshal([]byte(`1e2`), &v))
	assert.Equal(t, KindFloat, v.Kind())

	assert.Error(t, json.Unmarshal([]byte(`{"nested": true}`), &v))
}

func TestValue_IntegralFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "whole number", in: 7, want: "7.0"},
		{name: "zero", in: 0, want: "0.0"},
		{name: "negative", in: -3, want: "-3.0"},
		{name: "fraction", in: 0.25, want: "0.25"},
		{name: "exponent", in: 1e21, want: "1e+21"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FloatValue(tt.in)
			assert.Equal(t, tt.want, v.String())

			raw, err := json.Marshal(v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(raw))

			var back Value
			require.NoError(t, json.Unmarshal(raw, &back))
			assert.Equal(t, KindFloat, back.Kind())
			assert.Equal(t, v, back)
		})
	}
}

func TestValue_FloatRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := FloatValue(rapid.Float64().Draw(t, "f"))

		raw, err := v.MarshalJSON()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var back Value
		if err = back.UnmarshalJSON(raw); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if back.Kind() != KindFloat || back != v {
			t.Fatalf("%s decoded as %s %v", raw, back.TypeName(), back)
		}
	})
}

func TestValue_StringNotHTMLEscaped(t *testing.T) {
	raw, err := StringValue("<a> & b").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"<a> & b"`, string(raw))
}

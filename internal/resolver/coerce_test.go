package resolver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-toml-selector/models"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		slot models.SlotType
		in   models.Value
		want models.Value
	}{
		{name: "int from int", slot: models.SlotInt, in: models.IntValue(7), want: models.IntValue(7)},
		{name: "int truncates float", slot: models.SlotInt, in: models.FloatValue(3.9), want: models.IntValue(3)},
		{name: "int from negative float", slot: models.SlotInt, in: models.FloatValue(-2.5), want: models.IntValue(-2)},
		{name: "int from true", slot: models.SlotInt, in: models.BoolValue(true), want: models.IntValue(1)},
		{name: "int from numeric string", slot: models.SlotInt, in: models.StringValue(" 42 "), want: models.IntValue(42)},
		{name: "int from text falls back", slot: models.SlotInt, in: models.StringValue("A"), want: models.IntValue(0)},
		{name: "int from NaN falls back", slot: models.SlotInt, in: models.FloatValue(math.NaN()), want: models.IntValue(0)},
		{name: "int from null", slot: models.SlotInt, in: models.Null(), want: models.IntValue(0)},

		{name: "string from string", slot: models.SlotString, in: models.StringValue("doce"), want: models.StringValue("doce")},
		{name: "string from int", slot: models.SlotString, in: models.IntValue(12), want: models.StringValue("12")},
		{name: "string from float", slot: models.SlotString, in: models.FloatValue(0.1), want: models.StringValue("0.1")},
		{name: "string from integral float", slot: models.SlotString, in: models.FloatValue(7), want: models.StringValue("7.0")},
		{name: "string from bool", slot: models.SlotString, in: models.BoolValue(false), want: models.StringValue("false")},
		{name: "string from null", slot: models.SlotString, in: models.Null(), want: models.StringValue("")},

		{name: "float from int", slot: models.SlotFloat, in: models.IntValue(2), want: models.FloatValue(2)},
		{name: "float from string", slot: models.SlotFloat, in: models.StringValue("1.25"), want: models.FloatValue(1.25)},
		{name: "float from bool falls back", slot: models.SlotFloat, in: models.BoolValue(true), want: models.FloatValue(0)},
		{name: "float from text falls back", slot: models.SlotFloat, in: models.StringValue("x"), want: models.FloatValue(0)},

		{name: "bool from bool", slot: models.SlotBoolean, in: models.BoolValue(true), want: models.BoolValue(true)},
		{name: "bool from non-zero int", slot: models.SlotBoolean, in: models.IntValue(-3), want: models.BoolValue(true)},
		{name: "bool from zero int", slot: models.SlotBoolean, in: models.IntValue(0), want: models.BoolValue(false)},
		{name: "bool from string", slot: models.SlotBoolean, in: models.StringValue("true"), want: models.BoolValue(true)},
		{name: "bool from float falls back", slot: models.SlotBoolean, in: models.FloatValue(1), want: models.BoolValue(false)},
		{name: "bool from text falls back", slot: models.SlotBoolean, in: models.StringValue("yes please"), want: models.BoolValue(false)},

		{name: "any keeps string", slot: models.SlotAny, in: models.StringValue("A"), want: models.StringValue("A")},
		{name: "any keeps null", slot: models.SlotAny, in: models.Null(), want: models.Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Coerce(tt.slot, tt.in))
		})
	}
}

package otel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

type roomType string

func (r roomType) String() string { return "room:" + string(r) }

func TestToAttribute(t *testing.T) {
	at := time.Date(2026, 12, 20, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "bool", value: true, want: attribute.BoolValue(true)},
		{name: "string", value: "Pending", want: attribute.StringValue("Pending")},
		{name: "int", value: 3, want: attribute.IntValue(3)},
		{name: "int64", value: int64(7), want: attribute.Int64Value(7)},
		{name: "float", value: 4500.5, want: attribute.Float64Value(4500.5)},
		{name: "strings", value: []string{"a", "b"}, want: attribute.StringSliceValue([]string{"a", "b"})},
		{name: "time", value: at, want: attribute.StringValue("2026-12-20T14:00:00Z")},
		{name: "stringer", value: roomType("deluxe"), want: attribute.StringValue("room:deluxe")},
		{name: "fallback", value: struct{ N int }{2}, want: attribute.StringValue("{2}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := toAttribute("key", tt.value)

			assert.Equal(t, attribute.Key("key"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}

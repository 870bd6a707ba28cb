package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		want  string
	}{
		{"zero", 0, "0G00S00C"},
		{"copper only", 7, "0G00S07C"},
		{"max copper", 99, "0G00S99C"},
		{"one silver", 100, "0G01S00C"},
		{"silver and copper", 2345, "0G23S45C"},
		{"one gold", 10000, "1G00S00C"},
		{"all tiers", 123456, "12G34S56C"},
		{"gold exceeds one digit", 12345678, "1234G56S78C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.value))
		})
	}
}

func TestSplit(t *testing.T) {
	gold, silver, copper := Split(123456)
	assert.Equal(t, int64(12), gold)
	assert.Equal(t, int64(34), silver)
	assert.Equal(t, int64(56), copper)
}

func TestFormatWith_CustomSymbols(t *testing.T) {
	got := FormatWith(123456, "<:g_:1>", "<:s_:2>", "<:c_:3>")
	assert.Equal(t, "12<:g_:1>34<:s_:2>56<:c_:3>", got)
}

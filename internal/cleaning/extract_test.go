package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRiskTolerance(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{name: "bare digit", raw: "7", want: floatPtr(7)},
		{name: "digit with label", raw: "10 - sehr risikobereit", want: floatPtr(10)},
		{name: "label before digit", raw: "Stufe 3", want: floatPtr(3)},
		{name: "first run wins", raw: "5 von 10", want: floatPtr(5)},
		{name: "no digits", raw: "keine Angabe", want: nil},
		{name: "missing", raw: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractRiskTolerance(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseIncomeRange(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{name: "bracket midpoint", raw: "1001-1500€", want: floatPtr(1250.5)},
		{name: "bracket with spaces", raw: "2001 - 2500 €", want: floatPtr(2250.5)},
		{name: "open bracket keeps single value", raw: "Mehr als 5000€", want: floatPtr(5000)},
		{name: "first two numbers win", raw: "501-1000€ (ca. 750€)", want: floatPtr(750.5)},
		{name: "no numbers", raw: "keine Angabe", want: nil},
		{name: "missing", raw: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIncomeRange(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveypipe/pkg/contracts/domain"
)

func TestEncodeWorkHours(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{name: "mid bucket", raw: "21-30 Stunden", want: floatPtr(25.5)},
		{name: "first bucket", raw: "1-10 Stunden", want: floatPtr(5.5)},
		{name: "zero bucket", raw: "0 Stunden", want: floatPtr(0)},
		{name: "not employed counts as zero", raw: "Nicht erwerbstätig", want: floatPtr(0)},
		{name: "open top bucket", raw: "Mehr als 50 Stunden", want: floatPtr(55)},
		{name: "unmapped", raw: "keine Angabe", want: nil},
		{name: "missing", raw: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeWorkHours(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestEncodeLivingSituation(t *testing.T) {
	yes := EncodeLivingSituation("Ja")
	require.NotNil(t, yes)
	assert.Equal(t, domain.LivesWithOthersYes, *yes)

	no := EncodeLivingSituation("Nein")
	require.NotNil(t, no)
	assert.Equal(t, domain.LivesWithOthersNo, *no)

	assert.Nil(t, EncodeLivingSituation(""))
	assert.Nil(t, EncodeLivingSituation("Vielleicht"))
}

func TestEncodeGender(t *testing.T) {
	tests := []struct {
		raw      string
		want     string
		wantCode int
	}{
		{raw: "Männlich", want: domain.GenderMale, wantCode: 1},
		{raw: "Weiblich", want: domain.GenderFemale, wantCode: 2},
		{raw: "Divers", want: domain.GenderDiverse, wantCode: 3},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			label := EncodeGender(tt.raw)
			require.NotNil(t, label)
			assert.Equal(t, tt.want, *label)

			code := EncodeGenderCode(tt.raw)
			require.NotNil(t, code)
			assert.Equal(t, tt.wantCode, *code)
		})
	}

	assert.Nil(t, EncodeGender("männlich"), "matching is exact, not case-insensitive")
	assert.Nil(t, EncodeGenderCode(""))
}

func TestEncodeEducation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "no certificate", raw: "Ohne allgemeinen Schulabschluss", want: 1},
		{name: "hauptschule", raw: "Haupt- oder Volksschulabschluss (Abschluss der Pflichtschule)", want: 2},
		{name: "gdr polytechnic shares level 3", raw: "Abschluss der Polytechnischen Oberschule der DDR", want: 3},
		{name: "realschule", raw: "Mittleren Schulabschluss (z.B. Realschulabschluss)", want: 3},
		{name: "abitur", raw: "Abitur oder Fachabitur (Höchster Schulabschluss/ Hochschulreife)", want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeEducation(tt.raw)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}

	assert.Nil(t, EncodeEducation("Abitur"))
}

func TestEncodeHealthStatus(t *testing.T) {
	for raw, want := range map[string]int{
		"Schlecht":          1,
		"Weniger gut":       2,
		"Zufriedenstellend": 3,
		"Gut":               4,
		"Sehr gut":          5,
	} {
		got := EncodeHealthStatus(raw)
		require.NotNil(t, got, raw)
		assert.Equal(t, want, *got, raw)
	}
	assert.Nil(t, EncodeHealthStatus(""))
}

func TestEncodeChange(t *testing.T) {
	for raw, want := range map[string]int{
		"stark abgenommen":     -2,
		"leicht abgenommen":    -1,
		"sich nicht verändert": 0,
		"leicht zugenommen":    1,
		"stark zugenommen":     2,
	} {
		got := EncodeChange(raw)
		require.NotNil(t, got, raw)
		assert.Equal(t, want, *got, raw)
	}
	assert.Nil(t, EncodeChange("unverändert"))
}

func floatPtr(v float64) *float64 { return &v }

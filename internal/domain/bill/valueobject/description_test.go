package valueobject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDescription(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain text", input: "Office rent", want: "Office rent"},
		{name: "surrounding whitespace trimmed", input: "  Electricity  ", want: "Electricity"},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "blank rejected", input: "   ", wantErr: true},
		{name: "max length accepted", input: strings.Repeat("a", MaxDescriptionLength)},
		{name: "over max length rejected", input: strings.Repeat("a", MaxDescriptionLength+1), wantErr: true},
		{name: "length counted in characters not bytes", input: strings.Repeat("é", 200), want: strings.Repeat("é", 200)},
		{name: "over max characters rejected", input: strings.Repeat("é", MaxDescriptionLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDescription(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want != "" {
				assert.Equal(t, tt.want, d.Value())
			}
		})
	}
}

func TestNewDescription_LengthMeasuredBeforeTrim(t *testing.T) {
	// 250 characters of padding around a 10-character word exceeds the
	// limit even though the trimmed result would fit.
	input := strings.Repeat(" ", 250) + "electricity"
	_, err := NewDescription(input)
	assert.Error(t, err)
}

package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty is absent", in: "", want: ""},
		{name: "whitespace only is absent", in: "   ", want: ""},
		{name: "national format", in: "(404) 555-1234", want: "+14045551234"},
		{name: "dashed national format", in: "404-555-1234", want: "+14045551234"},
		{name: "e164 round-trips", in: "+14045551234", want: "+14045551234"},
		{name: "international keeps its country", in: "+442071838750", want: "+442071838750"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeInvalid(t *testing.T) {
	for _, in := range []string{"abc", "123", "+1", "+1404555123456789"} {
		t.Run(in, func(t *testing.T) {
			_, err := Normalize(in)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	n, err := ParseInt(" 2020 ")
	require.NoError(t, err)
	assert.Equal(t, 2020, n)

	n, err = ParseInt("-5")
	require.NoError(t, err)
	assert.Equal(t, -5, n)

	for _, bad := range []string{"", "20.5", "year", "2O20"} {
		_, err := ParseInt(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"-2628412.5", -2628412.5, true},
		{" 13.732821 ", 13.732821, true},
		{"0", 0, true},
		{"1e3", 1000, true},
		{"", 0, false},
		{"   ", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, ok, err := ParseFloat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, v)
		})
	}

	_, _, err := ParseFloat("n/a")
	assert.Error(t, err)
}

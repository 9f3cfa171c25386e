package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Brazil", "brazil"},
		{"  Brazil  ", "brazil"},
		{"United States", "unitedstates"},
		{"São Paulo", "saopaulo"},
		{"sao paulo", "saopaulo"},
		{"SAO-PAULO ", "saopaulo"},
		{"Côte d'Ivoire", "cotedivoire"},
		{"Curaçao", "curacao"},
		{"Åland Islands", "alandislands"},
		{"Ｂｒａｚｉｌ", "brazil"},
		{"Micronesia (country)", "micronesiacountry"},
		{"G20", "g20"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Brazil", "São Tomé and Príncipe", "Côte d'Ivoire", "  Bosnia-Herzegovina ",
		"Ｗｏｒｌｄ", "Türkiye", "Réunion", "ŁÓDŹ", "中国", "",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_OnlyASCIIAlnum(t *testing.T) {
	for _, in := range []string{"Ñandú!", "Ελλάδα", "Côte d'Ivoire (2024)"} {
		for _, r := range Normalize(in) {
			assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'), "rune %q from %q", r, in)
		}
	}
}

package httpserver

import "testing"

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "R$ 0,00"},
		{90, "R$ 0,90"},
		{18990, "R$ 189,90"},
		{100000, "R$ 1.000,00"},
		{1258050, "R$ 12.580,50"},
		{123456789, "R$ 1.234.567,89"},
	}
	for _, tc := range cases {
		if got := formatBRL(tc.cents); got != tc.want {
			t.Fatalf("formatBRL(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

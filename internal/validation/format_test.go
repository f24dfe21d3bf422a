package validation

import "testing"

func TestFormatCPF(t *testing.T) {
	cases := map[string]string{
		"12345678901":     "123.456.789-01",
		"123456789012345": "123.456.789-01",
		"123":             "123",
		"1234":            "123.4",
		"":                "",
	}
	for in, want := range cases {
		if got := FormatCPF(in); got != want {
			t.Fatalf("FormatCPF(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	cases := map[string]string{
		"11999999999": "(11) 99999-9999",
		"1199999999":  "(11) 9999-9999",
		"11":          "11",
		"119":         "(11) 9",
		"":            "",
	}
	for in, want := range cases {
		if got := FormatPhone(in); got != want {
			t.Fatalf("FormatPhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCEP(t *testing.T) {
	cases := map[string]string{
		"12345678":  "12345-678",
		"12345":     "12345",
		"123456789": "12345-678",
	}
	for in, want := range cases {
		if got := FormatCEP(in); got != want {
			t.Fatalf("FormatCEP(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCardNumber(t *testing.T) {
	cases := map[string]string{
		"4111111111111111": "4111 1111 1111 1111",
		"41111111":         "4111 1111",
		"411":              "411",
	}
	for in, want := range cases {
		if got := FormatCardNumber(in); got != want {
			t.Fatalf("FormatCardNumber(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatExpiry(t *testing.T) {
	cases := map[string]string{
		"1228":  "12/28",
		"12":    "12",
		"122":   "12/2",
		"12289": "12/28",
	}
	for in, want := range cases {
		if got := FormatExpiry(in); got != want {
			t.Fatalf("FormatExpiry(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCardBrand(t *testing.T) {
	cases := map[string]string{
		"4111 1111 1111 1111": "VISA",
		"5111111111111111":    "Mastercard",
		"5611111111111111":    "",
		"6363680000000000":    "Elo",
		"5067000000000000":    "Elo",
		"340000000000000":     "Amex",
		"370000000000000":     "Amex",
		"":                    "",
	}
	for in, want := range cases {
		if got := CardBrand(in); got != want {
			t.Fatalf("CardBrand(%q) = %q, want %q", in, got, want)
		}
	}
}

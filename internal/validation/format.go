package validation

import "strings"

// Input masks applied before validation, mirroring what the storefront forms
// do as the user types. They operate on the digit-stripped value and cap it at
// the mask length.

// FormatCPF renders ###.###.###-##.
func FormatCPF(s string) string {
	d := clamp(Digits(s), 11)
	return group(d, []int{3, 3, 3, 2}, []string{".", ".", "-"})
}

// FormatPhone renders (##) #####-#### (or (##) ####-#### for 10 digits).
func FormatPhone(s string) string {
	d := clamp(Digits(s), 11)
	if len(d) <= 2 {
		return d
	}
	rest := d[2:]
	if len(rest) <= 4 {
		return "(" + d[:2] + ") " + rest
	}
	split := len(rest) - 4
	return "(" + d[:2] + ") " + rest[:split] + "-" + rest[split:]
}

// FormatCEP renders #####-###.
func FormatCEP(s string) string {
	d := clamp(Digits(s), 8)
	return group(d, []int{5, 3}, []string{"-"})
}

// FormatCardNumber renders #### #### #### ####.
func FormatCardNumber(s string) string {
	d := clamp(Digits(s), 16)
	return group(d, []int{4, 4, 4, 4}, []string{" ", " ", " "})
}

// FormatExpiry renders MM/YY.
func FormatExpiry(s string) string {
	d := clamp(Digits(s), 4)
	return group(d, []int{2, 2}, []string{"/"})
}

// CardBrand guesses the card network from the number prefix; empty when
// unknown. Prefix order follows the storefront's card form: a leading 4 is
// VISA even where it overlaps an Elo range.
func CardBrand(number string) string {
	d := Digits(number)
	switch {
	case strings.HasPrefix(d, "4"):
		return "VISA"
	case len(d) >= 2 && d[0] == '5' && d[1] >= '1' && d[1] <= '5':
		return "Mastercard"
	case hasAnyPrefix(d, "636368", "504175", "636297", "5067"):
		return "Elo"
	case strings.HasPrefix(d, "34") || strings.HasPrefix(d, "37"):
		return "Amex"
	}
	return ""
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func clamp(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// group joins consecutive digit groups with separators, stopping at the
// partial group while input is incomplete.
func group(d string, sizes []int, seps []string) string {
	var b strings.Builder
	pos := 0
	for i, size := range sizes {
		if pos >= len(d) {
			break
		}
		if i > 0 {
			b.WriteString(seps[i-1])
		}
		end := pos + size
		if end > len(d) {
			end = len(d)
		}
		b.WriteString(d[pos:end])
		pos = end
	}
	return b.String()
}

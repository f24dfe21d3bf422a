package httpserver

import (
	"fmt"
	"strconv"
)

// formatBRL renders cents as a Brazilian currency string, e.g. 1258050 cents
// becomes "R$ 12.580,50".
func formatBRL(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}
	reais := cents / 100
	centavos := cents % 100

	digits := strconv.FormatInt(reais, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped, centavos)
}

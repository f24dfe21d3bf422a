package order

import (
	"fmt"

	"medrental/internal/domain"
)

// Derived payment display strings. These mirror what the confirmation screen
// shows; nothing in the system parses them back.

// PixCode builds the "copia e cola" PIX string for the order.
func PixCode(o domain.Order) string {
	return fmt.Sprintf(
		"00020126580014br.gov.bcb.pix0136cenemed-%s@cenemed.com.br5204000053039865802BR5925CENE RIO PRETO LTDA6009SAO PAULO62140510%s6304",
		o.ID, o.ID,
	)
}

// BoletoBarcode builds the boleto "linha digitável" with the order total
// encoded in its last field.
func BoletoBarcode(o domain.Order) string {
	return fmt.Sprintf("23793.38128 60000.000003 00000.000406 1 9012%010d", o.TotalCents)
}

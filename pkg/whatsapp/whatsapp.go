// Package whatsapp builds the order hand-off as a WhatsApp deep link. This is
// string formatting only; nothing here talks to the network.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"yolimar/internal/catalog"
	"yolimar/internal/domain"
	"yolimar/pkg/format"
)

// OrderMessage renders the cart as the message the customer sends to the
// store: one bullet per line plus the total.
func OrderMessage(items []domain.CartItem, total float64) string {
	details := make([]string, 0, len(items))
	for i := range items {
		item := items[i]
		details = append(details, fmt.Sprintf("• %s (%s, %s) x%d - %s",
			item.Name,
			catalog.ColorName(item.Color),
			item.Size,
			item.Quantity,
			format.Currency(item.Subtotal()),
		))
	}

	return fmt.Sprintf("¡Hola! 👋 Me interesa realizar el siguiente pedido:\n\n%s\n\n*Total: %s*\n\n¿Podrían confirmarme disponibilidad?",
		strings.Join(details, "\n"),
		format.Currency(total),
	)
}

// Link builds the wa.me deep link for a phone number and message. Spaces in
// the configured phone are stripped; the message is percent-encoded.
func Link(phone, message string) string {
	phone = strings.ReplaceAll(phone, " ", "")
	// QueryEscape uses '+' for spaces; wa.me wants %20 like encodeURIComponent.
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, text)
}

package storefront

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prices render uniformly as córdobas with es-NI grouping, on every page.
var pricePrinter = message.NewPrinter(language.MustParse("es-NI"))

// FormatPrice renders an amount as "C$2,500".
func FormatPrice(amount float64) string {
	return pricePrinter.Sprintf("C$%.0f", amount)
}

// CustomerInfo is the checkout form.
type CustomerInfo struct {
	Name    string
	Phone   string
	Email   string // optional
	Address string
	Notes   string // optional
}

var ErrMissingFields = errors.New("nombre, teléfono y dirección son obligatorios")

// Validate enforces the required fields before anything hits the network.
func (ci CustomerInfo) Validate() error {
	if strings.TrimSpace(ci.Name) == "" ||
		strings.TrimSpace(ci.Phone) == "" ||
		strings.TrimSpace(ci.Address) == "" {
		return ErrMissingFields
	}
	return nil
}

// ComposeOrderMessage builds the human-readable order summary sent over
// WhatsApp. Pure function of the form, the cart lines and the total.
func ComposeOrderMessage(info CustomerInfo, lines []CartLine, total float64) string {
	var b strings.Builder

	b.WriteString("¡Hola! Me gustaría realizar el siguiente pedido:\n\n")
	b.WriteString("*Cliente:* " + info.Name + "\n")
	b.WriteString("*Teléfono:* " + info.Phone + "\n")
	if info.Email != "" {
		b.WriteString("*Email:* " + info.Email + "\n")
	}
	b.WriteString("*Dirección:* " + info.Address + "\n\n")

	b.WriteString("*Productos:*\n")
	for _, line := range lines {
		b.WriteString(pricePrinter.Sprintf("• %s x%d - ", line.Name, line.Quantity))
		b.WriteString(FormatPrice(line.Price * float64(line.Quantity)))
		b.WriteString("\n")
	}

	b.WriteString("\n*Total:* " + FormatPrice(total) + "\n")

	if info.Notes != "" {
		b.WriteString("\n*Notas:* " + info.Notes)
	}
	return b.String()
}

// WhatsAppLink builds the deep link that opens the chat with the order
// summary pre-filled. Free text is percent-encoded so the link stays a
// valid query parameter.
func WhatsAppLink(number, msg string) string {
	return "https://wa.me/" + normalizePhone(number) + "?text=" + url.QueryEscape(msg)
}

// normalizePhone strips separators and the international 00 prefix; wa.me
// wants bare digits with the country code.
func normalizePhone(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return strings.TrimPrefix(b.String(), "00")
}

// Checkout runs the order flow: validate the form, persist the order, build
// the WhatsApp deep link, and only then clear the cart. Returns the link to
// open.
func Checkout(ctx context.Context, api *Client, cart *CartStore, info CustomerInfo, whatsappNumber string) (string, error) {
	if err := info.Validate(); err != nil {
		return "", err
	}
	lines := cart.Lines()
	if len(lines) == 0 {
		return "", errors.New("el carrito está vacío")
	}
	total := cart.Total()

	_, err := api.CreateOrder(ctx, OrderDraft{
		CustomerName:    info.Name,
		CustomerPhone:   info.Phone,
		CustomerEmail:   info.Email,
		CustomerAddress: info.Address,
		Items:           lines,
		Total:           total,
		Notes:           info.Notes,
	})
	if err != nil {
		return "", err
	}

	link := WhatsAppLink(whatsappNumber, ComposeOrderMessage(info, lines, total))
	cart.Clear()
	return link, nil
}

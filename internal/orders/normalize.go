package orders

import (
	"fmt"

	"atlantis/internal/fields"
	"atlantis/internal/model"
)

// Alias lists per canonical order field, in priority order. These cover
// every key variant observed across upstream revisions; drift means
// extending a list, not touching code.
var (
	orderIDAliases = []string{"ordernumber", "orderNumber", "order_number", "orderno", "orderNo", "idPedido", "id"}
	dateAliases    = []string{"fechadecompra", "fechaDeCompra", "fecha_de_compra", "createdAt", "date", "fecha"}
	statusAliases  = []string{"estado", "status", "state"}
	articleAliases = []string{"idarticulo", "idArticulo", "itemId", "product_id", "bookid"}
	amountAliases  = []string{"importe", "total", "amount", "totalAmount", "price", "valor", "order_total"}

	// Nested keys inside a structured amount value.
	nestedAmountAliases   = []string{"amount", "importe", "total", "valor", "value"}
	nestedCurrencyAliases = []string{"currency", "moneda", "divisa", "symbol"}
)

// DefaultCurrency is appended to bare numeric amounts. The store only
// deals in one currency.
const DefaultCurrency = "€"

// Normalizer maps arbitrary raw order records into the canonical shape.
// The zero value is ready to use.
type Normalizer struct {
	Dates DateParser
}

// Normalize never fails: missing or invalid input degrades to the "—"
// placeholder per field, including when raw itself is nil. The purchase
// date is kept for display and independently parsed for sorting.
func (n Normalizer) Normalize(raw model.RawOrder) model.NormalizedOrder {
	out := model.NormalizedOrder{
		OrderID:      model.Placeholder,
		PurchaseDate: model.Placeholder,
		Status:       model.Placeholder,
	}
	if len(raw) == 0 {
		return out
	}

	if v, ok := fields.Lookup(raw, orderIDAliases); ok {
		if s := fields.String(v); s != "" {
			out.OrderID = s
		}
	}
	if v, ok := fields.Lookup(raw, dateAliases); ok {
		if s := n.Dates.displayDate(v); s != "" {
			out.PurchaseDate = s
		}
		out.ParsedDate = n.Dates.Parse(v)
	}
	if v, ok := fields.Lookup(raw, statusAliases); ok {
		if s := fields.String(v); s != "" {
			out.Status = s
		}
	}
	if v, ok := fields.Lookup(raw, articleAliases); ok {
		out.ArticleID = fields.String(v)
	}
	if v, ok := fields.Lookup(raw, amountAliases); ok {
		out.Amount = formatAmount(v)
	}
	return out
}

// formatAmount renders a pre-resolved order total. Structured values
// carry a nested amount/currency pair; bare finite numbers get the
// default currency; anything else passes through as a string rather
// than failing.
func formatAmount(v any) string {
	if m, ok := v.(map[string]any); ok {
		nested, ok := fields.Lookup(m, nestedAmountAliases)
		if !ok {
			return ""
		}
		amount, ok := fields.Number(nested)
		if !ok {
			return fields.String(nested)
		}
		currency := DefaultCurrency
		if c, ok := fields.Lookup(m, nestedCurrencyAliases); ok {
			if s := fields.String(c); s != "" {
				currency = s
			}
		}
		return fmt.Sprintf("%.2f %s", amount, currency)
	}
	if amount, ok := fields.Number(v); ok {
		return fmt.Sprintf("%.2f %s", amount, DefaultCurrency)
	}
	return fields.String(v)
}

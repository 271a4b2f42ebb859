package model

// Placeholder is rendered wherever upstream data is missing or invalid,
// so the order table never shows an empty cell.
const Placeholder = "—"

// Customer is the authenticated client record returned by the clients endpoint.
type Customer struct {
	ClientID string `json:"clientId"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Book is a decoded catalog entry. Price and Stock are pointers because
// upstream records may omit them.
type Book struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Price  *float64 `json:"price,omitempty"`
	Stock  *int     `json:"stock,omitempty"`
}

// InStock reports whether the book has known positive stock.
func (b Book) InStock() bool {
	return b.Stock != nil && *b.Stock > 0
}

// RawOrder is one purchase record exactly as the orders endpoint sent it.
// The upstream schema drifted across revisions, so field names are not
// trusted; the normalizer resolves them through alias lists.
type RawOrder map[string]any

// NormalizedOrder is the canonical shape produced from one RawOrder.
// Display fields always hold a value (Placeholder when unknown).
type NormalizedOrder struct {
	OrderID      string `json:"orderId"`
	PurchaseDate string `json:"purchaseDate"`
	Status       string `json:"status"`
	// ArticleID joins the order to a catalog entry; empty when the raw
	// record carried no recognizable article field.
	ArticleID string `json:"articleId,omitempty"`
	// Amount is the pre-resolved total carried by the raw record itself,
	// already formatted for display. Empty when absent.
	Amount string `json:"amount,omitempty"`
	// ParsedDate is the sortable instant in unix millis, 0 when the
	// purchase date could not be parsed.
	ParsedDate int64 `json:"parsedDate"`
}

// EnrichedOrderRow is a NormalizedOrder joined against the catalog index.
// All fields are non-empty display strings; this is the final artifact
// handed to rendering.
type EnrichedOrderRow struct {
	OrderID string `json:"orderId"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Title   string `json:"title"`
	Amount  string `json:"amount"`
}

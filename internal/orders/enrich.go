package orders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"atlantis/internal/api"
	"atlantis/internal/catalog"
	"atlantis/internal/metrics"
	"atlantis/internal/model"
)

// ErrNoSession means enrichment was requested without an authenticated
// customer context.
var ErrNoSession = errors.New("no active session")

// Fetcher is the orders upstream collaborator.
type Fetcher interface {
	GetOrders(ctx context.Context, customerID string) (any, error)
}

// CatalogSource supplies the shared catalog index.
type CatalogSource interface {
	Get(ctx context.Context) (*catalog.Index, error)
}

// Pipeline turns a customer's raw upstream orders into render-ready
// rows: normalize, join against the catalog index, sort by purchase
// date descending.
type Pipeline struct {
	orders  Fetcher
	catalog CatalogSource
	norm    Normalizer
	metrics *metrics.Registry
}

func NewPipeline(orders Fetcher, cat CatalogSource, m *metrics.Registry) *Pipeline {
	if m == nil {
		m = metrics.NewRegistry()
	}
	return &Pipeline{orders: orders, catalog: cat, metrics: m}
}

// Enrich fetches, normalizes, joins and sorts the orders of one
// customer. A catalog build failure degrades to "—" titles and prices
// rather than blocking order history; a failed orders fetch or a payload
// with no extractable sequence aborts with UpstreamError. An empty
// sequence is a valid, displayable result, not an error.
func (p *Pipeline) Enrich(ctx context.Context, customerID string) ([]model.EnrichedOrderRow, error) {
	if customerID == "" {
		return nil, ErrNoSession
	}
	p.metrics.EnrichmentRuns.Inc()

	idx, err := p.catalog.Get(ctx)
	if err != nil {
		log.Printf("warn: catalog unavailable, order history proceeds without titles/prices: %v", err)
		p.metrics.CatalogFailures.Inc()
		idx = &catalog.Index{}
	}

	t0 := time.Now()
	payload, err := p.orders.GetOrders(ctx, customerID)
	if err != nil {
		p.metrics.UpstreamErrors.Inc()
		return nil, err
	}
	p.metrics.FetchLatencySec.Observe(time.Since(t0).Seconds())

	seq, ok := extractSequence(payload)
	if !ok {
		p.metrics.UpstreamErrors.Inc()
		return nil, &api.UpstreamError{Endpoint: "/getOrdersbyClient", Err: fmt.Errorf("no order sequence in payload")}
	}
	if len(seq) == 0 {
		return []model.EnrichedOrderRow{}, nil
	}

	type datedRow struct {
		row model.EnrichedOrderRow
		ts  int64
	}
	dated := make([]datedRow, 0, len(seq))
	for _, raw := range toRawOrders(seq) {
		o := p.norm.Normalize(raw)
		dated = append(dated, datedRow{row: p.join(idx, o), ts: o.ParsedDate})
	}

	// Descending by purchase date; ties keep input order.
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].ts > dated[j].ts
	})
	rows := make([]model.EnrichedOrderRow, len(dated))
	for i, d := range dated {
		rows[i] = d.row
	}
	return rows, nil
}

// join resolves title and amount for one normalized order. A missing
// catalog match is a soft miss: logged, counted, rendered as "—".
func (p *Pipeline) join(idx *catalog.Index, o model.NormalizedOrder) model.EnrichedOrderRow {
	row := model.EnrichedOrderRow{
		OrderID: o.OrderID,
		Date:    o.PurchaseDate,
		Status:  o.Status,
		Title:   model.Placeholder,
		Amount:  model.Placeholder,
	}
	if o.Amount != "" {
		row.Amount = o.Amount
	}
	if o.ArticleID == "" {
		return row
	}
	title, okTitle := idx.Title(o.ArticleID)
	if okTitle {
		row.Title = title
	}
	if row.Amount == model.Placeholder {
		if price, ok := idx.Price(o.ArticleID); ok {
			row.Amount = fmt.Sprintf("%.2f %s", price, DefaultCurrency)
		}
	}
	if !okTitle {
		log.Printf("warn: order %s: article %q has no catalog match", o.OrderID, o.ArticleID)
		p.metrics.JoinMisses.Inc()
	}
	return row
}

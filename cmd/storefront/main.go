package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"text/tabwriter"

	"atlantis/internal/api"
	"atlantis/internal/catalog"
	"atlantis/internal/metrics"
	"atlantis/internal/model"
	"atlantis/internal/orders"
	"atlantis/internal/session"
)

// Config holds CLI flags for the storefront client.
type Config struct {
	APIBase      string
	Action       string // login|logout|books|orders|buy|refresh
	ClientID     string
	Password     string
	Query        string
	InStock      bool
	BookID       string
	SessionDir   string
	SessionStore string // memory|pebble
	MetricsAddr  string
}

func main() {
	cfg := readFlags()
	if err := run(cfg); err != nil {
		log.Fatalf("storefront failed: %v", err)
	}
}

func readFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.APIBase, "api-base", "http://localhost:9090", "storefront API base URL")
	flag.StringVar(&cfg.Action, "action", "books", "action: login|logout|books|orders|buy|refresh")
	flag.StringVar(&cfg.ClientID, "client", "", "client id for login")
	flag.StringVar(&cfg.Password, "password", "", "password for login")
	flag.StringVar(&cfg.Query, "query", "", "search query for books")
	flag.BoolVar(&cfg.InStock, "in-stock", false, "only list books in stock")
	flag.StringVar(&cfg.BookID, "book", "", "book id for buy")
	flag.StringVar(&cfg.SessionDir, "session-dir", "./data/session", "session store directory (pebble backend)")
	flag.StringVar(&cfg.SessionStore, "session-store", "pebble", "session backend: memory|pebble")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve /metrics and /healthz on this address (empty = off)")
	flag.Parse()
	return cfg
}

func run(cfg Config) error {
	ctx := context.Background()

	var store session.Store
	if cfg.SessionStore == "memory" {
		store = session.NewMemoryStore()
	} else {
		ps, err := session.NewPebbleStore(cfg.SessionDir)
		if err != nil {
			return fmt.Errorf("init session store: %w", err)
		}
		defer ps.Close()
		store = ps
	}

	client := api.New(cfg.APIBase, nil)
	cat := catalog.NewService(client)
	mreg := metrics.NewRegistry()
	pipeline := orders.NewPipeline(client, cat, mreg)

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", mreg.Handler())
			mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
			})
			_ = http.ListenAndServe(cfg.MetricsAddr, mux)
		}()
	}

	switch cfg.Action {
	case "login":
		return doLogin(ctx, client, store, cfg)
	case "logout":
		if err := session.Logout(store); err != nil {
			return err
		}
		log.Printf("session cleared")
		return nil
	case "books":
		return doBooks(ctx, cat, cfg)
	case "orders":
		return doOrders(ctx, store, pipeline, mreg)
	case "buy":
		return doBuy(ctx, store, cfg)
	case "refresh":
		if _, err := cat.Refresh(ctx); err != nil {
			return fmt.Errorf("refresh catalog: %w", err)
		}
		mreg.CatalogRebuilds.Inc()
		log.Printf("catalog index rebuilt")
		return nil
	default:
		return fmt.Errorf("unknown action %q", cfg.Action)
	}
}

func doLogin(ctx context.Context, client *api.Client, store session.Store, cfg Config) error {
	if cfg.ClientID == "" || cfg.Password == "" {
		return fmt.Errorf("login needs -client and -password")
	}
	c, err := session.Login(ctx, client, store, cfg.ClientID, cfg.Password)
	if err != nil {
		return err
	}
	log.Printf("logged in as %s %s (%s)", c.Nombre, c.Apellido, c.ClientID)
	return nil
}

func doBooks(ctx context.Context, cat *catalog.Service, cfg Config) error {
	books, err := cat.Books(ctx)
	if err != nil {
		return err
	}
	books = catalog.Filter(books, cfg.Query, cfg.InStock)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tPRICE")
	for _, b := range books {
		price := model.Placeholder
		if b.Price != nil {
			price = fmt.Sprintf("%.2f %s", *b.Price, orders.DefaultCurrency)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.ID, b.Title, b.Author, price)
	}
	return w.Flush()
}

// latest guards the render target against out-of-order completion when
// several order loads are in flight.
var latest orders.Latest

func doOrders(ctx context.Context, store session.Store, pipeline *orders.Pipeline, mreg *metrics.Registry) error {
	c, ok, err := store.Load()
	if err != nil {
		return err
	}
	if !ok {
		return orders.ErrNoSession
	}
	token := latest.Begin()
	rows, err := pipeline.Enrich(ctx, c.ClientID)
	if err != nil {
		return err
	}
	if !latest.Accept(token) {
		mreg.StaleRunsDropped.Inc()
		return nil
	}
	if len(rows) == 0 {
		fmt.Println("no orders yet")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tDATE\tSTATUS\tBOOK\tAMOUNT")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.OrderID, r.Date, r.Status, r.Title, r.Amount)
	}
	return w.Flush()
}

func doBuy(ctx context.Context, store session.Store, cfg Config) error {
	if cfg.BookID == "" {
		return fmt.Errorf("buy needs -book")
	}
	c, ok, err := store.Load()
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("log in before buying")
	}
	// Placeholder acknowledgement; there is no checkout flow upstream.
	log.Printf("thanks %s, your request for book %s was noted", c.Nombre, cfg.BookID)
	return nil
}

// mockapi serves the three storefront endpoints locally with the kind
// of drifted field naming the real gateway produces, for development
// and manual testing against cmd/storefront.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
)

func main() {
	var addr string
	flag.StringVar(&addr, "addr", ":9090", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/getClientDetails", handleClient)
	mux.HandleFunc("/getBooks", handleBooks)
	mux.HandleFunc("/getOrdersbyClient", handleOrders)

	log.Printf("mock storefront API listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("mockapi failed: %v", err)
	}
}

var customers = map[string]map[string]any{
	"c100": {
		"clientId": "c100",
		"nombre":   "Ana",
		"apellido": "García",
		"email":    "ana.garcia@example.com",
		"password": "tr1dent3",
	},
}

func handleClient(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("clientId")
	c, ok := customers[id]
	if !ok {
		writeJSON(w, map[string]any{"customer": nil})
		return
	}
	writeJSON(w, map[string]any{"customer": c})
}

func handleBooks(w http.ResponseWriter, r *http.Request) {
	// Three identifier variants on purpose; the client must index all.
	writeJSON(w, map[string]any{
		"books": []map[string]any{
			{"id": "7", "titulo": "Dune", "autor": "Frank Herbert", "precio": 15, "stock": 3},
			{"idlibro": "12", "titulo": "La Sombra del Viento", "autor": "Carlos Ruiz Zafón", "precio": 12.5, "stock": 0},
			{"idarticulo": "31", "title": "Neuromancer", "author": "William Gibson", "price": "9.95", "stock": 1},
			{"titulo": "Sin identificador", "precio": 4}, // skipped by the indexer
		},
		"total": 4,
	})
}

func handleOrders(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("clientId")
	if id == "" {
		http.Error(w, "missing clientId", http.StatusBadRequest)
		return
	}
	// Nested under data.orders, with per-record naming drift, like the
	// later gateway revisions.
	writeJSON(w, map[string]any{
		"data": map[string]any{
			"orders": []map[string]any{
				{"ordernumber": 1, "fechadecompra": "10/01/2024", "estado": "enviado", "idarticulo": "7"},
				{"orderNumber": "2", "fecha": "05/03/24", "status": "pendiente", "bookid": "12"},
				{"order_number": 3, "createdAt": "2024-06-01T10:00:00Z", "state": "entregado", "itemId": "31",
					"importe": map[string]any{"amount": 9.95, "currency": "EUR"}},
				{"orderno": 4, "date": 1700000000, "estado": "cancelado", "idArticulo": "999"},
			},
		},
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

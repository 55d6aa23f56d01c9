package routes

import (
	"aiwallet/aiwallet/services/market"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MarketRoutes serves the static price board without authentication.
func MarketRoutes(board *market.PriceBoard) chi.Router {
	r := chi.NewRouter()
	r.Get("/prices", handleJSON(func(r *http.Request) (any, int, error) {
		return board.Prices(), http.StatusOK, nil
	}))
	return r
}

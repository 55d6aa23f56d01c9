package routes

import (
	"aiwallet/aiwallet/controllers"
	"aiwallet/aiwallet/middlewares"
	"aiwallet/aiwallet/sources/psql/dao"
	"aiwallet/aiwallet/utils/apperr"
	"aiwallet/aiwallet/utils/types"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func TransactionRoutes(ctrl *controllers.TransactionController, secret string) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(secret))

	// GET /?limit=N&symbol=S
	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		filter, err := transactionFilter(r)
		if err != nil {
			return nil, 0, err
		}
		txs, err := ctrl.ListTransactions(r.Context(), middlewares.UserID(r.Context()), filter)
		if err != nil {
			return nil, 0, err
		}
		return txs, http.StatusOK, nil
	}))

	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.CreateTransactionRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, 0, err
		}
		in, err := req.Parse()
		if err != nil {
			return nil, 0, err
		}
		tx, err := ctrl.CreateTransaction(r.Context(), middlewares.UserID(r.Context()), in)
		if err != nil {
			return nil, 0, err
		}
		return tx, http.StatusCreated, nil
	}))
	return r
}

func transactionFilter(r *http.Request) (dao.TransactionFilter, error) {
	q := r.URL.Query()
	filter := dao.TransactionFilter{Symbol: strings.TrimSpace(q.Get("symbol"))}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return filter, apperr.Invalid("limit", "limit must be a positive integer")
		}
		filter.Limit = limit
	}
	return filter, nil
}

package routes

import (
	"aiwallet/aiwallet/controllers"
	"aiwallet/aiwallet/middlewares"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func WalletRoutes(ctrl *controllers.WalletController, secret string) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(secret))

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		wallets, err := ctrl.GetWallets(r.Context(), middlewares.UserID(r.Context()))
		if err != nil {
			return nil, 0, err
		}
		return wallets, http.StatusOK, nil
	}))

	r.Get("/{symbol}", handleJSON(func(r *http.Request) (any, int, error) {
		wallet, err := ctrl.GetWallet(r.Context(), middlewares.UserID(r.Context()), chi.URLParam(r, "symbol"))
		if err != nil {
			return nil, 0, err
		}
		return wallet, http.StatusOK, nil
	}))
	return r
}

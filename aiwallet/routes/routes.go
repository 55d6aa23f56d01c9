package routes

import (
	"aiwallet/aiwallet/config"
	"aiwallet/aiwallet/controllers"
	"aiwallet/aiwallet/middlewares"
	"aiwallet/aiwallet/services/market"
	"aiwallet/aiwallet/utils/apperr"
	httputils "aiwallet/aiwallet/utils/http"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
)

// Deps is everything the HTTP layer needs. Redis may be nil, in which case
// chat sends are not rate limited.
type Deps struct {
	Config       config.Config
	Auth         *controllers.AuthController
	Wallets      *controllers.WalletController
	Transactions *controllers.TransactionController
	Chat         *controllers.ChatController
	Health       *controllers.HealthController
	Prices       *market.PriceBoard
	Redis        *redis.Client
}

func NewRouter(d Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Config.CORSAllowOrigin,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Trace-Id", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Mount("/health", HealthRoutes(d.Health))
	r.Route("/api", func(api chi.Router) {
		// The chat router holds long-lived websockets and sets its own timeout.
		api.Mount("/chat", ChatRoutes(d.Chat, d.Config, d.Redis))
		api.Group(func(rest chi.Router) {
			rest.Use(middleware.Timeout(d.Config.RequestTimeout))
			rest.Mount("/auth", AuthRoutes(d.Auth))
			rest.Mount("/market", MarketRoutes(d.Prices))
			rest.Mount("/wallet", WalletRoutes(d.Wallets, d.Config.JWTSecret))
			rest.Mount("/transactions", TransactionRoutes(d.Transactions, d.Config.JWTSecret))
			rest.Mount("/chats", ChatsRoutes(d.Chat, d.Config.JWTSecret))
		})
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteError(w, r, apperr.NotFound("Route"))
	})
	return r
}

// handleJSON writes the handler's result with its status, or the error with
// the status its kind maps to.
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			httputils.WriteError(w, r, err)
			return
		}
		httputils.WriteJSON(w, status, res)
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Invalid("body", "invalid JSON body")
	}
	return nil
}

package routes

import (
	"aiwallet/aiwallet/controllers"
	"aiwallet/aiwallet/utils/types"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, 0, err
		}
		resp, err := ctrl.Login(r.Context(), req.Username)
		if err != nil {
			return nil, 0, err
		}
		return resp, http.StatusOK, nil
	}))
	return r
}

// agriassist/routes/auth.go
package routes

import (
	"agriassist/agriassist/controllers"
	"agriassist/agriassist/utils/types"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.LoginRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		resp, err := ctrl.Login(r.Context(), req)
		if err != nil {
			return nil, statusFor(err), err
		}
		return resp, http.StatusOK, nil
	}))
	return r
}

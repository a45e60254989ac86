package routes

import (
	"forever_server/controllers"
	"forever_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up token issuance.
func RegisterAuthRoutes(r *mux.Router, tokenService *services.TokenService) {
	controller := controllers.NewAuthController(tokenService)

	r.HandleFunc("/jwt", controller.IssueToken).Methods("POST")
}

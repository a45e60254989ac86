package routes

import (
	"net/http"

	"forever_server/controllers"
	"forever_server/middleware"
	"forever_server/services"

	"github.com/gorilla/mux"
)

// RegisterAdminRoutes sets up the dashboard aggregates under /admin.
func RegisterAdminRoutes(r *mux.Router, adminService *services.AdminService, auth *middleware.AuthMiddleware) {
	controller := controllers.NewAdminController(adminService)

	adminRouter := r.PathPrefix("/admin").Subrouter()

	adminRouter.Handle("/stats",
		auth.Authenticate(auth.RequireAdmin(http.HandlerFunc(controller.GetStats)))).Methods("GET")
}

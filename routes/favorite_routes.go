package routes

import (
	"net/http"

	"forever_server/controllers"
	"forever_server/middleware"
	"forever_server/services"

	"github.com/gorilla/mux"
)

// RegisterFavoriteRoutes sets up bookmark routes under /favorites.
func RegisterFavoriteRoutes(r *mux.Router, favoriteService *services.FavoriteService, auth *middleware.AuthMiddleware) {
	controller := controllers.NewFavoriteController(favoriteService)

	favoriteRouter := r.PathPrefix("/favorites").Subrouter()

	favoriteRouter.Handle("",
		auth.Authenticate(http.HandlerFunc(controller.AddFavorite))).Methods("POST")
	favoriteRouter.Handle("/{email}",
		auth.Authenticate(http.HandlerFunc(controller.GetFavorites))).Methods("GET")
	favoriteRouter.Handle("/{email}/{biodataId:[0-9]+}",
		auth.Authenticate(http.HandlerFunc(controller.DeleteFavorite))).Methods("DELETE")
}

package routes

import (
	"net/http"

	"forever_server/controllers"
	"forever_server/middleware"
	"forever_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up account routes under /users.
func RegisterUserRoutes(r *mux.Router, userService *services.UserService, auth *middleware.AuthMiddleware) {
	controller := controllers.NewUserController(userService)

	userRouter := r.PathPrefix("/users").Subrouter()

	userRouter.HandleFunc("", controller.CreateUser).Methods("POST")
	userRouter.Handle("",
		auth.Authenticate(auth.RequireAdmin(http.HandlerFunc(controller.GetUsers)))).Methods("GET")
	userRouter.Handle("/admin/{email}",
		auth.Authenticate(http.HandlerFunc(controller.CheckAdmin))).Methods("GET")
	userRouter.Handle("/admin/{email}",
		auth.Authenticate(auth.RequireAdmin(http.HandlerFunc(controller.MakeAdmin)))).Methods("PATCH")
}

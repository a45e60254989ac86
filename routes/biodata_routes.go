package routes

import (
	"net/http"

	"forever_server/controllers"
	"forever_server/middleware"
	"forever_server/services"

	"github.com/gorilla/mux"
)

// RegisterBiodataRoutes sets up the profile directory under /biodatas.
// Reading a full profile and writing require a token; the status patch is
// admin only.
func RegisterBiodataRoutes(r *mux.Router, biodataService *services.BiodataService, auth *middleware.AuthMiddleware) {
	controller := controllers.NewBiodataController(biodataService)

	biodataRouter := r.PathPrefix("/biodatas").Subrouter()

	biodataRouter.HandleFunc("", controller.ListBiodatas).Methods("GET")
	biodataRouter.HandleFunc("/premium", controller.GetPremiumBiodatas).Methods("GET")
	biodataRouter.HandleFunc("/sample/{gender}", controller.SampleBiodatasByGender).Methods("GET")
	biodataRouter.HandleFunc("/{id:[0-9]+}", controller.GetBiodataByID).Methods("GET")

	biodataRouter.Handle("/email/{email}",
		auth.Authenticate(http.HandlerFunc(controller.GetBiodataByEmail))).Methods("GET")
	biodataRouter.Handle("/premium/{email}",
		auth.Authenticate(http.HandlerFunc(controller.CheckPremium))).Methods("GET")
	biodataRouter.Handle("",
		auth.Authenticate(http.HandlerFunc(controller.UpsertBiodata))).Methods("PUT")
	biodataRouter.Handle("/status/{email}",
		auth.Authenticate(auth.RequireAdmin(http.HandlerFunc(controller.UpdateBiodataStatus)))).Methods("PATCH")
}

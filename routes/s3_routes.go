package routes

import (
	"net/http"

	"forever_server/controllers"
	"forever_server/middleware"
	"forever_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up presigned-URL routes for profile images.
func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service, auth *middleware.AuthMiddleware) {
	controller := controllers.NewS3Controller(s3Service)

	s3Router := r.PathPrefix("/s3").Subrouter()

	s3Router.Handle("/upload-url",
		auth.Authenticate(http.HandlerFunc(controller.GeneratePresignedURL))).Methods("POST")
	s3Router.Handle("/read-url",
		auth.Authenticate(http.HandlerFunc(controller.GetPresignedReadURL))).Methods("POST")
}

package controllers

import (
	"net/http"

	"forever_server/helpers"
)

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Welcome to the Forever Server"})
}

// NotFoundHandler reports an invalid URL for unmatched routes
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteErrorResponse(w, http.StatusNotFound, "The requested URL is invalid: "+r.URL.Path)
}

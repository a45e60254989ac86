package routes

import (
	"net/http"

	"forever_server/controllers"
	"forever_server/middleware"
	"forever_server/services"

	"github.com/gorilla/mux"
)

// RegisterStoryRoutes sets up success story routes under /stories.
func RegisterStoryRoutes(r *mux.Router, storyService *services.StoryService, auth *middleware.AuthMiddleware) {
	controller := controllers.NewStoryController(storyService)

	storyRouter := r.PathPrefix("/stories").Subrouter()

	storyRouter.HandleFunc("", controller.GetStories).Methods("GET")
	storyRouter.HandleFunc("/{id}", controller.GetStory).Methods("GET")
	storyRouter.Handle("",
		auth.Authenticate(http.HandlerFunc(controller.CreateStory))).Methods("POST")
}

package controllers

import (
	"encoding/json"
	"net/http"

	"forever_server/helpers"
	"forever_server/models"
	"forever_server/services"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// StoryController handles success stories
type StoryController struct {
	StoryService *services.StoryService
}

func NewStoryController(storyService *services.StoryService) *StoryController {
	return &StoryController{StoryService: storyService}
}

// CreateStory stores a new success story.
func (c *StoryController) CreateStory(w http.ResponseWriter, r *http.Request) {
	var story models.SuccessStory
	if err := json.NewDecoder(r.Body).Decode(&story); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := helpers.ValidateStruct(story); errs != nil {
		helpers.WriteValidationErrors(w, errs)
		return
	}

	created, err := c.StoryService.CreateStory(r.Context(), story)
	if err != nil {
		logrus.WithError(err).Error("Failed to create story")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create story")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusCreated, created)
}

// GetStories lists every story, newest marriage first.
func (c *StoryController) GetStories(w http.ResponseWriter, r *http.Request) {
	stories, err := c.StoryService.GetStories(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to list stories")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list stories")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, stories)
}

// GetStory fetches one story by id.
func (c *StoryController) GetStory(w http.ResponseWriter, r *http.Request) {
	storyID := mux.Vars(r)["id"]

	story, err := c.StoryService.GetStory(r.Context(), storyID)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch story")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch story")
		return
	}
	if story == nil {
		helpers.WriteErrorResponse(w, http.StatusNotFound, "Story not found")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, story)
}

package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"forever_server/helpers"
	"forever_server/models"
	"forever_server/services"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// FavoriteController handles bookmarked profiles
type FavoriteController struct {
	FavoriteService *services.FavoriteService
}

func NewFavoriteController(favoriteService *services.FavoriteService) *FavoriteController {
	return &FavoriteController{FavoriteService: favoriteService}
}

// AddFavorite bookmarks a profile for a user.
func (c *FavoriteController) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var favorite models.Favorite
	if err := json.NewDecoder(r.Body).Decode(&favorite); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := helpers.ValidateStruct(favorite); errs != nil {
		helpers.WriteValidationErrors(w, errs)
		return
	}

	if err := c.FavoriteService.AddFavorite(r.Context(), favorite); err != nil {
		logrus.WithError(err).Error("Failed to add favorite")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to add favorite")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusCreated, map[string]string{"message": "Favorite added"})
}

// GetFavorites lists a user's bookmarks.
func (c *FavoriteController) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userEmail := mux.Vars(r)["email"]

	favorites, err := c.FavoriteService.GetFavorites(r.Context(), userEmail)
	if err != nil {
		logrus.WithError(err).Error("Failed to list favorites")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list favorites")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, favorites)
}

// DeleteFavorite removes one bookmark.
func (c *FavoriteController) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userEmail := vars["email"]
	biodataID, err := strconv.Atoi(vars["biodataId"])
	if err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Biodata id must be an integer")
		return
	}

	if err := c.FavoriteService.DeleteFavorite(r.Context(), userEmail, biodataID); err != nil {
		logrus.WithError(err).Error("Failed to delete favorite")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete favorite")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Favorite removed"})
}

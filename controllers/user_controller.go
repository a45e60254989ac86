package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"forever_server/helpers"
	"forever_server/models"
	"forever_server/services"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// UserController handles account registration and role management
type UserController struct {
	UserService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{UserService: userService}
}

// CreateUser registers an account; duplicate emails are rejected.
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := helpers.ValidateStruct(user); errs != nil {
		helpers.WriteValidationErrors(w, errs)
		return
	}

	created, err := c.UserService.CreateUser(r.Context(), user)
	if errors.Is(err, services.ErrUserExists) {
		helpers.WriteErrorResponse(w, http.StatusConflict, "User already exists")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to create user")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusCreated, created)
}

// GetUsers lists every registered account.
func (c *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.UserService.GetUsers(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to list users")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, users)
}

// CheckAdmin reports whether an email belongs to an admin account.
func (c *UserController) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	isAdmin, err := c.UserService.IsAdmin(r.Context(), email)
	if err != nil {
		logrus.WithError(err).Error("Failed to check admin role")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to check role")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]bool{"admin": isAdmin})
}

// MakeAdmin promotes an existing account to the admin role.
func (c *UserController) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	err := c.UserService.MakeAdmin(r.Context(), email)
	if errors.Is(err, services.ErrNotFound) {
		helpers.WriteErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to promote user")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to promote user")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "User promoted to admin"})
}

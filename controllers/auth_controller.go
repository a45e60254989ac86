package controllers

import (
	"encoding/json"
	"net/http"

	"forever_server/helpers"
	"forever_server/services"

	"github.com/sirupsen/logrus"
)

// AuthController issues access tokens
type AuthController struct {
	TokenService *services.TokenService
}

func NewAuthController(tokenService *services.TokenService) *AuthController {
	return &AuthController{TokenService: tokenService}
}

// IssueToken signs a token for the supplied email.
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := helpers.ValidateStruct(payload); errs != nil {
		helpers.WriteValidationErrors(w, errs)
		return
	}

	token, err := c.TokenService.GenerateToken(payload.Email)
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to sign token")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"token": token})
}

package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"forever_server/helpers"
	"forever_server/models"
	"forever_server/services"
	"forever_server/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// BiodataController handles requests for the profile directory
type BiodataController struct {
	BiodataService *services.BiodataService
}

// NewBiodataController creates a new instance of BiodataController
func NewBiodataController(biodataService *services.BiodataService) *BiodataController {
	return &BiodataController{BiodataService: biodataService}
}

// ListBiodatas returns one page of projected profiles. Filters: minAge+maxAge
// (both required for the age range to apply), gender, division; page is
// zero-based.
func (c *BiodataController) ListBiodatas(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	query := models.ListQuery{
		MinAge:   utils.IntParam(values, "minAge"),
		MaxAge:   utils.IntParam(values, "maxAge"),
		Gender:   values.Get("gender"),
		Division: values.Get("division"),
		Page:     utils.PageParam(values, "page"),
	}

	page, err := c.BiodataService.ListBiodatas(r.Context(), query)
	if err != nil {
		logrus.WithError(err).Error("Failed to list biodatas")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list biodatas")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, page)
}

// GetPremiumBiodatas returns the premium listing, youngest first.
func (c *BiodataController) GetPremiumBiodatas(w http.ResponseWriter, r *http.Request) {
	result, err := c.BiodataService.GetPremiumBiodatas(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch premium biodatas")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch premium biodatas")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, result)
}

// SampleBiodatasByGender returns up to three random profiles of one gender.
func (c *BiodataController) SampleBiodatasByGender(w http.ResponseWriter, r *http.Request) {
	gender := mux.Vars(r)["gender"]

	result, err := c.BiodataService.SampleBiodatasByGender(r.Context(), gender)
	if err != nil {
		logrus.WithError(err).Error("Failed to sample biodatas")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to sample biodatas")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, result)
}

// GetBiodataByID returns the full profile for a sequential id.
func (c *BiodataController) GetBiodataByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Biodata id must be an integer")
		return
	}

	biodata, err := c.BiodataService.GetBiodataByID(r.Context(), id)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch biodata by id")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch biodata")
		return
	}
	if biodata == nil {
		helpers.WriteErrorResponse(w, http.StatusNotFound, "Biodata not found")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, biodata)
}

// GetBiodataByEmail returns the full profile owned by a contact email.
func (c *BiodataController) GetBiodataByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	biodata, err := c.BiodataService.GetBiodataByEmail(r.Context(), email)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch biodata by email")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch biodata")
		return
	}
	if biodata == nil {
		helpers.WriteErrorResponse(w, http.StatusNotFound, "Biodata not found")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, biodata)
}

// CheckPremium reports whether the profile owned by an email holds the
// premium tier.
func (c *BiodataController) CheckPremium(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	biodata, err := c.BiodataService.GetBiodataByEmail(r.Context(), email)
	if err != nil {
		logrus.WithError(err).Error("Failed to check premium status")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to check premium status")
		return
	}

	premium := biodata != nil && biodata.Status == models.StatusPremium
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]bool{"premium": premium})
}

// UpsertBiodata creates or replaces the caller's profile, keyed on the
// payload's contact email.
func (c *BiodataController) UpsertBiodata(w http.ResponseWriter, r *http.Request) {
	var biodata models.Biodata
	if err := json.NewDecoder(r.Body).Decode(&biodata); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := helpers.ValidateStruct(biodata); errs != nil {
		helpers.WriteValidationErrors(w, errs)
		return
	}

	result, err := c.BiodataService.UpsertBiodata(r.Context(), biodata)
	if err != nil {
		logrus.WithError(err).Error("Failed to upsert biodata")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to save biodata")
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	helpers.WriteJSONResponse(w, status, result)
}

// UpdateBiodataStatus overwrites the status field of an existing profile.
func (c *BiodataController) UpdateBiodataStatus(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := c.BiodataService.UpdateBiodataStatus(r.Context(), email, payload.Status)
	switch {
	case err == services.ErrInvalidStatus:
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Status must be normal, pending or premium")
	case err == services.ErrNotFound:
		helpers.WriteErrorResponse(w, http.StatusNotFound, "Biodata not found")
	case err != nil:
		logrus.WithError(err).Error("Failed to update biodata status")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update status")
	default:
		helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Status updated"})
	}
}

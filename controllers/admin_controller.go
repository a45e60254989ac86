package controllers

import (
	"net/http"

	"forever_server/helpers"
	"forever_server/services"

	"github.com/sirupsen/logrus"
)

// AdminController serves the dashboard aggregates
type AdminController struct {
	AdminService *services.AdminService
}

func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{AdminService: adminService}
}

// GetStats returns biodata counts and approved revenue.
func (c *AdminController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.AdminService.GetStats(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to aggregate stats")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to aggregate stats")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, stats)
}

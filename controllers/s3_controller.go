package controllers

import (
	"encoding/json"
	"net/http"

	"forever_server/helpers"
	"forever_server/services"

	"github.com/sirupsen/logrus"
)

// S3Controller hands out presigned URLs for profile image storage
type S3Controller struct {
	S3Service *services.S3Service
}

func NewS3Controller(s3Service *services.S3Service) *S3Controller {
	return &S3Controller{S3Service: s3Service}
}

// GeneratePresignedURL generates a presigned URL for image uploads
func (c *S3Controller) GeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	url, key, err := c.S3Service.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		logrus.WithError(err).Error("Failed to generate upload URL")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate upload URL")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url, "fileName": key})
}

// GetPresignedReadURL generates a presigned URL for reading a stored image
func (c *S3Controller) GetPresignedReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	url, err := c.S3Service.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		logrus.WithError(err).Error("Failed to generate read URL")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate read URL")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url})
}

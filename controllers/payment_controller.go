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

// PaymentController handles contact-information purchases
type PaymentController struct {
	PaymentService *services.PaymentService
}

func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{PaymentService: paymentService}
}

// CreatePaymentIntent returns a Stripe client secret for the contact fee.
func (c *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	clientSecret, err := c.PaymentService.CreatePaymentIntent(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to create payment intent")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create payment intent")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// RecordPayment stores a completed charge as a pending contact request.
func (c *PaymentController) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := helpers.ValidateStruct(payment); errs != nil {
		helpers.WriteValidationErrors(w, errs)
		return
	}

	recorded, err := c.PaymentService.RecordPayment(r.Context(), payment)
	if err != nil {
		logrus.WithError(err).Error("Failed to record payment")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusCreated, recorded)
}

// GetPaymentsByUser lists one user's contact requests.
func (c *PaymentController) GetPaymentsByUser(w http.ResponseWriter, r *http.Request) {
	userEmail := mux.Vars(r)["email"]

	payments, err := c.PaymentService.GetPaymentsByUser(r.Context(), userEmail)
	if err != nil {
		logrus.WithError(err).Error("Failed to list payments")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list payments")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, payments)
}

// GetPendingPayments lists every contact request awaiting approval.
func (c *PaymentController) GetPendingPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := c.PaymentService.GetPendingPayments(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to list pending payments")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list pending payments")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, payments)
}

// ApprovePayment grants the payer access to the requested contact fields.
func (c *PaymentController) ApprovePayment(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["id"]

	err := c.PaymentService.ApprovePayment(r.Context(), paymentID)
	if errors.Is(err, services.ErrNotFound) {
		helpers.WriteErrorResponse(w, http.StatusNotFound, "Payment not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to approve payment")
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to approve payment")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Payment approved"})
}

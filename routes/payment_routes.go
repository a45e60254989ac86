package routes

import (
	"net/http"

	"forever_server/controllers"
	"forever_server/middleware"
	"forever_server/services"

	"github.com/gorilla/mux"
)

// RegisterPaymentRoutes sets up contact purchase routes under /payments.
func RegisterPaymentRoutes(r *mux.Router, paymentService *services.PaymentService, auth *middleware.AuthMiddleware) {
	controller := controllers.NewPaymentController(paymentService)

	paymentRouter := r.PathPrefix("/payments").Subrouter()

	paymentRouter.Handle("/create-intent",
		auth.Authenticate(http.HandlerFunc(controller.CreatePaymentIntent))).Methods("POST")
	paymentRouter.Handle("",
		auth.Authenticate(http.HandlerFunc(controller.RecordPayment))).Methods("POST")
	paymentRouter.Handle("/user/{email}",
		auth.Authenticate(http.HandlerFunc(controller.GetPaymentsByUser))).Methods("GET")
	paymentRouter.Handle("/pending",
		auth.Authenticate(auth.RequireAdmin(http.HandlerFunc(controller.GetPendingPayments)))).Methods("GET")
	paymentRouter.Handle("/approve/{id}",
		auth.Authenticate(auth.RequireAdmin(http.HandlerFunc(controller.ApprovePayment)))).Methods("PATCH")
}

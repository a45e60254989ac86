package models

import "time"

// Payment records a contact-information purchase. Status starts "pending"
// and flips to "approved" when an admin grants access.
type Payment struct {
	PaymentID     string    `json:"paymentId" dynamodbav:"paymentId"`
	UserEmail     string    `json:"userEmail" dynamodbav:"userEmail" validate:"required,email"`
	BiodataID     int       `json:"biodataId" dynamodbav:"biodataId" validate:"required"`
	Amount        int64     `json:"amount" dynamodbav:"amount"`
	TransactionID string    `json:"transactionId" dynamodbav:"transactionId" validate:"required"`
	Status        string    `json:"status" dynamodbav:"status"`
	CreatedAt     time.Time `json:"createdAt" dynamodbav:"createdAt,omitempty"`
}

// AdminStats is the aggregate dashboard payload.
type AdminStats struct {
	TotalBiodata   int   `json:"totalBiodata"`
	MaleBiodata    int   `json:"maleBiodata"`
	FemaleBiodata  int   `json:"femaleBiodata"`
	PremiumBiodata int   `json:"premiumBiodata"`
	TotalRevenue   int64 `json:"totalRevenue"`
}

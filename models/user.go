package models

import "time"

// User is a registered account. Email is the table key; Role is either
// "user" or "admin".
type User struct {
	Email     string    `json:"email" dynamodbav:"email" validate:"required,email"`
	Name      string    `json:"name" dynamodbav:"name" validate:"required"`
	PhotoURL  string    `json:"photoURL" dynamodbav:"photoURL,omitempty"`
	Role      string    `json:"role" dynamodbav:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"createdAt,omitempty"`
}

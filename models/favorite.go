package models

// Favorite is a bookmarked profile. Keyed by (userEmail, biodataId); adding
// the same profile twice overwrites the earlier snapshot.
type Favorite struct {
	UserEmail         string `json:"userEmail" dynamodbav:"userEmail" validate:"required,email"`
	BiodataID         int    `json:"biodataId" dynamodbav:"biodataId" validate:"required"`
	Name              string `json:"name" dynamodbav:"name,omitempty"`
	PermanentDivision string `json:"permanentDivision" dynamodbav:"permanentDivision,omitempty"`
	Occupation        string `json:"occupation" dynamodbav:"occupation,omitempty"`
}

package models

// Profile visibility tiers
const (
	StatusNormal  = "normal"
	StatusPending = "pending"
	StatusPremium = "premium"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Payment statuses
const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
)

// ValidStatus reports whether s is one of the enumerated profile tiers.
func ValidStatus(s string) bool {
	return s == StatusNormal || s == StatusPending || s == StatusPremium
}

// Listing page size and gender-sample size
const (
	ListPageSize = 6
	SampleSize   = 3
)

// DynamoDB table names
const (
	BiodataTable   = "BiodataProfiles"
	UsersTable     = "Users"
	FavoritesTable = "Favorites"
	StoriesTable   = "SuccessStories"
	PaymentsTable  = "Payments"
	CountersTable  = "Counters"
)

// BiodataIDIndex is the GSI used for lookups by the sequential biodataId.
const BiodataIDIndex = "BiodataIdIndex"

// BiodataSequence is the counter item that hands out biodata ids.
const BiodataSequence = "biodataId"

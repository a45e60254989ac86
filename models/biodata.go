package models

// Biodata is a matrimonial profile document. ContactEmail is the table key
// (at most one profile per email); BiodataID is the human-facing sequential id.
type Biodata struct {
	BiodataID             int     `json:"biodataId" dynamodbav:"biodataId"`
	ContactEmail          string  `json:"contactEmail" dynamodbav:"contactEmail" validate:"required,email"`
	Gender                string  `json:"gender" dynamodbav:"gender" validate:"required,oneof=Male Female"`
	Name                  string  `json:"name" dynamodbav:"name" validate:"required"`
	Occupation            string  `json:"occupation" dynamodbav:"occupation,omitempty"`
	Race                  string  `json:"race" dynamodbav:"race,omitempty"`
	FathersName           string  `json:"fathersName" dynamodbav:"fathersName,omitempty"`
	MothersName           string  `json:"mothersName" dynamodbav:"mothersName,omitempty"`
	MobileNumber          string  `json:"mobileNumber" dynamodbav:"mobileNumber,omitempty"`
	DateOfBirth           string  `json:"dateOfBirth" dynamodbav:"dateOfBirth,omitempty"`
	Age                   int     `json:"age" dynamodbav:"age" validate:"required,gte=18,lte=120"`
	Height                float64 `json:"height" dynamodbav:"height,omitempty"`
	Weight                float64 `json:"weight" dynamodbav:"weight,omitempty"`
	ExpectedPartnerAge    int     `json:"expectedPartnerAge" dynamodbav:"expectedPartnerAge,omitempty"`
	ExpectedPartnerHeight float64 `json:"expectedPartnerHeight" dynamodbav:"expectedPartnerHeight,omitempty"`
	ExpectedPartnerWeight float64 `json:"expectedPartnerWeight" dynamodbav:"expectedPartnerWeight,omitempty"`
	PermanentDivision     string  `json:"permanentDivision" dynamodbav:"permanentDivision,omitempty"`
	PresentDivision       string  `json:"presentDivision" dynamodbav:"presentDivision,omitempty"`
	Status                string  `json:"status" dynamodbav:"status,omitempty"`
	ProfileImage          string  `json:"profileImage" dynamodbav:"profileImage,omitempty"`
}

// BiodataSummary is the public projection of a profile: contact details and
// family fields are excluded from listings.
type BiodataSummary struct {
	BiodataID         int    `json:"biodataId" dynamodbav:"biodataId"`
	Gender            string `json:"gender" dynamodbav:"gender"`
	Name              string `json:"name" dynamodbav:"name"`
	Age               int    `json:"age" dynamodbav:"age"`
	Occupation        string `json:"occupation" dynamodbav:"occupation"`
	PermanentDivision string `json:"permanentDivision" dynamodbav:"permanentDivision"`
	ProfileImage      string `json:"profileImage" dynamodbav:"profileImage"`
}

// Summary projects a full profile down to its listing fields.
func (b Biodata) Summary() BiodataSummary {
	return BiodataSummary{
		BiodataID:         b.BiodataID,
		Gender:            b.Gender,
		Name:              b.Name,
		Age:               b.Age,
		Occupation:        b.Occupation,
		PermanentDivision: b.PermanentDivision,
		ProfileImage:      b.ProfileImage,
	}
}

// BiodataPage is one page of listing results plus the total match count
// across all pages.
type BiodataPage struct {
	Result []BiodataSummary `json:"result"`
	Count  int              `json:"count"`
}

// UpsertResult reports the outcome of an upsert: whether a new profile was
// created and the id it carries.
type UpsertResult struct {
	Created   bool `json:"created"`
	BiodataID int  `json:"biodataId"`
}

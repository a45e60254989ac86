package models

// SuccessStory is a married couple's review, shown on the home page newest
// marriage first.
type SuccessStory struct {
	StoryID          string `json:"storyId" dynamodbav:"storyId"`
	SelfBiodataID    int    `json:"selfBiodataId" dynamodbav:"selfBiodataId" validate:"required"`
	PartnerBiodataID int    `json:"partnerBiodataId" dynamodbav:"partnerBiodataId" validate:"required"`
	CoupleImage      string `json:"coupleImage" dynamodbav:"coupleImage,omitempty"`
	MarriageDate     string `json:"marriageDate" dynamodbav:"marriageDate" validate:"required,datetime=2006-01-02"`
	Review           string `json:"review" dynamodbav:"review,omitempty"`
}

package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strconv"

	"forever_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

// ErrNotFound reports that the addressed record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrInvalidStatus reports a status value outside normal/pending/premium.
var ErrInvalidStatus = errors.New("invalid status value")

type BiodataService struct {
	Dynamo *DynamoService
}

// ListBiodatas returns one page of profile summaries matching the query,
// plus the total match count across all pages. Results are ordered by
// biodataId so page boundaries stay stable between requests.
func (bs *BiodataService) ListBiodatas(ctx context.Context, query models.ListQuery) (*models.BiodataPage, error) {
	var all []models.Biodata
	if err := bs.Dynamo.ScanInto(ctx, models.BiodataTable, &all); err != nil {
		return nil, err
	}

	var matched []models.Biodata
	for _, b := range all {
		if query.Matches(b) {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].BiodataID < matched[j].BiodataID })

	page := query.Page
	if page < 0 {
		page = 0
	}
	// Guard the multiplication: page can be any parseable integer, and
	// page*ListPageSize must never overflow into a negative slice index.
	if page > len(matched)/models.ListPageSize {
		return &models.BiodataPage{Result: []models.BiodataSummary{}, Count: len(matched)}, nil
	}
	start := page * models.ListPageSize
	end := start + models.ListPageSize
	if end > len(matched) {
		end = len(matched)
	}

	result := make([]models.BiodataSummary, 0, end-start)
	for _, b := range matched[start:end] {
		result = append(result, b.Summary())
	}

	return &models.BiodataPage{Result: result, Count: len(matched)}, nil
}

// GetPremiumBiodatas returns up to six premium profiles, youngest first.
func (bs *BiodataService) GetPremiumBiodatas(ctx context.Context) ([]models.BiodataSummary, error) {
	var all []models.Biodata
	if err := bs.Dynamo.ScanInto(ctx, models.BiodataTable, &all); err != nil {
		return nil, err
	}

	var premium []models.Biodata
	for _, b := range all {
		if b.Status == models.StatusPremium {
			premium = append(premium, b)
		}
	}
	sort.Slice(premium, func(i, j int) bool {
		if premium[i].Age != premium[j].Age {
			return premium[i].Age < premium[j].Age
		}
		return premium[i].BiodataID < premium[j].BiodataID
	})

	if len(premium) > models.ListPageSize {
		premium = premium[:models.ListPageSize]
	}

	result := make([]models.BiodataSummary, 0, len(premium))
	for _, b := range premium {
		result = append(result, b.Summary())
	}
	return result, nil
}

// SampleBiodatasByGender returns up to three random profiles of the given
// gender, without replacement. Zero matches yields an empty slice.
func (bs *BiodataService) SampleBiodatasByGender(ctx context.Context, gender string) ([]models.BiodataSummary, error) {
	var all []models.Biodata
	if err := bs.Dynamo.ScanInto(ctx, models.BiodataTable, &all); err != nil {
		return nil, err
	}

	var matched []models.Biodata
	for _, b := range all {
		if b.Gender == gender {
			matched = append(matched, b)
		}
	}
	rand.Shuffle(len(matched), func(i, j int) { matched[i], matched[j] = matched[j], matched[i] })

	if len(matched) > models.SampleSize {
		matched = matched[:models.SampleSize]
	}

	result := make([]models.BiodataSummary, 0, len(matched))
	for _, b := range matched {
		result = append(result, b.Summary())
	}
	return result, nil
}

// GetBiodataByID fetches the full profile carrying the given sequential id
// through the biodataId GSI. Returns nil when no profile has the id.
func (bs *BiodataService) GetBiodataByID(ctx context.Context, biodataID int) (*models.Biodata, error) {
	items, err := bs.Dynamo.QueryItemsWithIndex(ctx, models.BiodataTable, models.BiodataIDIndex,
		"biodataId = :id",
		map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberN{Value: strconv.Itoa(biodataID)},
		}, 1)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	var biodata models.Biodata
	if err := attributevalue.UnmarshalMap(items[0], &biodata); err != nil {
		return nil, fmt.Errorf("failed to unmarshal biodata: %w", err)
	}
	return &biodata, nil
}

// GetBiodataByEmail fetches the full profile owned by the given contact
// email. Returns nil when the owner has no profile yet.
func (bs *BiodataService) GetBiodataByEmail(ctx context.Context, email string) (*models.Biodata, error) {
	item, err := bs.Dynamo.GetItem(ctx, models.BiodataTable, biodataKey(email))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var biodata models.Biodata
	if err := attributevalue.UnmarshalMap(item, &biodata); err != nil {
		return nil, fmt.Errorf("failed to unmarshal biodata: %w", err)
	}
	return &biodata, nil
}

// UpsertBiodata creates or overwrites the profile owned by the payload's
// contact email. Both branches are conditional writes, so concurrent upserts
// for the same email cannot produce two records, and ids come from an atomic
// counter so they are never shared. biodataId and status survive updates.
func (bs *BiodataService) UpsertBiodata(ctx context.Context, biodata models.Biodata) (*models.UpsertResult, error) {
	updateExpression, values, names := buildBiodataUpdate(biodata)

	attrs, err := bs.Dynamo.UpdateItem(ctx, models.BiodataTable, biodataKey(biodata.ContactEmail),
		updateExpression, values, names, "attribute_exists(contactEmail)")
	if err == nil {
		return &models.UpsertResult{Created: false, BiodataID: extractBiodataID(attrs)}, nil
	}
	if !errors.Is(err, ErrConditionFailed) {
		return nil, err
	}

	id, err := bs.Dynamo.NextSequence(ctx, models.CountersTable, models.BiodataSequence)
	if err != nil {
		return nil, err
	}
	biodata.BiodataID = id
	biodata.Status = models.StatusNormal

	err = bs.Dynamo.PutItemIfAbsent(ctx, models.BiodataTable, biodata, "contactEmail")
	if err == nil {
		return &models.UpsertResult{Created: true, BiodataID: id}, nil
	}
	if !errors.Is(err, ErrConditionFailed) {
		return nil, err
	}

	// Lost the create race; the record exists now, apply as an update.
	attrs, err = bs.Dynamo.UpdateItem(ctx, models.BiodataTable, biodataKey(biodata.ContactEmail),
		updateExpression, values, names, "attribute_exists(contactEmail)")
	if err != nil {
		return nil, err
	}
	return &models.UpsertResult{Created: false, BiodataID: extractBiodataID(attrs)}, nil
}

// UpdateBiodataStatus overwrites only the status field of an existing
// profile. The value must be one of the enumerated tiers.
func (bs *BiodataService) UpdateBiodataStatus(ctx context.Context, email, status string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}

	_, err := bs.Dynamo.UpdateItem(ctx, models.BiodataTable, biodataKey(email),
		"SET #status = :status",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: status},
		},
		map[string]string{"#status": "status"},
		"attribute_exists(contactEmail)")
	if errors.Is(err, ErrConditionFailed) {
		return ErrNotFound
	}
	return err
}

func biodataKey(email string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"contactEmail": &types.AttributeValueMemberS{Value: email},
	}
}

// biodataMutableFields lists every field an upsert overwrites, in expression
// order. contactEmail is the key; biodataId and status are never touched.
var biodataMutableFields = []string{
	"gender", "name", "occupation", "race", "fathersName", "mothersName",
	"mobileNumber", "dateOfBirth", "age", "height", "weight",
	"expectedPartnerAge", "expectedPartnerHeight", "expectedPartnerWeight",
	"permanentDivision", "presentDivision", "profileImage",
}

// buildBiodataUpdate constructs a SET expression replacing every mutable
// field with the payload's value, including zero values.
func buildBiodataUpdate(b models.Biodata) (string, map[string]types.AttributeValue, map[string]string) {
	fieldValues := map[string]types.AttributeValue{
		"gender":                &types.AttributeValueMemberS{Value: b.Gender},
		"name":                  &types.AttributeValueMemberS{Value: b.Name},
		"occupation":            &types.AttributeValueMemberS{Value: b.Occupation},
		"race":                  &types.AttributeValueMemberS{Value: b.Race},
		"fathersName":           &types.AttributeValueMemberS{Value: b.FathersName},
		"mothersName":           &types.AttributeValueMemberS{Value: b.MothersName},
		"mobileNumber":          &types.AttributeValueMemberS{Value: b.MobileNumber},
		"dateOfBirth":           &types.AttributeValueMemberS{Value: b.DateOfBirth},
		"age":                   &types.AttributeValueMemberN{Value: strconv.Itoa(b.Age)},
		"height":                &types.AttributeValueMemberN{Value: strconv.FormatFloat(b.Height, 'f', -1, 64)},
		"weight":                &types.AttributeValueMemberN{Value: strconv.FormatFloat(b.Weight, 'f', -1, 64)},
		"expectedPartnerAge":    &types.AttributeValueMemberN{Value: strconv.Itoa(b.ExpectedPartnerAge)},
		"expectedPartnerHeight": &types.AttributeValueMemberN{Value: strconv.FormatFloat(b.ExpectedPartnerHeight, 'f', -1, 64)},
		"expectedPartnerWeight": &types.AttributeValueMemberN{Value: strconv.FormatFloat(b.ExpectedPartnerWeight, 'f', -1, 64)},
		"permanentDivision":     &types.AttributeValueMemberS{Value: b.PermanentDivision},
		"presentDivision":       &types.AttributeValueMemberS{Value: b.PresentDivision},
		"profileImage":          &types.AttributeValueMemberS{Value: b.ProfileImage},
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue, len(biodataMutableFields))
	expressionAttributeNames := make(map[string]string, len(biodataMutableFields))

	for i, field := range biodataMutableFields {
		if i > 0 {
			updateExpression += ","
		}
		updateExpression += " #" + field + " = :" + field
		expressionAttributeValues[":"+field] = fieldValues[field]
		expressionAttributeNames["#"+field] = field
	}

	return updateExpression, expressionAttributeValues, expressionAttributeNames
}

// extractBiodataID pulls the sequential id out of the ALL_NEW attributes of
// an update. A record without a numeric id is a data fault worth flagging;
// the response then carries id 0.
func extractBiodataID(attrs map[string]types.AttributeValue) int {
	v, ok := attrs["biodataId"].(*types.AttributeValueMemberN)
	if !ok {
		logrus.Warn("Updated biodata record carries no numeric biodataId")
		return 0
	}
	n, err := strconv.Atoi(v.Value)
	if err != nil {
		logrus.WithField("biodataId", v.Value).Warn("Updated biodata record carries a non-integer biodataId")
		return 0
	}
	return n
}

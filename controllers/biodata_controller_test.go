package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"forever_server/models"
	"forever_server/services"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gorilla/mux"
)

// stubBiodataStore serves a fixed profile set on Scan; the write paths are
// not exercised by these handler tests.
type stubBiodataStore struct {
	profiles []models.Biodata
}

func (s *stubBiodataStore) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	items := make([]map[string]types.AttributeValue, 0, len(s.profiles))
	for _, b := range s.profiles {
		item, err := attributevalue.MarshalMap(b)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

func (s *stubBiodataStore) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	email := ""
	if v, ok := params.Key["contactEmail"].(*types.AttributeValueMemberS); ok {
		email = v.Value
	}
	for _, b := range s.profiles {
		if b.ContactEmail == email {
			item, err := attributevalue.MarshalMap(b)
			if err != nil {
				return nil, err
			}
			return &dynamodb.GetItemOutput{Item: item}, nil
		}
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (s *stubBiodataStore) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return &dynamodb.PutItemOutput{}, nil
}

func (s *stubBiodataStore) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{}}, nil
}

func (s *stubBiodataStore) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return &dynamodb.DeleteItemOutput{}, nil
}

func (s *stubBiodataStore) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return &dynamodb.QueryOutput{}, nil
}

func newBiodataController(profiles []models.Biodata) *BiodataController {
	store := &stubBiodataStore{profiles: profiles}
	return NewBiodataController(&services.BiodataService{Dynamo: &services.DynamoService{Client: store}})
}

func TestListBiodatas_QueryParamHandling(t *testing.T) {
	controller := newBiodataController([]models.Biodata{
		{BiodataID: 1, ContactEmail: "a@x.com", Gender: "Female", Age: 25, PermanentDivision: "Dhaka"},
		{BiodataID: 2, ContactEmail: "b@x.com", Gender: "Male", Age: 35, PermanentDivision: "Dhaka"},
		{BiodataID: 3, ContactEmail: "c@x.com", Gender: "Male", Age: 45, PermanentDivision: "Khulna"},
	})

	tests := []struct {
		name      string
		url       string
		wantCount int
	}{
		{"no filters", "/biodatas", 3},
		{"age range", "/biodatas?minAge=30&maxAge=40", 1},
		{"min only ignored", "/biodatas?minAge=30", 3},
		{"non-numeric age ignored", "/biodatas?minAge=abc&maxAge=40", 3},
		{"gender", "/biodatas?gender=Male", 2},
		{"gender and division", "/biodatas?gender=Male&division=Khulna", 1},
		{"non-numeric page is page 0", "/biodatas?page=abc", 3},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		controller.ListBiodatas(rec, httptest.NewRequest("GET", tt.url, nil))

		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", tt.name, rec.Code)
			continue
		}
		var page models.BiodataPage
		if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
			t.Errorf("%s: bad body: %v", tt.name, err)
			continue
		}
		if page.Count != tt.wantCount {
			t.Errorf("%s: count = %d, want %d", tt.name, page.Count, tt.wantCount)
		}
	}
}

func TestListBiodatas_ResponseIsProjected(t *testing.T) {
	controller := newBiodataController([]models.Biodata{
		{BiodataID: 1, ContactEmail: "a@x.com", MobileNumber: "01700000000", Gender: "Female", Age: 25},
	})

	rec := httptest.NewRecorder()
	controller.ListBiodatas(rec, httptest.NewRequest("GET", "/biodatas", nil))

	var page map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	result := page["result"].([]interface{})
	record := result[0].(map[string]interface{})
	if _, leaked := record["contactEmail"]; leaked {
		t.Error("listing leaked contactEmail")
	}
	if _, leaked := record["mobileNumber"]; leaked {
		t.Error("listing leaked mobileNumber")
	}
	if record["biodataId"].(float64) != 1 {
		t.Errorf("biodataId = %v, want 1", record["biodataId"])
	}
}

func TestCheckPremium(t *testing.T) {
	controller := newBiodataController([]models.Biodata{
		{BiodataID: 1, ContactEmail: "vip@x.com", Gender: "Female", Age: 25, Status: models.StatusPremium},
		{BiodataID: 2, ContactEmail: "plain@x.com", Gender: "Male", Age: 30, Status: models.StatusNormal},
	})

	tests := []struct {
		email string
		want  bool
	}{
		{"vip@x.com", true},
		{"plain@x.com", false},
		{"nobody@x.com", false},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		req := mux.SetURLVars(
			httptest.NewRequest("GET", "/biodatas/premium/"+tt.email, nil),
			map[string]string{"email": tt.email})
		controller.CheckPremium(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", tt.email, rec.Code)
			continue
		}
		var body map[string]bool
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Errorf("%s: bad body: %v", tt.email, err)
			continue
		}
		if body["premium"] != tt.want {
			t.Errorf("%s: premium = %v, want %v", tt.email, body["premium"], tt.want)
		}
	}
}

func TestGetBiodataByID_RejectsNonNumericID(t *testing.T) {
	controller := newBiodataController(nil)

	rec := httptest.NewRecorder()
	req := mux.SetURLVars(httptest.NewRequest("GET", "/biodatas/abc", nil), map[string]string{"id": "abc"})
	controller.GetBiodataByID(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUpsertBiodata_RejectsInvalidPayload(t *testing.T) {
	controller := newBiodataController(nil)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"missing email", `{"name":"A","gender":"Female","age":25}`},
		{"bad gender", `{"contactEmail":"a@x.com","name":"A","gender":"Other","age":25}`},
		{"underage", `{"contactEmail":"a@x.com","name":"A","gender":"Female","age":12}`},
		{"non-numeric age", `{"contactEmail":"a@x.com","name":"A","gender":"Female","age":"25"}`},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/biodatas", bytes.NewBufferString(tt.body))
		controller.UpsertBiodata(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tt.name, rec.Code)
		}
	}
}

func TestUpdateBiodataStatus_RejectsUnknownTier(t *testing.T) {
	controller := newBiodataController(nil)

	rec := httptest.NewRecorder()
	req := mux.SetURLVars(
		httptest.NewRequest("PATCH", "/biodatas/status/a@x.com", bytes.NewBufferString(`{"status":"vip"}`)),
		map[string]string{"email": "a@x.com"})
	controller.UpdateBiodataStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

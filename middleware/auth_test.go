package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"forever_server/config"
	"forever_server/services"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// stubUserStore serves canned user items keyed by email. Only GetItem is
// exercised by the auth middleware.
type stubUserStore struct {
	users map[string]map[string]types.AttributeValue
}

func (s *stubUserStore) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	email := ""
	if v, ok := params.Key["email"].(*types.AttributeValueMemberS); ok {
		email = v.Value
	}
	return &dynamodb.GetItemOutput{Item: s.users[email]}, nil
}

func (s *stubUserStore) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return &dynamodb.PutItemOutput{}, nil
}

func (s *stubUserStore) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return &dynamodb.UpdateItemOutput{}, nil
}

func (s *stubUserStore) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return &dynamodb.DeleteItemOutput{}, nil
}

func (s *stubUserStore) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return &dynamodb.ScanOutput{}, nil
}

func (s *stubUserStore) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return &dynamodb.QueryOutput{}, nil
}

func newAuthFixture(t *testing.T) (*AuthMiddleware, *services.TokenService) {
	t.Helper()
	tokens := services.NewTokenService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	store := &stubUserStore{users: map[string]map[string]types.AttributeValue{
		"admin@x.com": {
			"email": &types.AttributeValueMemberS{Value: "admin@x.com"},
			"role":  &types.AttributeValueMemberS{Value: "admin"},
		},
		"user@x.com": {
			"email": &types.AttributeValueMemberS{Value: "user@x.com"},
			"role":  &types.AttributeValueMemberS{Value: "user"},
		},
	}}
	users := &services.UserService{Dynamo: &services.DynamoService{Client: store}}
	return NewAuthMiddleware(tokens, users), tokens
}

func TestAuthenticate(t *testing.T) {
	auth, tokens := newAuthFixture(t)

	var gotEmail string
	handler := auth.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, _ = GetUserEmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// Missing header
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing header status = %d, want 401", rec.Code)
	}

	// Malformed header
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Token abc")
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("malformed header status = %d, want 401", rec.Code)
	}

	// Garbage token
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token status = %d, want 401", rec.Code)
	}

	// Valid token
	token, err := tokens.GenerateToken("user@x.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid token status = %d, want 200", rec.Code)
	}
	if gotEmail != "user@x.com" {
		t.Errorf("context email = %q, want user@x.com", gotEmail)
	}
}

func TestRequireAdmin(t *testing.T) {
	auth, tokens := newAuthFixture(t)

	handler := auth.Authenticate(auth.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	adminToken, _ := tokens.GenerateToken("admin@x.com")
	userToken, _ := tokens.GenerateToken("user@x.com")
	ghostToken, _ := tokens.GenerateToken("ghost@x.com")

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"admin passes", adminToken, http.StatusOK},
		{"plain user forbidden", userToken, http.StatusForbidden},
		{"unknown account forbidden", ghostToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+tt.token)
		handler.ServeHTTP(rec, req)
		if rec.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, rec.Code, tt.want)
		}
	}
}

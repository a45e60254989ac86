package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"forever_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrUserExists reports a create attempt for an email that is already
// registered.
var ErrUserExists = errors.New("user already exists")

type UserService struct {
	Dynamo *DynamoService
}

// CreateUser registers a user, at most once per email. The write is a
// conditional put, so a concurrent duplicate registration cannot slip in.
func (us *UserService) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	err := us.Dynamo.PutItemIfAbsent(ctx, models.UsersTable, user, "email")
	if errors.Is(err, ErrConditionFailed) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser fetches a user by email. Returns nil when the email is unknown.
func (us *UserService) GetUser(ctx context.Context, email string) (*models.User, error) {
	item, err := us.Dynamo.GetItem(ctx, models.UsersTable, userKey(email))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// GetUsers lists every registered user, oldest registration first.
func (us *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := us.Dynamo.ScanInto(ctx, models.UsersTable, &users); err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

// IsAdmin reports whether the email belongs to an admin account.
func (us *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := us.GetUser(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == models.RoleAdmin, nil
}

// MakeAdmin promotes an existing user to the admin role.
func (us *UserService) MakeAdmin(ctx context.Context, email string) error {
	_, err := us.Dynamo.UpdateItem(ctx, models.UsersTable, userKey(email),
		"SET #role = :role",
		map[string]types.AttributeValue{
			":role": &types.AttributeValueMemberS{Value: models.RoleAdmin},
		},
		map[string]string{"#role": "role"},
		"attribute_exists(email)")
	if errors.Is(err, ErrConditionFailed) {
		return ErrNotFound
	}
	return err
}

func userKey(email string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"email": &types.AttributeValueMemberS{Value: email},
	}
}

package services

import (
	"context"
	"fmt"
	"strconv"

	"forever_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type FavoriteService struct {
	Dynamo *DynamoService
}

// AddFavorite stores a bookmarked profile snapshot for a user. Adding the
// same profile again overwrites the snapshot.
func (fs *FavoriteService) AddFavorite(ctx context.Context, favorite models.Favorite) error {
	return fs.Dynamo.PutItem(ctx, models.FavoritesTable, favorite)
}

// GetFavorites lists a user's bookmarked profiles.
func (fs *FavoriteService) GetFavorites(ctx context.Context, userEmail string) ([]models.Favorite, error) {
	items, err := fs.Dynamo.QueryItems(ctx, models.FavoritesTable,
		"userEmail = :userEmail",
		map[string]types.AttributeValue{
			":userEmail": &types.AttributeValueMemberS{Value: userEmail},
		}, nil)
	if err != nil {
		return nil, err
	}

	favorites := make([]models.Favorite, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &favorites); err != nil {
		return nil, fmt.Errorf("failed to unmarshal favorites: %w", err)
	}
	return favorites, nil
}

// DeleteFavorite removes one bookmark.
func (fs *FavoriteService) DeleteFavorite(ctx context.Context, userEmail string, biodataID int) error {
	key := map[string]types.AttributeValue{
		"userEmail": &types.AttributeValueMemberS{Value: userEmail},
		"biodataId": &types.AttributeValueMemberN{Value: strconv.Itoa(biodataID)},
	}
	return fs.Dynamo.DeleteItem(ctx, models.FavoritesTable, key)
}

package services

import (
	"context"
	"fmt"
	"sort"

	"forever_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type StoryService struct {
	Dynamo *DynamoService
}

// CreateStory stores a success story under a fresh id.
func (ss *StoryService) CreateStory(ctx context.Context, story models.SuccessStory) (*models.SuccessStory, error) {
	story.StoryID = uuid.New().String()
	if err := ss.Dynamo.PutItem(ctx, models.StoriesTable, story); err != nil {
		return nil, err
	}
	return &story, nil
}

// GetStories lists every success story, newest marriage first. Marriage
// dates are ISO (yyyy-mm-dd) strings, so lexicographic order is date order.
func (ss *StoryService) GetStories(ctx context.Context) ([]models.SuccessStory, error) {
	var stories []models.SuccessStory
	if err := ss.Dynamo.ScanInto(ctx, models.StoriesTable, &stories); err != nil {
		return nil, err
	}
	sort.Slice(stories, func(i, j int) bool { return stories[i].MarriageDate > stories[j].MarriageDate })
	return stories, nil
}

// GetStory fetches one story by id. Returns nil when the id is unknown.
func (ss *StoryService) GetStory(ctx context.Context, storyID string) (*models.SuccessStory, error) {
	key := map[string]types.AttributeValue{
		"storyId": &types.AttributeValueMemberS{Value: storyID},
	}
	item, err := ss.Dynamo.GetItem(ctx, models.StoriesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var story models.SuccessStory
	if err := attributevalue.UnmarshalMap(item, &story); err != nil {
		return nil, fmt.Errorf("failed to unmarshal story: %w", err)
	}
	return &story, nil
}

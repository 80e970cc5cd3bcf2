package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"ridgeline_roofing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoAPI is the slice of the DynamoDB client the store uses.
type dynamoAPI interface {
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

const defaultRateLimitTableName = "rate_limits"

// rateLimitItem is the counter row.
//
// Table requirements:
//   - PK: id (string), "<bucket>|<identity>"
//   - TTL on expires_at so DynamoDB purges stale windows; no app sweep.
type rateLimitItem struct {
	ID              string `dynamodbav:"id"`
	SubmissionCount int    `dynamodbav:"submission_count"`
	ResetAt         int64  `dynamodbav:"reset_at"`
	ExpiresAt       int64  `dynamodbav:"expires_at"`
}

// DynamoDBStore keeps fixed-window counters in DynamoDB for deployments that
// already run on AWS and don't want a Redis just for this.
//
// The ADD update is atomic server-side, so same-identity submissions are
// serialized by DynamoDB itself.
type DynamoDBStore struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IRateLimitStore = (*DynamoDBStore)(nil)

func NewDynamoDBStore(ddb *dynamodb.Client) *DynamoDBStore {
	return &DynamoDBStore{
		ddb:       ddb,
		tableName: getenvDefault("RATE_LIMIT_TABLE", defaultRateLimitTableName),
		now:       time.Now,
	}
}

func (s *DynamoDBStore) Allow(ctx context.Context, bucket, identity string, limit interfaces.Limit) (bool, error) {
	id := bucket + "|" + identity
	now := s.now()
	resetAt := now.Add(limit.Window).Unix()

	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression: aws.String("SET reset_at = if_not_exists(reset_at, :reset), expires_at = if_not_exists(expires_at, :reset) ADD submission_count :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":reset": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", resetAt)},
			":one":   &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return false, fmt.Errorf("dynamodb update %q: %w", id, err)
	}

	var it rateLimitItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return false, err
	}

	if now.Unix() > it.ResetAt {
		// Window elapsed; start a fresh one with this submission as #1. The
		// put is conditional on the stale reset_at so two first-of-window
		// requests cannot clobber each other: the loser keeps the winner's
		// fresh record and is admitted without resetting again.
		if err := s.reset(ctx, id, it.ResetAt, resetAt); err != nil {
			var ccf *types.ConditionalCheckFailedException
			if errors.As(err, &ccf) {
				return true, nil
			}
			return false, err
		}
		return true, nil
	}
	return it.SubmissionCount <= limit.Max, nil
}

func (s *DynamoDBStore) reset(ctx context.Context, id string, staleResetAt, resetAt int64) error {
	av, err := attributevalue.MarshalMap(rateLimitItem{
		ID:              id,
		SubmissionCount: 1,
		ResetAt:         resetAt,
		ExpiresAt:       resetAt,
	})
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("reset_at = :stale"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":stale": &types.AttributeValueMemberN{Value: strconv.FormatInt(staleResetAt, 10)},
		},
	})
	return err
}

func (s *DynamoDBStore) Close() error {
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package ratelimit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ridgeline_roofing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	counter    rateLimitItem
	updateErr  error
	putErr     error
	lastUpdate *dynamodb.UpdateItemInput
	lastPut    *dynamodb.PutItemInput
}

func (f *fakeDynamo) UpdateItem(_ context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.lastUpdate = params
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.counter.SubmissionCount++
	av, err := attributevalue.MarshalMap(f.counter)
	if err != nil {
		return nil, err
	}
	return &dynamodb.UpdateItemOutput{Attributes: av}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = params
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func newDynamoTestStore(fake *fakeDynamo, now time.Time) *DynamoDBStore {
	return &DynamoDBStore{
		ddb:       fake,
		tableName: defaultRateLimitTableName,
		now:       func() time.Time { return now },
	}
}

func TestDynamoDBStore_Allow(t *testing.T) {
	limit := interfaces.Limit{Max: 3, Window: time.Hour}
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("within window under limit", func(t *testing.T) {
		fake := &fakeDynamo{counter: rateLimitItem{ID: "quote|1.2.3.4", SubmissionCount: 1, ResetAt: now.Add(30 * time.Minute).Unix()}}
		s := newDynamoTestStore(fake, now)

		allowed, err := s.Allow(context.Background(), "quote", "1.2.3.4", limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatal("expected submission to be allowed")
		}
		if fake.lastUpdate == nil || !strings.Contains(*fake.lastUpdate.UpdateExpression, "ADD submission_count") {
			t.Fatalf("expected atomic ADD update, got %v", fake.lastUpdate)
		}
		if fake.lastPut != nil {
			t.Fatal("expected no reset inside the window")
		}
	})

	t.Run("within window over limit", func(t *testing.T) {
		fake := &fakeDynamo{counter: rateLimitItem{ID: "quote|1.2.3.4", SubmissionCount: 3, ResetAt: now.Add(30 * time.Minute).Unix()}}
		s := newDynamoTestStore(fake, now)

		allowed, err := s.Allow(context.Background(), "quote", "1.2.3.4", limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if allowed {
			t.Fatal("expected submission to be denied")
		}
	})

	t.Run("elapsed window resets conditionally", func(t *testing.T) {
		stale := now.Add(-time.Minute).Unix()
		fake := &fakeDynamo{counter: rateLimitItem{ID: "quote|1.2.3.4", SubmissionCount: 17, ResetAt: stale}}
		s := newDynamoTestStore(fake, now)

		allowed, err := s.Allow(context.Background(), "quote", "1.2.3.4", limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatal("expected first submission of the new window to be allowed")
		}
		if fake.lastPut == nil {
			t.Fatal("expected a reset put")
		}
		if fake.lastPut.ConditionExpression == nil || !strings.Contains(*fake.lastPut.ConditionExpression, "reset_at") {
			t.Fatalf("expected conditional reset, got %v", fake.lastPut.ConditionExpression)
		}
	})

	t.Run("losing the reset race still admits", func(t *testing.T) {
		stale := now.Add(-time.Minute).Unix()
		fake := &fakeDynamo{
			counter: rateLimitItem{ID: "quote|1.2.3.4", SubmissionCount: 17, ResetAt: stale},
			putErr:  &types.ConditionalCheckFailedException{},
		}
		s := newDynamoTestStore(fake, now)

		allowed, err := s.Allow(context.Background(), "quote", "1.2.3.4", limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatal("expected submission to be allowed when another request reset first")
		}
	})

	t.Run("update error is surfaced", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: errors.New("throttled")}
		s := newDynamoTestStore(fake, now)

		if _, err := s.Allow(context.Background(), "quote", "1.2.3.4", limit); err == nil {
			t.Fatal("expected error from the store")
		}
	})
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	appconfig "github.com/gvsu-realestate/clubsite/internal/config"
)

// DynamoStore is a DocumentStore backed by a single DynamoDB table.
// PK is the collection name, SK the document id, and the document body
// is stored as a JSON string in the Data attribute.
type DynamoStore struct {
	client    *dynamodb.Client
	tableName string
}

type dynamoItem struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Data      string `dynamodbav:"Data"`
	Timestamp string `dynamodbav:"Timestamp"`
}

// NewDynamoStore creates a DynamoDB-backed document store
func NewDynamoStore(ctx context.Context, cfg appconfig.DatabaseConfig) (*DynamoStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &DynamoStore{
		client:    client,
		tableName: cfg.TableName,
	}, nil
}

// Put stores a document, overwriting any existing one at collection/id.
func (s *DynamoStore) Put(ctx context.Context, collection, id string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	item := dynamoItem{
		PK:        collection,
		SK:        id,
		Data:      string(data),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshaling item: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("putting item to DynamoDB: %w", err)
	}

	return nil
}

// Get loads the document at collection/id into out.
func (s *DynamoStore) Get(ctx context.Context, collection, id string, out interface{}) error {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       itemKey(collection, id),
	})
	if err != nil {
		return fmt.Errorf("getting item from DynamoDB: %w", err)
	}
	if len(result.Item) == 0 {
		return ErrNotFound
	}

	var item dynamoItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return fmt.Errorf("unmarshaling item: %w", err)
	}
	if err := json.Unmarshal([]byte(item.Data), out); err != nil {
		return fmt.Errorf("unmarshaling document: %w", err)
	}

	return nil
}

// List returns the raw JSON of every document in the collection.
func (s *DynamoStore) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var docs []json.RawMessage
	var lastKey map[string]types.AttributeValue

	for {
		result, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			KeyConditionExpression: aws.String("PK = :pk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: collection},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, fmt.Errorf("querying DynamoDB: %w", err)
		}

		for _, av := range result.Items {
			var item dynamoItem
			if err := attributevalue.UnmarshalMap(av, &item); err != nil {
				continue
			}
			docs = append(docs, json.RawMessage(item.Data))
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		lastKey = result.LastEvaluatedKey
	}

	if docs == nil {
		docs = []json.RawMessage{}
	}
	return docs, nil
}

// Delete removes collection/id, reporting ErrNotFound for a missing key.
func (s *DynamoStore) Delete(ctx context.Context, collection, id string) error {
	result, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(s.tableName),
		Key:          itemKey(collection, id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return fmt.Errorf("deleting item from DynamoDB: %w", err)
	}
	if len(result.Attributes) == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping verifies the table is reachable, for health checks.
func (s *DynamoStore) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.tableName),
	})
	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return fmt.Errorf("table %s does not exist: %w", s.tableName, err)
	}
	return err
}

func itemKey(collection, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: collection},
		"SK": &types.AttributeValueMemberS{Value: id},
	}
}

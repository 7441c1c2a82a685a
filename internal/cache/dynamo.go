package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// DynamoCache is a third Cache backend for serverless deployments,
// modeled on the partition-key/sort-key shape implied by the teacher's
// data.Connector.Get(ctx, partitionKey, rangeKey, index string) calls
// in internal/tools/cache.go — here the cache namespace is the
// partition key and the cache key is the sort key.
type DynamoCache struct {
	db        *dynamodb.DynamoDB
	table     string
	namespace string
}

// NewDynamoCache builds a cache backed by the given table, using the
// default AWS credential chain.
func NewDynamoCache(table, namespace string) (*DynamoCache, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, err
	}
	return &DynamoCache{db: dynamodb.New(sess), table: table, namespace: namespace}, nil
}

func (d *DynamoCache) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := d.db.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key: map[string]*dynamodb.AttributeValue{
			"namespace": {S: aws.String(d.namespace)},
			"key":       {S: aws.String(key)},
		},
	})
	if err != nil {
		return "", false, err
	}
	if out.Item == nil {
		return "", false, nil
	}
	// DynamoDB's own TTL pruning is eventually-consistent; treat an
	// expired-but-not-yet-pruned item as a miss here too.
	if v, ok := out.Item["expires_at"]; ok && v.N != nil {
		if expiresAt, err := strconv.ParseInt(*v.N, 10, 64); err == nil && expiresAt < time.Now().Unix() {
			return "", false, nil
		}
	}
	val := out.Item["value"]
	if val == nil || val.S == nil {
		return "", false, nil
	}
	return *val.S, true, nil
}

func (d *DynamoCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	item := map[string]*dynamodb.AttributeValue{
		"namespace": {S: aws.String(d.namespace)},
		"key":       {S: aws.String(key)},
		"value":     {S: aws.String(value)},
	}
	if ttl > 0 {
		item["expires_at"] = &dynamodb.AttributeValue{N: aws.String(strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))}
	}
	_, err := d.db.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	return err
}

func (d *DynamoCache) Delete(ctx context.Context, key string) error {
	_, err := d.db.DeleteItemWithContext(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.table),
		Key: map[string]*dynamodb.AttributeValue{
			"namespace": {S: aws.String(d.namespace)},
			"key":       {S: aws.String(key)},
		},
	})
	return err
}

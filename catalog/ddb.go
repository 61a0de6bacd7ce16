package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/clusterlab/annealgo/codec"
)

// DDBClient is the interface for DynamoDB operations used by DDB.
// *dynamodb.Client satisfies it; tests substitute a fake.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// DDB implements Catalog on DynamoDB.
//
// DynamoDB conditional writes provide the compare-and-swap run numbering
// that blob storage lacks, so multiple pipeline workers can append runs
// without clobbering each other.
//
// Table schema:
//   - Partition key: dataset (string)
//   - Sort key: run (number) - monotonically increasing per dataset
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name annealgo-runs \
//	  --attribute-definitions AttributeName=dataset,AttributeType=S AttributeName=run,AttributeType=N \
//	  --key-schema AttributeName=dataset,KeyType=HASH AttributeName=run,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type DDB struct {
	client    DDBClient
	tableName string
	codec     codec.Codec
}

// NewDDB creates a DynamoDB-backed catalog.
// If c is nil, codec.Default is used for the record payload.
func NewDDB(client DDBClient, tableName string, c codec.Codec) *DDB {
	if c == nil {
		c = codec.Default
	}
	return &DDB{
		client:    client,
		tableName: tableName,
		codec:     c,
	}
}

// Append records a run using a conditional write on the next run number.
func (d *DDB) Append(ctx context.Context, rec Record) (int64, error) {
	latest, err := d.latestRun(ctx, rec.Dataset)
	if err != nil {
		return 0, err
	}
	rec.Run = latest + 1

	payload, err := d.codec.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("marshal record: %w", err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item: map[string]types.AttributeValue{
			"dataset": &types.AttributeValueMemberS{Value: rec.Dataset},
			"run":     &types.AttributeValueMemberN{Value: strconv.FormatInt(rec.Run, 10)},
			"codec":   &types.AttributeValueMemberS{Value: d.codec.Name()},
			"payload": &types.AttributeValueMemberB{Value: payload},
		},
		ConditionExpression: aws.String("attribute_not_exists(#r)"),
		ExpressionAttributeNames: map[string]string{
			"#r": "run",
		},
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return 0, ErrConcurrentAppend
		}
		return 0, fmt.Errorf("append run to DynamoDB: %w", err)
	}

	return rec.Run, nil
}

// Latest returns the most recent run for the dataset.
func (d *DDB) Latest(ctx context.Context, dataset string) (Record, error) {
	items, err := d.query(ctx, dataset, false, 1)
	if err != nil {
		return Record{}, err
	}
	if len(items) == 0 {
		return Record{}, ErrNotFound
	}
	return d.decode(items[0])
}

// List returns all runs for the dataset, oldest first.
func (d *DDB) List(ctx context.Context, dataset string) ([]Record, error) {
	items, err := d.query(ctx, dataset, true, 0)
	if err != nil {
		return nil, err
	}

	recs := make([]Record, 0, len(items))
	for _, item := range items {
		rec, err := d.decode(item)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (d *DDB) latestRun(ctx context.Context, dataset string) (int64, error) {
	items, err := d.query(ctx, dataset, false, 1)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	runAttr, ok := items[0]["run"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("invalid run attribute in DynamoDB")
	}
	return strconv.ParseInt(runAttr.Value, 10, 64)
}

func (d *DDB) query(ctx context.Context, dataset string, ascending bool, limit int32) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(d.tableName),
		KeyConditionExpression: aws.String("dataset = :ds"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ds": &types.AttributeValueMemberS{Value: dataset},
		},
		ScanIndexForward: aws.Bool(ascending),
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	resp, err := d.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query DynamoDB: %w", err)
	}
	return resp.Items, nil
}

func (d *DDB) decode(item map[string]types.AttributeValue) (Record, error) {
	payloadAttr, ok := item["payload"].(*types.AttributeValueMemberB)
	if !ok {
		return Record{}, errors.New("invalid payload attribute in DynamoDB")
	}

	c := d.codec
	if nameAttr, ok := item["codec"].(*types.AttributeValueMemberS); ok {
		if byName, found := codec.ByName(nameAttr.Value); found {
			c = byName
		}
	}

	var rec Record
	if err := c.Unmarshal(payloadAttr.Value, &rec); err != nil {
		return Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

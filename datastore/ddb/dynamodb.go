/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"

	"github.com/suparena/recordstore/datastore"
	storeerrors "github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

// keyPrefix is prepended to the document name to build PK and SK.
const keyPrefix = "DOCUMENT#"

// API is the subset of the DynamoDB client used by DocumentStore.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
}

// documentItem is the stored shape of a document. The single-object key
// pattern uses the same value for PK and SK.
type documentItem struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Body      string `dynamodbav:"Body"`
	Records   int    `dynamodbav:"Records"`
	UpdatedAt string `dynamodbav:"UpdatedAt"`
}

// DocumentStore implements datastore.DocumentStore by keeping the whole
// document in one DynamoDB item.
type DocumentStore struct {
	client    API
	tableName string
	key       string
}

var _ datastore.DocumentStore = (*DocumentStore)(nil)

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are used
// when both keys are set; otherwise the default AWS credential chain applies.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(awsRegion)}
	if awsAccessKey != "" && awsSecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS configuration")
	}

	return sdk.NewFromConfig(cfg), nil
}

// New constructs a DocumentStore for the named document in tableName.
func New(client API, tableName, documentName string) (*DocumentStore, error) {
	if client == nil {
		return nil, storeerrors.NewValidationError("client", "must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, storeerrors.NewValidationError("tableName", "must not be empty")
	}
	if strings.TrimSpace(documentName) == "" {
		return nil, storeerrors.NewValidationError("documentName", "must not be empty")
	}
	return &DocumentStore{
		client:    client,
		tableName: tableName,
		key:       keyPrefix + documentName,
	}, nil
}

// NewFromCredentials builds the client and the store in one step.
func NewFromCredentials(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion, tableName, documentName string) (*DocumentStore, error) {
	client, err := NewDynamoDBClient(ctx, awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create DynamoDB client")
	}
	return New(client, tableName, documentName)
}

// Key returns the PK/SK value of the document item.
func (d *DocumentStore) Key() string {
	return d.key
}

// Save replaces the document item.
func (d *DocumentStore) Save(ctx context.Context, doc storagemodels.Document) error {
	body, err := datastore.EncodeDocument(doc)
	if err != nil {
		return errors.Wrap(err, "failed to encode document")
	}

	av, err := attributevalue.MarshalMap(documentItem{
		PK:        d.key,
		SK:        d.key,
		Body:      string(body),
		Records:   len(doc),
		UpdatedAt: storagemodels.FormatTimestamp(storagemodels.Now()),
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal document item")
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return errors.Wrap(err, "PutItem failed")
	}
	return nil
}

// Load fetches the document item with a consistent read, so a Load right
// after Save observes it.
func (d *DocumentStore) Load(ctx context.Context) (storagemodels.Document, error) {
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      &d.tableName,
		Key:            d.keyAttributes(),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "GetItem error")
	}
	if out == nil || out.Item == nil {
		return nil, storeerrors.NewNotFoundError("document", d.key)
	}

	var item documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, storeerrors.NewParseError(d.key, "item", nil, err)
	}
	return datastore.DecodeDocument(d.key, []byte(item.Body))
}

func (d *DocumentStore) keyAttributes() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: d.key},
		"SK": &types.AttributeValueMemberS{Value: d.key},
	}
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"testing"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

// fakeAPI keeps items in memory keyed by table and PK.
type fakeAPI struct {
	items  map[string]map[string]types.AttributeValue
	gets   []*sdk.GetItemInput
	getErr error
	putErr error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{items: make(map[string]map[string]types.AttributeValue)}
}

func itemKey(table string, key map[string]types.AttributeValue) string {
	pk := key["PK"].(*types.AttributeValueMemberS).Value
	return table + "/" + pk
}

func (f *fakeAPI) GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	f.gets = append(f.gets, params)
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &sdk.GetItemOutput{Item: f.items[itemKey(*params.TableName, params.Key)]}, nil
}

func (f *fakeAPI) PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.items[itemKey(*params.TableName, params.Item)] = params.Item
	return &sdk.PutItemOutput{}, nil
}

func sampleDocument() storagemodels.Document {
	return storagemodels.Document{
		"Review.9": {
			"__class__":  "Review",
			"id":         "9",
			"created_at": "2024-01-15T10:30:00.123456",
			"updated_at": "2024-01-15T10:30:05.654321",
			"text":       "great",
		},
	}
}

func TestNewValidatesArguments(t *testing.T) {
	_, err := New(nil, "table", "default")
	assert.True(t, errors.IsValidationError(err))

	_, err = New(newFakeAPI(), " ", "default")
	assert.True(t, errors.IsValidationError(err))

	_, err = New(newFakeAPI(), "table", "")
	assert.True(t, errors.IsValidationError(err))
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	store, err := New(api, "records", "default")
	require.NoError(t, err)
	assert.Equal(t, "DOCUMENT#default", store.Key())

	require.NoError(t, store.Save(ctx, sampleDocument()))

	item := api.items["records/DOCUMENT#default"]
	require.NotNil(t, item)
	assert.Equal(t, "DOCUMENT#default", item["SK"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "1", item["Records"].(*types.AttributeValueMemberN).Value)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(sampleDocument(), got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, api.gets, 1)
	assert.True(t, *api.gets[0].ConsistentRead)
}

func TestDocumentsAreIsolatedByName(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	first, err := New(api, "records", "first")
	require.NoError(t, err)
	second, err := New(api, "records", "second")
	require.NoError(t, err)

	require.NoError(t, first.Save(ctx, sampleDocument()))

	_, err = second.Load(ctx)
	assert.True(t, errors.IsNotFound(err))
}

func TestLoadMissingDocument(t *testing.T) {
	store, err := New(newFakeAPI(), "records", "default")
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.True(t, errors.IsNotFound(err))
}

func TestLoadMalformedBody(t *testing.T) {
	api := newFakeAPI()
	api.items["records/DOCUMENT#default"] = map[string]types.AttributeValue{
		"PK":   &types.AttributeValueMemberS{Value: "DOCUMENT#default"},
		"SK":   &types.AttributeValueMemberS{Value: "DOCUMENT#default"},
		"Body": &types.AttributeValueMemberS{Value: "{broken"},
	}
	store, err := New(api, "records", "default")
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.True(t, errors.IsParseError(err))
}

func TestClientErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.putErr = fmt.Errorf("throttled")
	api.getErr = fmt.Errorf("unreachable")
	store, err := New(api, "records", "default")
	require.NoError(t, err)

	err = store.Save(ctx, sampleDocument())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")

	_, err = store.Load(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
	assert.False(t, errors.IsNotFound(err))
}

/*
Package ddb provides a DynamoDB implementation of the DocumentStore interface.

The whole document is kept in a single item using the single-object key
pattern, where the partition and sort keys carry the same value:

	PK        = "DOCUMENT#<name>"
	SK        = "DOCUMENT#<name>"
	Body      = JSON document, as written by the jsonfile backend
	Records   = number of records in Body
	UpdatedAt = time of the last Save

Each Save replaces the item; Load uses a consistent read.

	store, err := ddb.NewFromCredentials(ctx, accessKey, secretKey, region, "records", "default")
	if err != nil {
	    return err
	}
	engine := engine.New(objects, kinds, store)

Tests can pass any value implementing API instead of a real client.
*/
package ddb

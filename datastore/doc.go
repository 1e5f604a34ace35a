/*
Package datastore defines the backend interface of recordstore's persistence engine.

A DocumentStore holds a single document mapping registry keys to flattened
records:

	type DocumentStore interface {
	    Save(ctx context.Context, doc storagemodels.Document) error
	    Load(ctx context.Context) (storagemodels.Document, error)
	}

Save fully replaces the previous document. Load reports a document that was
never saved with an error matching errors.ErrNotFound; any other error is an
I/O or decoding failure.

Implementations:
  - jsonfile: a single JSON file on local disk (the default)
  - ddb: the document as one DynamoDB item
  - mock: in-memory implementation for testing
*/
package datastore

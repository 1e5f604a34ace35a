/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/recordstore/storagemodels"
)

// DocumentStore persists one whole document.
type DocumentStore interface {
	// Save replaces the stored document with doc.
	Save(ctx context.Context, doc storagemodels.Document) error

	// Load returns the stored document, or an error matching
	// errors.ErrNotFound when nothing has been saved yet.
	Load(ctx context.Context) (storagemodels.Document, error)
}

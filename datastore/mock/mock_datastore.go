/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DocumentStore interface for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

// DocumentStore is a mock implementation of datastore.DocumentStore for testing.
// Saved documents are deep-copied so later mutations by the caller are not observed.
type DocumentStore struct {
	mu        sync.RWMutex
	doc       storagemodels.Document
	saved     bool
	saveCount int
	loadCount int
	saveError error
	loadError error
}

// New creates a new mock DocumentStore holding no document
func New() *DocumentStore {
	return &DocumentStore{}
}

var _ datastore.DocumentStore = (*DocumentStore)(nil)

// WithSaveError makes Save operations return an error
func (m *DocumentStore) WithSaveError(err error) *DocumentStore {
	m.saveError = err
	return m
}

// WithLoadError makes Load operations return an error
func (m *DocumentStore) WithLoadError(err error) *DocumentStore {
	m.loadError = err
	return m
}

// Save stores a copy of doc
func (m *DocumentStore) Save(ctx context.Context, doc storagemodels.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saveCount++
	if m.saveError != nil {
		return m.saveError
	}

	m.doc = copyDocument(doc)
	m.saved = true
	return nil
}

// Load returns a copy of the stored document
func (m *DocumentStore) Load(ctx context.Context) (storagemodels.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loadCount++
	if m.loadError != nil {
		return nil, m.loadError
	}
	if !m.saved {
		return nil, errors.NewNotFoundError("document", "mock")
	}
	return copyDocument(m.doc), nil
}

// Helper methods for testing

// SetDocument directly sets the stored document (for testing)
func (m *DocumentStore) SetDocument(doc storagemodels.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = copyDocument(doc)
	m.saved = true
}

// Document returns a copy of the stored document and whether one exists (for testing)
func (m *DocumentStore) Document() (storagemodels.Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyDocument(m.doc), m.saved
}

// SaveCount returns the number of Save calls
func (m *DocumentStore) SaveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saveCount
}

// LoadCount returns the number of Load calls
func (m *DocumentStore) LoadCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadCount
}

// Clear removes the stored document
func (m *DocumentStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = nil
	m.saved = false
}

func copyDocument(doc storagemodels.Document) storagemodels.Document {
	if doc == nil {
		return storagemodels.Document{}
	}
	out := make(storagemodels.Document, len(doc))
	for key, fields := range doc {
		out[key] = fields.Clone()
	}
	return out
}

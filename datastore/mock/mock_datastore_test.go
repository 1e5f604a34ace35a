/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"testing"

	"github.com/suparena/recordstore/datastore/mock"
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

func TestMockDocumentStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		mockStore := mock.New()

		// Nothing saved yet
		_, err := mockStore.Load(ctx)
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}

		doc := storagemodels.Document{
			"State.1": {"__class__": "State", "id": "1", "name": "Texas"},
		}
		if err := mockStore.Save(ctx, doc); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		// Mutating the caller's document must not leak into the store
		doc["State.1"]["name"] = "Ohio"

		loaded, err := mockStore.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded["State.1"]["name"] != "Texas" {
			t.Fatalf("Loaded document mismatch: %+v", loaded)
		}
		if mockStore.SaveCount() != 1 || mockStore.LoadCount() != 2 {
			t.Fatalf("Unexpected call counts: save=%d load=%d", mockStore.SaveCount(), mockStore.LoadCount())
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		saveErr := errors.NewValidationError("document", "disk full")
		loadErr := errors.NewParseError("mock", "document", nil, nil)
		mockStore := mock.New().WithSaveError(saveErr).WithLoadError(loadErr)

		if err := mockStore.Save(ctx, storagemodels.Document{}); err != saveErr {
			t.Fatalf("Expected save error, got: %v", err)
		}
		if _, err := mockStore.Load(ctx); err != loadErr {
			t.Fatalf("Expected load error, got: %v", err)
		}
		if _, saved := mockStore.Document(); saved {
			t.Fatal("Failed save should not store a document")
		}
	})

	t.Run("HelperMethods", func(t *testing.T) {
		mockStore := mock.New()
		mockStore.SetDocument(storagemodels.Document{
			"City.1": {"__class__": "City", "id": "1"},
		})

		doc, saved := mockStore.Document()
		if !saved || len(doc) != 1 {
			t.Fatalf("Expected 1 stored record, got %d (saved=%v)", len(doc), saved)
		}

		mockStore.Clear()
		if _, saved := mockStore.Document(); saved {
			t.Fatal("Expected no document after clear")
		}
	})
}

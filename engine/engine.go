/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/registry"
	"github.com/suparena/recordstore/storagemodels"
)

// Engine moves the content of an ObjectRegistry to and from a DocumentStore.
type Engine struct {
	objects *registry.ObjectRegistry
	kinds   *registry.TypeRegistry
	store   datastore.DocumentStore
	logger  *slog.Logger
}

type Option func(*Engine)

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New returns an Engine persisting objects to store and rebuilding records
// through kinds.
func New(objects *registry.ObjectRegistry, kinds *registry.TypeRegistry, store datastore.DocumentStore, opts ...Option) *Engine {
	e := &Engine{
		objects: objects,
		kinds:   kinds,
		store:   store,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Persist flattens every registered record and replaces the stored document.
// Store errors are returned unchanged.
func (e *Engine) Persist(ctx context.Context) error {
	all := e.objects.All()
	doc := make(storagemodels.Document, len(all))
	for key, rec := range all {
		doc[key] = rec.ToFields()
	}

	if err := e.store.Save(ctx, doc); err != nil {
		return err
	}
	e.logger.DebugContext(ctx, "document persisted", slog.Int("records", len(doc)))
	return nil
}

// Load rebuilds every record of the stored document and inserts it into the
// registry under its key. A missing document leaves the registry untouched.
//
// Loading is all-or-nothing: the first entry that fails (unknown type tag,
// unparsable field, key not matching "<__class__>.<id>") aborts the call and
// nothing is inserted.
//
// Document keys are not trusted: every entry must sit under the key its own
// __class__ and id produce, otherwise Load fails with a ParseError. Records
// are never inserted under a key they would not be persisted under.
func (e *Engine) Load(ctx context.Context) error {
	doc, err := e.store.Load(ctx)
	if errors.IsNotFound(err) {
		e.logger.DebugContext(ctx, "no document to load")
		return nil
	}
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	staged := make(map[string]storagemodels.Record, len(doc))
	for _, key := range keys {
		rec, err := e.rebuild(key, doc[key])
		if err != nil {
			return err
		}
		staged[key] = rec
	}

	for key, rec := range staged {
		e.objects.Put(key, rec)
	}
	e.logger.DebugContext(ctx, "document loaded", slog.Int("records", len(staged)))
	return nil
}

func (e *Engine) rebuild(key string, fields storagemodels.Fields) (storagemodels.Record, error) {
	tag, ok := fields.String(storagemodels.FieldClass)
	if !ok || tag == "" {
		return nil, errors.NewParseError(key, storagemodels.FieldClass, fields[storagemodels.FieldClass], nil)
	}

	construct, err := e.kinds.GetConstructor(tag, key)
	if err != nil {
		return nil, err
	}
	rec, err := construct(fields)
	if err != nil {
		return nil, err
	}

	if got := storagemodels.KeyOf(rec); got != key {
		return nil, errors.NewParseError(key, storagemodels.FieldID, rec.RecordID(),
			fmt.Errorf("record key %q does not match document key", got))
	}
	return rec, nil
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recordstore

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/suparena/recordstore/config"
	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/datastore/ddb"
	"github.com/suparena/recordstore/datastore/jsonfile"
	"github.com/suparena/recordstore/engine"
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/models"
	"github.com/suparena/recordstore/registry"
	"github.com/suparena/recordstore/storagemodels"
)

// Store owns the object registry, the kind dispatch table and the
// persistence engine of one process. It is not safe for concurrent use.
type Store struct {
	objects *registry.ObjectRegistry
	kinds   *registry.TypeRegistry
	engine  *engine.Engine
	logger  *slog.Logger
}

type Option func(*Store)

// WithLogger sets the logger passed down to the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns an empty Store persisting to docs.
func New(docs datastore.DocumentStore, opts ...Option) *Store {
	s := &Store{
		objects: registry.NewObjectRegistry(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.kinds = models.Kinds(s)
	s.engine = engine.New(s.objects, s.kinds, docs, engine.WithLogger(s.logger))
	return s
}

// Open builds the backend selected by cfg and loads its document.
func Open(ctx context.Context, cfg config.Config, opts ...Option) (*Store, error) {
	docs, err := OpenDocumentStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s := New(docs, opts...)
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// OpenDocumentStore builds the backend selected by cfg.
func OpenDocumentStore(ctx context.Context, cfg config.Config) (datastore.DocumentStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case config.BackendDynamoDB:
		d := cfg.DynamoDB
		return ddb.NewFromCredentials(ctx, d.AccessKey, d.SecretKey, d.Region, d.Table, d.Document)
	default:
		return jsonfile.New(cfg.File.Path, jsonfile.WithIndent(cfg.File.Indent)), nil
	}
}

// New registers rec. It is called by the constructors of fresh records.
func (s *Store) New(rec storagemodels.Record) error {
	return s.objects.Register(rec)
}

// All returns the live registry map.
func (s *Store) All() map[string]storagemodels.Record {
	return s.objects.All()
}

// AllOf returns the records of one kind sorted by key, or every record when tag is empty.
func (s *Store) AllOf(tag string) ([]storagemodels.Record, error) {
	if tag != "" && !s.kinds.Has(tag) {
		return nil, errors.NewUnknownTypeError(tag, "")
	}
	all := s.objects.All()
	keys := make([]string, 0, len(all))
	for key, rec := range all {
		if tag == "" || rec.TypeTag() == tag {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	out := make([]storagemodels.Record, 0, len(keys))
	for _, key := range keys {
		out = append(out, all[key])
	}
	return out, nil
}

// Get returns the record of kind tag with the given id.
func (s *Store) Get(tag, id string) (storagemodels.Record, error) {
	if !s.kinds.Has(tag) {
		return nil, errors.NewUnknownTypeError(tag, storagemodels.Key(tag, id))
	}
	return s.objects.Get(storagemodels.Key(tag, id))
}

// Create builds and registers a fresh record of kind tag.
func (s *Store) Create(tag string) (storagemodels.Record, error) {
	return models.Create(s, tag)
}

// Update assigns one field of a registered record, then saves it, which
// refreshes its updated_at and persists the store.
func (s *Store) Update(ctx context.Context, tag, id, name string, value interface{}) (storagemodels.Record, error) {
	rec, err := s.Get(tag, id)
	if err != nil {
		return nil, err
	}
	if err := models.Assign(rec, name, value); err != nil {
		return nil, err
	}
	saver, ok := rec.(interface{ Save(context.Context) error })
	if !ok {
		return nil, errors.NewTypeConsistencyError("update", "record of kind "+tag+" cannot be saved")
	}
	if err := saver.Save(ctx); err != nil {
		return nil, err
	}
	return rec, nil
}

// Kinds returns the registered type tags.
func (s *Store) Kinds() []string {
	return s.kinds.Types()
}

// Save persists every registered record.
func (s *Store) Save(ctx context.Context) error {
	return s.engine.Persist(ctx)
}

// Reload loads the persisted document into the registry. A missing
// document is not an error.
func (s *Store) Reload(ctx context.Context) error {
	return s.engine.Load(ctx)
}

// ClearForTest empties the registry.
func (s *Store) ClearForTest() {
	s.objects.ClearForTest()
}

var _ models.Storage = (*Store)(nil)

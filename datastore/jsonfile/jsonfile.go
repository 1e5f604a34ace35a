/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package jsonfile stores the document as one JSON object in a local file.
package jsonfile

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"

	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

// DefaultPath is the document file used when none is configured.
const DefaultPath = "file.json"

// Store is a datastore.DocumentStore backed by a JSON file.
type Store struct {
	path   string
	indent bool
	perm   fs.FileMode
}

type Option func(*Store)

// WithIndent pretty-prints the document.
func WithIndent(enabled bool) Option {
	return func(s *Store) { s.indent = enabled }
}

// WithPerm sets the permission bits of the document file.
func WithPerm(perm fs.FileMode) Option {
	return func(s *Store) { s.perm = perm }
}

// New returns a Store writing to path, or DefaultPath if path is empty.
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultPath
	}
	s := &Store{path: path, perm: 0o644}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ datastore.DocumentStore = (*Store)(nil)

// Path returns the document file path.
func (s *Store) Path() string {
	return s.path
}

// Save writes doc to a temporary file in the same directory and renames it
// over the document, so readers see either the old or the new content.
func (s *Store) Save(ctx context.Context, doc storagemodels.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc == nil {
		doc = storagemodels.Document{}
	}

	var (
		b   []byte
		err error
	)
	if s.indent {
		b, err = json.MarshalIndent(doc, "", "  ")
	} else {
		b, err = datastore.EncodeDocument(doc)
	}
	if err != nil {
		return pkgerrors.Wrap(err, "jsonfile: marshal document")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return pkgerrors.Wrapf(err, "jsonfile: create temp file in %s", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return pkgerrors.Wrapf(err, "jsonfile: write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return pkgerrors.Wrapf(err, "jsonfile: close %s", tmpName)
	}
	if err := os.Chmod(tmpName, s.perm); err != nil {
		_ = os.Remove(tmpName)
		return pkgerrors.Wrapf(err, "jsonfile: chmod %s", tmpName)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return pkgerrors.Wrapf(err, "jsonfile: rename to %s", s.path)
	}
	return nil
}

// Load reads and decodes the document file.
func (s *Store) Load(ctx context.Context) (storagemodels.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		if pkgerrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError("document", s.path)
		}
		return nil, pkgerrors.Wrapf(err, "jsonfile: read %s", s.path)
	}

	return datastore.DecodeDocument(s.path, b)
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"

	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

// ObjectRegistry holds every live record of a process keyed by "<TypeTag>.<id>".
// It is not safe for concurrent use.
type ObjectRegistry struct {
	objects map[string]storagemodels.Record
}

// NewObjectRegistry returns an empty registry.
func NewObjectRegistry() *ObjectRegistry {
	return &ObjectRegistry{objects: make(map[string]storagemodels.Record)}
}

// Register inserts rec under its registry key, replacing any previous entry.
// A nil record, or one without a type tag or id, is a TypeConsistencyError.
func (r *ObjectRegistry) Register(rec storagemodels.Record) error {
	if isNil(rec) {
		return errors.NewTypeConsistencyError("register", "record is nil")
	}
	if rec.TypeTag() == "" {
		return errors.NewTypeConsistencyError("register", "record has no type tag")
	}
	if rec.RecordID() == "" {
		return errors.NewTypeConsistencyError("register", "record has no id")
	}
	r.objects[storagemodels.KeyOf(rec)] = rec
	return nil
}

// Put inserts rec under key without any validation. It is the insertion
// path for records rebuilt from a persisted document.
func (r *ObjectRegistry) Put(key string, rec storagemodels.Record) {
	r.objects[key] = rec
}

// All returns the live mapping. The map is not copied: callers observe later
// registrations and must not modify it.
func (r *ObjectRegistry) All() map[string]storagemodels.Record {
	return r.objects
}

// Get returns the record registered under key.
func (r *ObjectRegistry) Get(key string) (storagemodels.Record, error) {
	rec, ok := r.objects[key]
	if !ok {
		return nil, errors.NewNotFoundError("record", key)
	}
	return rec, nil
}

// Len returns the number of registered records.
func (r *ObjectRegistry) Len() int {
	return len(r.objects)
}

// ClearForTest empties the registry in place, so maps previously returned
// by All observe the reset too.
func (r *ObjectRegistry) ClearForTest() {
	for k := range r.objects {
		delete(r.objects, k)
	}
}

func isNil(rec storagemodels.Record) bool {
	if rec == nil {
		return true
	}
	v := reflect.ValueOf(rec)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Interface, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}

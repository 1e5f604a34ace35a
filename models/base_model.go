/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

// Storage is what a record needs from the store that owns it.
type Storage interface {
	// New registers a freshly created record.
	New(rec storagemodels.Record) error
	// Save persists every registered record.
	Save(ctx context.Context) error
}

// Header is the part shared by every entity kind.
type Header struct {
	ID        strfmt.UUID4 `mapstructure:"id"`
	CreatedAt time.Time    `mapstructure:"created_at"`
	UpdatedAt time.Time    `mapstructure:"updated_at"`

	// Extra holds fields attached at runtime with Set, plus any stored
	// field the kind does not declare.
	Extra map[string]interface{} `mapstructure:",remain"`

	storage Storage
}

func newHeader(s Storage) Header {
	now := storagemodels.Now()
	return Header{
		ID:        strfmt.UUID4(uuid.NewString()),
		CreatedAt: now,
		UpdatedAt: now,
		Extra:     make(map[string]interface{}),
		storage:   s,
	}
}

// RecordID returns the instance id.
func (h *Header) RecordID() string {
	return string(h.ID)
}

// Save refreshes UpdatedAt and persists the whole store.
func (h *Header) Save(ctx context.Context) error {
	if h.storage == nil {
		return errors.NewValidationError("storage", "record is not attached to a store")
	}
	h.UpdatedAt = storagemodels.Now()
	return h.storage.Save(ctx)
}

// header gives Assign access to the header of any kind.
func (h *Header) header() *Header { return h }

func (h *Header) setExtra(name string, value interface{}) {
	if h.Extra == nil {
		h.Extra = make(map[string]interface{})
	}
	h.Extra[name] = value
}

// Get returns a dynamic field.
func (h *Header) Get(name string) (interface{}, bool) {
	v, ok := h.Extra[name]
	return v, ok
}

// flatten merges, in increasing priority, the dynamic fields, the
// declared fields of the kind and the header fields.
func (h *Header) flatten(tag string, declared storagemodels.Fields) storagemodels.Fields {
	out := make(storagemodels.Fields, len(h.Extra)+len(declared)+4)
	for k, v := range h.Extra {
		out[k] = v
	}
	for k, v := range declared {
		out[k] = v
	}
	out[storagemodels.FieldID] = string(h.ID)
	out[storagemodels.FieldCreatedAt] = storagemodels.FormatTimestamp(h.CreatedAt)
	out[storagemodels.FieldUpdatedAt] = storagemodels.FormatTimestamp(h.UpdatedAt)
	out[storagemodels.FieldClass] = tag
	return out
}

// rebuild fills target, a pointer to a kind embedding h, from stored fields.
// Header fields are parsed explicitly; the rest is decoded by mapstructure
// with exact name matching, unknown names landing in Extra.
func rebuild(s Storage, tag string, fields storagemodels.Fields, h *Header, target interface{}) error {
	rest := fields.Clone()
	delete(rest, storagemodels.FieldClass)

	id, ok := rest.String(storagemodels.FieldID)
	if !ok || id == "" {
		return errors.NewParseError(tag, storagemodels.FieldID, rest[storagemodels.FieldID], nil)
	}
	key := storagemodels.Key(tag, id)

	created, err := parseTimestampField(key, storagemodels.FieldCreatedAt, rest)
	if err != nil {
		return err
	}
	updated, err := parseTimestampField(key, storagemodels.FieldUpdatedAt, rest)
	if err != nil {
		return err
	}
	delete(rest, storagemodels.FieldID)
	delete(rest, storagemodels.FieldCreatedAt)
	delete(rest, storagemodels.FieldUpdatedAt)

	decoder, err := newDecoder(target, false)
	if err != nil {
		return err
	}
	if err := decoder.Decode(map[string]interface{}(rest)); err != nil {
		return errors.NewParseError(key, "fields", nil, err)
	}

	h.ID = strfmt.UUID4(id)
	h.CreatedAt = created
	h.UpdatedAt = updated
	if h.Extra == nil {
		h.Extra = make(map[string]interface{})
	}
	h.storage = s
	return nil
}

// newDecoder returns a decoder matching stored names exactly. Integer
// fields only accept integral numbers, with or without weak typing.
func newDecoder(target interface{}, weak bool) (*mapstructure.Decoder, error) {
	return mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "mapstructure",
		WeaklyTypedInput: weak,
		MatchName:        func(mapKey, fieldName string) bool { return mapKey == fieldName },
		DecodeHook:       mapstructure.DecodeHookFuncType(integralOnly),
	})
}

func integralOnly(_, to reflect.Type, data interface{}) (interface{}, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}

	var f float64
	switch v := data.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		return nil, fmt.Errorf("%s is not an integer", v)
	default:
		return data, nil
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("%v is not an integer", f)
	}
	return int64(f), nil
}

func parseTimestampField(key, name string, fields storagemodels.Fields) (time.Time, error) {
	raw, ok := fields.String(name)
	if !ok {
		return time.Time{}, errors.NewParseError(key, name, fields[name], nil)
	}
	t, err := storagemodels.ParseTimestamp(raw)
	if err != nil {
		return time.Time{}, errors.NewParseError(key, name, raw, err)
	}
	return t, nil
}

// describe renders "[Kind] (id) {fields}".
func describe(r storagemodels.Record) string {
	fields := r.ToFields()
	delete(fields, storagemodels.FieldClass)
	return fmt.Sprintf("[%s] (%s) %v", r.TypeTag(), r.RecordID(), map[string]interface{}(fields))
}

// register hands a fresh record to its storage, if any.
func register(s Storage, rec storagemodels.Record) error {
	if s == nil {
		return nil
	}
	return s.New(rec)
}

// TagBaseModel is the type tag of BaseModel.
const TagBaseModel = "BaseModel"

// BaseModel is a record with no declared fields.
type BaseModel struct {
	Header `mapstructure:",squash"`
}

// NewBaseModel creates and registers a fresh BaseModel.
func NewBaseModel(s Storage) (*BaseModel, error) {
	m := &BaseModel{Header: newHeader(s)}
	if err := register(s, m); err != nil {
		return nil, err
	}
	return m, nil
}

// RebuildBaseModel reconstructs a BaseModel from stored fields without registering it.
func RebuildBaseModel(s Storage, fields storagemodels.Fields) (*BaseModel, error) {
	m := &BaseModel{}
	if err := rebuild(s, TagBaseModel, fields, &m.Header, m); err != nil {
		return nil, err
	}
	return m, nil
}

// TypeTag returns "BaseModel".
func (m *BaseModel) TypeTag() string { return TagBaseModel }

// ToFields returns the header and dynamic fields of m.
func (m *BaseModel) ToFields() storagemodels.Fields {
	return m.flatten(TagBaseModel, nil)
}

// String renders m as "[BaseModel] (<id>) map[...]".
func (m *BaseModel) String() string { return describe(m) }

// Set stores a dynamic field; see Assign.
func (m *BaseModel) Set(name string, value interface{}) error { return Assign(m, name, value) }

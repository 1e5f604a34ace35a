/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// Reserved field names present in every flattened record.
const (
	FieldClass     = "__class__"
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// Fields is a flattened record: field name to JSON-compatible value.
type Fields map[string]interface{}

// Document is the persisted form of a whole registry, keyed by registry key.
type Document map[string]Fields

// Record is the contract every entity kind satisfies.
type Record interface {
	// TypeTag is the concrete kind name, e.g. "User".
	TypeTag() string
	// RecordID is the instance identifier.
	RecordID() string
	// ToFields flattens the record, injecting FieldClass and rendering
	// both timestamps with FormatTimestamp.
	ToFields() Fields
}

// Key builds the registry key "<tag>.<id>".
func Key(tag, id string) string {
	return tag + "." + id
}

// KeyOf returns the registry key of r.
func KeyOf(r Record) string {
	return Key(r.TypeTag(), r.RecordID())
}

// Clone returns a shallow copy of f.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// String returns the value of a string field and whether it was a string.
func (f Fields) String(name string) (string, bool) {
	s, ok := f[name].(string)
	return s, ok
}

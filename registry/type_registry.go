package registry

import (
	"fmt"
	"sort"

	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

// ConstructFunc rebuilds a record of one kind from its flattened fields.
// It must not register the record anywhere.
type ConstructFunc func(fields storagemodels.Fields) (storagemodels.Record, error)

// TypeRegistry maps a type tag (like "User" or "Place") to its reconstruction function.
// It is populated once at startup and only read afterwards.
type TypeRegistry struct {
	types map[string]ConstructFunc
}

// NewTypeRegistry returns an empty dispatch table.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{types: make(map[string]ConstructFunc)}
}

// RegisterType registers a reconstruction function for a given type tag.
// If a type is already registered for the given tag, it panics to prevent accidental overrides.
func (r *TypeRegistry) RegisterType(tag string, fn ConstructFunc) {
	if _, exists := r.types[tag]; exists {
		panic(fmt.Sprintf("type registry: type with tag %q already registered", tag))
	}
	r.types[tag] = fn
}

// GetConstructor returns the registered reconstruction function for the given tag.
// If no function is registered, it returns an UnknownTypeError; key is only used for the message.
func (r *TypeRegistry) GetConstructor(tag, key string) (ConstructFunc, error) {
	fn, ok := r.types[tag]
	if !ok {
		return nil, errors.NewUnknownTypeError(tag, key)
	}
	return fn, nil
}

// Has reports whether tag is registered.
func (r *TypeRegistry) Has(tag string) bool {
	_, ok := r.types[tag]
	return ok
}

// Types returns the registered tags in sorted order.
func (r *TypeRegistry) Types() []string {
	tags := make([]string, 0, len(r.types))
	for tag := range r.types {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

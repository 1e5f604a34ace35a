package models

import (
	"reflect"
	"strings"

	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

// Assign sets one field of rec. Declared fields are replaced by value
// converted with weak typing ("3" becomes 3 for an int field, 3.7 is
// rejected); any other name is stored as a dynamic field. Header fields
// cannot be assigned. The Set method of every kind calls Assign, so a
// declared name never ends up shadowed in the dynamic fields.
func Assign(rec storagemodels.Record, name string, value interface{}) error {
	switch name {
	case "", storagemodels.FieldClass, storagemodels.FieldID,
		storagemodels.FieldCreatedAt, storagemodels.FieldUpdatedAt:
		return errors.NewValidationError(name, "reserved field name")
	}
	if rec == nil {
		return errors.NewTypeConsistencyError("assign", "record is nil")
	}
	v := reflect.ValueOf(rec)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return errors.NewTypeConsistencyError("assign", "record must be a non-nil struct pointer")
	}

	if field, ok := declaredField(v.Elem(), name); ok {
		fresh := reflect.New(field.Type())
		decoder, err := newDecoder(fresh.Interface(), true)
		if err != nil {
			return err
		}
		if err := decoder.Decode(value); err != nil {
			return errors.NewValidationError(name, err.Error())
		}
		field.Set(fresh.Elem())
		return nil
	}

	h, ok := rec.(interface{ header() *Header })
	if !ok {
		return errors.NewTypeConsistencyError("assign", "record does not accept dynamic fields")
	}
	h.header().setExtra(name, value)
	return nil
}

// declaredField finds the settable field tagged with name, skipping the
// embedded Header.
func declaredField(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if tag == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

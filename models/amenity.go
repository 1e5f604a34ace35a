package models

import "github.com/suparena/recordstore/storagemodels"

const TagAmenity = "Amenity"

type Amenity struct {
	Header `mapstructure:",squash"`

	Name string `mapstructure:"name"`
}

func NewAmenity(s Storage) (*Amenity, error) {
	a := &Amenity{Header: newHeader(s)}
	if err := register(s, a); err != nil {
		return nil, err
	}
	return a, nil
}

func RebuildAmenity(s Storage, fields storagemodels.Fields) (*Amenity, error) {
	a := &Amenity{}
	if err := rebuild(s, TagAmenity, fields, &a.Header, a); err != nil {
		return nil, err
	}
	return a, nil
}

// TypeTag returns "Amenity".
func (a *Amenity) TypeTag() string { return TagAmenity }

// ToFields flattens the amenity with its declared and dynamic fields.
func (a *Amenity) ToFields() storagemodels.Fields {
	return a.flatten(TagAmenity, storagemodels.Fields{"name": a.Name})
}

// String renders the amenity as "[Amenity] (<id>) map[...]".
func (a *Amenity) String() string { return describe(a) }

// Set assigns a declared field by its stored name, or a dynamic field otherwise.
func (a *Amenity) Set(name string, value interface{}) error { return Assign(a, name, value) }

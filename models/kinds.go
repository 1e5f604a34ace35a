package models

import (
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/registry"
	"github.com/suparena/recordstore/storagemodels"
)

// Kinds returns the dispatch table of every entity kind. Rebuilt records
// are attached to s so that Save works on them.
func Kinds(s Storage) *registry.TypeRegistry {
	kinds := registry.NewTypeRegistry()
	kinds.RegisterType(TagBaseModel, func(f storagemodels.Fields) (storagemodels.Record, error) {
		return asRecord(RebuildBaseModel(s, f))
	})
	kinds.RegisterType(TagUser, func(f storagemodels.Fields) (storagemodels.Record, error) {
		return asRecord(RebuildUser(s, f))
	})
	kinds.RegisterType(TagState, func(f storagemodels.Fields) (storagemodels.Record, error) {
		return asRecord(RebuildState(s, f))
	})
	kinds.RegisterType(TagCity, func(f storagemodels.Fields) (storagemodels.Record, error) {
		return asRecord(RebuildCity(s, f))
	})
	kinds.RegisterType(TagAmenity, func(f storagemodels.Fields) (storagemodels.Record, error) {
		return asRecord(RebuildAmenity(s, f))
	})
	kinds.RegisterType(TagPlace, func(f storagemodels.Fields) (storagemodels.Record, error) {
		return asRecord(RebuildPlace(s, f))
	})
	kinds.RegisterType(TagReview, func(f storagemodels.Fields) (storagemodels.Record, error) {
		return asRecord(RebuildReview(s, f))
	})
	return kinds
}

// Create builds and registers a fresh record of the given kind.
func Create(s Storage, tag string) (storagemodels.Record, error) {
	switch tag {
	case TagBaseModel:
		return asRecord(NewBaseModel(s))
	case TagUser:
		return asRecord(NewUser(s))
	case TagState:
		return asRecord(NewState(s))
	case TagCity:
		return asRecord(NewCity(s))
	case TagAmenity:
		return asRecord(NewAmenity(s))
	case TagPlace:
		return asRecord(NewPlace(s))
	case TagReview:
		return asRecord(NewReview(s))
	}
	return nil, errors.NewUnknownTypeError(tag, "")
}

// asRecord keeps a failed constructor from yielding a non-nil Record
// holding a nil pointer.
func asRecord[T storagemodels.Record](rec T, err error) (storagemodels.Record, error) {
	if err != nil {
		return nil, err
	}
	return rec, nil
}

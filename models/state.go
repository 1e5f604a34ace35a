package models

import "github.com/suparena/recordstore/storagemodels"

const TagState = "State"

type State struct {
	Header `mapstructure:",squash"`

	Name string `mapstructure:"name"`
}

func NewState(s Storage) (*State, error) {
	st := &State{Header: newHeader(s)}
	if err := register(s, st); err != nil {
		return nil, err
	}
	return st, nil
}

func RebuildState(s Storage, fields storagemodels.Fields) (*State, error) {
	st := &State{}
	if err := rebuild(s, TagState, fields, &st.Header, st); err != nil {
		return nil, err
	}
	return st, nil
}

// TypeTag returns "State".
func (st *State) TypeTag() string { return TagState }

// ToFields flattens the state with its declared and dynamic fields.
func (st *State) ToFields() storagemodels.Fields {
	return st.flatten(TagState, storagemodels.Fields{"name": st.Name})
}

// String renders the state as "[State] (<id>) map[...]".
func (st *State) String() string { return describe(st) }

// Set assigns a declared field by its stored name, or a dynamic field otherwise.
func (st *State) Set(name string, value interface{}) error { return Assign(st, name, value) }

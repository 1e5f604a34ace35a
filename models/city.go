package models

import "github.com/suparena/recordstore/storagemodels"

const TagCity = "City"

// City belongs to a State through StateID.
type City struct {
	Header `mapstructure:",squash"`

	StateID string `mapstructure:"state_id"`
	Name    string `mapstructure:"name"`
}

func NewCity(s Storage) (*City, error) {
	c := &City{Header: newHeader(s)}
	if err := register(s, c); err != nil {
		return nil, err
	}
	return c, nil
}

func RebuildCity(s Storage, fields storagemodels.Fields) (*City, error) {
	c := &City{}
	if err := rebuild(s, TagCity, fields, &c.Header, c); err != nil {
		return nil, err
	}
	return c, nil
}

// TypeTag returns "City".
func (c *City) TypeTag() string { return TagCity }

// ToFields flattens the city with its declared and dynamic fields.
func (c *City) ToFields() storagemodels.Fields {
	return c.flatten(TagCity, storagemodels.Fields{
		"state_id": c.StateID,
		"name":     c.Name,
	})
}

// String renders the city as "[City] (<id>) map[...]".
func (c *City) String() string { return describe(c) }

// Set assigns a declared field by its stored name, or a dynamic field otherwise.
func (c *City) Set(name string, value interface{}) error { return Assign(c, name, value) }

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import "github.com/suparena/recordstore/storagemodels"

// TagPlace is the type tag of Place.
const TagPlace = "Place"

// Place is a rentable lodging located in a City and owned by a User.
type Place struct {
	Header `mapstructure:",squash"`

	CityID          string   `mapstructure:"city_id"`
	UserID          string   `mapstructure:"user_id"`
	Name            string   `mapstructure:"name"`
	Description     string   `mapstructure:"description"`
	NumberRooms     int      `mapstructure:"number_rooms"`
	NumberBathrooms int      `mapstructure:"number_bathrooms"`
	MaxGuest        int      `mapstructure:"max_guest"`
	PriceByNight    int      `mapstructure:"price_by_night"`
	Latitude        float64  `mapstructure:"latitude"`
	Longitude       float64  `mapstructure:"longitude"`
	AmenityIDs      []string `mapstructure:"amenity_ids"`
}

// NewPlace creates and registers a fresh Place.
func NewPlace(s Storage) (*Place, error) {
	p := &Place{Header: newHeader(s), AmenityIDs: []string{}}
	if err := register(s, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RebuildPlace reconstructs a Place from stored fields without registering it.
func RebuildPlace(s Storage, fields storagemodels.Fields) (*Place, error) {
	p := &Place{}
	if err := rebuild(s, TagPlace, fields, &p.Header, p); err != nil {
		return nil, err
	}
	if p.AmenityIDs == nil {
		p.AmenityIDs = []string{}
	}
	return p, nil
}

// TypeTag returns "Place".
func (p *Place) TypeTag() string { return TagPlace }

// ToFields flattens the place with its declared and dynamic fields.
func (p *Place) ToFields() storagemodels.Fields {
	amenities := make([]string, len(p.AmenityIDs))
	copy(amenities, p.AmenityIDs)

	return p.flatten(TagPlace, storagemodels.Fields{
		"city_id":          p.CityID,
		"user_id":          p.UserID,
		"name":             p.Name,
		"description":      p.Description,
		"number_rooms":     p.NumberRooms,
		"number_bathrooms": p.NumberBathrooms,
		"max_guest":        p.MaxGuest,
		"price_by_night":   p.PriceByNight,
		"latitude":         p.Latitude,
		"longitude":        p.Longitude,
		"amenity_ids":      amenities,
	})
}

// String renders the place as "[Place] (<id>) map[...]".
func (p *Place) String() string { return describe(p) }

// Set assigns a declared field by its stored name, or a dynamic field otherwise.
func (p *Place) Set(name string, value interface{}) error { return Assign(p, name, value) }

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import "github.com/suparena/recordstore/storagemodels"

// TagReview is the type tag of Review.
const TagReview = "Review"

// Review is a user's text about a place.
type Review struct {
	Header `mapstructure:",squash"`

	PlaceID string `mapstructure:"place_id"`
	UserID  string `mapstructure:"user_id"`
	Text    string `mapstructure:"text"`
}

// NewReview creates and registers a fresh Review.
func NewReview(s Storage) (*Review, error) {
	r := &Review{Header: newHeader(s)}
	if err := register(s, r); err != nil {
		return nil, err
	}
	return r, nil
}

// RebuildReview reconstructs a Review from stored fields without registering it.
func RebuildReview(s Storage, fields storagemodels.Fields) (*Review, error) {
	r := &Review{}
	if err := rebuild(s, TagReview, fields, &r.Header, r); err != nil {
		return nil, err
	}
	return r, nil
}

// TypeTag returns "Review".
func (r *Review) TypeTag() string { return TagReview }

// ToFields flattens the review with its declared and dynamic fields.
func (r *Review) ToFields() storagemodels.Fields {
	return r.flatten(TagReview, storagemodels.Fields{
		"place_id": r.PlaceID,
		"user_id":  r.UserID,
		"text":     r.Text,
	})
}

// String renders the review as "[Review] (<id>) map[...]".
func (r *Review) String() string { return describe(r) }

// Set assigns a declared field by its stored name, or a dynamic field otherwise.
func (r *Review) Set(name string, value interface{}) error { return Assign(r, name, value) }

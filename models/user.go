/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import "github.com/suparena/recordstore/storagemodels"

// TagUser is the type tag of User.
const TagUser = "User"

// User is an account holder.
type User struct {
	Header `mapstructure:",squash"`

	Email     string `mapstructure:"email"`
	Password  string `mapstructure:"password"`
	FirstName string `mapstructure:"first_name"`
	LastName  string `mapstructure:"last_name"`
}

// NewUser creates and registers a fresh User.
func NewUser(s Storage) (*User, error) {
	u := &User{Header: newHeader(s)}
	if err := register(s, u); err != nil {
		return nil, err
	}
	return u, nil
}

// RebuildUser reconstructs a User from stored fields without registering it.
func RebuildUser(s Storage, fields storagemodels.Fields) (*User, error) {
	u := &User{}
	if err := rebuild(s, TagUser, fields, &u.Header, u); err != nil {
		return nil, err
	}
	return u, nil
}

// TypeTag returns "User".
func (u *User) TypeTag() string { return TagUser }

// ToFields flattens the user with its declared and dynamic fields.
func (u *User) ToFields() storagemodels.Fields {
	return u.flatten(TagUser, storagemodels.Fields{
		"email":      u.Email,
		"password":   u.Password,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
	})
}

// String renders the user as "[User] (<id>) map[...]".
func (u *User) String() string { return describe(u) }

// Set assigns a declared field by its stored name, or a dynamic field otherwise.
func (u *User) Set(name string, value interface{}) error { return Assign(u, name, value) }

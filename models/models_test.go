/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

// fakeStorage records calls made by records.
type fakeStorage struct {
	registered []storagemodels.Record
	saves      int
	newErr     error
	saveErr    error
}

func (f *fakeStorage) New(rec storagemodels.Record) error {
	if f.newErr != nil {
		return f.newErr
	}
	f.registered = append(f.registered, rec)
	return nil
}

func (f *fakeStorage) Save(ctx context.Context) error {
	f.saves++
	return f.saveErr
}

// normalize makes a field map look like it went through a JSON document.
func normalize(t *testing.T, f storagemodels.Fields) map[string]interface{} {
	t.Helper()
	b, err := json.Marshal(f)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestFreshRecordsAreRegistered(t *testing.T) {
	s := &fakeStorage{}

	for _, tag := range []string{TagBaseModel, TagUser, TagState, TagCity, TagAmenity, TagPlace, TagReview} {
		rec, err := Create(s, tag)
		require.NoError(t, err, tag)
		assert.Equal(t, tag, rec.TypeTag())
		assert.True(t, strfmt.IsUUID4(rec.RecordID()), "id %q is not a UUIDv4", rec.RecordID())
	}
	assert.Len(t, s.registered, 7)
}

func TestCreateUnknownKind(t *testing.T) {
	rec, err := Create(&fakeStorage{}, "Spaceship")
	assert.Nil(t, rec)
	assert.True(t, errors.IsUnknownType(err))
}

func TestFreshRecordRegistrationError(t *testing.T) {
	s := &fakeStorage{newErr: errors.NewTypeConsistencyError("register", "boom")}

	u, err := NewUser(s)
	assert.Nil(t, u)
	assert.True(t, errors.IsTypeConsistency(err))
}

func TestUniqueIDs(t *testing.T) {
	s := &fakeStorage{}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		m, err := NewBaseModel(s)
		require.NoError(t, err)
		require.False(t, seen[m.RecordID()], "duplicate id %s", m.RecordID())
		seen[m.RecordID()] = true
	}
}

func TestFreshTimestamps(t *testing.T) {
	before := time.Now().Truncate(time.Microsecond)
	m, err := NewBaseModel(nil)
	require.NoError(t, err)

	assert.Equal(t, m.CreatedAt, m.UpdatedAt)
	assert.False(t, m.CreatedAt.Before(before))
	assert.Zero(t, m.CreatedAt.Nanosecond()%1000)
}

func TestSaveRefreshesUpdatedAt(t *testing.T) {
	s := &fakeStorage{}
	p, err := NewPlace(s)
	require.NoError(t, err)

	created := p.CreatedAt
	first := p.UpdatedAt
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, p.Save(context.Background()))
	second := p.UpdatedAt
	assert.True(t, second.After(first))

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, p.Save(context.Background()))
	assert.True(t, p.UpdatedAt.After(second))

	assert.Equal(t, created, p.CreatedAt)
	assert.Equal(t, 2, s.saves)
}

func TestSaveDetachedRecord(t *testing.T) {
	m, err := NewBaseModel(nil)
	require.NoError(t, err)

	err = m.Save(context.Background())
	assert.True(t, errors.IsValidationError(err))
}

func TestSavePropagatesStorageError(t *testing.T) {
	ioErr := errors.NewNotFoundError("document", "file.json")
	s := &fakeStorage{saveErr: ioErr}
	u, err := NewUser(s)
	require.NoError(t, err)

	assert.Equal(t, ioErr, u.Save(context.Background()))
}

func TestToFields(t *testing.T) {
	u, err := NewUser(nil)
	require.NoError(t, err)
	u.Email = "a@b.com"
	require.NoError(t, u.Set("nickname", "ab"))

	f := u.ToFields()
	assert.Equal(t, TagUser, f[storagemodels.FieldClass])
	assert.Equal(t, u.RecordID(), f[storagemodels.FieldID])
	assert.Equal(t, storagemodels.FormatTimestamp(u.CreatedAt), f[storagemodels.FieldCreatedAt])
	assert.Equal(t, storagemodels.FormatTimestamp(u.UpdatedAt), f[storagemodels.FieldUpdatedAt])
	assert.Equal(t, "a@b.com", f["email"])
	assert.Equal(t, "", f["password"])
	assert.Equal(t, "ab", f["nickname"])

	for _, name := range []string{storagemodels.FieldClass, storagemodels.FieldID, storagemodels.FieldCreatedAt, storagemodels.FieldUpdatedAt} {
		_, ok := f[name].(string)
		assert.True(t, ok, "%s should be a string", name)
	}
}

func TestDeclaredDefaults(t *testing.T) {
	p, err := NewPlace(nil)
	require.NoError(t, err)

	f := p.ToFields()
	assert.Equal(t, "", f["name"])
	assert.Equal(t, 0, f["number_rooms"])
	assert.Equal(t, 0.0, f["latitude"])
	assert.Equal(t, []string{}, f["amenity_ids"])
}

func TestSetRejectsReservedNames(t *testing.T) {
	m, err := NewBaseModel(nil)
	require.NoError(t, err)

	for _, name := range []string{"", "__class__", "id", "created_at", "updated_at"} {
		assert.True(t, errors.IsValidationError(m.Set(name, "x")), name)
	}

	require.NoError(t, m.Set("color", "blue"))
	v, ok := m.Get("color")
	assert.True(t, ok)
	assert.Equal(t, "blue", v)
}

func TestString(t *testing.T) {
	s, err := NewState(nil)
	require.NoError(t, err)
	s.ID = "123456"
	s.Name = "California"

	out := s.String()
	assert.True(t, strings.HasPrefix(out, "[State] (123456) "), out)
	assert.Contains(t, out, "id:123456")
	assert.Contains(t, out, "name:California")
	assert.NotContains(t, out, "__class__")
}

func TestRebuildRoundTrip(t *testing.T) {
	s := &fakeStorage{}
	p, err := NewPlace(s)
	require.NoError(t, err)
	p.Name = "Loft"
	p.NumberRooms = 3
	p.Latitude = 37.77
	p.AmenityIDs = []string{"a1", "a2"}
	require.NoError(t, p.Set("pets", true))
	original := normalize(t, p.ToFields())

	rebuilt, err := RebuildPlace(s, storagemodels.Fields(original))
	require.NoError(t, err)

	if diff := cmp.Diff(original, normalize(t, rebuilt.ToFields())); diff != "" {
		t.Errorf("rebuilt place mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, rebuilt.NumberRooms)
	assert.Equal(t, []string{"a1", "a2"}, rebuilt.AmenityIDs)
	assert.Equal(t, true, rebuilt.Extra["pets"])
	assert.True(t, p.CreatedAt.Equal(rebuilt.CreatedAt))
	assert.True(t, p.UpdatedAt.Equal(rebuilt.UpdatedAt))

	// only the fresh place was registered
	assert.Len(t, s.registered, 1)
}

func TestRebuildKeepsNonUUIDIDs(t *testing.T) {
	dt := time.Date(2024, 1, 15, 10, 30, 0, 123456000, time.Local)
	iso := storagemodels.FormatTimestamp(dt)

	u, err := RebuildUser(nil, storagemodels.Fields{
		"id":         "345",
		"created_at": iso,
		"updated_at": iso,
		"email":      "x@y.z",
	})
	require.NoError(t, err)
	assert.Equal(t, "345", u.RecordID())
	assert.True(t, dt.Equal(u.CreatedAt))
	assert.True(t, dt.Equal(u.UpdatedAt))
	assert.Equal(t, "x@y.z", u.Email)
	assert.Empty(t, u.Extra)
}

func TestRebuildFailures(t *testing.T) {
	iso := "2024-01-15T10:30:00.123456"

	tests := []struct {
		name   string
		tag    string
		fields storagemodels.Fields
	}{
		{name: "missing id", fields: storagemodels.Fields{"created_at": iso, "updated_at": iso}},
		{name: "nil id", fields: storagemodels.Fields{"id": nil, "created_at": iso, "updated_at": iso}},
		{name: "numeric id", fields: storagemodels.Fields{"id": 5.0, "created_at": iso, "updated_at": iso}},
		{name: "nil created_at", fields: storagemodels.Fields{"id": "1", "created_at": nil, "updated_at": iso}},
		{name: "missing updated_at", fields: storagemodels.Fields{"id": "1", "created_at": iso}},
		{name: "malformed created_at", fields: storagemodels.Fields{"id": "1", "created_at": "2024-13-40T99:00:00", "updated_at": iso}},
		{name: "wrong declared type", fields: storagemodels.Fields{"id": "1", "created_at": iso, "updated_at": iso, "email": []interface{}{1}}},
		{name: "fractional int", tag: TagPlace, fields: storagemodels.Fields{"id": "1", "created_at": iso, "updated_at": iso, "number_rooms": 3.7}},
		{name: "int out of range", tag: TagPlace, fields: storagemodels.Fields{"id": "1", "created_at": iso, "updated_at": iso, "max_guest": 1e19}},
		{name: "string for int", tag: TagPlace, fields: storagemodels.Fields{"id": "1", "created_at": iso, "updated_at": iso, "number_rooms": "3"}},
		{name: "number for string", tag: TagPlace, fields: storagemodels.Fields{"id": "1", "created_at": iso, "updated_at": iso, "name": int64(3)}},
	}

	kinds := Kinds(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := tt.tag
			if tag == "" {
				tag = TagUser
			}
			construct, err := kinds.GetConstructor(tag, tag+".1")
			require.NoError(t, err)
			_, err = construct(tt.fields)
			require.Error(t, err)
			assert.True(t, errors.IsParseError(err), "got %v", err)
		})
	}
}

func TestRebuildAcceptsIntegralNumbers(t *testing.T) {
	iso := "2024-01-15T10:30:00.123456"
	p, err := RebuildPlace(nil, storagemodels.Fields{
		"id": "1", "created_at": iso, "updated_at": iso,
		"number_rooms": 3.0, "max_guest": int64(9007199254740993), "latitude": int64(12),
		"big": int64(9007199254740993),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, p.NumberRooms)
	assert.Equal(t, 9007199254740993, p.MaxGuest)
	assert.Equal(t, 12.0, p.Latitude)
	assert.Equal(t, int64(9007199254740993), p.Extra["big"])
}

func TestRebuildDoesNotMatchFieldNamesLoosely(t *testing.T) {
	iso := "2024-01-15T10:30:00.123456"
	u, err := RebuildUser(nil, storagemodels.Fields{
		"id": "1", "created_at": iso, "updated_at": iso,
		"Email": "upper@case.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "", u.Email)
	assert.Equal(t, "upper@case.com", u.Extra["Email"])
}

func TestKinds(t *testing.T) {
	s := &fakeStorage{}
	kinds := Kinds(s)

	assert.Equal(t, []string{"Amenity", "BaseModel", "City", "Place", "Review", "State", "User"}, kinds.Types())

	iso := "2024-01-15T10:30:00.123456"
	fn, err := kinds.GetConstructor(TagCity, "City.1")
	require.NoError(t, err)
	rec, err := fn(storagemodels.Fields{"__class__": "City", "id": "1", "created_at": iso, "updated_at": iso, "name": "SF"})
	require.NoError(t, err)

	city, ok := rec.(*City)
	require.True(t, ok)
	assert.Equal(t, "SF", city.Name)
	assert.Empty(t, s.registered)

	// rebuilt records stay attached to the store
	require.NoError(t, city.Save(context.Background()))
	assert.Equal(t, 1, s.saves)

	_, err = fn(storagemodels.Fields{"id": "1"})
	assert.True(t, errors.IsParseError(err))
}

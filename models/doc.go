/*
Package models defines the entity kinds persisted by recordstore: BaseModel,
User, State, City, Amenity, Place and Review.

Every kind embeds a Header carrying the id, the creation and update
timestamps and an open map of dynamic fields. A kind is built one of two ways:

	// Fresh: new UUIDv4 id, timestamps set to now, registered with the store.
	user, err := models.NewUser(store)

	// Reconstruction: parsed from a flattened record, never registered.
	user, err := models.RebuildUser(store, fields)

ToFields flattens a record for persistence, adding the "__class__" tag and
rendering timestamps with storagemodels.FormatTimestamp. Kinds returns the
dispatch table the persistence engine uses to rebuild records by tag.
*/
package models

/*
Package recordstore provides a small persistence layer for the entity kinds of
a lodging catalogue: BaseModel, User, State, City, Amenity, Place and Review.

Live records are tracked in an in-memory registry keyed by "<TypeTag>.<id>".
The whole registry is serialized on demand into a single JSON document and
reconstructed from it on startup, each record being rebuilt as its concrete
kind from the "__class__" tag stored with it.

Key Features:
  - One registry instance per process, passed to every constructor
  - Fixed dispatch table from type tag to reconstruction function
  - Dynamic fields that survive a save/reload round trip
  - Atomic file writes; optional DynamoDB backend
  - Semantic error types for arity, type consistency, unknown types and parsing

Basic Usage:

	store := recordstore.New(jsonfile.New("file.json"))
	if err := store.Reload(ctx); err != nil {
	    return err
	}

	user, err := models.NewUser(store)
	if err != nil {
	    return err
	}
	user.Email = "a@b.com"
	if err := user.Save(ctx); err != nil { // refreshes updated_at, writes every record
	    return err
	}

	for key, rec := range store.All() {
	    fmt.Println(key, rec)
	}
*/
package recordstore

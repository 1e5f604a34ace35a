/*
Package storagemodels defines the data structures shared by the registry, the
entity kinds and the persistence engine.

Key Types:

Record:
The contract an entity kind satisfies so it can be registered and persisted:

	type Record interface {
	    TypeTag() string   // "User"
	    RecordID() string  // "3f2a..."
	    ToFields() Fields  // flattened form, including "__class__"
	}

Fields and Document:
A flattened record and the persisted mapping from registry key to flattened
record:

	doc := Document{
	    "User.3f2a...": Fields{
	        "__class__":  "User",
	        "id":         "3f2a...",
	        "created_at": "2024-01-15T10:30:00.123456",
	        "updated_at": "2024-01-15T10:30:05.654321",
	        "email":      "a@b.com",
	    },
	}

Timestamps are local wall-clock values without a zone, at microsecond
precision (TimestampLayout).
*/
package storagemodels

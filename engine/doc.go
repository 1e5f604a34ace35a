/*
Package engine implements the persistence engine of recordstore.

The engine serializes the whole object registry into one document and
reconstructs the registry from it:

	eng := engine.New(objects, models.Kinds(store), jsonfile.New("file.json"))

	// write every live record
	if err := eng.Persist(ctx); err != nil {
	    return err
	}

	// on the next start
	if err := eng.Load(ctx); err != nil {
	    return err
	}

Each record is stored under its registry key with a "__class__" field naming
its kind. Load dispatches on that field through the type registry; records it
rebuilds are inserted directly into the object registry and never pass
through Register.
*/
package engine

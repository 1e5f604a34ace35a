/*
Package registry holds the two lookup tables of recordstore.

Object Registry:
Every live record of the process, keyed by "<TypeTag>.<id>":

	objects := registry.NewObjectRegistry()
	if err := objects.Register(user); err != nil {
	    // nil or untyped record
	}
	for key, rec := range objects.All() {
	    fmt.Println(key, rec.TypeTag())
	}

All returns the live map, not a copy. Records rebuilt from a persisted
document are inserted with Put, which bypasses the checks of Register.

Type Registry:
Maps type tags to reconstruction functions used when a document is loaded:

	kinds := registry.NewTypeRegistry()
	kinds.RegisterType("User", func(f storagemodels.Fields) (storagemodels.Record, error) {
	    return models.RebuildUser(store, f)
	})

The type registry is populated once during initialization; registering the
same tag twice panics. Neither table is safe for concurrent use.
*/
package registry

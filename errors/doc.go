/*
Package errors provides semantic error types for the recordstore library.

The package defines the failure taxonomy of the registry and the persistence
engine. Every error can be checked with the standard errors.Is() function or
the provided helper functions.

Common Errors:

	var (
	    ErrNotFound        = errors.New("not found")
	    ErrInvalidInput    = errors.New("invalid input")
	    ErrArity           = errors.New("wrong number of arguments")
	    ErrTypeConsistency = errors.New("value is not a well-formed record")
	    ErrUnknownType     = errors.New("unknown type tag")
	    ErrParse           = errors.New("parse error")
	)

Usage:

	if err := store.Load(ctx); err != nil {
	    if errors.IsUnknownType(err) {
	        // the document was written by a build with more kinds
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewUnknownTypeError("Spaceship", "Spaceship.42")
	err := errors.NewParseError("User.42", "created_at", "yesterday", cause)
	err := errors.CheckArity("show", 2, 2, len(args))

I/O failures are never converted into one of these types; they reach the
caller unchanged apart from added context.
*/
package errors

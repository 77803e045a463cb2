package reactive

import "errors"

// Warnings are advisory; they are counted, and in debug mode logged and
// handed to the warning handler. None of them is ever returned as a failure
// of the operation that raised it.
var (
	// ErrInvalidTarget is reported when a value that cannot be wrapped is
	// passed to Wrap. The value is returned unchanged.
	ErrInvalidTarget = errors.New("reactive: value cannot be made reactive")

	// ErrReadonly is reported when a mutation goes through a readonly
	// wrapper or a computed without a setter. The mutation reports success
	// and changes nothing.
	ErrReadonly = errors.New("reactive: target is readonly")

	// ErrIdentityAmbiguity is reported when a collection holds both the raw
	// and the wrapped form of the same object as distinct keys.
	ErrIdentityAmbiguity = errors.New("reactive: raw and reactive versions of the same object used as keys")

	// ErrUnsupported is reported when a collection method is called on a
	// kind that does not have it, such as Add on a map.
	ErrUnsupported = errors.New("reactive: operation not supported by target")
)

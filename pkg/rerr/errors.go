// Package rerr collects sentinel errors named after the renderer's
// error kinds, so callers can compare with errors.Is instead of
// matching on message text. Of these, only ErrClipOverflow is returned
// by code in this module (pkg/pipeline); the others are declared but
// not returned anywhere.
package rerr

import "errors"

var (
	// ErrAllocatorNotInitialized is returned when a component that
	// requires the working arena is used before Start has run.
	ErrAllocatorNotInitialized = errors.New("rasterkit: allocator not initialized")

	// ErrAllocatorAlreadyInitialized is returned by a second call to
	// whatever sets up the working arena.
	ErrAllocatorAlreadyInitialized = errors.New("rasterkit: allocator already initialized")

	// ErrInvalidPointer marks a nil value where one isn't allowed.
	ErrInvalidPointer = errors.New("rasterkit: invalid pointer")

	// ErrDoubleFree marks a release of an already-released resource.
	// Non-fatal: callers may log and continue.
	ErrDoubleFree = errors.New("rasterkit: double free")

	// ErrRequestedAmountIsZero is returned when an allocation or
	// buffer size of zero is requested where that can't be honored.
	ErrRequestedAmountIsZero = errors.New("rasterkit: requested amount is zero")

	// ErrExceedsAvailableMemory is returned when a requested
	// allocation is larger than the configured working arena.
	ErrExceedsAvailableMemory = errors.New("rasterkit: requested amount exceeds available memory")

	// ErrAllocatedObjectsExceeded is returned when registering another
	// managed object would exceed the configured capacity.
	ErrAllocatedObjectsExceeded = errors.New("rasterkit: allocated objects exceeded")

	// ErrMissingFilepath is returned when a loader is given an empty
	// or nonexistent path.
	ErrMissingFilepath = errors.New("rasterkit: missing filepath")

	// ErrLoaderFailure wraps an underlying mesh/texture decode
	// failure.
	ErrLoaderFailure = errors.New("rasterkit: loader failure")

	// ErrClipOverflow is returned when a triangle's clip-plane
	// splitting would exceed the fixed-size scratch array.
	ErrClipOverflow = errors.New("rasterkit: clip triangle scratch overflow")
)

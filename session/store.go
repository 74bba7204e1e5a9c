package session

import "context"

// Store is durable storage for at most one identity record, surviving
// process restarts. Implementations are self-healing: a stored value that
// fails strict decoding is reported as absent and purged, never surfaced
// as an error.
//
// Only the Controller reads or writes the Store. Guards and presentation
// code observe session state instead.
type Store interface {
	// Read returns the persisted identity and true when a well-formed
	// record exists. A missing or malformed record yields (Identity{},
	// false); a malformed record is additionally cleared in place.
	Read(ctx context.Context) (Identity, bool)

	// Write replaces the persisted record with the given identity.
	Write(ctx context.Context, ident Identity) error

	// Clear removes the persisted record. Clearing an empty store is a
	// no-op.
	Clear(ctx context.Context) error
}

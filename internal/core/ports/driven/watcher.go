package driven

import "context"

// ChangeWatcher signals when a source location changes.
type ChangeWatcher interface {
	// Watch emits one value per settled change to location until ctx is
	// done, then closes the channel. Bursts of filesystem events are
	// coalesced into a single signal.
	Watch(ctx context.Context, location string) (<-chan struct{}, error)
}

package eventstream

import "context"

// Publisher delivers ingestion events to a stream backend.
type Publisher interface {
	// PublishDocumentIngested sends one event. Delivery is best effort from
	// the caller's point of view; ingestion does not roll back on failure.
	PublishDocumentIngested(ctx context.Context, event *DocumentIngestedEvent) error

	// Close flushes and releases the backend connection.
	Close() error
}

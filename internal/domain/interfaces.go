package domain

// BlobStore is the opaque byte store the Persistence Gateway writes through.
// Production uses SQLite; tests use an in-memory fake.
type BlobStore interface {
	// ReadBlob returns the named blob, or ErrBlobNotFound if it has never
	// been written.
	ReadBlob(name string) ([]byte, error)
	// WriteBlob replaces the named blob atomically.
	WriteBlob(name string, data []byte) error
}

// Notifier delivers completion notices to the user. Delivery is best-effort:
// the store logs failures and never blocks or rolls back on them.
type Notifier interface {
	NotifyCompletion(taskName string) error
}

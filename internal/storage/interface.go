package storage

// Provider is the key-value persistence port. Domain stores serialize their
// records to JSON and read/write them through fixed keys; the backend never
// interprets the blobs it holds.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error

	// Utils
	ConfigPath() string
}

package port

//go:generate mockgen -source=store_port.go -destination=../mocks/mock_store_port.go

import "context"

// RecordStore is the durable string-keyed key-value surface the session
// record is persisted to. Get reports presence explicitly so an absent key
// is not an error. Only the session lifecycle manager writes to it.
type RecordStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

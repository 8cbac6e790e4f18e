package store

import "context"

// StorageKey is the fixed key the document lives under, kept from the
// original deployment so existing data keeps working.
const StorageKey = "BARRA_BUSINESS_DB"

// Backend persists the whole document as one opaque JSON blob under the
// fixed storage key. Load returns nil bytes when nothing has been stored
// yet.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Package storage holds the receipt blob store boundary.
package storage

import "context"

// Uploader stores a blob under path and returns its public URL. The returned
// URL ends up on the transaction record; the core never reads blobs back.
type Uploader interface {
	Upload(ctx context.Context, path string, data []byte) (string, error)
}

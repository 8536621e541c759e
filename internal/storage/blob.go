package storage

import "io"

// BlobStore holds exported dataset snapshots.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
}

package ingestion

import "errors"

var (
	// ErrCatalogRepositoryRequired is returned when a catalog repository is not provided.
	ErrCatalogRepositoryRequired = errors.New("catalog repository required")

	// ErrContentRepositoryRequired is returned when a content repository is not provided.
	ErrContentRepositoryRequired = errors.New("content repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")
)

package badger

import (
	"context"
	"slices"

	"github.com/coursechat/coursechat/core"
	"github.com/coursechat/coursechat/storage"
	"github.com/dgraph-io/badger/v4"
)

// ContentRepository implements storage.ContentRepository for BadgerDB.
type ContentRepository struct {
	backend *Backend
}

var _ storage.ContentRepository = (*ContentRepository)(nil)

// NewContentRepository creates a new ContentRepository.
func NewContentRepository(backend *Backend) (*ContentRepository, error) {
	return &ContentRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ContentRepository has no resources to release.
func (r *ContentRepository) Close() error {
	return nil
}

// AddChunks adds one or more chunks to the content collection. The key is
// derived from the course title and chunk index, so re-adding a course's
// chunks overwrites the previous generation slot by slot.
func (r *ContentRepository) AddChunks(ctx context.Context, chunks ...*core.Chunk) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			key := makeChunkKey(core.IDFromContent(chunk.CourseTitle), chunk.ChunkIndex)
			value := storage.MarshalChunk(chunk)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// FindSimilar finds the chunks nearest to the given vector among those
// matching the filter. Results are ordered by descending similarity; equal
// scores are broken by ascending chunk index so ranking is deterministic.
func (r *ContentRepository) FindSimilar(ctx context.Context, vector []float32, filter storage.ChunkFilter, limit int) ([]*core.ScoredChunk, error) {
	results := []*core.ScoredChunk{}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var chunk *core.Chunk
			err := iter.Item().Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalChunk(val)
				return err
			})
			if err != nil {
				return err
			}
			if chunk == nil || !filter.Matches(chunk) {
				continue
			}

			// Skip chunks without embeddings
			if len(chunk.Vector) == 0 {
				continue
			}

			results = append(results, &core.ScoredChunk{
				Chunk: chunk,
				Score: dotProduct(vector, chunk.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *core.ScoredChunk) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return a.Chunk.ChunkIndex - b.Chunk.ChunkIndex
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// DeleteCourseChunks removes every chunk belonging to the given course.
func (r *ContentRepository) DeleteCourseChunks(ctx context.Context, courseTitle string) error {
	prefix := makePartialChunkKey(core.IDFromContent(courseTitle))

	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)

		var keys [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

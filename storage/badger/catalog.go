package badger

import (
	"bytes"
	"context"
	"slices"

	"github.com/coursechat/coursechat/core"
	"github.com/coursechat/coursechat/storage"
	"github.com/dgraph-io/badger/v4"
)

// CatalogRepository implements storage.CatalogRepository for BadgerDB.
type CatalogRepository struct {
	backend *Backend
}

var _ storage.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(backend *Backend) (*CatalogRepository, error) {
	return &CatalogRepository{
		backend: backend,
	}, nil
}

// Close releases resources. CatalogRepository has no resources to release.
func (r *CatalogRepository) Close() error {
	return nil
}

// AddCourses adds one or more courses to the catalog. A course with the
// same title overwrites the previous entry, keeping ingestion idempotent.
func (r *CatalogRepository) AddCourses(ctx context.Context, courses ...*core.Course) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, course := range courses {
			key := makeCourseKey(course.ID())
			value := storage.MarshalCourse(course)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetCourse retrieves a course by its exact canonical title.
func (r *CatalogRepository) GetCourse(ctx context.Context, title string) (*core.Course, error) {
	var result *core.Course
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCourseKey(core.IDFromContent(title))
		var err error
		result, err = readCourse(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// HasCourse reports whether a course with the given title is indexed.
func (r *CatalogRepository) HasCourse(ctx context.Context, title string) (bool, error) {
	var found bool
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeCourseKey(core.IDFromContent(title)))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		found = true
		return nil
	}, false)
	return found, err
}

// ListCourseTitles returns all indexed course titles in lexical order.
func (r *CatalogRepository) ListCourseTitles(ctx context.Context) ([]string, error) {
	titles := []string{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(coursePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var course *core.Course
			err := iter.Item().Value(func(val []byte) error {
				var err error
				course, err = storage.UnmarshalCourse(val)
				return err
			})
			if err != nil {
				return err
			}
			if course != nil {
				titles = append(titles, course.Title)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.Sort(titles)
	return titles, nil
}

// FindSimilar finds the courses whose title embeddings are nearest to the
// given vector. No similarity threshold is applied: the best match wins
// even when it is a poor one, which is what makes short fragments like
// "MCP" resolve to full titles.
func (r *CatalogRepository) FindSimilar(ctx context.Context, vector []float32, limit int) ([]*core.CourseMatch, error) {
	results := []*core.CourseMatch{}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(coursePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var course *core.Course
			err := iter.Item().Value(func(val []byte) error {
				var err error
				course, err = storage.UnmarshalCourse(val)
				return err
			})
			if err != nil {
				return err
			}
			if course == nil || len(course.Vector) == 0 {
				continue
			}

			results = append(results, &core.CourseMatch{
				Course: course,
				Score:  dotProduct(vector, course.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Sort by similarity descending, ties by title ascending
	slices.SortFunc(results, func(a, b *core.CourseMatch) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return bytes.Compare([]byte(a.Course.Title), []byte(b.Course.Title))
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// DeleteCourse removes the catalog entry for the given title.
func (r *CatalogRepository) DeleteCourse(ctx context.Context, title string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCourseKey(core.IDFromContent(title))
		if _, err := tx.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// readCourse reads a course from the transaction.
func readCourse(tx *badger.Txn, key []byte) (*core.Course, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var course *core.Course
	err = item.Value(func(val []byte) error {
		var err error
		course, err = storage.UnmarshalCourse(val)
		return err
	})
	return course, err
}

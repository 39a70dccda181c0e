package storage

import (
	"context"

	"github.com/coursechat/coursechat/core"
)

// ChunkFilter restricts a content search to chunks matching the given
// metadata. Zero-valued fields match everything; when both constraints are
// set they are AND'ed.
type ChunkFilter struct {
	// CourseTitle, when non-empty, requires an exact match on the chunk's
	// course back-reference.
	CourseTitle string

	// LessonNumber, when non-nil, requires an exact match on the chunk's
	// lesson number. A pointer distinguishes "no filter" from lesson 0.
	LessonNumber *int
}

// Matches reports whether the chunk satisfies every set constraint.
func (f ChunkFilter) Matches(chunk *core.Chunk) bool {
	if f.CourseTitle != "" && chunk.CourseTitle != f.CourseTitle {
		return false
	}
	if f.LessonNumber != nil && chunk.LessonNumber != *f.LessonNumber {
		return false
	}
	return true
}

// CatalogRepository stores one entry per course, embedded over the title.
// The catalog is used only for fuzzy course-name resolution and outline
// lookups, never for content retrieval.
// Implementations must be thread-safe and support concurrent access.
type CatalogRepository interface {
	// AddCourses adds one or more courses to the catalog.
	// An existing course with the same title is overwritten.
	AddCourses(ctx context.Context, courses ...*core.Course) error

	// GetCourse retrieves a course by its exact canonical title.
	// Returns ErrNotFound if the course doesn't exist.
	GetCourse(ctx context.Context, title string) (*core.Course, error)

	// HasCourse reports whether a course with the given title is indexed.
	HasCourse(ctx context.Context, title string) (bool, error)

	// ListCourseTitles returns all indexed course titles in lexical order.
	// An empty catalog yields an empty slice, not an error.
	ListCourseTitles(ctx context.Context) ([]string, error)

	// FindSimilar finds the courses whose title embeddings are nearest to
	// the given vector, ordered by descending similarity with ties broken
	// by ascending title. Returns up to limit matches; an empty catalog
	// yields an empty slice, not an error.
	FindSimilar(ctx context.Context, vector []float32, limit int) ([]*core.CourseMatch, error)

	// DeleteCourse removes the catalog entry for the given title.
	// Returns ErrNotFound if the course doesn't exist.
	DeleteCourse(ctx context.Context, title string) error

	// Close releases resources held by the repository.
	Close() error
}

// ContentRepository stores one entry per chunk, embedded over the chunk
// text. Implementations must be thread-safe and support concurrent access.
type ContentRepository interface {
	// AddChunks adds one or more chunks. A chunk occupying the same
	// course/index slot as an existing one overwrites it.
	AddChunks(ctx context.Context, chunks ...*core.Chunk) error

	// FindSimilar finds the chunks nearest to the given vector among those
	// matching the filter, ordered by descending similarity with ties
	// broken by ascending chunk index. Returns up to limit results; an
	// empty collection yields an empty slice, not an error.
	FindSimilar(ctx context.Context, vector []float32, filter ChunkFilter, limit int) ([]*core.ScoredChunk, error)

	// DeleteCourseChunks removes every chunk belonging to the given
	// course. Deleting a course with no chunks is a no-op.
	DeleteCourseChunks(ctx context.Context, courseTitle string) error

	// Close releases resources held by the repository.
	Close() error
}

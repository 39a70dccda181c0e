package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coursechat/coursechat/ai"
	"github.com/coursechat/coursechat/core"
	"github.com/coursechat/coursechat/storage"
)

// DefaultMaxResults is how many chunks a search returns when no limit
// option is given.
const DefaultMaxResults = 5

// Request describes one content search. CourseName may be a partial
// course title; LessonNumber is nil when no lesson filter applies
// (lesson 0 is a valid filter).
type Request struct {
	Query        string
	CourseName   string
	LessonNumber *int
}

// Searcher runs semantic searches over the course catalog and content
// collections.
type Searcher struct {
	catalog    storage.CatalogRepository
	content    storage.ContentRepository
	embedder   ai.Embedder
	maxResults int
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithMaxResults sets how many chunks a search returns.
// Default is DefaultMaxResults.
func WithMaxResults(n int) Option {
	return func(s *Searcher) error {
		if n < 1 {
			return fmt.Errorf("max results must be positive, got %d", n)
		}
		s.maxResults = n
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	catalog storage.CatalogRepository,
	content storage.ContentRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Searcher, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}
	if content == nil {
		return nil, ErrContentRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		catalog:    catalog,
		content:    content,
		embedder:   embedder,
		maxResults: DefaultMaxResults,
		logger:     slog.Default().With("component", "searcher"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ResolveCourseName resolves a possibly partial or misspelled course
// name to the best matching catalog title by embedding the name and
// taking the most similar course. The best match is accepted
// unconditionally; resolution fails only when the catalog is empty.
func (s *Searcher) ResolveCourseName(ctx context.Context, name string) (string, error) {
	vector, err := s.embedder.EmbedText(ctx, name)
	if err != nil {
		s.logger.Error("error embedding course name", "name", name, "err", err)
		return "", err
	}

	matches, err := s.catalog.FindSimilar(ctx, vector, 1)
	if err != nil {
		s.logger.Error("error resolving course name", "name", name, "err", err)
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %q", ErrCourseNotFound, name)
	}

	s.logger.Debug("resolved course name",
		"name", name,
		"resolved", matches[0].Course.Title,
		"score", matches[0].Score)

	return matches[0].Course.Title, nil
}

// Search finds the chunks most similar to the request query, filtered
// by course and lesson when those are set. A request naming a course
// resolves it against the catalog first; an unresolvable course name
// returns ErrCourseNotFound. An empty index yields an empty result,
// not an error.
func (s *Searcher) Search(ctx context.Context, req *Request) ([]*core.ScoredChunk, error) {
	filter := storage.ChunkFilter{LessonNumber: req.LessonNumber}

	if req.CourseName != "" {
		title, err := s.ResolveCourseName(ctx, req.CourseName)
		if err != nil {
			return nil, err
		}
		filter.CourseTitle = title
	}

	vector, err := s.embedder.EmbedText(ctx, req.Query)
	if err != nil {
		s.logger.Error("error embedding query", "query", req.Query, "err", err)
		return nil, err
	}

	results, err := s.content.FindSimilar(ctx, vector, filter, s.maxResults)
	if err != nil {
		s.logger.Error("error querying for similar chunks", "err", err)
		return nil, err
	}

	s.logger.Debug("content search complete",
		"query", req.Query,
		"course", filter.CourseTitle,
		"hits", len(results))

	return results, nil
}

// Course resolves a course name fragment and returns the full catalog
// entry, including its lesson list and links.
func (s *Searcher) Course(ctx context.Context, name string) (*core.Course, error) {
	title, err := s.ResolveCourseName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.catalog.GetCourse(ctx, title)
}

// LessonLink returns the link for a lesson of the given course title,
// or "" when the course or lesson has none recorded.
func (s *Searcher) LessonLink(ctx context.Context, courseTitle string, lessonNumber int) string {
	course, err := s.catalog.GetCourse(ctx, courseTitle)
	if err != nil {
		return ""
	}
	return course.LessonLink(lessonNumber)
}

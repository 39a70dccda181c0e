package ingestion

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/coursechat/coursechat/ai"
	"github.com/coursechat/coursechat/chunker"
	"github.com/coursechat/coursechat/core"
	"github.com/coursechat/coursechat/storage"
)

// DefaultBatchSize is how many chunk texts go to the embedder in one
// request.
const DefaultBatchSize = 32

// Pipeline ingests course transcripts: it parses documents, chunks
// lesson text, generates embeddings concurrently, and writes the
// results to the catalog and content collections.
type Pipeline struct {
	catalog   storage.CatalogRepository
	content   storage.ContentRepository
	embedder  ai.Embedder
	chunker   *chunker.Chunker
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many chunk texts go to the embedder per request.
// Default is DefaultBatchSize.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("batch size must be positive, got %d", size)
		}
		p.batchSize = size
		return nil
	}
}

// WithChunker sets a custom chunker.
// Default uses the chunker package defaults.
func WithChunker(c *chunker.Chunker) Option {
	return func(p *Pipeline) error {
		if c == nil {
			return fmt.Errorf("chunker must not be nil")
		}
		p.chunker = c
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	catalog storage.CatalogRepository,
	content storage.ContentRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Pipeline, error) {
	if catalog == nil {
		return nil, ErrCatalogRepositoryRequired
	}
	if content == nil {
		return nil, ErrContentRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	defaultChunker, err := chunker.New()
	if err != nil {
		pool.Release()
		return nil, err
	}

	p := &Pipeline{
		catalog:   catalog,
		content:   content,
		embedder:  embedder,
		chunker:   defaultChunker,
		pool:      pool,
		batchSize: DefaultBatchSize,
		logger:    slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// AddCourseFile ingests a single course transcript. Ingestion is
// idempotent: a course whose title is already in the catalog is
// skipped. Returns the parsed course and the number of chunks indexed
// (zero when skipped).
func (p *Pipeline) AddCourseFile(ctx context.Context, path string) (*core.Course, int, error) {
	doc, err := chunker.ParseFile(path)
	if err != nil {
		return nil, 0, err
	}
	if err := core.ValidateCourse(&doc.Course); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	exists, err := p.catalog.HasCourse(ctx, doc.Course.Title)
	if err != nil {
		return nil, 0, err
	}
	if exists {
		p.logger.Info("course already indexed, skipping", "title", doc.Course.Title)
		return &doc.Course, 0, nil
	}

	chunks := p.chunker.ChunkDocument(doc)

	if err := p.embedChunks(ctx, chunks); err != nil {
		return nil, 0, err
	}

	titleVector, err := p.embedder.EmbedText(ctx, doc.Course.Title)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to embed course title: %w", err)
	}
	doc.Course.Vector = titleVector

	if err := p.catalog.AddCourses(ctx, &doc.Course); err != nil {
		return nil, 0, err
	}

	chunkPtrs := make([]*core.Chunk, len(chunks))
	for i := range chunks {
		chunkPtrs[i] = &chunks[i]
	}
	if err := p.content.AddChunks(ctx, chunkPtrs...); err != nil {
		return nil, 0, err
	}

	p.logger.Info("course indexed",
		"title", doc.Course.Title,
		"lessons", len(doc.Course.Lessons),
		"chunks", len(chunks))

	return &doc.Course, len(chunks), nil
}

// AddCourseFolder ingests every .txt transcript in dir, skipping files
// that fail to parse or embed. A per-file failure is logged and does
// not stop the rest of the folder. Returns the courses ingested or
// skipped as already present, and the total number of new chunks.
func (p *Pipeline) AddCourseFolder(ctx context.Context, dir string, progress *ProgressTracker) ([]*core.Course, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read course folder: %w", err)
	}

	files := transcriptFiles(entries)
	sort.Strings(files)

	if progress != nil {
		progress.SetTotal(len(files))
		progress.Start()
	}

	var courses []*core.Course
	totalChunks := 0

	for _, name := range files {
		course, chunks, err := p.AddCourseFile(ctx, filepath.Join(dir, name))
		if err != nil {
			p.logger.Error("failed to ingest course file", "file", name, "err", err)
		} else {
			courses = append(courses, course)
			totalChunks += chunks
		}
		if progress != nil {
			progress.Increment(1)
		}
	}

	if progress != nil {
		progress.Finish()
	}

	return courses, totalChunks, nil
}

// RemoveCourse deletes a course and all its content chunks.
func (p *Pipeline) RemoveCourse(ctx context.Context, title string) error {
	if err := p.content.DeleteCourseChunks(ctx, title); err != nil {
		return err
	}
	return p.catalog.DeleteCourse(ctx, title)
}

// Clear removes every course and all indexed content, leaving an empty
// index. Used before a full rebuild.
func (p *Pipeline) Clear(ctx context.Context) error {
	titles, err := p.catalog.ListCourseTitles(ctx)
	if err != nil {
		return err
	}

	for _, title := range titles {
		if err := p.RemoveCourse(ctx, title); err != nil {
			return fmt.Errorf("failed to remove course %q: %w", title, err)
		}
	}

	if len(titles) > 0 {
		p.logger.Info("index cleared", "courses", len(titles))
	}
	return nil
}

// embedChunks fills in chunk vectors, embedding batches concurrently
// on the worker pool. The first batch error wins; later failures for
// the same course are redundant.
func (p *Pipeline) embedChunks(ctx context.Context, chunks []core.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for start := 0; start < len(chunks); start += p.batchSize {
		end := start + p.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for i := range batch {
				texts[i] = batch[i].Content
			}

			vectors, err := p.embedder.EmbedTexts(ctx, texts)
			if err == nil && len(vectors) != len(batch) {
				err = fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(batch))
			}
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				return
			}

			for i := range batch {
				batch[i].Vector = vectors[i]
			}
		})
		if submitErr != nil {
			wg.Done()
			errOnce.Do(func() { firstErr = submitErr })
		}
	}

	wg.Wait()
	return firstErr
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// transcriptFiles selects the transcript file names from a directory
// listing.
func transcriptFiles(entries []fs.DirEntry) []string {
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			files = append(files, entry.Name())
		}
	}
	return files
}

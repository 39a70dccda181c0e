package ingestion

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/coursechat/coursechat/ai/mock"
	"github.com/coursechat/coursechat/storage"
	"github.com/coursechat/coursechat/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transcript = `Course Title: Introduction to MCP
Course Link: https://example.com/mcp
Course Instructor: Ada Example

Lesson 0: Welcome
Lesson Link: https://example.com/mcp/0
Welcome to the course. This lesson introduces the Model Context Protocol.

Lesson 1: Tools
Tools let the model call back into your application. They are declared with schemas.
`

func writeTranscript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestPipeline(t *testing.T, opts ...Option) (*Pipeline, storage.CatalogRepository, storage.ContentRepository) {
	t.Helper()

	catalog, content, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	p, err := NewPipeline(catalog, content, mock.NewMockEmbedder(), opts...)
	require.NoError(t, err)
	t.Cleanup(p.Release)

	return p, catalog, content
}

func TestAddCourseFile(t *testing.T) {
	p, catalog, content := newTestPipeline(t)
	path := writeTranscript(t, t.TempDir(), "mcp.txt", transcript)

	ctx := context.Background()
	course, chunks, err := p.AddCourseFile(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, "Introduction to MCP", course.Title)
	assert.Greater(t, chunks, 0)

	stored, err := catalog.GetCourse(ctx, "Introduction to MCP")
	require.NoError(t, err)
	assert.Len(t, stored.Lessons, 2)
	assert.NotEmpty(t, stored.Vector)
	assert.Equal(t, "https://example.com/mcp/0", stored.Lessons[0].Link)

	// Chunks are searchable and carry vectors
	results, err := content.FindSimilar(ctx, stored.Vector, storage.ChunkFilter{}, 10)
	require.NoError(t, err)
	assert.Len(t, results, chunks)
	for _, r := range results {
		assert.NotEmpty(t, r.Chunk.Vector)
	}
}

func TestAddCourseFileIdempotent(t *testing.T) {
	p, _, _ := newTestPipeline(t)
	path := writeTranscript(t, t.TempDir(), "mcp.txt", transcript)

	ctx := context.Background()
	_, first, err := p.AddCourseFile(ctx, path)
	require.NoError(t, err)
	assert.Greater(t, first, 0)

	course, second, err := p.AddCourseFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "Introduction to MCP", course.Title)
	assert.Zero(t, second, "re-ingesting an indexed course must be a no-op")
}

func TestAddCourseFileBadFormat(t *testing.T) {
	p, _, _ := newTestPipeline(t)
	path := writeTranscript(t, t.TempDir(), "broken.txt", "no header here\njust text\n")

	_, _, err := p.AddCourseFile(context.Background(), path)
	assert.Error(t, err)
}

func TestAddCourseFolder(t *testing.T) {
	p, catalog, _ := newTestPipeline(t)
	dir := t.TempDir()
	writeTranscript(t, dir, "mcp.txt", transcript)
	writeTranscript(t, dir, "other.txt",
		"Course Title: Advanced Retrieval\n\nLesson 0: Ranking\nScores order results.\n")
	writeTranscript(t, dir, "broken.txt", "not a transcript\n")
	writeTranscript(t, dir, "notes.md", "ignored, wrong extension\n")

	ctx := context.Background()
	courses, chunks, err := p.AddCourseFolder(ctx, dir, nil)
	require.NoError(t, err)

	// The broken file is skipped, the rest are indexed
	assert.Len(t, courses, 2)
	assert.Greater(t, chunks, 0)

	titles, err := catalog.ListCourseTitles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Advanced Retrieval", "Introduction to MCP"}, titles)
}

func TestAddCourseFolderWithProgress(t *testing.T) {
	p, _, _ := newTestPipeline(t)
	dir := t.TempDir()
	writeTranscript(t, dir, "mcp.txt", transcript)

	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 1)

	_, _, err := p.AddCourseFolder(context.Background(), dir, tracker)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Progress: 1/1")
}

func TestAddCourseFolderMissingDir(t *testing.T) {
	p, _, _ := newTestPipeline(t)

	_, _, err := p.AddCourseFolder(context.Background(), "/nonexistent/courses", nil)
	assert.Error(t, err)
}

func TestRemoveCourse(t *testing.T) {
	p, catalog, content := newTestPipeline(t)
	path := writeTranscript(t, t.TempDir(), "mcp.txt", transcript)

	ctx := context.Background()
	course, _, err := p.AddCourseFile(ctx, path)
	require.NoError(t, err)

	require.NoError(t, p.RemoveCourse(ctx, course.Title))

	exists, err := catalog.HasCourse(ctx, course.Title)
	require.NoError(t, err)
	assert.False(t, exists)

	results, err := content.FindSimilar(ctx, []float32{1, 0, 0}, storage.ChunkFilter{}, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestClear(t *testing.T) {
	p, catalog, content := newTestPipeline(t)
	dir := t.TempDir()
	writeTranscript(t, dir, "mcp.txt", transcript)
	writeTranscript(t, dir, "other.txt",
		"Course Title: Advanced Retrieval\n\nLesson 0: Ranking\nScores order results.\n")

	ctx := context.Background()
	courses, _, err := p.AddCourseFolder(ctx, dir, nil)
	require.NoError(t, err)
	require.Len(t, courses, 2)

	require.NoError(t, p.Clear(ctx))

	titles, err := catalog.ListCourseTitles(ctx)
	require.NoError(t, err)
	assert.Empty(t, titles)

	results, err := content.FindSimilar(ctx, []float32{1, 0, 0}, storage.ChunkFilter{}, 10)
	require.NoError(t, err)
	assert.Empty(t, results)

	// A cleared index accepts a full re-ingest
	courses, chunks, err := p.AddCourseFolder(ctx, dir, nil)
	require.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.Greater(t, chunks, 0)
}

func TestClearEmptyIndex(t *testing.T) {
	p, _, _ := newTestPipeline(t)
	assert.NoError(t, p.Clear(context.Background()))
}

func TestEmbedderFailureAborts(t *testing.T) {
	catalog, content, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, assert.AnError
	}

	p, err := NewPipeline(catalog, content, embedder)
	require.NoError(t, err)
	t.Cleanup(p.Release)

	path := writeTranscript(t, t.TempDir(), "mcp.txt", transcript)
	_, _, err = p.AddCourseFile(context.Background(), path)
	require.Error(t, err)

	// Nothing was written for the failed course
	exists, err := catalog.HasCourse(context.Background(), "Introduction to MCP")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewPipelineValidation(t *testing.T) {
	catalog, content, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	_, err = NewPipeline(nil, content, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrCatalogRepositoryRequired)

	_, err = NewPipeline(catalog, nil, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrContentRepositoryRequired)

	_, err = NewPipeline(catalog, content, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)

	_, err = NewPipeline(catalog, content, mock.NewMockEmbedder(), WithBatchSize(0))
	assert.Error(t, err)
}

func TestChunksRespectSizeBound(t *testing.T) {
	p, _, content := newTestPipeline(t)

	long := "Course Title: Long Course\n\nLesson 0: Length\n"
	for i := 0; i < 200; i++ {
		long += "This sentence pads the lesson body with enough text to require several chunks. "
	}
	path := writeTranscript(t, t.TempDir(), "long.txt", long)

	ctx := context.Background()
	_, chunks, err := p.AddCourseFile(ctx, path)
	require.NoError(t, err)
	assert.Greater(t, chunks, 1)

	results, err := content.FindSimilar(ctx, []float32{1, 0, 0}, storage.ChunkFilter{}, chunks)
	require.NoError(t, err)
	for _, r := range results {
		assert.LessOrEqual(t, len(r.Chunk.Content), 800)
	}
}

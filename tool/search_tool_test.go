package tool

import (
	"context"
	"testing"

	"github.com/coursechat/coursechat/ai/mock"
	"github.com/coursechat/coursechat/core"
	"github.com/coursechat/coursechat/search"
	"github.com/coursechat/coursechat/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureSearcher builds a searcher over an in-memory index with one
// course and two chunks, using fixed vectors so ranking is stable.
func fixtureSearcher(t *testing.T) *search.Searcher {
	t.Helper()

	catalog, content, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	ctx := context.Background()
	require.NoError(t, catalog.AddCourses(ctx, []*core.Course{{
		Title:  "Introduction to MCP",
		Link:   "https://example.com/mcp",
		Vector: []float32{1, 0, 0},
		Lessons: []core.Lesson{
			{Number: 0, Title: "Welcome", Link: "https://example.com/mcp/0"},
			{Number: 1, Title: "Tools", Link: "https://example.com/mcp/1"},
		},
	}}...))
	require.NoError(t, content.AddChunks(ctx, []*core.Chunk{
		{Content: "Lesson 0 content: MCP basics.", CourseTitle: "Introduction to MCP", LessonNumber: 0, ChunkIndex: 0, Vector: []float32{1, 0, 0}},
		{Content: "Tools call back into your app.", CourseTitle: "Introduction to MCP", LessonNumber: 1, ChunkIndex: 1, Vector: []float32{0.5, 0.5, 0}},
	}...))

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(_ context.Context, text string) ([]float32, error) {
		return []float32{1, 0, 0}, nil
	}

	s, err := search.NewSearcher(catalog, content, embedder)
	require.NoError(t, err)
	return s
}

func TestSearchToolRun(t *testing.T) {
	st := NewSearchTool(fixtureSearcher(t))

	result, err := st.Run(context.Background(), map[string]any{"query": "what is mcp"})
	require.NoError(t, err)

	assert.Contains(t, result.Text, "[Introduction to MCP - Lesson 0]")
	assert.Contains(t, result.Text, "MCP basics.")
	require.Len(t, result.Sources, 2)
	assert.Equal(t, "https://example.com/mcp/0", result.Sources[0].Link)
	assert.Equal(t, 0, result.Sources[0].LessonNumber)
}

func TestSearchToolLessonFilter(t *testing.T) {
	st := NewSearchTool(fixtureSearcher(t))

	// lesson_number arrives as float64 when decoded from JSON
	result, err := st.Run(context.Background(), map[string]any{
		"query":         "tools",
		"lesson_number": float64(1),
	})
	require.NoError(t, err)

	assert.Contains(t, result.Text, "[Introduction to MCP - Lesson 1]")
	assert.NotContains(t, result.Text, "Lesson 0")
}

func TestSearchToolMissingQuery(t *testing.T) {
	st := NewSearchTool(fixtureSearcher(t))

	_, err := st.Run(context.Background(), map[string]any{})
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestSearchToolNoResults(t *testing.T) {
	st := NewSearchTool(fixtureSearcher(t))

	lesson := 7
	result, err := st.Run(context.Background(), map[string]any{
		"query":         "anything",
		"course_name":   "MCP",
		"lesson_number": float64(lesson),
	})
	require.NoError(t, err)
	assert.Equal(t, "No relevant content found in course 'MCP' in lesson 7.", result.Text)
	assert.Empty(t, result.Sources)
}

func TestSearchToolEmptyCatalogCourseFilter(t *testing.T) {
	catalog, content, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	s, err := search.NewSearcher(catalog, content, mock.NewMockEmbedder())
	require.NoError(t, err)
	st := NewSearchTool(s)

	result, err := st.Run(context.Background(), map[string]any{
		"query":       "anything",
		"course_name": "Ghost Course",
	})
	require.NoError(t, err)
	assert.Equal(t, "No course found matching 'Ghost Course'", result.Text)
}

func TestOutlineToolRun(t *testing.T) {
	ot := NewOutlineTool(fixtureSearcher(t))

	result, err := ot.Run(context.Background(), map[string]any{"course_name": "MCP"})
	require.NoError(t, err)

	assert.Contains(t, result.Text, "Course: Introduction to MCP")
	assert.Contains(t, result.Text, "Course Link: https://example.com/mcp")
	assert.Contains(t, result.Text, "Lessons (2 total):")
	assert.Contains(t, result.Text, "Lesson 0: Welcome")
	assert.Contains(t, result.Text, "Lesson 1: Tools")

	require.Len(t, result.Sources, 1)
	assert.Equal(t, "Introduction to MCP", result.Sources[0].CourseTitle)
	assert.Equal(t, core.NoLesson, result.Sources[0].LessonNumber)
}

func TestOutlineToolMissingName(t *testing.T) {
	ot := NewOutlineTool(fixtureSearcher(t))

	_, err := ot.Run(context.Background(), map[string]any{})
	assert.ErrorIs(t, err, ErrMissingArgument)
}

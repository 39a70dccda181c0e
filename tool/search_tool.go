package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coursechat/coursechat/ai"
	"github.com/coursechat/coursechat/core"
	"github.com/coursechat/coursechat/search"
)

// SearchTool exposes semantic content search to the chat model.
type SearchTool struct {
	searcher *search.Searcher
}

// NewSearchTool creates the course content search tool.
func NewSearchTool(searcher *search.Searcher) *SearchTool {
	return &SearchTool{searcher: searcher}
}

// Spec returns the tool definition as presented to the model.
func (t *SearchTool) Spec() ai.ToolSpec {
	return ai.ToolSpec{
		Name:        "search_course_content",
		Description: "Search course materials with smart course name matching and lesson filtering",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "What to search for in the course content",
				},
				"course_name": map[string]any{
					"type":        "string",
					"description": "Course title (partial matches work, e.g. 'MCP', 'Introduction')",
				},
				"lesson_number": map[string]any{
					"type":        "integer",
					"description": "Specific lesson number to search within (e.g. 1, 2, 3)",
				},
			},
			"required": []string{"query"},
		},
	}
}

// Run searches the content index. A course name that cannot be
// resolved, or a search with no hits, produces an explanatory text
// result rather than an error so the model can tell the user.
func (t *SearchTool) Run(ctx context.Context, args map[string]any) (*Result, error) {
	query, ok := stringArg(args, "query")
	if !ok || query == "" {
		return nil, fmt.Errorf("%w: query", ErrMissingArgument)
	}

	req := &search.Request{Query: query}
	if name, ok := stringArg(args, "course_name"); ok && name != "" {
		req.CourseName = name
	}
	if lesson, ok := intArg(args, "lesson_number"); ok {
		req.LessonNumber = &lesson
	}

	results, err := t.searcher.Search(ctx, req)
	if err != nil {
		if errors.Is(err, search.ErrCourseNotFound) {
			return &Result{Text: fmt.Sprintf("No course found matching '%s'", req.CourseName)}, nil
		}
		return nil, err
	}

	if len(results) == 0 {
		return &Result{Text: noContentMessage(req)}, nil
	}

	return formatResults(ctx, t.searcher, results), nil
}

// noContentMessage explains an empty search, naming any filters so the
// model can relay what was actually searched.
func noContentMessage(req *search.Request) string {
	var b strings.Builder
	b.WriteString("No relevant content found")
	if req.CourseName != "" {
		fmt.Fprintf(&b, " in course '%s'", req.CourseName)
	}
	if req.LessonNumber != nil {
		fmt.Fprintf(&b, " in lesson %d", *req.LessonNumber)
	}
	b.WriteString(".")
	return b.String()
}

// formatResults renders hits as bracketed context blocks and collects
// one citation per hit.
func formatResults(ctx context.Context, searcher *search.Searcher, results []*core.ScoredChunk) *Result {
	blocks := make([]string, 0, len(results))
	sources := make([]core.Citation, 0, len(results))

	for _, r := range results {
		citation := core.Citation{
			CourseTitle:  r.Chunk.CourseTitle,
			LessonNumber: r.Chunk.LessonNumber,
		}
		if r.Chunk.LessonNumber != core.NoLesson {
			citation.Link = searcher.LessonLink(ctx, r.Chunk.CourseTitle, r.Chunk.LessonNumber)
		}

		blocks = append(blocks, fmt.Sprintf("[%s]\n%s", citation.Label(), r.Chunk.Content))
		sources = append(sources, citation)
	}

	return &Result{
		Text:    strings.Join(blocks, "\n\n"),
		Sources: sources,
	}
}

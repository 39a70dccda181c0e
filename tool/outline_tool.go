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

// OutlineTool exposes course outlines (title, link, lesson list) to
// the chat model.
type OutlineTool struct {
	searcher *search.Searcher
}

// NewOutlineTool creates the course outline tool.
func NewOutlineTool(searcher *search.Searcher) *OutlineTool {
	return &OutlineTool{searcher: searcher}
}

// Spec returns the tool definition as presented to the model.
func (t *OutlineTool) Spec() ai.ToolSpec {
	return ai.ToolSpec{
		Name:        "get_course_outline",
		Description: "Get course outline including title, course link, and complete lesson list",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"course_name": map[string]any{
					"type":        "string",
					"description": "Course title (partial matches work, e.g. 'MCP', 'Introduction')",
				},
			},
			"required": []string{"course_name"},
		},
	}
}

// Run resolves the course name and renders its outline.
func (t *OutlineTool) Run(ctx context.Context, args map[string]any) (*Result, error) {
	name, ok := stringArg(args, "course_name")
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: course_name", ErrMissingArgument)
	}

	course, err := t.searcher.Course(ctx, name)
	if err != nil {
		if errors.Is(err, search.ErrCourseNotFound) {
			return &Result{Text: fmt.Sprintf("No course found matching '%s'", name)}, nil
		}
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Course: %s\n", course.Title)
	if course.Link != "" {
		fmt.Fprintf(&b, "Course Link: %s\n", course.Link)
	}
	if course.Instructor != "" {
		fmt.Fprintf(&b, "Instructor: %s\n", course.Instructor)
	}

	fmt.Fprintf(&b, "\nLessons (%d total):\n", len(course.Lessons))
	for _, lesson := range course.Lessons {
		fmt.Fprintf(&b, "  Lesson %d: %s\n", lesson.Number, lesson.Title)
	}

	return &Result{
		Text: strings.TrimRight(b.String(), "\n"),
		Sources: []core.Citation{{
			CourseTitle:  course.Title,
			LessonNumber: core.NoLesson,
			Link:         course.Link,
		}},
	}, nil
}

package chunker

import (
	"strings"
	"testing"

	"github.com/coursechat/coursechat/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `Course Title: Introduction to MCP
Course Link: https://example.com/courses/mcp
Course Instructor: Ada Example

Lesson 0: Welcome
Lesson Link: https://example.com/courses/mcp/lesson/0
Welcome to the course. This lesson covers the basics.

Lesson 1: Tools
Tools let a model call back into your application.
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, "Introduction to MCP", doc.Course.Title)
	assert.Equal(t, "https://example.com/courses/mcp", doc.Course.Link)
	assert.Equal(t, "Ada Example", doc.Course.Instructor)

	require.Len(t, doc.Lessons, 2)
	assert.Equal(t, 0, doc.Lessons[0].Number)
	assert.Equal(t, "Welcome", doc.Lessons[0].Title)
	assert.Equal(t, "Welcome to the course. This lesson covers the basics.", doc.Lessons[0].Text)
	assert.Equal(t, 1, doc.Lessons[1].Number)
	assert.Equal(t, "Tools let a model call back into your application.", doc.Lessons[1].Text)

	require.Len(t, doc.Course.Lessons, 2)
	assert.Equal(t, "https://example.com/courses/mcp/lesson/0", doc.Course.Lessons[0].Link)
	assert.Empty(t, doc.Course.Lessons[1].Link)
}

func TestParseDocumentMissingTitle(t *testing.T) {
	_, err := ParseDocument(strings.NewReader("Lesson 0: Welcome\nSome text.\n"))
	assert.ErrorIs(t, err, ErrBadFormat)
}

func TestParseDocumentNoLessonMarkers(t *testing.T) {
	raw := "Course Title: Raw Notes\n\nJust one flat body of text. Nothing else.\n"
	doc, err := ParseDocument(strings.NewReader(raw))
	require.NoError(t, err)

	require.Len(t, doc.Lessons, 1)
	assert.Equal(t, core.NoLesson, doc.Lessons[0].Number)
	assert.Equal(t, "Just one flat body of text. Nothing else.", doc.Lessons[0].Text)
	assert.Empty(t, doc.Course.Lessons)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("/nonexistent/course.txt")
	assert.Error(t, err)
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCourse(t *testing.T) {
	valid := &Course{
		Title: "Introduction to MCP",
		Lessons: []Lesson{
			{Number: 0, Title: "Welcome"},
			{Number: 1, Title: "Setup"},
		},
	}
	assert.NoError(t, ValidateCourse(valid))

	empty := &Course{}
	assert.ErrorIs(t, ValidateCourse(empty), ErrEmptyCourseTitle)

	negative := &Course{Title: "X", Lessons: []Lesson{{Number: -1}}}
	assert.ErrorIs(t, ValidateCourse(negative), ErrInvalidLessonNumber)

	duplicate := &Course{Title: "X", Lessons: []Lesson{{Number: 2}, {Number: 2}}}
	assert.ErrorIs(t, ValidateCourse(duplicate), ErrDuplicateLessonNumber)
}

func TestValidateChunk(t *testing.T) {
	valid := &Chunk{Content: "some text", CourseTitle: "X", LessonNumber: 0, ChunkIndex: 0}
	assert.NoError(t, ValidateChunk(valid))

	noLesson := &Chunk{Content: "some text", CourseTitle: "X", LessonNumber: NoLesson}
	assert.NoError(t, ValidateChunk(noLesson))

	tests := []struct {
		name  string
		chunk *Chunk
		want  error
	}{
		{"empty content", &Chunk{CourseTitle: "X"}, ErrEmptyChunkContent},
		{"empty course title", &Chunk{Content: "text"}, ErrEmptyCourseTitle},
		{"negative index", &Chunk{Content: "text", CourseTitle: "X", ChunkIndex: -1}, ErrInvalidChunkIndex},
		{"lesson below sentinel", &Chunk{Content: "text", CourseTitle: "X", LessonNumber: -2}, ErrInvalidLessonNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateChunk(tt.chunk), tt.want)
		})
	}
}

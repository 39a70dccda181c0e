package core

import (
	"encoding/binary"
	"fmt"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so identical content
// always produces the same identifier.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// NoLesson marks a chunk or citation that is not tied to a specific lesson.
const NoLesson = -1

// Lesson is a single lesson within a course. Lessons never exist
// independent of their course.
type Lesson struct {
	Number int    // Non-negative, unique within the course
	Title  string
	Link   string // Optional
}

// Course is a parsed course transcript. The title is the canonical unique
// identifier across the whole index. A course is created once at ingestion
// time and immutable thereafter unless re-ingested.
type Course struct {
	Title      string
	Link       string // Optional
	Instructor string // Optional
	Lessons    []Lesson
	Vector     []float32 // Embedding of the title, used for fuzzy name resolution
}

// ID returns the content-based identifier derived from the course title.
func (c *Course) ID() ID {
	return IDFromContent(c.Title)
}

// LessonLink returns the link of the lesson with the given number,
// or "" when the lesson is unknown or has no link.
func (c *Course) LessonLink(number int) string {
	for _, lesson := range c.Lessons {
		if lesson.Number == number {
			return lesson.Link
		}
	}
	return ""
}

// Chunk is a bounded text segment derived from a lesson, the unit of
// semantic indexing. Chunks are immutable once created and are regenerated
// wholesale when a course is re-ingested.
type Chunk struct {
	Content      string
	CourseTitle  string // Back-reference to the owning course
	LessonNumber int    // NoLesson when the chunk is not tied to a lesson
	ChunkIndex   int    // Sequence position within the course
	Vector       []float32
}

// ID returns the content-based identifier of the chunk's slot within its
// course. It depends on course title and position only, so re-ingesting a
// course overwrites the previous chunk set instead of duplicating it.
func (c *Chunk) ID() ID {
	return IDFromContent(fmt.Sprintf("%s#%d", c.CourseTitle, c.ChunkIndex))
}

// Citation is a structured pointer to retrieved content, shown to the
// end user as provenance alongside an answer.
type Citation struct {
	CourseTitle  string
	LessonNumber int    // NoLesson when the citation covers the whole course
	Link         string // Optional
}

// Label renders the citation as "Course Title - Lesson N", or just the
// course title for course-level citations.
func (c Citation) Label() string {
	if c.LessonNumber == NoLesson {
		return c.CourseTitle
	}
	return fmt.Sprintf("%s - Lesson %d", c.CourseTitle, c.LessonNumber)
}

// CourseMatch is a catalog entry returned from fuzzy course-name resolution.
type CourseMatch struct {
	Course *Course
	Score  float32
}

// ScoredChunk is a content entry returned from semantic retrieval.
type ScoredChunk struct {
	Chunk *Chunk
	Score float32
}

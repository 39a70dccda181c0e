// Copyright 2026 Coursechat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateCourse validates a Course according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Lesson numbers must be non-negative
//   - Lesson numbers must be unique within the course
//
// NOT validated (populated later):
//   - Vector (can be empty until the title is embedded)
//   - Link and Instructor (optional)
func ValidateCourse(course *Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", ErrInvalidCourse)
	}

	if course.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCourse, ErrEmptyCourseTitle)
	}

	seen := make(map[int]bool, len(course.Lessons))
	for _, lesson := range course.Lessons {
		if lesson.Number < 0 {
			return fmt.Errorf("%w: %w: %d", ErrInvalidCourse, ErrInvalidLessonNumber, lesson.Number)
		}
		if seen[lesson.Number] {
			return fmt.Errorf("%w: %w: %d", ErrInvalidCourse, ErrDuplicateLessonNumber, lesson.Number)
		}
		seen[lesson.Number] = true
	}

	return nil
}

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//   - CourseTitle back-reference must not be empty
//   - ChunkIndex must be non-negative
//   - LessonNumber must be non-negative or NoLesson
//
// NOT validated:
//   - Vector (can be empty until the embedding processor runs)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyChunkContent)
	}

	if chunk.CourseTitle == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyCourseTitle)
	}

	if chunk.ChunkIndex < 0 {
		return fmt.Errorf("%w: %w: %d", ErrInvalidChunk, ErrInvalidChunkIndex, chunk.ChunkIndex)
	}

	if chunk.LessonNumber < NoLesson {
		return fmt.Errorf("%w: %w: %d", ErrInvalidChunk, ErrInvalidLessonNumber, chunk.LessonNumber)
	}

	return nil
}

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

import "errors"

// Domain validation errors
var (
	// ErrInvalidCourse indicates a Course failed validation.
	ErrInvalidCourse = errors.New("invalid course")

	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrEmptyCourseTitle indicates the course title is empty.
	ErrEmptyCourseTitle = errors.New("course title cannot be empty")

	// ErrInvalidLessonNumber indicates a negative lesson number.
	ErrInvalidLessonNumber = errors.New("lesson number cannot be negative")

	// ErrDuplicateLessonNumber indicates two lessons share a number within a course.
	ErrDuplicateLessonNumber = errors.New("duplicate lesson number")

	// ErrEmptyChunkContent indicates the chunk Content field is empty.
	ErrEmptyChunkContent = errors.New("chunk content cannot be empty")

	// ErrInvalidChunkIndex indicates a negative chunk index.
	ErrInvalidChunkIndex = errors.New("chunk index cannot be negative")
)

// Copyright 2026 Coursechat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chunker

import "errors"

var (
	// ErrBadFormat indicates a document that does not follow the
	// expected transcript layout, such as a missing course title line.
	ErrBadFormat = errors.New("malformed course document")

	// ErrInvalidChunkSize indicates a non-positive chunk size option.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrInvalidOverlap indicates an overlap that is negative or not
	// smaller than the chunk size.
	ErrInvalidOverlap = errors.New("overlap must be non-negative and smaller than chunk size")
)

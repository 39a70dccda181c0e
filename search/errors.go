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

package search

import "errors"

var (
	// ErrCourseNotFound indicates that a course name could not be
	// resolved against the catalog, which only happens when the
	// catalog is empty.
	ErrCourseNotFound = errors.New("course not found")

	// ErrCatalogRequired indicates a nil catalog repository.
	ErrCatalogRequired = errors.New("catalog repository is required")

	// ErrContentRequired indicates a nil content repository.
	ErrContentRequired = errors.New("content repository is required")

	// ErrEmbedderRequired indicates a nil embedder.
	ErrEmbedderRequired = errors.New("embedder is required")
)

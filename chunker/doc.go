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

// Package chunker parses course transcript documents and splits their
// lesson text into overlapping, sentence-aligned chunks suitable for
// embedding and similarity search.
//
// A transcript starts with a metadata header (course title, link,
// instructor) followed by lesson sections introduced by "Lesson N:"
// marker lines. ParseDocument extracts the course metadata and the raw
// text of each lesson; Chunker.ChunkDocument turns that text into
// core.Chunk values with sequential, course-wide chunk indexes.
//
// Chunking is deterministic: the same document and settings always
// produce the same chunks.
package chunker

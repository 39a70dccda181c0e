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

// Package ingestion turns course transcripts into indexed, searchable
// content.
//
// A Pipeline parses each transcript, chunks lesson text, embeds the
// chunks in concurrent batches on a worker pool, and writes the course
// to the catalog collection and its chunks to the content collection.
// Ingestion is idempotent per course title: transcripts whose course
// is already indexed are skipped without touching existing data.
//
// Folder ingestion tolerates bad files: a transcript that fails to
// parse or embed is logged and skipped so one malformed file cannot
// block a course set.
package ingestion

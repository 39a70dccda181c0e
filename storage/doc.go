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


// Package storage provides the storage abstraction layer for the vector
// index.
//
// The index is split into two logical collections, each behind its own
// repository interface:
//
//   - CatalogRepository: one entry per course, embedded over the title,
//     used only for fuzzy course-name resolution
//   - ContentRepository: one entry per chunk, embedded over the chunk
//     text, used for semantic retrieval
//
// Both collections are derived data, rebuildable from the source course
// documents. Public constructors in backend packages return these
// interfaces rather than concrete types so alternative backends can be
// swapped in without touching consumers; tests use the in-memory variant
// from the badger subpackage.
//
// Queries against an empty collection return empty results, never an
// error. All repository methods accept context.Context and all
// implementations must be safe for concurrent use.
package storage

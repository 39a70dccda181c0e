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

// Package search runs semantic retrieval over the indexed course
// material.
//
// A Searcher embeds query text and delegates similarity ranking to the
// storage repositories. Course name resolution is itself a vector
// search against the catalog: the user may say "MCP" and match the
// course titled "Introduction to Model Context Protocol". The single
// best catalog match always wins, so resolution only fails on an
// empty catalog.
package search

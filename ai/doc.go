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

// Package ai provides abstractions for the AI services used in Coursechat.
//
// This package defines interfaces for text embeddings and tool-capable
// chat completions. It follows the dependency inversion principle,
// allowing the retrieval and orchestration layers to depend on
// abstractions rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - Embedder: Generates vector embeddings from text
//   - Generator: Produces chat completions, optionally driven by tools
//   - AIProvider: Aggregates AI services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewProvider, openai.NewEmbedder, etc.) return
// interface types to enforce abstraction; the mock constructors return
// concrete types so tests can script responses and inspect recorded calls.
//
// # Usage Example
//
//	config := ai.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vector, err := provider.Embedder().EmbedText(ctx, "What is MCP?")
//	resp, err := provider.Generator().Generate(ctx, &ai.GenerateRequest{
//	    System:   "You answer questions about course materials.",
//	    Messages: []ai.Message{{Role: ai.RoleUser, Text: "What is MCP?"}},
//	})
package ai

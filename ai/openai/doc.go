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

// Package openai implements the ai package interfaces against
// OpenAI-compatible APIs (OpenAI, Ollama, LocalAI, vLLM) using
// langchaingo clients.
//
// Embedder and Generator each hold their own client so the two
// services can run on different hosts and models. NewProvider wires
// both from a single ai.Config.
package openai

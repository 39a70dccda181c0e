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

// Package tool defines the tools the chat model may call during a
// conversation and the registry that dispatches calls to them.
//
// Each tool describes itself with an ai.ToolSpec and executes decoded
// JSON arguments through Run, returning both the text the model sees
// and the citations behind that text. The registry routes calls by
// tool name and rejects names it has never seen.
package tool

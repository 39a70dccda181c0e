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

package tool

import "errors"

var (
	// ErrUnknownTool indicates a call to a tool name that was never
	// registered.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrDuplicateTool indicates a second registration under a name
	// already taken.
	ErrDuplicateTool = errors.New("tool already registered")

	// ErrMissingArgument indicates a required tool argument that was
	// absent or had the wrong type.
	ErrMissingArgument = errors.New("missing required argument")
)

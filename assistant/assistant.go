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

package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coursechat/coursechat/ai"
	"github.com/coursechat/coursechat/core"
	"github.com/coursechat/coursechat/session"
	"github.com/coursechat/coursechat/tool"
)

// Assistant orchestrates answering a question: it sends the question
// to the chat model together with the registered tool definitions,
// executes at most one round of tool calls, and sends the results back
// for the final answer.
type Assistant struct {
	generator ai.Generator
	registry  *tool.Registry
	sessions  *session.Store
	logger    *slog.Logger
}

// New creates an assistant.
func New(generator ai.Generator, registry *tool.Registry, sessions *session.Store) (*Assistant, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	if sessions == nil {
		return nil, ErrSessionsRequired
	}

	return &Assistant{
		generator: generator,
		registry:  registry,
		sessions:  sessions,
		logger:    slog.Default().With("component", "assistant"),
	}, nil
}

// Answer responds to a question within a session. It returns the
// model's answer and the citations behind any retrieved content.
// Chat service failures are returned as errors; retrieval-level
// problems (unresolvable course, no hits, tool failures) are folded
// into tool result text so the model can explain them.
func (a *Assistant) Answer(ctx context.Context, sessionID, question string) (string, []core.Citation, error) {
	req := &ai.GenerateRequest{
		System: a.buildSystem(sessionID),
		Messages: []ai.Message{{
			Role: ai.RoleUser,
			Text: fmt.Sprintf(queryTemplate, question),
		}},
		Tools: a.registry.Specs(),
	}

	resp, err := a.generator.Generate(ctx, req)
	if err != nil {
		return "", nil, fmt.Errorf("chat service failed: %w", err)
	}

	var citations []core.Citation
	if len(resp.ToolCalls) > 0 {
		citations = a.runToolRound(ctx, req, resp.ToolCalls)

		// Follow-up call carries the tool results but no tools, so
		// the model must answer with text.
		req.Tools = nil
		resp, err = a.generator.Generate(ctx, req)
		if err != nil {
			return "", nil, fmt.Errorf("chat service failed: %w", err)
		}
	}

	a.sessions.AddExchange(sessionID, question, resp.Text)
	return resp.Text, citations, nil
}

// runToolRound executes the round's tool calls, appending the
// assistant's tool-call turns and their results to the conversation.
// Every call gets a result message; failures become result text.
func (a *Assistant) runToolRound(ctx context.Context, req *ai.GenerateRequest, calls []ai.ToolCall) []core.Citation {
	var citations []core.Citation

	for _, call := range calls {
		call := call
		req.Messages = append(req.Messages, ai.Message{
			Role:     ai.RoleAssistant,
			ToolCall: &call,
		})

		content := ""
		result, err := a.registry.Execute(ctx, call.Name, call.Arguments)
		if err != nil {
			a.logger.Warn("tool execution failed", "tool", call.Name, "err", err)
			content = fmt.Sprintf("Error executing tool: %s", err)
		} else {
			content = result.Text
			citations = append(citations, result.Sources...)
		}

		req.Messages = append(req.Messages, ai.Message{
			Role: ai.RoleTool,
			ToolResult: &ai.ToolResult{
				CallID:  call.ID,
				Name:    call.Name,
				Content: content,
			},
		})
	}

	return citations
}

// buildSystem combines the static system prompt with the session's
// retained conversation history.
func (a *Assistant) buildSystem(sessionID string) string {
	history := a.sessions.History(sessionID)
	if history == "" {
		return systemPrompt
	}
	return fmt.Sprintf("%s\n\nPrevious conversation:\n%s", systemPrompt, history)
}

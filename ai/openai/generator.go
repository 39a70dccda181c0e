package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/coursechat/coursechat/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Generator implements ai.Generator using OpenAI-compatible chat
// completion APIs via langchaingo.
type Generator struct {
	client      *openai.LLM
	maxTokens   int
	temperature float64
	logger      *slog.Logger
}

// newGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newGenerator(config *ai.Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken(tokenOrNone(config)),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &Generator{
		client:      client,
		maxTokens:   config.MaxTokens,
		temperature: config.Temperature,
		logger:      slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewGenerator creates a new chat generator using the provided configuration.
//
// Returns ai.Generator interface to enforce abstraction.
func NewGenerator(config *ai.Config) (ai.Generator, error) {
	return newGenerator(config)
}

// Generate sends the conversation to the chat model and returns its
// response, including any tool calls the model requested.
func (g *Generator) Generate(ctx context.Context, req *ai.GenerateRequest) (*ai.GenerateResponse, error) {
	g.logger.Debug("generating completion",
		"messages", len(req.Messages),
		"tools", len(req.Tools))

	content, err := buildMessageContent(req)
	if err != nil {
		return nil, err
	}

	opts := []llms.CallOption{
		llms.WithTemperature(g.temperature),
		llms.WithMaxTokens(g.maxTokens),
	}
	if len(req.Tools) > 0 {
		opts = append(opts, llms.WithTools(buildTools(req.Tools)))
	}

	resp, err := g.client.GenerateContent(ctx, content, opts...)
	if err != nil {
		g.logger.Error("completion request failed", "err", err)
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	choice := resp.Choices[0]
	out := &ai.GenerateResponse{Text: choice.Content}

	for _, tc := range choice.ToolCalls {
		if tc.FunctionCall == nil {
			continue
		}
		args := map[string]any{}
		if tc.FunctionCall.Arguments != "" {
			if err := json.Unmarshal([]byte(tc.FunctionCall.Arguments), &args); err != nil {
				return nil, fmt.Errorf("failed to decode arguments for tool %q: %w", tc.FunctionCall.Name, err)
			}
		}
		out.ToolCalls = append(out.ToolCalls, ai.ToolCall{
			ID:        tc.ID,
			Name:      tc.FunctionCall.Name,
			Arguments: args,
		})
	}

	g.logger.Debug("completion received",
		"text_length", len(out.Text),
		"tool_calls", len(out.ToolCalls))

	return out, nil
}

// buildMessageContent converts a GenerateRequest into langchaingo
// message content, including assistant tool-call turns and their tool
// responses.
func buildMessageContent(req *ai.GenerateRequest) ([]llms.MessageContent, error) {
	content := make([]llms.MessageContent, 0, len(req.Messages)+1)

	if req.System != "" {
		content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}

	for _, msg := range req.Messages {
		switch msg.Role {
		case ai.RoleUser:
			content = append(content, llms.TextParts(llms.ChatMessageTypeHuman, msg.Text))

		case ai.RoleAssistant:
			if msg.ToolCall == nil {
				content = append(content, llms.TextParts(llms.ChatMessageTypeAI, msg.Text))
				continue
			}
			args, err := json.Marshal(msg.ToolCall.Arguments)
			if err != nil {
				return nil, fmt.Errorf("failed to encode arguments for tool %q: %w", msg.ToolCall.Name, err)
			}
			content = append(content, llms.MessageContent{
				Role: llms.ChatMessageTypeAI,
				Parts: []llms.ContentPart{llms.ToolCall{
					ID:   msg.ToolCall.ID,
					Type: "function",
					FunctionCall: &llms.FunctionCall{
						Name:      msg.ToolCall.Name,
						Arguments: string(args),
					},
				}},
			})

		case ai.RoleTool:
			if msg.ToolResult == nil {
				return nil, fmt.Errorf("tool message without a tool result")
			}
			content = append(content, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{llms.ToolCallResponse{
					ToolCallID: msg.ToolResult.CallID,
					Name:       msg.ToolResult.Name,
					Content:    msg.ToolResult.Content,
				}},
			})

		default:
			return nil, fmt.Errorf("unsupported message role %q", msg.Role)
		}
	}

	return content, nil
}

func buildTools(specs []ai.ToolSpec) []llms.Tool {
	tools := make([]llms.Tool, 0, len(specs))
	for _, spec := range specs {
		tools = append(tools, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        spec.Name,
				Description: spec.Description,
				Parameters:  spec.Parameters,
			},
		})
	}
	return tools
}

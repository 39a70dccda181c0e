package ai

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolSpec describes a tool the chat model may call. Parameters is a
// JSON Schema object in the shape OpenAI-compatible APIs expect.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ToolCall is a model request to invoke a named tool with decoded
// JSON arguments.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// ToolResult carries the outcome of a tool invocation back to the model.
type ToolResult struct {
	CallID  string
	Name    string
	Content string
}

// Message is one turn of a chat conversation. Exactly one of Text,
// ToolCall, or ToolResult is meaningful, depending on Role: user and
// assistant messages carry Text, an assistant message that requested a
// tool carries ToolCall, and a tool message carries ToolResult.
type Message struct {
	Role       Role
	Text       string
	ToolCall   *ToolCall
	ToolResult *ToolResult
}

// GenerateRequest is the input to Generator.Generate.
type GenerateRequest struct {
	// System is the system prompt, sent ahead of Messages.
	System string

	// Messages is the conversation so far, oldest first.
	Messages []Message

	// Tools are offered to the model for this call. Empty means the
	// model must answer with text.
	Tools []ToolSpec
}

// GenerateResponse is the model's reply: direct text, tool call
// requests, or both.
type GenerateResponse struct {
	Text      string
	ToolCalls []ToolCall
}

package tool

import (
	"context"

	"github.com/coursechat/coursechat/ai"
	"github.com/coursechat/coursechat/core"
)

// Result is what a tool produced: the text handed back to the model
// and the citations supporting it.
type Result struct {
	Text    string
	Sources []core.Citation
}

// Tool is one callable capability offered to the chat model.
// Implementations must be thread-safe for concurrent use.
type Tool interface {
	// Spec returns the tool's definition as presented to the model.
	Spec() ai.ToolSpec

	// Run executes the tool with decoded JSON arguments.
	Run(ctx context.Context, args map[string]any) (*Result, error)
}

// stringArg extracts an optional string argument, tolerating absence.
func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// intArg extracts an optional integer argument. JSON numbers decode
// as float64; plain ints appear when arguments are built in-process.
func intArg(args map[string]any, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

package tool

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coursechat/coursechat/ai"
)

// Registry holds the tools offered to the chat model and dispatches
// calls to them by name. Registration order is preserved in Specs so
// the model always sees a stable tool list.
type Registry struct {
	tools  map[string]Tool
	order  []string
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:  make(map[string]Tool),
		logger: slog.Default().With("component", "tool-registry"),
	}
}

// Register adds a tool under its spec name.
func (r *Registry) Register(t Tool) error {
	name := t.Spec().Name
	if name == "" {
		return fmt.Errorf("tool spec has no name")
	}
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, name)
	}

	r.tools[name] = t
	r.order = append(r.order, name)
	r.logger.Debug("registered tool", "name", name)
	return nil
}

// Specs returns the definitions of all registered tools in
// registration order.
func (r *Registry) Specs() []ai.ToolSpec {
	specs := make([]ai.ToolSpec, 0, len(r.order))
	for _, name := range r.order {
		specs = append(specs, r.tools[name].Spec())
	}
	return specs
}

// Execute runs the named tool with the given arguments.
// Calls to unregistered names return ErrUnknownTool.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (*Result, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	r.logger.Debug("executing tool", "name", name)
	return t.Run(ctx, args)
}

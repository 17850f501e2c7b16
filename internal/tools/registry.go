package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nerrad567/gray-logic-assist/internal/infrastructure/logging"
)

// ServiceClient is the subset of the Home Assistant client the mutation
// handlers depend on.
type ServiceClient interface {
	CallService(ctx context.Context, domain, service string, data map[string]any) error
}

// Reporter renders the entity state report for list_entities.
type Reporter interface {
	Render(ctx context.Context, pattern string) (string, error)
}

// Registry owns the tool handlers and dispatches tools/call requests by
// exact tool name.
type Registry struct {
	client   ServiceClient
	reporter Reporter
	log      *logging.Logger
}

// NewRegistry creates a Registry wired to the given upstream client and
// report formatter.
func NewRegistry(client ServiceClient, reporter Reporter, log *logging.Logger) *Registry {
	return &Registry{
		client:   client,
		reporter: reporter,
		log:      log.With("component", "tools"),
	}
}

// List returns the static tool catalog.
func (r *Registry) List() []Descriptor {
	return Catalog()
}

// Call dispatches one tool invocation and returns its human-readable
// result text. Unknown names return ErrUnknownTool; argument problems
// return ErrInvalidParams; upstream failures propagate unchanged.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (string, error) {
	switch name {
	case ToolListEntities:
		return r.listEntities(ctx, args)
	case ToolSetLightState:
		return r.setLightState(ctx, args)
	case ToolSetSwitchState:
		return r.setSwitchState(ctx, args)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
}

// decodeArgs unmarshals raw tool arguments into a typed struct. An absent
// argument object is treated as empty; a shape mismatch is an invalid
// params failure.
func decodeArgs(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

// missingParam builds the invalid-params failure for a required argument.
func missingParam(name string) error {
	return fmt.Errorf("%w: missing required parameter '%s'", ErrInvalidParams, name)
}
